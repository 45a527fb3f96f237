package goquery

import "github.com/crhub/newsclip"

var _ newsclip.Extractor = (*NaverExtractor)(nil)

// NaverExtractor extracts articles from Naver News
// (n.news.naver.com/mnews/article/{press}/{id}).
//
// Naver syndicates other outlets, so the press name is read from the
// outlet logo. The publish date comes from the data-date-time attribute.
type NaverExtractor struct {
	layout *Layout
}

// NewNaverExtractor creates a new NaverExtractor.
func NewNaverExtractor() *NaverExtractor {
	return &NaverExtractor{layout: &Layout{
		Title:      Selectors("#title_area > span"),
		Author:     Selectors(".media_end_head_journalist_name"),
		PressChain: Selectors("img.media_end_head_top_logo_img.light_type"),
		PressAttrs: []string{"title", "alt"},
		Date:       Selectors(".media_end_head_info_datestamp_time"),
		DateAttrs:  []string{"data-date-time"},
		DateLayout: newsclip.DateISO,
		Body:       Selectors("#dic_area"),
		Noise: NewNoise(
			[]string{"a.media_end_head_autosummary_button"},
			"ad", "banner", "related",
		),
	}}
}

// Name returns the extractor's identifier.
func (e *NaverExtractor) Name() string {
	return "naver"
}

// Extract parses the HTML and locates the article fields.
func (e *NaverExtractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.layout.extract(html)
}
