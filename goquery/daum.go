package goquery

import "github.com/crhub/newsclip"

var _ newsclip.Extractor = (*DaumExtractor)(nil)

// DaumExtractor extracts articles from Daum News (v.daum.net/v/{id}).
// The press name comes from the alt text of the syndicating outlet's logo
// and the date is shown as "입력 2025.11.14. 오후 2:30".
type DaumExtractor struct {
	layout *Layout
}

// NewDaumExtractor creates a new DaumExtractor.
func NewDaumExtractor() *DaumExtractor {
	return &DaumExtractor{layout: &Layout{
		Title:      Selectors(".tit_view"),
		Author:     Selectors(".info_view .txt_info"),
		PressChain: Selectors("img#kakaoServiceLogo"),
		PressAttrs: []string{"alt", "title"},
		Date:       Selectors(".info_view .num_date"),
		DateLayout: newsclip.DateMeridiem,
		Body:       Selectors(".article_view"),
		Noise:      NewNoise(nil, "related", "popular", "recommend"),
	}}
}

// Name returns the extractor's identifier.
func (e *DaumExtractor) Name() string {
	return "daum"
}

// Extract parses the HTML and locates the article fields.
func (e *DaumExtractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.layout.extract(html)
}
