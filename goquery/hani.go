package goquery

import "github.com/crhub/newsclip"

var _ newsclip.Extractor = (*HaniExtractor)(nil)

// HaniExtractor extracts articles from The Hankyoreh (www.hani.co.kr/arti/...).
type HaniExtractor struct {
	layout *Layout
}

// NewHaniExtractor creates a new HaniExtractor.
func NewHaniExtractor() *HaniExtractor {
	return &HaniExtractor{layout: &Layout{
		Title:      Selectors(".article-head-title", ".title", "h1.article-title", "h1"),
		Author:     Selectors(".article-writer", ".byline", ".name", ".reporter"),
		Press:      "한겨레",
		Date:       Selectors(".article-date", ".date-time", "time", ".date"),
		DateAttrs:  []string{"datetime"},
		DateLayout: newsclip.DateRaw,
		Body:       Selectors(".article-text", "#article-text", ".article-body", ".text"),
		Noise: NewNoise(
			[]string{".ad", ".adrs", ".related-article"},
			"ad", "banner", "related", "recommend",
		),
	}}
}

// Name returns the extractor's identifier.
func (e *HaniExtractor) Name() string {
	return "hani"
}

// Extract parses the HTML and locates the article fields.
func (e *HaniExtractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.layout.extract(html)
}
