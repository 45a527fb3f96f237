package goquery

import "github.com/crhub/newsclip"

var _ newsclip.Extractor = (*HankyungExtractor)(nil)

// HankyungExtractor extracts articles from The Korea Economic Daily
// (www.hankyung.com).
type HankyungExtractor struct {
	layout *Layout
}

// NewHankyungExtractor creates a new HankyungExtractor.
func NewHankyungExtractor() *HankyungExtractor {
	return &HankyungExtractor{layout: &Layout{
		Title:      Selectors(".headline", ".article-tit", "h1.title", "h1"),
		Author:     Selectors(".byline", ".reporter", ".author", ".journalist"),
		Press:      "한국경제",
		Date:       Selectors(".date-time", ".article-date", "time", ".txt-date"),
		DateAttrs:  []string{"datetime"},
		DateLayout: newsclip.DateRaw,
		Body:       Selectors(".article-body", "#articletxt", ".txt-article", ".news-text"),
		Noise: NewNoise(
			[]string{".ad", ".advertisement", ".related"},
			"ad", "banner", "related", "recommend",
		),
	}}
}

// Name returns the extractor's identifier.
func (e *HankyungExtractor) Name() string {
	return "hankyung"
}

// Extract parses the HTML and locates the article fields.
func (e *HankyungExtractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.layout.extract(html)
}
