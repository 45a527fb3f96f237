package goquery

import "github.com/crhub/newsclip"

var _ newsclip.Extractor = (*ChosunExtractor)(nil)

// ChosunExtractor extracts articles from Chosun Ilbo (www.chosun.com).
type ChosunExtractor struct {
	layout *Layout
}

// NewChosunExtractor creates a new ChosunExtractor.
func NewChosunExtractor() *ChosunExtractor {
	return &ChosunExtractor{layout: &Layout{
		Title: Selectors(
			"h1.article-header__headline",
			".article-title",
			`h1[itemprop="headline"]`,
			"h1",
		),
		Author: Selectors(
			".article-header__reporter",
			".byline",
			`[itemprop="author"]`,
			".reporter",
		),
		Press: "조선일보",
		Date: Selectors(
			".article-header__date",
			"time",
			`[itemprop="datePublished"]`,
			".date",
		),
		DateAttrs:  []string{"datetime", "content"},
		DateLayout: newsclip.DateRaw,
		Body: Chain{
			CSS("section.article-body"),
			AttrEquals("section", "itemprop", "articleBody"),
			CSS(".article-content"),
			CSS(".story-body"),
		},
		Noise: NewNoise(
			[]string{".ad", ".advertisement", ".related-article"},
			"ad", "banner", "related", "recommend", "promotion",
		),
	}}
}

// Name returns the extractor's identifier.
func (e *ChosunExtractor) Name() string {
	return "chosun"
}

// Extract parses the HTML and locates the article fields.
func (e *ChosunExtractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.layout.extract(html)
}
