package goquery

import "github.com/crhub/newsclip"

var _ newsclip.Extractor = (*JoongangExtractor)(nil)

// JoongangExtractor extracts articles from JoongAng Ilbo
// (www.joongang.co.kr/article/...). Its "ab-" prefixed blocks are
// in-article promotions.
type JoongangExtractor struct {
	layout *Layout
}

// NewJoongangExtractor creates a new JoongangExtractor.
func NewJoongangExtractor() *JoongangExtractor {
	return &JoongangExtractor{layout: &Layout{
		Title: Selectors(
			"h1.headline",
			".article-title",
			`h1[itemprop="headline"]`,
			".head-title",
			"h1",
		),
		Author: Selectors(".reporter", ".byline", `[itemprop="author"]`, ".name"),
		Press:  "중앙일보",
		Date: Selectors(
			".date-time",
			"time",
			`[itemprop="datePublished"]`,
			".article-date",
		),
		DateAttrs:  []string{"datetime", "content"},
		DateLayout: newsclip.DateRaw,
		Body: Chain{
			CSS(".article-body"),
			CSS("#article_body"),
			AttrEquals("div", "itemprop", "articleBody"),
			CSS(".article_body"),
		},
		Noise: NewNoise(
			[]string{".ad", ".advertisement", ".related"},
			"ad", "banner", "related", "recommend", "ab-",
		),
	}}
}

// Name returns the extractor's identifier.
func (e *JoongangExtractor) Name() string {
	return "joongang"
}

// Extract parses the HTML and locates the article fields.
func (e *JoongangExtractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.layout.extract(html)
}
