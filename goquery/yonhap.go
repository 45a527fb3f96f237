package goquery

import "github.com/crhub/newsclip"

var _ newsclip.Extractor = (*YonhapExtractor)(nil)

// YonhapExtractor extracts articles from Yonhap News (www.yna.co.kr/view/...).
type YonhapExtractor struct {
	layout *Layout
}

// NewYonhapExtractor creates a new YonhapExtractor.
func NewYonhapExtractor() *YonhapExtractor {
	return &YonhapExtractor{layout: &Layout{
		Title:      Selectors("h1.tit", ".article-head h1", "h1"),
		Author:     Selectors(".writer", ".byline", ".journalist"),
		Press:      "연합뉴스",
		Date:       Selectors("div.info-box01 span.txt-time", ".update-time", "time", ".date"),
		DateLayout: newsclip.DateRaw,
		Body:       Selectors(".article-body", ".story-news", ".content"),
		Noise: NewNoise(
			[]string{".ad", ".adrs", ".related-news"},
			"ad", "banner", "related", "recommend",
		),
	}}
}

// Name returns the extractor's identifier.
func (e *YonhapExtractor) Name() string {
	return "yonhap"
}

// Extract parses the HTML and locates the article fields.
func (e *YonhapExtractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.layout.extract(html)
}
