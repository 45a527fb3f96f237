// Package readability provides a generic newsclip.Extractor backed by
// go-readability. It reads the byline and site name but no publish date.
package readability

import (
	"strings"

	"github.com/crhub/newsclip"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements newsclip.Extractor at compile time.
var _ newsclip.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract articles from arbitrary pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the extractor's identifier.
func (e *Extractor) Name() string {
	return "readability"
}

// Extract processes raw HTML and returns the readable content as plain text.
func (e *Extractor) Extract(rawHTML string) (*newsclip.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsclip.Errorf(newsclip.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, newsclip.WrapError(newsclip.EEXTRACTION, err, "readability failed")
	}

	if strings.TrimSpace(article.Title) == "" {
		return nil, newsclip.Errorf(newsclip.EEXTRACTION, "title not found")
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, newsclip.Errorf(newsclip.EEXTRACTION, "body not found")
	}

	return &newsclip.ExtractResult{
		Title:      article.Title,
		Author:     article.Byline,
		Press:      article.SiteName,
		DateLayout: newsclip.DateRaw,
		Body:       article.TextContent,
	}, nil
}
