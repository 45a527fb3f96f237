// Package trafilatura provides a generic newsclip.Extractor for publishers
// without a dedicated selector layout.
package trafilatura

import (
	"strings"

	"github.com/crhub/newsclip"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements newsclip.Extractor at compile time.
var _ newsclip.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract articles from arbitrary pages.
// The site name is reported as the press name.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the extractor's identifier.
func (e *Extractor) Name() string {
	return "trafilatura"
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*newsclip.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsclip.Errorf(newsclip.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, newsclip.WrapError(newsclip.EEXTRACTION, err, "content extraction failed")
	}

	if strings.TrimSpace(result.Metadata.Title) == "" {
		return nil, newsclip.Errorf(newsclip.EEXTRACTION, "title not found")
	}
	if strings.TrimSpace(result.ContentText) == "" {
		return nil, newsclip.Errorf(newsclip.EEXTRACTION, "body not found")
	}

	r := &newsclip.ExtractResult{
		Title:      result.Metadata.Title,
		Author:     result.Metadata.Author,
		Press:      result.Metadata.Sitename,
		DateLayout: newsclip.DateRaw,
		Body:       result.ContentText,
	}
	if !result.Metadata.Date.IsZero() {
		r.Published = result.Metadata.Date.Format(newsclip.CanonicalDateLayout)
	}
	return r, nil
}
