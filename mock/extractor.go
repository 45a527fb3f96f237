package mock

import "github.com/crhub/newsclip"

var _ newsclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsclip.Extractor.
type Extractor struct {
	NameFn    func() string
	ExtractFn func(html string) (*newsclip.ExtractResult, error)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.ExtractFn(html)
}
