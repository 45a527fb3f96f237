package mock

import "github.com/crhub/newsclip"

var _ newsclip.SourceMatcher = (*SourceMatcher)(nil)

// SourceMatcher is a mock implementation of newsclip.SourceMatcher.
type SourceMatcher struct {
	MatchFn   func(url string) (newsclip.Source, error)
	DomainsFn func() []string
}

func (m *SourceMatcher) Match(url string) (newsclip.Source, error) {
	return m.MatchFn(url)
}

func (m *SourceMatcher) Domains() []string {
	return m.DomainsFn()
}
