package newsclip

import (
	"net/url"
	"strings"
)

// Source pairs a domain with the extractor for its article pages.
type Source struct {
	Domain    string
	Extractor Extractor
}

// SourceMatcher selects the Source responsible for a URL.
type SourceMatcher interface {
	// Match returns the first Source whose domain matches the URL.
	// Returns EUNSUPPORTED, carrying every supported domain, if none match.
	Match(url string) (Source, error)

	// Domains returns the supported domains in match order.
	Domains() []string
}

var _ SourceMatcher = (*SourceMap)(nil)

// SourceMap is an ordered, read-only table of sources. The first matching
// entry wins. A SourceMap is never modified after construction and is safe
// for concurrent use.
type SourceMap struct {
	sources      []Source
	hostMatching bool
}

// SourceMapOption configures a SourceMap.
type SourceMapOption func(*SourceMap)

// WithHostMatching matches domains against the URL host (exact host or
// subdomain) instead of anywhere in the URL string. Loose containment
// matching also accepts URLs that merely mention a domain, for example in a
// query parameter.
func WithHostMatching() SourceMapOption {
	return func(m *SourceMap) {
		m.hostMatching = true
	}
}

// NewSourceMap creates a SourceMap from sources, preserving their order.
func NewSourceMap(sources []Source, opts ...SourceMapOption) *SourceMap {
	m := &SourceMap{
		sources: append([]Source(nil), sources...),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the first Source whose domain matches rawURL.
func (m *SourceMap) Match(rawURL string) (Source, error) {
	host := ""
	if m.hostMatching {
		if u, err := url.Parse(rawURL); err == nil {
			host = strings.ToLower(u.Hostname())
		}
	}

	for _, src := range m.sources {
		if m.hostMatching {
			if host != "" && (host == src.Domain || strings.HasSuffix(host, "."+src.Domain)) {
				return src, nil
			}
			continue
		}
		if strings.Contains(rawURL, src.Domain) {
			return src, nil
		}
	}

	domains := m.Domains()
	return Source{}, &Error{
		Code:    EUNSUPPORTED,
		Message: "unsupported source: " + rawURL + " (supported domains: " + strings.Join(domains, ", ") + ")",
		Domains: domains,
	}
}

// Domains returns the supported domains in match order.
func (m *SourceMap) Domains() []string {
	domains := make([]string, 0, len(m.sources))
	for _, src := range m.sources {
		domains = append(domains, src.Domain)
	}
	return domains
}

// Sources returns a copy of the table.
func (m *SourceMap) Sources() []Source {
	return append([]Source(nil), m.sources...)
}
