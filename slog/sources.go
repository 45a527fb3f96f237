package slog

import (
	"log/slog"

	"github.com/crhub/newsclip"
)

// Ensure LoggingSourceMatcher implements newsclip.SourceMatcher.
var _ newsclip.SourceMatcher = (*LoggingSourceMatcher)(nil)

// LoggingSourceMatcher wraps a SourceMatcher with logging of the matched domain.
type LoggingSourceMatcher struct {
	next   newsclip.SourceMatcher
	logger *slog.Logger
}

// NewLoggingSourceMatcher creates a new LoggingSourceMatcher.
func NewLoggingSourceMatcher(next newsclip.SourceMatcher, logger *slog.Logger) *LoggingSourceMatcher {
	return &LoggingSourceMatcher{next: next, logger: logger}
}

// Match delegates to the wrapped matcher and logs the selected source.
func (m *LoggingSourceMatcher) Match(url string) (newsclip.Source, error) {
	src, err := m.next.Match(url)
	if err != nil {
		m.logger.Debug("source match", "url", url, "err", err)
		return src, err
	}
	m.logger.Debug("source match",
		"url", url,
		"domain", src.Domain,
		"extractor", src.Extractor.Name(),
	)
	return src, nil
}

// Domains delegates to the wrapped matcher.
func (m *LoggingSourceMatcher) Domains() []string {
	return m.next.Domains()
}
