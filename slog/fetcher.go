// Package slog provides log/slog decorators for newsclip services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/crhub/newsclip"
)

// Ensure LoggingFetcher implements newsclip.Fetcher.
var _ newsclip.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   newsclip.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next newsclip.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Ensure LoggingResolver implements newsclip.Resolver.
var _ newsclip.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   newsclip.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next newsclip.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the final URL.
func (r *LoggingResolver) Resolve(ctx context.Context, url string) (finalURL string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("resolve",
			"url", url,
			"final_url", finalURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, url)
}
