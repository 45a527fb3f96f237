package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/crhub/newsclip"
)

// Ensure LoggingScraper implements newsclip.Scraper.
var _ newsclip.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging. Failures are logged at warn
// level with their error code.
type LoggingScraper struct {
	next   newsclip.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next newsclip.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (article *newsclip.Article, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Warn("scrape failed",
				"url", url,
				"code", newsclip.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("scrape",
			"url", url,
			"final_url", article.OriginalURL,
			"title", truncate(article.Title, 30),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
