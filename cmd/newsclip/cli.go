package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/crhub/newsclip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper newsclip.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"NEWSCLIP_VERBOSE" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract articles from news URLs"`
	Sources SourcesCmd `cmd:"" help:"List supported news sources"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Article URLs (shortened links are followed)"`
	Format      string        `short:"f" enum:"text,json,yaml" default:"text" env:"NEWSCLIP_FORMAT" help:"Output format (text, json, yaml)"`
	Concurrency int           `short:"c" default:"4" env:"NEWSCLIP_CONCURRENCY" help:"Concurrent extraction limit"`
	Timeout     time.Duration `short:"t" default:"10s" env:"NEWSCLIP_TIMEOUT" help:"Timeout per HTTP request"`
	UserAgent   string        `default:"${user_agent}" env:"NEWSCLIP_USER_AGENT" help:"User-Agent header sent to news sites"`
	StrictHost  bool          `help:"Match source domains against the URL host only"`
	Generic     string        `enum:"none,trafilatura,readability" default:"none" env:"NEWSCLIP_GENERIC" help:"Generic extractor for unsupported sites (none, trafilatura, readability)"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}
