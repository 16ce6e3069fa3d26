// Package gometar decodes METAR and TAF aviation weather reports into
// typed groups.
//
// Decoding never fails. A report that does not follow the METAR or TAF
// grammar carries a ReportError in its metadata, and text that is not
// recognized is kept verbatim as unknown groups:
//
//	r := gometar.Parse("METAR EGLL 121050Z 27005KT 9999 BKN020 18/12 Q1013")
//	for _, gi := range r.Groups {
//	    fmt.Println(gi.Raw, gometar.Describe(gi))
//	}
package gometar

import (
	"errors"
	"log/slog"

	"github.com/gometar/gometar/internal/lexer"
	"github.com/gometar/gometar/internal/parser"
)

// ErrNoSources is returned when ParseSource is called with no source.
var ErrNoSources = errors.New("no report sources provided")

// ErrEmptyInput is returned when input text holds no report.
var ErrEmptyInput = errors.New("no reports in input")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-token logging (tokens, group kinds, state transitions).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// DefaultGroupLimit is the number of tokens decoded before a report is
// rejected with ErrorReportTooLarge.
const DefaultGroupLimit = parser.DefaultGroupLimit

// ParseOption configures Parse, ParseAll and ParseSource.
type ParseOption func(*parseConfig)

type parseConfig struct {
	logger     *slog.Logger
	groupLimit int
	lexOpts    []lexer.Option
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{groupLimit: DefaultGroupLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) { c.logger = logger }
}

// WithGroupLimit sets the maximum number of tokens decoded per report.
// Values of zero or less select DefaultGroupLimit.
func WithGroupLimit(n int) ParseOption {
	return func(c *parseConfig) {
		if n <= 0 {
			n = DefaultGroupLimit
		}
		c.groupLimit = n
	}
}

// WithEndMarker replaces '=' as the character that ends a report.
func WithEndMarker(b byte) ParseOption {
	return func(c *parseConfig) { c.lexOpts = append(c.lexOpts, lexer.WithEndMarker(b)) }
}

// WithDelimiters adds token separators besides whitespace and control
// characters.
func WithDelimiters(chars string) ParseOption {
	return func(c *parseConfig) { c.lexOpts = append(c.lexOpts, lexer.WithDelimiters(chars)) }
}

// Parse decodes one METAR or TAF report. Text after the end marker is
// ignored.
func Parse(text string, opts ...ParseOption) Result {
	cfg := newParseConfig(opts)
	return parse(text, cfg)
}

func parse(text string, cfg parseConfig) Result {
	p := parser.New(text, cfg.logger, cfg.groupLimit, cfg.lexOpts...)
	return p.Parse()
}
