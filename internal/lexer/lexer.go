package lexer

import (
	"log/slog"
	"strings"

	"github.com/gometar/gometar/internal/types"
)

// DefaultEndMarker terminates a report; text after it is never tokenized.
const DefaultEndMarker = '='

// Option configures a Lexer.
type Option func(*Lexer)

// WithEndMarker replaces the end-of-report marker.
func WithEndMarker(b byte) Option {
	return func(l *Lexer) { l.endMarker = b }
}

// WithDelimiters adds characters that separate tokens in addition to
// whitespace and ASCII control characters.
func WithDelimiters(chars string) Option {
	return func(l *Lexer) { l.extraDelims = chars }
}

// Lexer tokenizes one report. It is single-use: once TokEnd has been
// returned, every later call returns TokEnd again.
type Lexer struct {
	source      string
	pos         int
	done        bool
	endMarker   byte
	extraDelims string
	types.Logger
}

// New returns a Lexer over the given report text.
func New(source string, logger *slog.Logger, opts ...Option) *Lexer {
	l := &Lexer{
		source:    source,
		endMarker: DefaultEndMarker,
		Logger:    types.Logger{L: logger},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Tokenize consumes the report and returns all word tokens followed by a
// single TokEnd.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, max(len(l.source)/6, 16))
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEnd {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete", slog.Int("tokens", len(tokens)))
	return tokens
}

// NextToken advances the lexer and returns the next token.
func (l *Lexer) NextToken() Token {
	if l.done {
		return l.endToken()
	}
	l.skipDelimiters()
	start := l.pos
	for l.pos < len(l.source) {
		b := l.source[l.pos]
		if b == l.endMarker || l.isDelimiter(b) {
			break
		}
		l.pos++
	}
	if l.pos == start {
		// end of input or the end marker
		l.done = true
		return l.endToken()
	}
	tok := Token{
		Kind: TokWord,
		Text: l.source[start:l.pos],
		Span: types.NewSpan(types.ByteOffset(start), types.ByteOffset(l.pos)),
	}
	l.traceToken(tok)
	return tok
}

func (l *Lexer) endToken() Token {
	off := types.ByteOffset(l.pos)
	return Token{Kind: TokEnd, Span: types.NewSpan(off, off)}
}

func (l *Lexer) traceToken(tok Token) {
	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("text", tok.Text),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
}

func (l *Lexer) skipDelimiters() {
	for l.pos < len(l.source) && l.source[l.pos] != l.endMarker && l.isDelimiter(l.source[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) isDelimiter(b byte) bool {
	if b <= ' ' || b == 0x7f {
		return true
	}
	return l.extraDelims != "" && strings.IndexByte(l.extraDelims, b) >= 0
}
