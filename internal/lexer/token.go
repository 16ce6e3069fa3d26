// Package lexer splits METAR and TAF report text into tokens.
package lexer

import (
	"fmt"

	"github.com/gometar/gometar/internal/types"
)

// Token is a token with kind, text and source span.
type Token struct {
	Kind TokenKind
	Text string
	Span types.Span
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// TokWord is a run of non-delimiter characters.
	TokWord TokenKind = iota
	// TokEnd is returned at the end-of-report marker and at end of input.
	// Once returned, it is returned forever.
	TokEnd
)

func (k TokenKind) String() string {
	switch k {
	case TokWord:
		return "word"
	case TokEnd:
		return "end"
	default:
		return fmt.Sprintf("TokenKind(%d)", k)
	}
}
