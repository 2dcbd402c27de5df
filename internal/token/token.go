package token

import (
	"adtc/internal/source"
)

// EOFText is the literal text reported for the end of input.
const EOFText = "<EOF>"

// Token represents a single classified lexical unit.
type Token struct {
	Kind Kind
	Text string
	Line int // 1-based line on which the token ended
	Col  int // 1-based column of the first character
	Span source.Span
}

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
