package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"adtc/internal/token"
)

var punct = map[byte]token.Kind{
	'<': token.LAngle,
	'>': token.RAngle,
	'=': token.Equals,
	'(': token.LParen,
	')': token.RParen,
	',': token.Comma,
	'|': token.Bar,
	'[': token.LBracket,
	']': token.RBracket,
}

// scanWord consumes a maximal run of word bytes and classifies it:
// reserved word, identifier, dotted identifier, or Unknown.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isWordByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	return lx.make(lx.classify(text), sp, text)
}

func (lx *Lexer) classify(word string) token.Kind {
	if k, ok := lx.opts.Table.Lookup(word); ok {
		return k
	}
	if IsIdentifier(word) {
		return token.Ident
	}
	if IsDottedIdentifier(word) {
		return token.DottedIdent
	}
	return token.Unknown
}

// isWordByte reports whether b may appear inside a word. Whitespace,
// punctuation and the comment starters '/' and '*' end a word.
func isWordByte(b byte) bool {
	if isSpace(b) || b == '/' || b == '*' {
		return false
	}
	_, isPunct := punct[b]
	return !isPunct
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// IsIdentifier reports whether s is a single identifier: a letter or '_'
// followed by letters, digits or '_'.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !isIdentStartRune(r) {
				return false
			}
			continue
		}
		if !isIdentContinueRune(r) {
			return false
		}
	}
	return true
}

// IsDottedIdentifier reports whether s is two or more identifiers joined by '.'.
func IsDottedIdentifier(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts {
		if !IsIdentifier(p) {
			return false
		}
	}
	return true
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
