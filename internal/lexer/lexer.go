package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"adtc/internal/source"
	"adtc/internal/token"
)

// Lexer turns the content of one source file into classified tokens.
// It keeps a single token of lookahead so the parser can Peek and Accept
// without consuming input.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
	last   token.Token  // most recently scanned token, lookahead included
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		last:   token.Token{Kind: token.Unknown, Line: 1},
	}
}

// SrcInfo returns the identifier of the source being tokenized.
func (lx *Lexer) SrcInfo() string {
	return lx.file.Path
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	tok := lx.scan()
	lx.last = tok
	return tok
}

// PeekToken returns the next token without consuming it.
func (lx *Lexer) PeekToken() token.Token {
	if lx.look == nil {
		t := lx.scan()
		lx.last = t
		lx.look = &t
	}
	return *lx.look
}

// Peek returns the kind of the next token without consuming it.
func (lx *Lexer) Peek() token.Kind {
	return lx.PeekToken().Kind
}

// Accept consumes the next token and returns true if it has the expected
// kind; otherwise the stream is left untouched.
func (lx *Lexer) Accept(expected token.Kind) bool {
	if lx.Peek() != expected {
		return false
	}
	lx.Next()
	return true
}

// LastSymbol returns the text of the most recently scanned token.
func (lx *Lexer) LastSymbol() string {
	return lx.last.Text
}

// Lineno returns the line of the most recently scanned token.
func (lx *Lexer) Lineno() int {
	return lx.last.Line
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(lx.cursor.Mark())
		return lx.make(token.EOF, sp, token.EOFText)
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	if k, ok := punct[ch]; ok {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return lx.make(k, sp, string(ch))
	}
	if ch == '/' || ch == '*' {
		// not a comment: skipTrivia already consumed those
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return lx.make(token.Unknown, sp, string(ch))
	}
	return lx.scanWord()
}

func (lx *Lexer) make(k token.Kind, sp source.Span, text string) token.Token {
	begin := lx.file.Position(sp.Start)
	endOff := sp.End
	if endOff > sp.Start {
		endOff--
	}
	end := lx.file.Position(endOff)
	return token.Token{
		Kind: k,
		Text: text,
		Line: toInt(end.Line),
		Col:  toInt(begin.Col),
		Span: sp,
	}
}

func toInt(v uint32) int {
	n, err := safecast.Conv[int](v)
	if err != nil {
		panic(fmt.Errorf("position overflow: %w", err))
	}
	return n
}
