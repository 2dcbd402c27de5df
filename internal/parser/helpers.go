package parser

import (
	"strings"

	"adtc/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek() == k
}

// expect consumes a token of kind k or records a syntax error naming the
// alternatives that could also have appeared there, followed by k.
func (p *Parser) expect(k token.Kind, alternatives ...token.Kind) bool {
	if p.lx.Accept(k) {
		return true
	}
	p.fail(describe(append(alternatives, k)...))
	return false
}

// describe joins the descriptions of kinds: "',' or '>'".
func describe(kinds ...token.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.Describe()
	}
	return strings.Join(parts, " or ")
}

func (p *Parser) expectIdent(what string) (string, bool) {
	if !p.at(token.Ident) {
		p.fail(what)
		return "", false
	}
	return p.lx.Next().Text, true
}

// expectName accepts a plain or dotted identifier.
func (p *Parser) expectName(what string) (string, bool) {
	if !p.at(token.Ident) && !p.at(token.DottedIdent) {
		p.fail(what)
		return "", false
	}
	return p.lx.Next().Text, true
}

func (p *Parser) fail(expected string) {
	if p.err != nil {
		return
	}
	tok := p.lx.PeekToken()
	p.err = &SyntaxError{
		SrcInfo:  p.lx.SrcInfo(),
		Line:     tok.Line,
		Col:      tok.Col,
		Expected: expected,
		Found:    describeFound(tok),
		Span:     tok.Span,
	}
}

func describeFound(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return token.EOFText
	case token.Reserved:
		return "reserved word '" + tok.Text + "'"
	default:
		return "'" + tok.Text + "'"
	}
}
