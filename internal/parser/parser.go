package parser

import (
	"adtc/internal/ast"
	"adtc/internal/lexer"
	"adtc/internal/token"
)

// Parser holds the state of one parse.
type Parser struct {
	lx  *lexer.Lexer
	err *SyntaxError
}

// Parse consumes lx to the end of input and returns the Doc it describes.
// The returned error, when non-nil, is a *SyntaxError.
func Parse(lx *lexer.Lexer) (*ast.Doc, error) {
	p := &Parser{lx: lx}
	doc := p.parseDoc()
	if p.err != nil {
		return nil, p.err
	}
	return doc, nil
}

// Doc := [ "package" Name ] { "import" Name } { DataType } EOF
func (p *Parser) parseDoc() *ast.Doc {
	pkg := ""
	if p.lx.Accept(token.KwPackage) {
		name, ok := p.expectName("a package name")
		if !ok {
			return nil
		}
		pkg = name
	}

	imports := make([]string, 0)
	for p.lx.Accept(token.KwImport) {
		name, ok := p.expectName("an import name")
		if !ok {
			return nil
		}
		imports = append(imports, name)
	}

	dataTypes := make([]*ast.DataType, 0)
	for !p.at(token.EOF) {
		dt, ok := p.parseDataType()
		if !ok {
			return nil
		}
		dataTypes = append(dataTypes, dt)
	}
	return ast.NewDoc(p.lx.SrcInfo(), pkg, imports, dataTypes)
}

// DataType := Ident [ "<" Ident { "," Ident } ">" ] "=" Ctor { "|" Ctor }
func (p *Parser) parseDataType() (*ast.DataType, bool) {
	name, ok := p.expectIdent("a data type name")
	if !ok {
		return nil, false
	}

	params := make([]string, 0)
	if p.lx.Accept(token.LAngle) {
		for {
			param, ok := p.expectIdent("a type parameter name")
			if !ok {
				return nil, false
			}
			params = append(params, param)
			if !p.lx.Accept(token.Comma) {
				break
			}
		}
		if !p.expect(token.RAngle, token.Comma) {
			return nil, false
		}
	}

	if !p.expect(token.Equals) {
		return nil, false
	}

	ctors := make([]*ast.Constructor, 0, 1)
	for {
		c, ok := p.parseConstructor()
		if !ok {
			return nil, false
		}
		ctors = append(ctors, c)
		if !p.lx.Accept(token.Bar) {
			break
		}
	}
	return &ast.DataType{Name: name, TypeParams: params, Constructors: ctors}, true
}

// Ctor := Ident [ "(" Arg { "," Arg } ")" ]
func (p *Parser) parseConstructor() (*ast.Constructor, bool) {
	name, ok := p.expectIdent("a constructor name")
	if !ok {
		return nil, false
	}
	args := make([]*ast.Arg, 0)
	if p.lx.Accept(token.LParen) {
		for {
			arg, ok := p.parseArg()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !p.lx.Accept(token.Comma) {
				break
			}
		}
		if !p.expect(token.RParen, token.Comma) {
			return nil, false
		}
	}
	return &ast.Constructor{Name: name, Args: args}, true
}

// Arg := Type Ident
func (p *Parser) parseArg() (*ast.Arg, bool) {
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.expectIdent("an argument name")
	if !ok {
		return nil, false
	}
	return &ast.Arg{Type: typ, Name: name}, true
}
