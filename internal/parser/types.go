package parser

import (
	"adtc/internal/ast"
	"adtc/internal/token"
)

var primitiveKinds = map[token.Kind]ast.PrimitiveKind{
	token.KwBoolean: ast.Boolean,
	token.KwByte:    ast.Byte,
	token.KwChar:    ast.Char,
	token.KwDouble:  ast.Double,
	token.KwFloat:   ast.Float,
	token.KwInt:     ast.Int,
	token.KwLong:    ast.Long,
	token.KwShort:   ast.Short,
}

// Type := ( Primitive | Ident [ "<" Type { "," Type } ">" ] ) { "[" "]" }
func (p *Parser) parseType() (ast.Type, bool) {
	var typ ast.Type
	if kind, ok := primitiveKinds[p.lx.Peek()]; ok {
		p.lx.Next()
		typ = ast.Prim(kind)
	} else {
		name, ok := p.expectIdent("a type")
		if !ok {
			return nil, false
		}
		args := make([]ast.Type, 0)
		if p.lx.Accept(token.LAngle) {
			for {
				arg, ok := p.parseType()
				if !ok {
					return nil, false
				}
				args = append(args, arg)
				if !p.lx.Accept(token.Comma) {
					break
				}
			}
			if !p.expect(token.RAngle, token.Comma) {
				return nil, false
			}
		}
		typ = &ast.ClassType{Name: name, TypeArgs: args}
	}

	for p.lx.Accept(token.LBracket) {
		if !p.expect(token.RBracket) {
			return nil, false
		}
		typ = ast.Array(typ)
	}
	return typ, true
}
