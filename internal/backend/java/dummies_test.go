package java

import (
	"strings"

	"adtc/internal/ast"
)

// dummyClassBodyEmitter marks where each class body member would go.
type dummyClassBodyEmitter struct{}

func (dummyClassBodyEmitter) ConstructorMethod(s *Sink, _, _ string, c *ast.Constructor) {
	s.Print("/* constructor method ", c.Name, "*/")
}

func (dummyClassBodyEmitter) HashCode(s *Sink, _ string, c *ast.Constructor) {
	s.Print("/* hashCode method ", c.Name, "*/")
}

func (dummyClassBodyEmitter) Equals(s *Sink, _ string, c *ast.Constructor, _ []string) {
	s.Print("/* equals method ", c.Name, "*/")
}

func (dummyClassBodyEmitter) ToString(s *Sink, _ string, c *ast.Constructor) {
	s.Print("/* toString method ", c.Name, "*/")
}

// dummyConstructorEmitter marks where each constructor piece would go.
type dummyConstructorEmitter struct{}

func (dummyConstructorEmitter) Factory(s *Sink, dataTypeName string, _ []string, c *ast.Constructor) {
	s.Print("/* factory ", dataTypeName, " ", c.Name, " */")
}

func (dummyConstructorEmitter) ConstructorFactory(s *Sink, className string, _ []string, c *ast.Constructor) {
	s.Print("/* constructor factory ", className, " ", c.Name, " */")
}

func (dummyConstructorEmitter) Declaration(s *Sink, dataTypeName string, _ []string, c *ast.Constructor) {
	s.Print("/* declaration ", dataTypeName, " ", c.Name, " */")
}

func fooBar() *ast.DataType {
	return &ast.DataType{Name: "FooBar", Constructors: []*ast.Constructor{
		{Name: "Foo", Args: []*ast.Arg{
			{Type: ast.Class("Integer"), Name: "yeah"},
			{Type: ast.Class("String"), Name: "hmmm"},
		}},
		{Name: "Bar"},
	}}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
