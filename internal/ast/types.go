package ast

import (
	"slices"
	"strings"
)

// Type is the declared type of an Arg: a *PrimitiveType, a *ClassType or
// an *ArrayType.
type Type interface {
	isType()
	// String renders the type in source syntax.
	String() string
}

// PrimitiveKind enumerates the primitive value types.
type PrimitiveKind uint8

const (
	Boolean PrimitiveKind = iota
	Byte
	Char
	Double
	Float
	Int
	Long
	Short
)

var primitiveNames = [...]string{
	Boolean: "boolean",
	Byte:    "byte",
	Char:    "char",
	Double:  "double",
	Float:   "float",
	Int:     "int",
	Long:    "long",
	Short:   "short",
}

func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveNames) {
		return primitiveNames[k]
	}
	return "primitive(?)"
}

// PrimitiveType is a primitive value type such as int or boolean.
type PrimitiveType struct {
	Kind PrimitiveKind
}

// ClassType is a reference type with optional type arguments.
type ClassType struct {
	Name     string
	TypeArgs []Type
}

// ArrayType is an array of Elem.
type ArrayType struct {
	Elem Type
}

func (*PrimitiveType) isType() {}
func (*ClassType) isType()     {}
func (*ArrayType) isType()     {}

func (t *PrimitiveType) String() string { return t.Kind.String() }

func (t *ClassType) String() string {
	if len(t.TypeArgs) == 0 {
		return t.Name
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteByte('<')
	for i, a := range t.TypeArgs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte('>')
	return sb.String()
}

func (t *ArrayType) String() string { return t.Elem.String() + "[]" }

// Prim is shorthand for &PrimitiveType{Kind: k}.
func Prim(k PrimitiveKind) *PrimitiveType { return &PrimitiveType{Kind: k} }

// Class is shorthand for a ClassType.
func Class(name string, args ...Type) *ClassType {
	return &ClassType{Name: name, TypeArgs: args}
}

// Array is shorthand for an ArrayType.
func Array(elem Type) *ArrayType { return &ArrayType{Elem: elem} }

// TypeEqual reports structural equality of two types.
func TypeEqual(a, b Type) bool {
	switch x := a.(type) {
	case *PrimitiveType:
		y, ok := b.(*PrimitiveType)
		return ok && x.Kind == y.Kind
	case *ClassType:
		y, ok := b.(*ClassType)
		return ok && x.Name == y.Name && slices.EqualFunc(x.TypeArgs, y.TypeArgs, TypeEqual)
	case *ArrayType:
		y, ok := b.(*ArrayType)
		return ok && TypeEqual(x.Elem, y.Elem)
	case nil:
		return b == nil
	}
	return false
}
