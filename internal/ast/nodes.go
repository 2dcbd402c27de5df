package ast

import "slices"

// Doc is the root of one parsed source.
type Doc struct {
	SrcInfo   string // opaque source identifier for diagnostics and provenance
	Package   string // "" when the source declares no package
	Imports   []string
	DataTypes []*DataType
}

// DataType is a named sum type.
type DataType struct {
	Name         string
	TypeParams   []string
	Constructors []*Constructor
}

// Constructor is one named variant of a DataType.
type Constructor struct {
	Name string
	Args []*Arg
}

// Arg is one field of a Constructor.
type Arg struct {
	Type Type
	Name string
}

// NewDoc builds a Doc, normalizing nil slices to empty ones.
func NewDoc(srcInfo, pkg string, imports []string, dataTypes []*DataType) *Doc {
	if imports == nil {
		imports = []string{}
	}
	if dataTypes == nil {
		dataTypes = []*DataType{}
	}
	return &Doc{SrcInfo: srcInfo, Package: pkg, Imports: imports, DataTypes: dataTypes}
}

// QualifiedName returns pkg.Name, or Name when the Doc has no package.
func (d *Doc) QualifiedName(dt *DataType) string {
	if d.Package == "" {
		return dt.Name
	}
	return d.Package + "." + dt.Name
}

// Equal reports structural equality. SrcInfo is ignored.
func (d *Doc) Equal(o *Doc) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Package == o.Package &&
		slices.Equal(d.Imports, o.Imports) &&
		slices.EqualFunc(d.DataTypes, o.DataTypes, (*DataType).Equal)
}

// IsRecord reports whether the data type has exactly one constructor.
func (dt *DataType) IsRecord() bool {
	return len(dt.Constructors) == 1
}

func (dt *DataType) Equal(o *DataType) bool {
	if dt == nil || o == nil {
		return dt == o
	}
	return dt.Name == o.Name &&
		slices.Equal(dt.TypeParams, o.TypeParams) &&
		slices.EqualFunc(dt.Constructors, o.Constructors, (*Constructor).Equal)
}

func (c *Constructor) Equal(o *Constructor) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Name == o.Name && slices.EqualFunc(c.Args, o.Args, (*Arg).Equal)
}

func (a *Arg) Equal(o *Arg) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.Name == o.Name && TypeEqual(a.Type, o.Type)
}
