// Package golang renders data types as Go source: a struct for a
// single-constructor type, and for several constructors a sealed
// interface, one struct per constructor and an exhaustive Match helper.
package golang

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"

	"adtc/internal/ast"
	"adtc/internal/backend"
)

// DefaultPackage names the package of documents that declare none.
const DefaultPackage = "adt"

var keywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",

	// Predeclared types and constants: a declaration spelled like one of
	// them would hide it from the generated code.
	"any", "bool", "byte", "comparable", "complex64", "complex128", "error",
	"float32", "float64", "int", "int8", "int16", "int32", "int64", "rune",
	"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	"true", "false", "iota", "nil",
	"_",
}

// Backend is the Go back end.
type Backend struct {
	pkg string
}

// New returns a Go back end. pkg overrides the package clause of documents
// without a package declaration; "" selects DefaultPackage.
func New(pkg string) *Backend {
	if pkg == "" {
		pkg = DefaultPackage
	}
	return &Backend{pkg: pkg}
}

func (*Backend) Name() string { return "go" }

func (*Backend) FileExtension() string { return ".go" }

func (*Backend) ReservedWords() []string {
	return append([]string(nil), keywords...)
}

// PackageName returns the package clause used for doc.
func (b *Backend) PackageName(doc *ast.Doc) string {
	if doc.Package == "" {
		return b.pkg
	}
	return doc.Package[strings.LastIndexByte(doc.Package, '.')+1:]
}

// Header renders the generated-code banner, the package clause and the
// provenance comment. Declared imports are kept in the provenance only:
// declared types cannot reference them by package.
func (b *Backend) Header(doc *ast.Doc, info backend.HeaderInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by adtc %s from %s. DO NOT EDIT.\n\n", info.Version, doc.SrcInfo)
	fmt.Fprintf(&sb, "package %s\n\n", b.PackageName(doc))
	sb.WriteString("/*\n")
	sb.WriteString(info.Provenance)
	sb.WriteString("\n*/\n")
	return sb.String()
}

// EmitDataType renders dt after header and writes the gofmt-formatted
// result.
func (b *Backend) EmitDataType(w io.Writer, doc *ast.Doc, dt *ast.DataType, header string) error {
	var body bytes.Buffer
	r := renderer{buf: &body, types: newTypeMapper(doc)}
	if dt.IsRecord() {
		r.record(dt)
	} else {
		r.variant(dt)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if r.needFmt {
		buf.WriteString("\nimport \"fmt\"\n")
	}
	buf.Write(body.Bytes())

	src, err := imports.Process(dt.Name+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return errors.Wrapf(err, "formatting generated Go for %s", dt.Name)
	}
	_, err = w.Write(src)
	return err
}

var _ backend.Backend = (*Backend)(nil)
