// Package java renders data types as Java classes: a final class for a
// single-constructor type, and for several constructors an abstract base
// class with one nested subclass per constructor and visitor interfaces
// for double dispatch.
package java

import (
	"io"
	"strings"

	"adtc/internal/ast"
	"adtc/internal/backend"
)

var keywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while",
	"true", "false", "null",
	"_",
}

// Backend is the Java back end.
type Backend struct {
	types DataTypeEmitter
}

// New returns a Java back end wired with the standard emitters.
func New() *Backend {
	body := StandardClassBodyEmitter{}
	return &Backend{types: NewDataTypeEmitter(body, NewConstructorEmitter(body))}
}

func (*Backend) Name() string { return "java" }

func (*Backend) FileExtension() string { return ".java" }

func (*Backend) ReservedWords() []string {
	return append([]string(nil), keywords...)
}

// Header renders the package clause, the imports and the provenance
// comment shared by every class generated from doc.
func (*Backend) Header(doc *ast.Doc, info backend.HeaderInfo) string {
	var sb strings.Builder
	if doc.Package != "" {
		sb.WriteString("package " + doc.Package + ";\n\n")
	}
	if len(doc.Imports) > 0 {
		for _, imp := range doc.Imports {
			sb.WriteString("import " + imp + ";\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("/*\n")
	sb.WriteString(info.Provenance)
	sb.WriteString("\n*/\n")
	return sb.String()
}

func (b *Backend) EmitDataType(w io.Writer, _ *ast.Doc, dt *ast.DataType, header string) error {
	return b.types.Emit(w, dt, header)
}

var _ backend.Backend = (*Backend)(nil)
