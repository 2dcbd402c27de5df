// Package format renders a Doc back into description-language source.
// Parsing the output of Print yields a Doc equal to the input.
package format

import (
	"strings"

	"adtc/internal/ast"
)

// Print returns the canonical rendering of doc.
func Print(doc *ast.Doc) string {
	var sb strings.Builder
	if doc.Package != "" {
		sb.WriteString("package ")
		sb.WriteString(doc.Package)
		sb.WriteString("\n\n")
	}
	if len(doc.Imports) > 0 {
		for _, imp := range doc.Imports {
			sb.WriteString("import ")
			sb.WriteString(imp)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	for _, dt := range doc.DataTypes {
		writeDataType(&sb, dt)
	}
	return sb.String()
}

// DataType renders a single data type declaration.
func DataType(dt *ast.DataType) string {
	var sb strings.Builder
	writeDataType(&sb, dt)
	return sb.String()
}

// Constructor renders a constructor as it appears in a declaration.
func Constructor(c *ast.Constructor) string {
	var sb strings.Builder
	writeConstructor(&sb, c)
	return sb.String()
}

func writeDataType(sb *strings.Builder, dt *ast.DataType) {
	sb.WriteString(dt.Name)
	if len(dt.TypeParams) > 0 {
		sb.WriteByte('<')
		sb.WriteString(strings.Join(dt.TypeParams, ", "))
		sb.WriteByte('>')
	}
	sb.WriteString(" =\n")
	for i, c := range dt.Constructors {
		if i == 0 {
			sb.WriteString("    ")
		} else {
			sb.WriteString("  | ")
		}
		writeConstructor(sb, c)
		sb.WriteByte('\n')
	}
}

func writeConstructor(sb *strings.Builder, c *ast.Constructor) {
	sb.WriteString(c.Name)
	if len(c.Args) == 0 {
		return
	}
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Type.String())
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
	}
	sb.WriteByte(')')
}
