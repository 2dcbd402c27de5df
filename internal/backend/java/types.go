package java

import (
	"slices"
	"strconv"
	"strings"

	"adtc/internal/ast"
)

var boxed = map[ast.PrimitiveKind]string{
	ast.Boolean: "Boolean",
	ast.Byte:    "Byte",
	ast.Char:    "Character",
	ast.Double:  "Double",
	ast.Float:   "Float",
	ast.Int:     "Integer",
	ast.Long:    "Long",
	ast.Short:   "Short",
}

// typeName renders t as a Java type. Primitives inside type arguments are
// boxed, since Java generics only accept reference types.
func typeName(t ast.Type) string {
	var sb strings.Builder
	writeType(&sb, t, false)
	return sb.String()
}

func writeType(sb *strings.Builder, t ast.Type, generic bool) {
	switch x := t.(type) {
	case *ast.PrimitiveType:
		if generic {
			sb.WriteString(boxed[x.Kind])
		} else {
			sb.WriteString(x.Kind.String())
		}
	case *ast.ClassType:
		sb.WriteString(x.Name)
		if len(x.TypeArgs) > 0 {
			sb.WriteByte('<')
			for i, a := range x.TypeArgs {
				if i > 0 {
					sb.WriteString(", ")
				}
				writeType(sb, a, true)
			}
			sb.WriteByte('>')
		}
	case *ast.ArrayType:
		writeType(sb, x.Elem, false)
		sb.WriteString("[]")
	}
}

// typeParams renders "<A, B>", or "" for an empty list.
func typeParams(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "<" + strings.Join(params, ", ") + ">"
}

// resultParam names the visitor result parameter: ResultType, numbered
// when a type parameter of the data type already uses that name.
func resultParam(params []string) string {
	name := "ResultType"
	for i := 1; slices.Contains(params, name); i++ {
		name = "ResultType" + strconv.Itoa(i)
	}
	return name
}

// withResult appends the visitor result parameter to params.
func withResult(params []string) []string {
	out := make([]string, 0, len(params)+1)
	out = append(out, params...)
	return append(out, resultParam(params))
}

// argList renders "Integer yeah, String hmmm".
func argList(args []*ast.Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = typeName(a.Type) + " " + a.Name
	}
	return strings.Join(parts, ", ")
}

// argNames renders "yeah, hmmm".
func argNames(args []*ast.Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name
	}
	return strings.Join(parts, ", ")
}
