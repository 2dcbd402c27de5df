package golang

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"adtc/internal/ast"
)

var primitives = map[ast.PrimitiveKind]string{
	ast.Boolean: "bool",
	ast.Byte:    "byte",
	ast.Char:    "rune",
	ast.Double:  "float64",
	ast.Float:   "float32",
	ast.Int:     "int32",
	ast.Long:    "int64",
	ast.Short:   "int16",
}

// Reference types of the description language with a native Go form.
var classes = map[string]string{
	"String":    "string",
	"Boolean":   "bool",
	"Byte":      "byte",
	"Character": "rune",
	"Double":    "float64",
	"Float":     "float32",
	"Integer":   "int32",
	"Long":      "int64",
	"Short":     "int16",
	"Object":    "any",
}

// typeMapper renders description-language types as Go types. Fields
// naming a record type of the same document become pointers, so that
// recursive records stay finite.
type typeMapper struct {
	records map[string]bool
}

func newTypeMapper(doc *ast.Doc) typeMapper {
	m := typeMapper{records: make(map[string]bool)}
	if doc == nil {
		return m
	}
	for _, dt := range doc.DataTypes {
		if dt.IsRecord() {
			m.records[dt.Name] = true
		}
	}
	return m
}

func (m typeMapper) goType(t ast.Type) string {
	switch x := t.(type) {
	case *ast.PrimitiveType:
		return primitives[x.Kind]
	case *ast.ArrayType:
		return "[]" + m.goType(x.Elem)
	case *ast.ClassType:
		return m.classType(x)
	}
	return "any"
}

func (m typeMapper) classType(t *ast.ClassType) string {
	args := t.TypeArgs
	switch {
	case t.Name == "List" && len(args) == 1:
		return "[]" + m.goType(args[0])
	case t.Name == "Set" && len(args) == 1:
		return "map[" + m.goType(args[0]) + "]struct{}"
	case t.Name == "Map" && len(args) == 2:
		return "map[" + m.goType(args[0]) + "]" + m.goType(args[1])
	case t.Name == "Optional" && len(args) == 1:
		return "*" + m.goType(args[0])
	}
	if native, ok := classes[t.Name]; ok && len(args) == 0 {
		return native
	}
	name := t.Name
	if len(args) > 0 {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = m.goType(a)
		}
		name += "[" + strings.Join(parts, ", ") + "]"
	}
	if m.records[t.Name] {
		return "*" + name
	}
	return name
}

// exported upper-cases the first letter of name.
func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// typeParamDecl renders "[A any, B any]".
func typeParamDecl(params []string, extra ...string) string {
	all := append(append([]string{}, params...), extra...)
	if len(all) == 0 {
		return ""
	}
	parts := make([]string, len(all))
	for i, p := range all {
		parts[i] = p + " any"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgs renders "[A, B]".
func typeArgs(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "[" + strings.Join(params, ", ") + "]"
}
