package java

import (
	"strings"

	"adtc/internal/ast"
)

// ClassBodyEmitter writes the members shared by record classes and
// variant subclasses. Output carries no trailing newline.
type ClassBodyEmitter interface {
	// ConstructorMethod writes the fields of c and a constructor named
	// after c. modifiers precede the constructor, e.g. "public ".
	ConstructorMethod(s *Sink, indent, modifiers string, c *ast.Constructor)
	HashCode(s *Sink, indent string, c *ast.Constructor)
	Equals(s *Sink, indent string, c *ast.Constructor, typeParams []string)
	ToString(s *Sink, indent string, c *ast.Constructor)
}

// StandardClassBodyEmitter is the production ClassBodyEmitter.
type StandardClassBodyEmitter struct{}

func (StandardClassBodyEmitter) ConstructorMethod(s *Sink, indent, modifiers string, c *ast.Constructor) {
	for _, a := range c.Args {
		s.Print(indent, "public final ", typeName(a.Type), " ", a.Name, ";\n")
	}
	if len(c.Args) > 0 {
		s.Print("\n")
	}
	s.Print(indent, modifiers, c.Name, "(", argList(c.Args), ") {\n")
	for _, a := range c.Args {
		s.Print(indent, "   this.", a.Name, " = ", a.Name, ";\n")
	}
	s.Print(indent, "}")
}

func (StandardClassBodyEmitter) HashCode(s *Sink, indent string, c *ast.Constructor) {
	s.Print(indent, "@Override\n")
	s.Print(indent, "public int hashCode() {\n")
	body := indent + "   "
	if len(c.Args) == 0 {
		s.Print(body, "return 0;\n")
	} else {
		s.Print(body, "final int prime = 31;\n")
		s.Print(body, "int result = 1;\n")
		for _, a := range c.Args {
			s.Print(body, "result = prime * result + ", fieldHash(a), ";\n")
		}
		s.Print(body, "return result;\n")
	}
	s.Print(indent, "}")
}

// field qualifies a field read so that locals of the generated methods
// (obj, other, prime, result) cannot shadow it.
func field(a *ast.Arg) string { return "this." + a.Name }

func fieldHash(a *ast.Arg) string {
	n := field(a)
	switch t := a.Type.(type) {
	case *ast.PrimitiveType:
		switch t.Kind {
		case ast.Boolean:
			return "(" + n + " ? 1231 : 1237)"
		case ast.Long:
			return "(int)(" + n + " ^ (" + n + " >>> 32))"
		case ast.Double:
			bits := "Double.doubleToLongBits(" + n + ")"
			return "(int)(" + bits + " ^ (" + bits + " >>> 32))"
		case ast.Float:
			return "Float.floatToIntBits(" + n + ")"
		default:
			return n
		}
	case *ast.ArrayType:
		return arraysCall(t, "hashCode") + "(" + n + ")"
	default:
		return "((" + n + " == null) ? 0 : " + n + ".hashCode())"
	}
}

// arraysCall picks the java.util.Arrays helper for t: the plain form for
// arrays of primitives, the deep form otherwise.
func arraysCall(t *ast.ArrayType, op string) string {
	if _, ok := t.Elem.(*ast.PrimitiveType); ok {
		return "java.util.Arrays." + op
	}
	return "java.util.Arrays.deep" + strings.ToUpper(op[:1]) + op[1:]
}

func (StandardClassBodyEmitter) Equals(s *Sink, indent string, c *ast.Constructor, typeParams []string) {
	body := indent + "   "
	s.Print(indent, "@Override\n")
	s.Print(indent, "public boolean equals(Object obj) {\n")
	s.Print(body, "if (this == obj) return true;\n")
	s.Print(body, "if (obj == null) return false;\n")
	s.Print(body, "if (getClass() != obj.getClass()) return false;\n")
	if len(c.Args) > 0 {
		if len(typeParams) > 0 {
			s.Print(body, "@SuppressWarnings(\"rawtypes\")\n")
		}
		s.Print(body, c.Name, " other = (", c.Name, ")obj;\n")
		for _, a := range c.Args {
			writeFieldEquals(s, body, a)
		}
	}
	s.Print(body, "return true;\n")
	s.Print(indent, "}")
}

func writeFieldEquals(s *Sink, indent string, a *ast.Arg) {
	n, o := field(a), "other."+a.Name
	switch t := a.Type.(type) {
	case *ast.PrimitiveType:
		switch t.Kind {
		case ast.Double:
			s.Print(indent, "if (Double.doubleToLongBits(", n, ") != Double.doubleToLongBits(", o, ")) return false;\n")
		case ast.Float:
			s.Print(indent, "if (Float.floatToIntBits(", n, ") != Float.floatToIntBits(", o, ")) return false;\n")
		default:
			s.Print(indent, "if (", n, " != ", o, ") return false;\n")
		}
	case *ast.ArrayType:
		s.Print(indent, "if (!", arraysCall(t, "equals"), "(", n, ", ", o, ")) return false;\n")
	default:
		s.Print(indent, "if (", n, " == null) {\n")
		s.Print(indent, "   if (", o, " != null) return false;\n")
		s.Print(indent, "} else if (!", n, ".equals(", o, ")) return false;\n")
	}
}

func (StandardClassBodyEmitter) ToString(s *Sink, indent string, c *ast.Constructor) {
	s.Print(indent, "@Override\n")
	s.Print(indent, "public String toString() {\n")
	s.Print(indent, "   return \"", c.Name)
	if len(c.Args) > 0 {
		for i, a := range c.Args {
			sep := ", "
			if i == 0 {
				sep = "("
			}
			s.Print(sep, a.Name, " = \" + ", fieldString(a), " + \"")
		}
		s.Print(")")
	}
	s.Print("\";\n")
	s.Print(indent, "}")
}

func fieldString(a *ast.Arg) string {
	if t, ok := a.Type.(*ast.ArrayType); ok {
		return arraysCall(t, "toString") + "(" + field(a) + ")"
	}
	return field(a)
}
