package java

import (
	"adtc/internal/ast"
)

// ConstructorEmitter writes the per-constructor pieces of a data type.
// Output carries no trailing newline.
type ConstructorEmitter interface {
	// Factory writes the static factory placed on a variant base class.
	Factory(s *Sink, dataTypeName string, typeParams []string, c *ast.Constructor)
	// ConstructorFactory writes the factory of a record class: it is named
	// after c and builds an instance of className.
	ConstructorFactory(s *Sink, className string, typeParams []string, c *ast.Constructor)
	// Declaration writes the nested subclass implementing c.
	Declaration(s *Sink, dataTypeName string, typeParams []string, c *ast.Constructor)
}

// StandardConstructorEmitter is the production ConstructorEmitter.
type StandardConstructorEmitter struct {
	body ClassBodyEmitter
}

func NewConstructorEmitter(body ClassBodyEmitter) *StandardConstructorEmitter {
	return &StandardConstructorEmitter{body: body}
}

func (e *StandardConstructorEmitter) Factory(s *Sink, dataTypeName string, typeParams []string, c *ast.Constructor) {
	writeFactory(s, dataTypeName, c.Name, typeParams, c)
}

func (e *StandardConstructorEmitter) ConstructorFactory(s *Sink, className string, typeParams []string, c *ast.Constructor) {
	writeFactory(s, className, className, typeParams, c)
}

// writeFactory writes `_<ctor>` returning resultType and building
// implType. Zero-argument constructors share one instance.
func writeFactory(s *Sink, resultType, implType string, params []string, c *ast.Constructor) {
	tp := typeParams(params)
	generic := ""
	if tp != "" {
		generic = tp + " "
	}
	if len(c.Args) == 0 {
		if tp != "" {
			s.Print("   @SuppressWarnings(\"rawtypes\")\n")
		}
		s.Print("   private static final ", resultType, " _", c.Name, " = new ", implType, "();\n")
		if tp != "" {
			s.Print("   @SuppressWarnings(\"unchecked\")\n")
		}
		s.Print("   public static final ", generic, resultType, tp, " _", c.Name, "() { return _", c.Name, "; }")
		return
	}
	s.Print("   public static final ", generic, resultType, tp, " _", c.Name, "(", argList(c.Args), ") { return new ",
		implType, tp, "(", argNames(c.Args), "); }")
}

func (e *StandardConstructorEmitter) Declaration(s *Sink, dataTypeName string, params []string, c *ast.Constructor) {
	tp := typeParams(params)
	const indent = "      "
	s.Print("   public static final class ", c.Name, tp, " extends ", dataTypeName, tp, " {\n")
	e.body.ConstructorMethod(s, indent, "", c)
	s.Print("\n\n")
	s.Print(indent, "@Override\n")
	res := resultParam(params)
	s.Print(indent, "public <", res, "> ", res, " accept(Visitor", typeParams(withResult(params)), " visitor) { return visitor.visit(this); }\n")
	s.Print("\n")
	s.Print(indent, "@Override\n")
	s.Print(indent, "public void accept(VoidVisitor", tp, " visitor) { visitor.visit(this); }\n")
	s.Print("\n")
	e.body.HashCode(s, indent, c)
	s.Print("\n\n")
	e.body.Equals(s, indent, c, params)
	s.Print("\n\n")
	e.body.ToString(s, indent, c)
	s.Print("\n\n")
	s.Print("   }")
}
