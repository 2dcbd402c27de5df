package java

import (
	"io"

	"adtc/internal/ast"
)

// DataTypeEmitter renders one data type into a Java compilation unit.
type DataTypeEmitter interface {
	Emit(w io.Writer, dt *ast.DataType, header string) error
}

// StandardDataTypeEmitter picks the record strategy for single-constructor
// types and the variant strategy otherwise.
type StandardDataTypeEmitter struct {
	body  ClassBodyEmitter
	ctors ConstructorEmitter
}

func NewDataTypeEmitter(body ClassBodyEmitter, ctors ConstructorEmitter) *StandardDataTypeEmitter {
	return &StandardDataTypeEmitter{body: body, ctors: ctors}
}

func (e *StandardDataTypeEmitter) Emit(w io.Writer, dt *ast.DataType, header string) error {
	s := NewSink(w)
	s.Print(header)
	if dt.IsRecord() {
		e.emitRecord(s, dt)
	} else {
		e.emitVariant(s, dt)
	}
	return s.Err()
}

func (e *StandardDataTypeEmitter) emitRecord(s *Sink, dt *ast.DataType) {
	// The record class itself plays the constructor's role.
	c := &ast.Constructor{Name: dt.Name, Args: dt.Constructors[0].Args}
	factory := &ast.Constructor{Name: dt.Constructors[0].Name, Args: c.Args}
	const indent = "   "

	s.Print("public final class ", dt.Name, typeParams(dt.TypeParams), " {\n\n")
	e.ctors.ConstructorFactory(s, dt.Name, dt.TypeParams, factory)
	s.Print("\n\n")
	e.body.ConstructorMethod(s, indent, "public ", c)
	s.Print("\n\n")
	e.body.HashCode(s, indent, c)
	s.Print("\n\n")
	e.body.Equals(s, indent, c, dt.TypeParams)
	s.Print("\n\n")
	e.body.ToString(s, indent, c)
	s.Print("\n\n}\n")
}

func (e *StandardDataTypeEmitter) emitVariant(s *Sink, dt *ast.DataType) {
	tp := typeParams(dt.TypeParams)
	vtp := typeParams(withResult(dt.TypeParams))
	res := resultParam(dt.TypeParams)

	s.Print("public abstract class ", dt.Name, tp, " {\n\n")
	s.Print("   private ", dt.Name, "() {\n   }\n\n")

	for _, c := range dt.Constructors {
		e.ctors.Factory(s, dt.Name, dt.TypeParams, c)
		s.Print("\n")
	}
	s.Print("\n")

	s.Print("   public static interface Visitor", vtp, " {\n")
	for _, c := range dt.Constructors {
		s.Print("      ", res, " visit(", c.Name, tp, " x);\n")
	}
	s.Print("   }\n\n")

	s.Print("   public static abstract class VisitorWithDefault", vtp, " implements Visitor", vtp, " {\n")
	for _, c := range dt.Constructors {
		s.Print("      @Override\n")
		s.Print("      public ", res, " visit(", c.Name, tp, " x) { return getDefault(x); }\n\n")
	}
	s.Print("      protected abstract ", res, " getDefault(", dt.Name, tp, " x);\n")
	s.Print("   }\n\n")

	s.Print("   public static interface VoidVisitor", tp, " {\n")
	for _, c := range dt.Constructors {
		s.Print("      void visit(", c.Name, tp, " x);\n")
	}
	s.Print("   }\n\n")

	s.Print("   public static abstract class VoidVisitorWithDefault", tp, " implements VoidVisitor", tp, " {\n")
	for _, c := range dt.Constructors {
		s.Print("      @Override\n")
		s.Print("      public void visit(", c.Name, tp, " x) { doDefault(x); }\n\n")
	}
	s.Print("      protected abstract void doDefault(", dt.Name, tp, " x);\n")
	s.Print("   }\n\n")

	for _, c := range dt.Constructors {
		e.ctors.Declaration(s, dt.Name, dt.TypeParams, c)
		s.Print("\n\n")
	}

	s.Print("   public abstract <", res, "> ", res, " accept(Visitor", vtp, " visitor);\n\n")
	s.Print("   public abstract void accept(VoidVisitor", tp, " visitor);\n\n")
	s.Print("}\n")
}
