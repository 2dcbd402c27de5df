package java

import (
	"strings"
	"testing"

	"adtc/internal/ast"
)

func render(f func(s *Sink)) string {
	var sb strings.Builder
	f(NewSink(&sb))
	return sb.String()
}

func TestFactories(t *testing.T) {
	e := NewConstructorEmitter(StandardClassBodyEmitter{})
	dt := fooBar()
	tests := []struct {
		name   string
		params []string
		ctor   *ast.Constructor
		want   string
	}{
		{
			name: "args",
			ctor: dt.Constructors[0],
			want: "   public static final FooBar _Foo(Integer yeah, String hmmm) { return new Foo(yeah, hmmm); }",
		},
		{
			name:   "generic args",
			params: []string{"A", "B"},
			ctor:   dt.Constructors[0],
			want:   "   public static final <A, B> FooBar<A, B> _Foo(Integer yeah, String hmmm) { return new Foo<A, B>(yeah, hmmm); }",
		},
		{
			name: "singleton",
			ctor: dt.Constructors[1],
			want: "   private static final FooBar _Bar = new Bar();\n" +
				"   public static final FooBar _Bar() { return _Bar; }",
		},
		{
			name:   "generic singleton",
			params: []string{"A"},
			ctor:   dt.Constructors[1],
			want: "   @SuppressWarnings(\"rawtypes\")\n" +
				"   private static final FooBar _Bar = new Bar();\n" +
				"   @SuppressWarnings(\"unchecked\")\n" +
				"   public static final <A> FooBar<A> _Bar() { return _Bar; }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(func(s *Sink) { e.Factory(s, "FooBar", tt.params, tt.ctor) })
			if got != tt.want {
				t.Fatalf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestConstructorFactory(t *testing.T) {
	e := NewConstructorEmitter(StandardClassBodyEmitter{})
	got := render(func(s *Sink) {
		e.ConstructorFactory(s, "Pair", []string{"L"}, &ast.Constructor{Name: "MkPair", Args: []*ast.Arg{
			{Type: ast.Class("L"), Name: "left"},
			{Type: ast.Prim(ast.Int), Name: "right"},
		}})
	})
	want := "   public static final <L> Pair<L> _MkPair(L left, int right) { return new Pair<L>(left, right); }"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDeclarationWithDummyBody(t *testing.T) {
	e := NewConstructorEmitter(dummyClassBodyEmitter{})
	got := render(func(s *Sink) { e.Declaration(s, "FooBar", []string{"A"}, fooBar().Constructors[0]) })
	want := "   public static final class Foo<A> extends FooBar<A> {\n" +
		"/* constructor method Foo*/\n" +
		"\n" +
		"      @Override\n" +
		"      public <ResultType> ResultType accept(Visitor<A, ResultType> visitor) { return visitor.visit(this); }\n" +
		"\n" +
		"      @Override\n" +
		"      public void accept(VoidVisitor<A> visitor) { visitor.visit(this); }\n" +
		"\n" +
		"/* hashCode method Foo*/\n" +
		"\n" +
		"/* equals method Foo*/\n" +
		"\n" +
		"/* toString method Foo*/\n" +
		"\n" +
		"   }"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
