package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"adtc/internal/ast"
	"adtc/internal/diag"
	"adtc/internal/source"
	"adtc/internal/token"
)

func oneFile(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	return fs, fs.AddVirtual("t.adt", []byte(content))
}

func TestPrettyCaret(t *testing.T) {
	fs, id := oneFile(t, "Foo Bar\n")
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 4, End: 7}, "expected '=' but found 'Bar'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "t.adt:1:5: ERROR SYN2001: expected '=' but found 'Bar'\n" +
		"  1 | Foo Bar\n" +
		"    |     ^~~\n"
	if buf.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs, id := oneFile(t, "名前 Bar")
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SemaDuplicateName, source.Span{File: id, Start: 7, End: 10}, "dup"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 || lines[2] != "    |      ^~~" {
		t.Fatalf("caret line = %q", lines[2])
	}
}

func TestPrettyNotes(t *testing.T) {
	fs, id := oneFile(t, "Foo = A\nFoo = B\n")
	bag := diag.NewBag(1)
	d := diag.NewError(diag.SemaDuplicateName, source.Span{File: id, Start: 8, End: 11}, "Cannot have two declarations named Foo").
		WithNote(source.Span{File: id, Start: 0, End: 3}, "first declared here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()
	if !strings.Contains(out, "t.adt:2:1: ERROR SEM3001") || !strings.Contains(out, "note: t.adt:1:1: first declared here") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, id := oneFile(t, "a\nFoo Bar")
	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 6, End: 9}, "m1"))
	bag.Add(diag.NewError(diag.SemaDuplicateName, source.Span{File: id, Start: 2, End: 5}, "m2"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Diagnostics[0].Code != "SYN2001" {
		t.Fatalf("unexpected output %+v", out)
	}
	loc := out.Diagnostics[0].Location
	if loc.File != "t.adt" || loc.StartLine != 2 || loc.StartCol != 5 {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Ident, Text: "Foo", Line: 1, Col: 1},
		{Kind: token.EOF, Text: token.EOFText, Line: 1, Col: 4},
		{Kind: token.Ident, Text: "ignored"},
	}
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks); err != nil {
		t.Fatal(err)
	}
	want := "  1: Ident        \"Foo\" at 1:1\n" +
		"  2: EOF          \"<EOF>\" at 1:4\n"
	if buf.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestFormatDocOutputs(t *testing.T) {
	doc := ast.NewDoc("t.adt", "p", []string{"a.b"}, []*ast.DataType{
		{Name: "Opt", TypeParams: []string{"A"}, Constructors: []*ast.Constructor{
			{Name: "Some", Args: []*ast.Arg{{Type: ast.Class("A"), Name: "value"}}},
			{Name: "None"},
		}},
	})

	var js bytes.Buffer
	if err := FormatDocJSON(&js, doc); err != nil {
		t.Fatal(err)
	}
	var out DocOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.DataTypes[0].Strategy != "variant" || out.DataTypes[0].Constructors[0].Fields[0].Type != "A" {
		t.Fatalf("unexpected JSON %s", js.String())
	}

	var ym bytes.Buffer
	if err := FormatDocYAML(&ym, doc); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"source: t.adt", "package: p", "strategy: variant", "name: value", "type: A"} {
		if !strings.Contains(ym.String(), want) {
			t.Fatalf("YAML output lacks %q:\n%s", want, ym.String())
		}
	}

	var pretty bytes.Buffer
	if err := FormatDocPretty(&pretty, doc); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(pretty.String(), "package p\n\nimport a.b\n\nOpt<A> =\n") {
		t.Fatalf("unexpected pretty output %q", pretty.String())
	}
}
