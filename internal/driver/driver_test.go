package driver

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"adtc/internal/diag"
	"adtc/internal/token"
)

const fooBarSrc = "package a.b\n\nimport java.util.List\n\nFooBar = Foo(int yeah, List<String> hmmm) | Bar\nWhatever = Whatever\n"

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestGenerateJava(t *testing.T) {
	src := writeSource(t, t.TempDir(), "foo.adt", fooBarSrc)
	dest := t.TempDir()

	res, err := Generate(src, dest, Options{Version: "1.0.0"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	want := []string{
		filepath.Join(dest, "a", "b", "FooBar.java"),
		filepath.Join(dest, "a", "b", "Whatever.java"),
	}
	if !slices.Equal(res.Outputs, want) {
		t.Fatalf("Outputs = %v, want %v", res.Outputs, want)
	}
	foobar := readFile(t, want[0])
	for _, s := range []string{
		"package a.b;\n\nimport java.util.List;\n\n/*\nThis file was generated based on ",
		"using adtc version 1.0.0. Please do not modify directly.",
		"public abstract class FooBar {",
		"public static final FooBar _Foo(int yeah, List<String> hmmm) { return new Foo(yeah, hmmm); }",
	} {
		if !strings.Contains(foobar, s) {
			t.Errorf("FooBar.java lacks %q", s)
		}
	}
	if !strings.Contains(readFile(t, want[1]), "public final class Whatever {") {
		t.Error("Whatever.java should use the record strategy")
	}
}

func TestGenerateGo(t *testing.T) {
	src := writeSource(t, t.TempDir(), "foo.adt", "FooBar = Foo(int yeah) | Bar\n")
	dest := t.TempDir()

	res, err := Generate(src, dest, Options{Backend: "go", GoPackage: "model"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Outputs) != 1 {
		t.Fatalf("Outputs = %v", res.Outputs)
	}
	out := readFile(t, filepath.Join(dest, "FooBar.go"))
	if !strings.Contains(out, "\npackage model\n") || !strings.Contains(out, "func MatchFooBar[R any](") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestGenerateDirectoryStopsAtFirstError(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.adt", "A = A1\n")
	writeSource(t, dir, "b.adt", "B = (\n")
	writeSource(t, dir, "c.adt", "C = C1\n")
	writeSource(t, dir, "notes.txt", "not a source")
	dest := t.TempDir()

	res, err := Generate(dir, dest, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a syntax error")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnexpectedToken {
		t.Fatalf("unexpected diagnostics: %+v", items)
	}
	if want := []string{filepath.Join(dest, "A.java")}; !slices.Equal(res.Outputs, want) {
		t.Fatalf("Outputs = %v, want %v", res.Outputs, want)
	}
	if _, err := os.Stat(filepath.Join(dest, "C.java")); !os.IsNotExist(err) {
		t.Fatal("C.java must not be generated after a failing source")
	}
}

func TestGenerateSemanticErrorEmitsNothing(t *testing.T) {
	src := writeSource(t, t.TempDir(), "dup.adt", "A = A | B\nB = C\n")
	dest := t.TempDir()

	res, err := Generate(src, dest, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Outputs) != 0 {
		t.Fatalf("Outputs = %v", res.Outputs)
	}
	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("destination should be empty, has %d entries", len(entries))
	}
	if res.Bag.Len() != 2 {
		t.Fatalf("got %d diagnostics, want 2", res.Bag.Len())
	}
}

func TestCheckLocatesFindings(t *testing.T) {
	src := writeSource(t, t.TempDir(), "dup.adt", "A = A | B\n")
	res, err := Check(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	items := res.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("got %d diagnostics", len(items))
	}
	d := items[0]
	if d.Code != diag.SemaDuplicateName || d.Message != "Cannot have two declarations named A" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Primary.Start != 4 || d.Primary.End != 5 {
		t.Errorf("primary = %v, want 4-5", d.Primary)
	}
	if len(d.Notes) != 1 || d.Notes[0].Span.Start != 0 {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestCheckRunsBackendRules(t *testing.T) {
	src := writeSource(t, t.TempDir(), "clash.adt", "FooBar = Foo(int yeah, int Yeah) | Bar\n")

	res, err := Check(src, Options{Backend: "java"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("java: unexpected diagnostics %+v", res.Bag.Items())
	}

	res, err = Check(src, Options{Backend: "go"})
	if err != nil {
		t.Fatal(err)
	}
	items := res.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("go: got %d diagnostics", len(items))
	}
	d := items[0]
	if d.Code != diag.SemaGeneratedNameClash || d.Message != "Yeah in Foo clashes with field yeah, both generate the Go field Yeah" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Primary.Start != 27 || d.Primary.End != 31 {
		t.Errorf("primary = %v, want 27-31", d.Primary)
	}
}

func TestParseReportsSyntaxError(t *testing.T) {
	src := writeSource(t, t.TempDir(), "bad.adt", "Foo = Bar(int)\n")
	res, err := Parse(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Doc != nil {
		t.Fatal("Doc should be nil after a syntax error")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Message != "expected an argument name but found ')'" {
		t.Fatalf("unexpected diagnostics: %+v", items)
	}
}

func TestBackendSelectsReservedWords(t *testing.T) {
	src := writeSource(t, t.TempDir(), "kw.adt", "Foo = Bar(int func)\n")

	if res, err := Parse(src, Options{Backend: "java"}); err != nil || res.Doc == nil {
		t.Fatalf("java: func is an identifier, got %v %+v", err, res.Bag.Items())
	}
	res, err := Parse(src, Options{Backend: "go"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Doc != nil {
		t.Fatal("go: func is reserved and must not parse as a field name")
	}
}

func TestGoReservesPredeclaredNames(t *testing.T) {
	for _, text := range []string{"string = A(int x) | B\n", "Foo = Bar(int error)\n", "Foo<any> = Bar\n"} {
		src := writeSource(t, t.TempDir(), "pre.adt", text)
		res, err := Parse(src, Options{Backend: "go"})
		if err != nil {
			t.Fatal(err)
		}
		if res.Doc != nil {
			t.Errorf("go: %q must not parse", text)
		}
		if res, err := Parse(src, Options{Backend: "java"}); err != nil || res.Doc == nil {
			t.Errorf("java: %q should parse, got %v", text, err)
		}
	}
}

func TestTokenize(t *testing.T) {
	src := writeSource(t, t.TempDir(), "t.adt", "Foo = * Bar\n")
	res, err := Tokenize(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]token.Kind, len(res.Tokens))
	for i, tok := range res.Tokens {
		kinds[i] = tok.Kind
	}
	want := []token.Kind{token.Ident, token.Equals, token.Unknown, token.Ident, token.EOF}
	if !slices.Equal(kinds, want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Severity != diag.SevWarning || items[0].Code != diag.LexUnknownToken {
		t.Fatalf("unexpected diagnostics: %+v", items)
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := Generate("x", t.TempDir(), Options{Backend: "cobol"})
	if err == nil || err.Error() != `unknown backend "cobol"` {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMissingSource(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "missing.adt"), t.TempDir(), Options{})
	if err == nil || !strings.Contains(err.Error(), "cannot read source") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateCacheSkipsUnchangedSource(t *testing.T) {
	src := writeSource(t, t.TempDir(), "foo.adt", "A = A1 | A2\n")
	dest := t.TempDir()
	opts := Options{Cache: true, CacheDir: t.TempDir()}

	first, err := Generate(src, dest, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Outputs) != 1 || len(first.Skipped) != 0 {
		t.Fatalf("first run: outputs %v skipped %v", first.Outputs, first.Skipped)
	}

	second, err := Generate(src, dest, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Outputs) != 0 || !slices.Equal(second.Skipped, []string{src}) {
		t.Fatalf("second run: outputs %v skipped %v", second.Outputs, second.Skipped)
	}

	if err := os.WriteFile(first.Outputs[0], []byte("edited"), 0o644); err != nil {
		t.Fatal(err)
	}
	third, err := Generate(src, dest, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(third.Outputs) != 1 || len(third.Skipped) != 0 {
		t.Fatalf("third run: outputs %v skipped %v", third.Outputs, third.Skipped)
	}
	if readFile(t, third.Outputs[0]) == "edited" {
		t.Fatal("edited output should have been regenerated")
	}

	goRun, err := Generate(src, dest, Options{Backend: "go", Cache: true, CacheDir: opts.CacheDir})
	if err != nil {
		t.Fatal(err)
	}
	if len(goRun.Skipped) != 0 {
		t.Fatal("a different back end must not reuse the cache entry")
	}
}

func TestGenerateClearCache(t *testing.T) {
	src := writeSource(t, t.TempDir(), "foo.adt", "A = A1 | A2\n")
	dest := t.TempDir()
	opts := Options{Cache: true, CacheDir: filepath.Join(t.TempDir(), "cache")}

	if _, err := Generate(src, dest, opts); err != nil {
		t.Fatal(err)
	}
	cleared := opts
	cleared.ClearCache = true
	res, err := Generate(src, dest, cleared)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Skipped) != 0 || len(res.Outputs) != 1 {
		t.Fatalf("after clearing: outputs %v skipped %v", res.Outputs, res.Skipped)
	}

	res, err = Generate(src, dest, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Skipped, []string{src}) {
		t.Fatalf("the run that cleared the cache should have refilled it, skipped %v", res.Skipped)
	}

	// Clearing without caching leaves nothing behind to reuse.
	if _, err := Generate(src, dest, Options{ClearCache: true, CacheDir: opts.CacheDir}); err != nil {
		t.Fatal(err)
	}
	res, err = Generate(src, dest, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("cache survived clearing, skipped %v", res.Skipped)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	c, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := combineDigest([]byte("k"))
	var out DiskPayload
	if hit, err := c.Get(key, &out); err != nil || hit {
		t.Fatalf("Get on empty cache = %v, %v", hit, err)
	}
	in := &DiskPayload{Schema: diskCacheSchemaVersion, Source: "s.adt", Backend: "java", Version: "0.1.0"}
	if err := c.Put(key, in); err != nil {
		t.Fatal(err)
	}
	if hit, err := c.Get(key, &out); err != nil || !hit {
		t.Fatalf("Get after Put = %v, %v", hit, err)
	}
	if out.Source != "s.adt" || out.Backend != "java" {
		t.Fatalf("got %+v", out)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if hit, _ := c.Get(key, &out); hit {
		t.Fatal("entry survived DropAll")
	}
}

func TestCombineDigestSeparatesParts(t *testing.T) {
	if combineDigest([]byte("ab"), []byte("c")) == combineDigest([]byte("a"), []byte("bc")) {
		t.Fatal("digests of different splits must differ")
	}
}

func TestTimingsRecorded(t *testing.T) {
	src := writeSource(t, t.TempDir(), "foo.adt", "A = A\n")
	res, err := Generate(src, t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range res.Timer.Report().Phases {
		names = append(names, p.Name)
	}
	if want := []string{"collect", "load", "parse", "check", "emit"}; !slices.Equal(names, want) {
		t.Fatalf("phases = %v, want %v", names, want)
	}
	var sb strings.Builder
	if err := WriteTimings(&sb, "", src, res.Timer, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"kind": "pipeline"`) {
		t.Fatalf("unexpected timings JSON: %s", sb.String())
	}
}
