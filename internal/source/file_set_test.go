package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.adt", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.adt")
	if !exists {
		t.Error("Expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("Expected latest ID to be %d, got %d", id1, latestID)
	}

	id2 := fs.Add("test.adt", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, _ = fs.GetLatest("test.adt")
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	if string(fs.Get(id1).Content) != "hello world" {
		t.Errorf("Expected first file content to be preserved, got %q", fs.Get(id1).Content)
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.adt", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestNormalization(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		flagSet FileFlags
	}{
		{"crlf", "a\r\nb\r\n", "a\nb\n", FileNormalizedCRLF},
		{"bom", "\xEF\xBB\xBFx\n", "x\n", FileHadBOM},
		{"nfc", "Cafe\u0301", "Caf\u00e9", FileNormalizedNFC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			file := fs.Get(fs.AddVirtual("n.adt", []byte(tt.input)))
			if string(file.Content) != tt.want {
				t.Errorf("content = %q, want %q", file.Content, tt.want)
			}
			if file.Flags&tt.flagSet == 0 {
				t.Errorf("expected flag %b to be set, got %b", tt.flagSet, file.Flags)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.adt", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{7, LineCol{Line: 4, Col: 1}},
	}
	for _, tt := range tests {
		got, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if got != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("l.adt", []byte("first\nsecond\n\nlast")))

	want := map[uint32]string{0: "", 1: "first", 2: "second", 3: "", 4: "last", 5: ""}
	for line, text := range want {
		if got := file.GetLine(line); got != text {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, text)
		}
	}
}

func TestCollectSortsDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.adt", "a.adt", "notes.txt", filepath.Join("sub", "c.adt")} {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("X = X\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := Collect(dir, "")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	var got []string
	for _, p := range paths {
		got = append(got, filepath.Base(p))
	}
	want := []string{"a.adt", "b.adt", "c.adt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCollectSingleFileIgnoresExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "types.txt")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Collect(p, ".adt")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 1 || got[0] != p {
		t.Fatalf("Collect = %v, want [%s]", got, p)
	}
}

func TestCollectMissingPath(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "nope"), ""); err == nil {
		t.Fatal("expected error for missing path")
	}
}
