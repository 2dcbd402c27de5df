package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find() = %q, %v, %v", path, ok, err)
	}
	if path != filepath.Join(root, FileName) {
		t.Fatalf("Find() = %q", path)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	cfg, path, err := Discover("", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		// A stray adtc.toml above the temp dir would be picked up.
		t.Skipf("found %s above the temporary directory", path)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `requires = ">= 0.1.0"

[generate]
backend = "go"
cache = true

[go]
package = "model"
`)
	cfg, got, err := Discover(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("path = %q", got)
	}
	want := Config{
		Requires: ">= 0.1.0",
		Generate: GenerateConfig{Backend: "go", Cache: true, Extension: ".adt"},
		Go:       GoConfig{Package: "model"},
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "generate = [", "failed to parse TOML"},
		{"unknown key", "[generate]\nbackend = \"java\"\nflavour = 1\n", "unknown keys: generate.flavour"},
		{"extension", "[generate]\nextension = \"adt\"\n", `generate.extension "adt" must start with a dot`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		requires string
		version  string
		wantErr  string
	}{
		{"", "0.1.0", ""},
		{">= 0.1.0", "0.1.0", ""},
		{"^0.1", "0.1.7", ""},
		{">= 1.0.0", "0.1.0", "configuration requires adtc >= 1.0.0, but running 0.1.0"},
		{"banana", "0.1.0", "invalid version constraint banana"},
		{">= 0.1.0", "dev", "invalid adtc version dev"},
	}
	for _, tt := range tests {
		err := Config{Requires: tt.requires}.CheckVersion(tt.version)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("CheckVersion(%q, %q) = %v", tt.requires, tt.version, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("CheckVersion(%q, %q) = %v, want %q", tt.requires, tt.version, err, tt.wantErr)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Default().Encode(f); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v", cfg)
	}
}
