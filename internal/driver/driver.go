// Package driver runs the compiler pipeline over source files: load,
// tokenize, parse, check and emit, one document at a time.
package driver

import (
	"adtc/internal/backend"
	"adtc/internal/backend/golang"
	"adtc/internal/backend/java"
	"adtc/internal/source"
	"adtc/internal/token"
	"adtc/internal/version"
)

// DefaultBackend is used when Options.Backend is empty.
const DefaultBackend = "java"

const defaultMaxDiagnostics = 100

// Options configures one pipeline run.
type Options struct {
	Backend        string
	GoPackage      string // package clause for the go back end
	Extension      string // source extension used when expanding directories
	Cache          bool
	ClearCache     bool // drop every cache entry before generating
	CacheDir       string // "" selects the user cache directory
	MaxDiagnostics int
	Version        string // "" selects version.Version
}

func (o Options) backendName() string {
	if o.Backend == "" {
		return DefaultBackend
	}
	return o.Backend
}

func (o Options) extension() string {
	if o.Extension == "" {
		return source.DefaultExt
	}
	return o.Extension
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o Options) version() string {
	if o.Version == "" {
		return version.Version
	}
	return o.Version
}

// Backends returns a registry of every available back end.
func Backends(goPackage string) *backend.Registry {
	return backend.NewRegistry(java.New(), golang.New(goPackage))
}

// session is the state shared by every document of a run: the selected
// back end and the reserved-word table built from it.
type session struct {
	opts    Options
	backend backend.Backend
	table   *token.Table
}

func newSession(opts Options) (*session, error) {
	b, err := Backends(opts.GoPackage).Lookup(opts.backendName())
	if err != nil {
		return nil, err
	}
	return &session{
		opts:    opts,
		backend: b,
		table:   token.NewTable(b.ReservedWords()...),
	}, nil
}
