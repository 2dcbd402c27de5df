// Package backend defines the contract between the document emitter and a
// target-language renderer, and a registry to select one by name.
package backend

import (
	"io"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"adtc/internal/ast"
	"adtc/internal/checker"
)

// HeaderInfo is what a back end needs to build the shared header of a Doc.
type HeaderInfo struct {
	Version    string
	Provenance string // banner followed by the canonical rendering of the Doc
}

// Backend renders data types in one target language.
type Backend interface {
	// Name is the selector used on the command line, e.g. "java".
	Name() string
	// FileExtension of generated units, including the dot.
	FileExtension() string
	// ReservedWords lists words that cannot be used as declared names.
	ReservedWords() []string
	// Header returns the text prefixed to every unit generated from doc.
	Header(doc *ast.Doc, info HeaderInfo) string
	// EmitDataType writes header followed by the rendering of dt.
	EmitDataType(w io.Writer, doc *ast.Doc, dt *ast.DataType, header string) error
}

// NameChecker is implemented by back ends that derive names of their own
// from the declared ones. CheckNames adds a finding for every derived name
// that would collide in the generated code.
type NameChecker interface {
	CheckNames(doc *ast.Doc, findings checker.FindingSet)
}

// Rules returns the checker rules contributed by b.
func Rules(b Backend) []checker.Rule {
	if nc, ok := b.(NameChecker); ok {
		return []checker.Rule{nc.CheckNames}
	}
	return nil
}

// Registry maps back-end names to implementations.
type Registry struct {
	backends map[string]Backend
}

func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{backends: make(map[string]Backend, len(backends))}
	for _, b := range backends {
		r.backends[b.Name()] = b
	}
	return r
}

// Lookup returns the back end registered under name.
func (r *Registry) Lookup(name string) (Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, errors.WithHintf(
			errors.Newf("unknown backend %q", name),
			"available backends: %s", strings.Join(r.Names(), ", "),
		)
	}
	return b, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for n := range r.backends {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
