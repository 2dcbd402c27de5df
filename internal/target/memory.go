package target

import (
	"maps"
	"strings"
)

// StringFactory keeps every closed unit in memory, keyed by unit name.
type StringFactory struct {
	label   string
	results map[string]string
}

func NewStringFactory(label string) *StringFactory {
	return &StringFactory{label: label, results: make(map[string]string)}
}

func (f *StringFactory) Create(name string) (Target, error) {
	return &StringTarget{factory: f, name: name}, nil
}

// Results returns a copy of the published units.
func (f *StringFactory) Results() map[string]string {
	return maps.Clone(f.results)
}

// StringTarget buffers a unit until Close.
type StringTarget struct {
	factory *StringFactory
	name    string
	buf     strings.Builder
	closed  bool
}

func (t *StringTarget) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

func (t *StringTarget) Info() string {
	return "String: " + t.factory.label + "/" + t.name
}

func (t *StringTarget) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.factory.results[t.name] = t.buf.String()
	return nil
}

func (t *StringTarget) Abort() error {
	t.closed = true
	return nil
}
