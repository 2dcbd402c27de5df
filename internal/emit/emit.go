// Package emit drives a back end over a whole document: it builds the
// provenance banner and the shared header once, then renders every data
// type into its own target.
package emit

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"adtc/internal/ast"
	"adtc/internal/backend"
	"adtc/internal/format"
	"adtc/internal/logger"
	"adtc/internal/target"
)

// Provenance returns the banner embedded in every generated unit: where
// it came from, which adtc produced it, and the canonical source.
func Provenance(doc *ast.Doc, version string) string {
	return fmt.Sprintf(
		"This file was generated based on %s using adtc version %s. Please do not modify directly.\n\n"+
			"The source was parsed as: \n\n%s",
		doc.SrcInfo, version, format.Print(doc),
	)
}

// DocEmitter renders documents with one back end.
type DocEmitter struct {
	backend backend.Backend
	version string
}

func New(b backend.Backend, version string) *DocEmitter {
	return &DocEmitter{backend: b, version: version}
}

// Emit writes one unit per data type of doc, named by its qualified name.
// A data type that fails to render does not prevent the others from being
// written; all such failures are combined into the returned error. Failing
// to create a target is fatal: Emit returns at once.
func (e *DocEmitter) Emit(factory target.Factory, doc *ast.Doc) error {
	logger.Logger.Debugw("emitting document", "source", doc.SrcInfo, "backend", e.backend.Name(), "types", len(doc.DataTypes))
	header := e.backend.Header(doc, backend.HeaderInfo{
		Version:    e.version,
		Provenance: Provenance(doc, e.version),
	})

	var errs error
	for _, dt := range doc.DataTypes {
		name := doc.QualifiedName(dt)
		t, err := factory.Create(name)
		if err != nil {
			return errors.CombineErrors(errs, errors.Wrapf(err, "creating target for %s", name))
		}
		errs = errors.CombineErrors(errs, e.emitDataType(t, name, doc, dt, header))
	}
	return errs
}

// emitDataType renders dt into t and releases t: closed once the unit is
// complete, discarded otherwise.
func (e *DocEmitter) emitDataType(t target.Target, name string, doc *ast.Doc, dt *ast.DataType, header string) (err error) {
	logger.Logger.Infow("generating", "target", t.Info())

	published := false
	defer func() {
		if published {
			if cerr := t.Close(); cerr != nil {
				err = errors.Wrapf(cerr, "closing %s", t.Info())
			}
			return
		}
		if rerr := discard(t); rerr != nil {
			err = errors.CombineErrors(err, errors.Wrapf(rerr, "releasing %s", t.Info()))
		}
	}()

	if err := e.backend.EmitDataType(t, doc, dt, header); err != nil {
		return errors.Wrapf(err, "emitting %s", name)
	}
	published = true
	return nil
}

// discard releases a target whose unit is incomplete.
func discard(t target.Target) error {
	if a, ok := t.(target.Aborter); ok {
		return a.Abort()
	}
	return t.Close()
}
