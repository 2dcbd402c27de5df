package target

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// FileFactory writes units below a destination directory. A unit named
// a.b.C lands in <dir>/a/b/C<ext>.
type FileFactory struct {
	Dir string
	Ext string
}

func NewFileFactory(dir, ext string) *FileFactory {
	return &FileFactory{Dir: dir, Ext: ext}
}

// PathFor returns the file a unit named name is written to.
func (f *FileFactory) PathFor(name string) string {
	rel := strings.ReplaceAll(name, ".", string(filepath.Separator))
	return filepath.Join(f.Dir, rel) + f.Ext
}

// Create opens a temporary file next to the final path. The final file
// appears only when the target is closed.
func (f *FileFactory) Create(name string) (Target, error) {
	p := f.PathFor(name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating directory for %s", name)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "."+filepath.Base(p)+".tmp-*")
	if err != nil {
		return nil, errors.Wrapf(err, "creating target for %s", name)
	}
	return &FileTarget{path: p, tmp: tmp}, nil
}

// FileTarget is a Target backed by a temporary file renamed on Close.
type FileTarget struct {
	path   string
	tmp    *os.File
	closed bool
	err    error // first write error
}

func (t *FileTarget) Write(p []byte) (int, error) {
	n, err := t.tmp.Write(p)
	if err != nil && t.err == nil {
		t.err = errors.Wrapf(err, "writing %s", t.path)
	}
	return n, err
}

func (t *FileTarget) Info() string {
	return "File: " + t.path
}

// Path returns the final path of the unit.
func (t *FileTarget) Path() string {
	return t.path
}

// Close publishes the unit by renaming the temporary file over the final
// path. A target that saw a write error is discarded instead.
func (t *FileTarget) Close() error {
	if t.closed {
		return nil
	}
	if t.err != nil {
		return errors.CombineErrors(t.err, t.Abort())
	}
	t.closed = true
	if err := t.tmp.Close(); err != nil {
		_ = os.Remove(t.tmp.Name())
		return errors.Wrapf(err, "closing %s", t.path)
	}
	if err := os.Rename(t.tmp.Name(), t.path); err != nil {
		_ = os.Remove(t.tmp.Name())
		return errors.Wrapf(err, "publishing %s", t.path)
	}
	return nil
}

// Abort removes the temporary file without touching the final path.
func (t *FileTarget) Abort() error {
	if t.closed {
		return nil
	}
	t.closed = true
	closeErr := t.tmp.Close()
	rmErr := os.Remove(t.tmp.Name())
	if rmErr != nil && !os.IsNotExist(rmErr) {
		return errors.Wrapf(rmErr, "discarding %s", t.path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "discarding %s", t.path)
	}
	return nil
}
