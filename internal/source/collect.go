package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultExt is the extension of ADT description files.
const DefaultExt = ".adt"

// Collect expands path into the list of source files to compile. A regular
// file is returned as is regardless of its extension; a directory is walked
// recursively for files ending in ext. The result is sorted so that Docs are
// processed in a stable order.
func Collect(path, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExt
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read source %q", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var out []string
	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			out = append(out, p)
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "cannot walk source directory %q", path)
	}
	sort.Strings(out)
	return out, nil
}
