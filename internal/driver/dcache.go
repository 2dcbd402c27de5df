package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 value.
type Digest = [sha256.Size]byte

// DiskCache remembers, per source, which units the last successful run
// generated, so an unchanged source whose outputs are intact is skipped.
type DiskCache struct {
	dir string
}

// DiskPayload records one successful generation.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Source  string
	Backend string
	Version string

	// Generated files and the digests of what was written
	Outputs      []string
	OutputHashes []Digest
}

// OpenDiskCache opens the cache rooted at dir. An empty dir selects
// $XDG_CACHE_HOME/adtc, falling back to ~/.cache/adtc.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, errors.Wrap(err, "locating cache directory")
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "adtc")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating cache directory %q", dir)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "gen", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.Wrap(err, "creating cache entry directory")
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating cache entry")
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return errors.Wrap(err, "encoding cache entry")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing cache entry")
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrap(err, "opening cache entry")
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, errors.Wrap(err, "decoding cache entry")
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every entry. The cache stays usable: Put recreates
// the directories it needs.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrap(err, "dropping cache")
	}
	return os.RemoveAll(old)
}

// Fresh reports whether every output recorded in p still holds exactly
// what was generated.
func (p *DiskPayload) Fresh() bool {
	if len(p.Outputs) != len(p.OutputHashes) {
		return false
	}
	for i, out := range p.Outputs {
		d, err := fileDigest(out)
		if err != nil || d != p.OutputHashes[i] {
			return false
		}
	}
	return true
}
