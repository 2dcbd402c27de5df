// Package config loads adtc.toml, the optional per-project settings file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

// FileName is the name looked up when discovering a configuration.
const FileName = "adtc.toml"

type Config struct {
	// Requires is a semantic-version constraint on the running adtc.
	Requires string         `toml:"requires,omitempty"`
	Generate GenerateConfig `toml:"generate"`
	Go       GoConfig       `toml:"go"`
}

type GenerateConfig struct {
	Backend   string `toml:"backend"`
	Cache     bool   `toml:"cache"`
	Extension string `toml:"extension"`
}

type GoConfig struct {
	Package string `toml:"package"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Generate: GenerateConfig{Backend: "java", Extension: ".adt"},
		Go:       GoConfig{Package: "adt"},
	}
}

// Find walks up from startDir to locate adtc.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrapf(err, "resolving start directory %q", startDir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, errors.Wrapf(err, "stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.WithHint(
			errors.Newf("%s: unknown keys: %s", path, strings.Join(keys, ", ")),
			"supported keys are requires, [generate] backend, cache, extension and [go] package",
		)
	}
	if !strings.HasPrefix(cfg.Generate.Extension, ".") {
		return Config{}, errors.Newf("%s: generate.extension %q must start with a dot", path, cfg.Generate.Extension)
	}
	return cfg, nil
}

// Discover loads explicit when it is set, otherwise the nearest adtc.toml
// above startDir, otherwise the defaults. The returned path is empty when
// no file was read.
func Discover(explicit, startDir string) (Config, string, error) {
	path := explicit
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Config{}, "", err
		}
		if !ok {
			return Default(), "", nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// CheckVersion verifies that version satisfies Requires.
func (c Config) CheckVersion(version string) error {
	if c.Requires == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(err, "invalid adtc version %s", version)
	}
	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %s", c.Requires)
	}
	if !constraint.Check(v) {
		return errors.WithHintf(
			errors.Newf("configuration requires adtc %s, but running %s", c.Requires, version),
			"install a matching adtc or relax 'requires' in %s", FileName,
		)
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
