package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"adtc/internal/config"
	"adtc/internal/version"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default adtc.toml",
		Long: `Init writes adtc.toml with the default settings into [dir], creating the
directory when needed. The current directory is used when [dir] is omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"edit the existing file or remove it first",
		)
	} else if !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "stat %s", path)
	}

	cfg := config.Default()
	cfg.Requires = ">= " + version.Version
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		return errors.Wrap(err, "encoding configuration")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	return nil
}
