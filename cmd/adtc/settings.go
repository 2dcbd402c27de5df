package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"adtc/internal/config"
	"adtc/internal/diag"
	"adtc/internal/diagfmt"
	"adtc/internal/driver"
	"adtc/internal/logger"
	"adtc/internal/source"
	"adtc/internal/version"
)

// loadOptions merges adtc.toml with the command-line overrides.
func loadOptions(cmd *cobra.Command) (driver.Options, error) {
	pf := cmd.Root().PersistentFlags()
	cfgPath, err := pf.GetString("config")
	if err != nil {
		return driver.Options{}, err
	}
	cfg, found, err := config.Discover(cfgPath, ".")
	if err != nil {
		return driver.Options{}, err
	}
	if found != "" {
		logger.Logger.Debugw("loaded configuration", "path", found)
	}
	if err := cfg.CheckVersion(version.Version); err != nil {
		return driver.Options{}, err
	}

	opts := driver.Options{
		Backend:   cfg.Generate.Backend,
		GoPackage: cfg.Go.Package,
		Extension: cfg.Generate.Extension,
		Cache:     cfg.Generate.Cache,
	}
	if pf.Changed("backend") {
		if opts.Backend, err = pf.GetString("backend"); err != nil {
			return driver.Options{}, err
		}
	}
	if opts.MaxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return driver.Options{}, err
	}
	if f := cmd.Flags().Lookup("cache"); f != nil && f.Changed {
		if opts.Cache, err = cmd.Flags().GetBool("cache"); err != nil {
			return driver.Options{}, err
		}
	}
	if f := cmd.Flags().Lookup("clear-cache"); f != nil && f.Changed {
		if opts.ClearCache, err = cmd.Flags().GetBool("clear-cache"); err != nil {
			return driver.Options{}, err
		}
	}
	if f := cmd.Flags().Lookup("go-package"); f != nil && f.Changed {
		if opts.GoPackage, err = cmd.Flags().GetString("go-package"); err != nil {
			return driver.Options{}, err
		}
	}
	return opts, nil
}

func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stderr), nil
	}
	return false, errors.WithHint(
		errors.Newf("unsupported color mode %q", colorFlag),
		"use auto, on or off",
	)
}

// printDiagnostics writes bag to stderr and reports whether it holds errors.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) (bool, error) {
	if bag.Len() == 0 {
		return false, nil
	}
	color, err := useColor(cmd)
	if err != nil {
		return false, err
	}
	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{Color: color, ShowNotes: true})
	return bag.HasErrors(), nil
}
