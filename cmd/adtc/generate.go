package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"adtc/internal/driver"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	src, dest := args[0], args[1]
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Generate(src, dest, opts)
	if err != nil {
		return err
	}
	failed, err := printDiagnostics(cmd, result.Bag, result.FileSet)
	if err != nil {
		return err
	}

	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}
	if timings {
		format, err := cmd.Flags().GetString("timings-format")
		if err != nil {
			return err
		}
		if format != "pretty" && format != "json" {
			return errors.WithHint(
				errors.Newf("unknown timings format %q", format),
				"use pretty or json",
			)
		}
		if err := driver.WriteTimings(cmd.ErrOrStderr(), "generate", src, result.Timer, format == "json"); err != nil {
			return err
		}
	}
	if failed {
		return errReported
	}
	return nil
}
