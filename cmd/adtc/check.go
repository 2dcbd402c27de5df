package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adtc/internal/diagfmt"
	"adtc/internal/driver"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] file.adt",
		Short: "Report syntax errors and name collisions without generating",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Check(args[0], opts)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		failed, err := printDiagnostics(cmd, result.Bag, result.FileSet)
		if err != nil {
			return err
		}
		if failed {
			return errReported
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	case "json":
		result.Bag.Sort()
		err := diagfmt.JSON(cmd.OutOrStdout(), result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
		if err != nil {
			return err
		}
		if result.Bag.HasErrors() {
			return errReported
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
