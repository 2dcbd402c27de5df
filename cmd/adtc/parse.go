package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adtc/internal/diagfmt"
	"adtc/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.adt",
		Short: "Parse a description file and print its data types",
		Long:  `Parse reads a description file and prints the document it declares, without checking names`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], opts)
	if err != nil {
		return err
	}
	failed, err := printDiagnostics(cmd, result.Bag, result.FileSet)
	if err != nil {
		return err
	}
	if failed {
		return errReported
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		return diagfmt.FormatDocPretty(out, result.Doc)
	case "json":
		return diagfmt.FormatDocJSON(out, result.Doc)
	case "yaml":
		return diagfmt.FormatDocYAML(out, result.Doc)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
