package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adtc/internal/diagfmt"
	"adtc/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.adt",
		Short: "Print the tokens of a description file",
		Long:  `Tokenize classifies a description file into tokens using the reserved words of the selected back end`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], opts)
	if err != nil {
		return err
	}
	if _, err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
