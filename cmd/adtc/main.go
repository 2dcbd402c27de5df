package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"adtc/internal/logger"
	"adtc/internal/prof"
	"adtc/internal/version"
)

// errReported is returned after diagnostics were already printed.
var errReported = errors.New("compilation failed")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adtc <src> <dest>",
		Short: "Algebraic data type compiler",
		Long: `adtc reads descriptions of algebraic data types and generates one source
file per declared type. <src> is a description file or a directory of .adt
files; <dest> is the directory generated files are written below.`,
		Version:           version.Version,
		Args:              sourceAndDest,
		PersistentPreRunE: setup,
		RunE:              runGenerate,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("backend", "", "target language (java|go); overrides adtc.toml")
	pf.String("config", "", "path to adtc.toml; discovered upwards when empty")
	pf.Bool("verbose", false, "log debug details")
	pf.Bool("json-log", false, "log JSON lines instead of console text")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("cpuprofile", "", "write a CPU profile to this file")
	pf.String("memprofile", "", "write a heap profile to this file on exit")
	pf.String("trace", "", "write a runtime trace to this file")

	f := rootCmd.Flags()
	f.Bool("timings", false, "show timing information")
	f.String("timings-format", "pretty", "timings output format (pretty|json)")
	f.Bool("cache", false, "skip sources whose outputs are unchanged; overrides adtc.toml")
	f.Bool("clear-cache", false, "drop every cache entry before generating")
	f.String("go-package", "", "package clause for the go back end; overrides adtc.toml")

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// sourceAndDest rejects any argument count but two before anything runs.
func sourceAndDest(cmd *cobra.Command, args []string) error {
	if len(args) == 2 {
		return nil
	}
	return errors.WithHintf(
		errors.Newf("expected a source and a destination, got %d arguments", len(args)),
		"usage: %s", cmd.UseLine(),
	)
}

// profiling is stopped by main once the command has finished.
var profiling *prof.Session

// setup initializes logging and starts the requested profiles.
func setup(cmd *cobra.Command, _ []string) error {
	pf := cmd.Root().PersistentFlags()
	verbose, err := pf.GetBool("verbose")
	if err != nil {
		return err
	}
	jsonLog, err := pf.GetBool("json-log")
	if err != nil {
		return err
	}
	if err := logger.Initialize(verbose, jsonLog); err != nil {
		return err
	}

	var opts prof.Options
	for flag, dst := range map[string]*string{"cpuprofile": &opts.CPU, "memprofile": &opts.Mem, "trace": &opts.Trace} {
		if *dst, err = pf.GetString(flag); err != nil {
			return err
		}
	}
	if !opts.Enabled() {
		return nil
	}
	profiling, err = prof.Start(opts)
	return err
}

// main executes the root command. Errors are printed with their hints and
// the process exits with status 1.
func main() {
	err := newRootCmd().Execute()
	err = errors.CombineErrors(err, profiling.Stop())
	logger.Sync()
	if err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

func report(w io.Writer, err error) int {
	if errors.Is(err, errReported) {
		return 1
	}
	fmt.Fprintf(w, "adtc: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
	return 1
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
