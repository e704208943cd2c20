package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"utf8probe/internal/console"
	"utf8probe/internal/hostinfo"
	"utf8probe/internal/probe"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "utf8probe [-v|--verbose]",
	Short: "utf8probe - Check that the console renders UTF-8",
	Long: `utf8probe asks the console to switch its input and output code pages to
UTF-8 (65001), prints a few lines mixing ASCII and CJK characters, and reports
the active output code page.

If the CJK lines look garbled, the console is not rendering UTF-8.

Flags:
  -v, --verbose   Log console details and the expected width of each line to stderr

Every other argument, including --help, is ignored. The exit status is always 0.
A console that rejects the code page request is only reported with --verbose,
on stderr.`,
	Args: cobra.ArbitraryArgs,
	// Flags are parsed by parseVerbose so that no argument can keep the
	// lines from being printed.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd.OutOrStdout(), cmd.ErrOrStderr(), console.System(), parseVerbose(args))
	},
}

// parseVerbose reports whether args ask for verbose output. Unknown flags are
// skipped and a malformed value counts as not verbose.
func parseVerbose(args []string) bool {
	fs := pflag.NewFlagSet("utf8probe", pflag.ContinueOnError)
	fs.ParseErrorsAllowlist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	verbose := fs.BoolP("verbose", "v", false, "")
	if err := fs.Parse(args); err != nil {
		return false
	}
	return *verbose
}

// run executes the probe against c. Nothing in here affects the exit status.
func run(stdout, stderr io.Writer, c console.Console, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	p := probe.New(c)
	if err := p.Run(stdout); err != nil {
		slog.Debug("Failed to write diagnostic lines", "error", err)
	}

	if verbose {
		report(c, isTerminal(stdout))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && console.IsTerminal(f)
}

// report logs what the terminal should have displayed, so a developer can
// compare it with what they see.
func report(c console.Console, stdoutTerminal bool) {
	cp := c.OutputCodePage()
	slog.Debug("Console",
		"requestedCodePage", console.CodePageUTF8,
		"outputCodePage", cp,
		"utf8", cp == console.CodePageUTF8,
		"stdoutTerminal", stdoutTerminal)

	if info, err := hostinfo.Collect(); err != nil {
		slog.Debug("Host info unavailable", "error", err)
	} else {
		slog.Debug("Host", "platform", info.String())
	}

	for i, line := range probe.Lines(cp) {
		stats := probe.Measure(line)
		slog.Debug("Line",
			"n", i+1,
			"bytes", stats.Bytes,
			"runes", stats.Runes,
			"columns", stats.Columns,
			"validUTF8", stats.ValidUTF8,
			"replacements", stats.Replacements)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Run never started; print the lines anyway since the probe never
		// fails its caller.
		fmt.Fprintln(os.Stderr, err)
		run(os.Stdout, os.Stderr, console.System(), false)
	}
}
