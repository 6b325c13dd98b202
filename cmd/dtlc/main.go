// Command dtlc type-checks a dependently-typed source file (or stdin) and
// prints the resolved type of each top-level item it accepts.
//
// Grounded on the teacher's cmd/funxy/main.go: stdin-or-file input, a
// panic-recovery wrapper that turns an internal invariant violation into
// a "This is a bug" message instead of a raw stack trace, and a unified
// pipeline-construction helper.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/dtlc/internal/config"
	"github.com/funvibe/dtlc/internal/diagnostics"
	"github.com/funvibe/dtlc/internal/history"
	"github.com/funvibe/dtlc/internal/parser"
	"github.com/funvibe/dtlc/internal/pipeline"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	verbose := flag.Bool("v", false, "print elapsed wall-clock time to stderr")
	historyCmd := flag.Bool("history", false, "list recent entries from the history ledger and exit")
	flag.Parse()

	if *historyCmd {
		runHistoryCommand()
		return
	}

	args := flag.Args()
	sourceCode, filePath, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if sourceCode == "" {
		return
	}

	start := time.Now()
	ctx := runPipeline(sourceCode, filePath)

	if ctx.Failed() {
		printErrors(ctx.Errors)
		os.Exit(1)
	}

	for _, line := range ctx.Lines {
		fmt.Println(line)
	}
	fmt.Println("Successfully type-checked all items!")

	if *verbose {
		fmt.Fprintf(os.Stderr, "checked in %s\n", humanize.RelTime(start, time.Now(), "", ""))
	}

	recordHistory(filePath, ctx.Lines)
}

func runPipeline(sourceCode, filePath string) *pipeline.PipelineContext {
	initialCtx := pipeline.NewPipelineContext(sourceCode)
	initialCtx.FilePath = filePath

	p := pipeline.New(
		&parser.ParserProcessor{},
		&pipeline.CheckerProcessor{},
	)
	return p.Run(initialCtx)
}

func printErrors(errs []*diagnostics.DiagnosticError) {
	useColor := stderrIsTerminal()
	fmt.Fprintln(os.Stderr, colorize(useColor, "1", "Processing failed with errors:"))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "- %s\n", colorize(useColor, "31", e.Error()))
	}
}

func readInput(args []string) (source, filePath string, err error) {
	if len(args) == 0 {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "", fmt.Errorf("usage: dtlc <file> or pipe source on stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), path, nil
}

func recordHistory(filePath string, lines []string) {
	dbPath := os.Getenv(config.HistoryDBEnvVar)
	if dbPath == "" || len(lines) == 0 {
		return
	}
	ledger, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history ledger unavailable: %s\n", err)
		return
	}
	defer ledger.Close()
	if err := ledger.RecordRun(filePath, lines, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history ledger write failed: %s\n", err)
	}
}

func runHistoryCommand() {
	dbPath := os.Getenv(config.HistoryDBEnvVar)
	if dbPath == "" {
		fmt.Fprintf(os.Stderr, "%s is not set; nothing to show\n", config.HistoryDBEnvVar)
		os.Exit(1)
	}
	ledger, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer ledger.Close()

	entries, err := ledger.Recent(50)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	for _, e := range entries {
		fmt.Println(history.FormatEntry(e))
	}
}

func colorize(useColor bool, code, s string) string {
	if !useColor {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, s)
}

func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
