package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/jobseq/internal/app"
	"github.com/specialistvlad/jobseq/internal/sequencer"
	"github.com/specialistvlad/jobseq/internal/text_adapter"
)

// Exit codes returned by the jobseq binary.
const (
	ExitFailure    = 1
	ExitUsage      = 2
	ExitSequencing = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("jobseq", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
jobseq - Orders jobs so that every job runs after the job it depends on.

Usage:
  jobseq [options] [PATH]
  jobseq [options] -jobs "a => \nb => c\nc => "

Arguments:
  PATH
    A jobs file (.jobs, .txt, .hcl, .yaml, .yml), a directory of jobs
    files, or '-' to read the text grammar from stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	jobsFlag := flagSet.String("jobs", "", "Inline job list in the 'job => dependency' grammar.")
	fileFlag := flagSet.String("file", "", "Path to the jobs file or directory.")
	fFlag := flagSet.String("f", "", "Path to the jobs file or directory (shorthand).")
	separatorFlag := flagSet.String("separator", "", "Separator placed between jobs in text output.")
	outputFlag := flagSet.String("output", "text", "Output format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	jobsSet := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "jobs" {
			jobsSet = true
		}
	})

	path := ""
	if *fileFlag != "" {
		path = *fileFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input determined.", "path", path, "inline", jobsSet)

	if path == "" && !jobsSet {
		slog.Debug("No input provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if path != "" && jobsSet {
		return nil, false, &ExitError{Code: ExitUsage, Message: "a jobs path and -jobs cannot be used together"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:    path,
		InlineJobs:   *jobsFlag,
		Separator:    *separatorFlag,
		OutputFormat: strings.ToLower(*outputFlag),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// ExitErrorFor maps an application error to the exit code reported to the
// shell. Nil stays nil and an existing ExitError is returned unchanged.
func ExitErrorFor(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	switch {
	case errors.Is(err, sequencer.ErrSelfDependency):
		return &ExitError{Code: ExitSequencing, Message: "jobs can't depend on themselves: " + err.Error()}
	case errors.Is(err, sequencer.ErrCircularReference):
		return &ExitError{Code: ExitSequencing, Message: "jobs can't have circular dependencies: " + err.Error()}
	case errors.Is(err, text_adapter.ErrInvalidFormat):
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	default:
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
}
