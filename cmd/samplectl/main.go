// samplectl draws configuration-space samples from the command line.
//
// Usage:
//
//	samplectl [global options] <command> [command options]
//
// Global options:
//
//	--seed N          process seed (0 or unset: derived from the clock)
//	--count N         samples to draw (default 10)
//	--format F        csv | json (one JSON array per line)
//	--summary         log per-column mean and standard deviation
//	--config FILE     YAML or JSON file with the same keys
//	--log-level L     trace | debug | info | warn | error
//	--log-format F    console | json
//
// Commands:
//
//	box        --lower a,b,... --upper a,b,...
//	se2        --lower x,y --upper x,y
//	se2-disk   --center x,y --ref x,y --rmin r --rmax r
//	se3        --lower x,y,z --upper x,y,z [--quat]
//	se3-ball   --radius r [--quat]
//	seed       print the process seed
//
// Settings resolve as defaults < config file < SAMPLECTL_* env < flags. The
// seed in effect is logged to stderr so any run can be replayed with --seed.
//
// Exit codes:
//
//	0: success
//	1: runtime failure (I/O)
//	2: usage error (bad flag, bound or config value)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// Version can be overridden with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// createApp wires the global flags and commands. Samples go to out, logs and
// diagnostics to errOut.
func createApp(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "samplectl",
		Usage:     "draw seeded samples from R^N, SE(2) and SE(3)",
		Version:   Version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.UintFlag{Name: flagSeed, Aliases: []string{"s"}, Usage: "process seed (0: from the clock)"},
			&cli.IntFlag{Name: flagCount, Aliases: []string{"n"}, Usage: "number of samples"},
			&cli.StringFlag{Name: flagFormat, Aliases: []string{"f"}, Usage: "output format: csv or json"},
			&cli.BoolFlag{Name: flagSummary, Usage: "log per-column mean and standard deviation"},
			&cli.StringFlag{Name: flagConfig, Aliases: []string{"c"}, Usage: "YAML or JSON config file"},
			&cli.StringFlag{Name: flagLogLevel, Usage: "log level"},
			&cli.StringFlag{Name: flagLogFormat, Usage: "log format: console or json"},
		},
		Commands: createCommands(out, errOut),
		// run() maps errors to exit codes; keep urfave/cli away from os.Exit.
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(errOut, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	app := createApp(out, errOut)
	if err := app.Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(errOut, "usage error: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			fmt.Fprintf(errOut, "usage error: %v\n", err)
			return 2
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 1
	}
	return 0
}

// usageError marks a bad flag or bound value supplied by the user.
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *usageError) Unwrap() error { return e.err }

func usagef(err error, format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...), err: err}
}

// isCLIUsageError recognizes the flag-parsing failures urfave/cli reports as
// plain errors.
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, s := range []string{
		"flag provided but not defined",
		"invalid value",
		"Required flag",
		"No help topic",
		"command not found",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
