// Package cli reads the zeroarg tool's own options. There is no option
// schema: the tool's argument list is classified by the library itself, and
// recognized flags and attributes are consumed from the front of the token
// stream. The first token the tool does not recognize starts the payload.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Torm/zeroarg"
	"github.com/cockroachdb/errors"

	"github.com/Torm/zeroarg/internal/printer"
)

// ExitError carries a process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options are the tool options recognized at the front of the argument list.
type Options struct {
	Format   printer.Format
	LogLevel slog.Level
	REPL     bool
	Version  bool
	Help     bool
}

// Parse classifies args and splits them into tool options and the payload
// token sequence. A malformed argument anywhere in args is reported as an
// ExitError with code 2: the whole list goes through one classification run,
// so the payload is rejected with the same fail-fast rule the library
// applies. Putting "--" before the payload protects option-shaped payload
// arguments from being consumed here.
func Parse(args []string) (*Options, zeroarg.Tokens, error) {
	tokens, err := zeroarg.Classify(args)
	if err != nil {
		return nil, nil, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{Format: printer.FormatColor, LogLevel: slog.LevelInfo}
	i := 0
consume:
	for ; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t.Kind == zeroarg.KindFlag && t.Name == "repl":
			opts.REPL = true
		case t.Kind == zeroarg.KindFlag && (t.Name == "version" || t.Name == "V"):
			opts.Version = true
		case t.Kind == zeroarg.KindFlag && (t.Name == "help" || t.Name == "h"):
			opts.Help = true
		case t.Kind == zeroarg.KindAttribute && t.Name == "format":
			format, err := printer.ParseFormat(t.Value)
			if err != nil {
				return nil, nil, &ExitError{Code: 2, Message: err.Error()}
			}
			opts.Format = format
		case t.Kind == zeroarg.KindAttribute && t.Name == "log-level":
			level, err := parseLogLevel(t.Value)
			if err != nil {
				return nil, nil, &ExitError{Code: 2, Message: err.Error()}
			}
			opts.LogLevel = level
		default:
			break consume
		}
	}
	slog.Debug("tool options consumed", "consumed", i, "payload", len(tokens)-i)
	return opts, tokens[i:], nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Newf("unknown log-level %q: must be debug, info, warn or error", s)
}

// PrintUsage writes the tool's help text.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, `zeroarg - classify command-line arguments without an option schema.

Usage:
  zeroarg [tool options] [--] ARG...
  zeroarg --repl

Arguments after the tool options are classified into operands, flags and
attributes and printed one per token. With no arguments the interactive
mode starts. Put "--" in front of the payload to keep option-shaped
arguments (such as --format=json) from being read as tool options.

Tool options:
  --format=FORMAT      Output rendering: color, plain, table or json.
  --log-level=LEVEL    Log verbosity: debug, info, warn or error.
  --repl               Read lines interactively and classify each one.
  --version, -V        Print the version.
  --help, -h           Print this text.
`)
}
