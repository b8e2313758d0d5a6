// Command zeroarg classifies its own argument list and prints the resulting
// tokens, or classifies lines interactively. The tool has no option schema of
// its own: it is configured by the same classifier it demonstrates.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/Torm/zeroarg/internal/cli"
	"github.com/Torm/zeroarg/internal/printer"
	"github.com/Torm/zeroarg/internal/repl"
)

var version = "dev"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	opts, payload, err := cli.Parse(args)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: opts.LogLevel,
	})))

	switch {
	case opts.Help:
		cli.PrintUsage(out)
		return nil
	case opts.Version:
		fmt.Fprintln(out, version)
		return nil
	case opts.REPL || len(payload) == 0:
		return repl.Run(out, opts.Format)
	}

	slog.Debug("printing payload", "tokens", len(payload), "format", opts.Format)
	return printer.Print(out, payload, opts.Format)
}
