// Package repl is the interactive mode of the zeroarg tool: each input line
// is split into arguments shell-style and classified as one run.
package repl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Torm/zeroarg"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-shellwords"
	"github.com/peterh/liner"

	"github.com/Torm/zeroarg/internal/printer"
)

const (
	historyFile = ".zeroarg_history"
	prompt      = "zeroarg> "
)

// Run reads lines until EOF or :quit. Classification errors are printed and
// the loop continues; only terminal failures end the run.
func Run(out io.Writer, format printer.Format) error {
	fmt.Fprintln(out, "zeroarg interactive mode. Ctrl+D or :quit exits.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return errors.Wrap(err, "reading line")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ":quit" {
			return nil
		}
		ln.AppendHistory(line)
		evalLine(out, line, format)
	}
}

// evalLine classifies one input line. Errors go to out rather than aborting:
// showing how a malformed argument fails is part of what the mode is for.
func evalLine(out io.Writer, line string, format printer.Format) {
	args, err := shellwords.Parse(line)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	tokens, err := zeroarg.Classify(args)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	if err := printer.Print(out, tokens, format); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("no home directory, history kept in the working directory", "err", err)
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
