package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Torm/zeroarg/internal/printer"
)

func TestEvalLine(t *testing.T) {
	t.Parallel()

	t.Run("classifies a shell-split line", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		evalLine(&buf, `--verbose 'build target' -j=4`, printer.FormatPlain)
		require.Equal(t,
			"flag: verbose\noperand: build target\nattribute: j = 4\n",
			buf.String())
	})

	t.Run("classification error keeps the loop alive", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		evalLine(&buf, "-ab+cd", printer.FormatPlain)
		require.Contains(t, buf.String(), "error:")
		require.Contains(t, buf.String(), "-ab+cd")
	})

	t.Run("unbalanced quote is reported, not fatal", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		evalLine(&buf, `--flag "unclosed`, printer.FormatPlain)
		require.Contains(t, buf.String(), "error:")
	})
}
