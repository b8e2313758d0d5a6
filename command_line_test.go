package zeroarg

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommandLine(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"some-binary", "--mode=fast", "target"}
	tokens, err := ParseCommandLine()
	require.NoError(t, err)
	require.Equal(t, Tokens{Attribute("mode", "fast"), Operand("target")}, tokens)
}
