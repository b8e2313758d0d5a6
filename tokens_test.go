package zeroarg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func classified(t *testing.T, args ...string) Tokens {
	t.Helper()
	tokens, err := Classify(args)
	require.NoError(t, err)
	return tokens
}

func TestTokens_Operands(t *testing.T) {
	t.Parallel()
	tokens := classified(t, "a", "--f", "b", "--", "-c")
	require.Equal(t, []string{"a", "b", "-c"}, tokens.Operands())
	require.Empty(t, Tokens(nil).Operands())
}

func TestTokens_FlagNames(t *testing.T) {
	t.Parallel()
	// Repeated flags stay repeated, in order.
	tokens := classified(t, "-vv", "--verbose", "x=1")
	require.Equal(t, []string{"v", "v", "verbose"}, tokens.FlagNames())
}

func TestTokens_Attributes(t *testing.T) {
	t.Parallel()
	tokens := classified(t, "--a=1", "-b=2", "op")
	require.Equal(t, Tokens{Attribute("a", "1"), Attribute("b", "2")}, tokens.Attributes())
}

func TestTokens_HasFlag(t *testing.T) {
	t.Parallel()
	tokens := classified(t, "--force", "force")
	require.True(t, tokens.HasFlag("force"))
	require.False(t, tokens.HasFlag("f"))
	// Operand text never matches as a flag name.
	require.False(t, classified(t, "force").HasFlag("force"))
}

func TestTokens_LookupAttribute(t *testing.T) {
	t.Parallel()
	tokens := classified(t, "--a=first", "--a=second", "--b=")

	value, has := tokens.LookupAttribute("a")
	require.True(t, has)
	require.Equal(t, "first", value)

	value, has = tokens.LookupAttribute("b")
	require.True(t, has)
	require.Equal(t, "", value)

	_, has = tokens.LookupAttribute("missing")
	require.False(t, has)
}

func TestTokens_Strings(t *testing.T) {
	t.Parallel()
	tokens := Tokens{
		Flag("v"),
		Flag("verbose"),
		Attribute("j", "4"),
		Attribute("level", "debug"),
		Operand("build"),
	}
	require.Equal(t,
		[]string{"-v", "--verbose", "-j=4", "--level=debug", "build"},
		tokens.Strings())
}

func TestToken_IsShort(t *testing.T) {
	t.Parallel()
	require.True(t, Flag("a").IsShort())
	require.True(t, Flag("é").IsShort())
	require.True(t, Attribute("x", "long value").IsShort())
	require.False(t, Flag("ab").IsShort())
	require.False(t, Operand("a").IsShort())
}
