package zeroarg

import (
	"github.com/samber/lo"
)

// Tokens is an ordered classification result.
type Tokens []Token

// Operands returns the content of every operand token, in order.
func (ts Tokens) Operands() []string {
	return lo.FilterMap(ts, func(t Token, _ int) (string, bool) {
		return t.Text, t.Kind == KindOperand
	})
}

// FlagNames returns the name of every flag token, in order. Repeated flags
// are kept repeated.
func (ts Tokens) FlagNames() []string {
	return lo.FilterMap(ts, func(t Token, _ int) (string, bool) {
		return t.Name, t.Kind == KindFlag
	})
}

// Attributes returns the attribute tokens, in order.
func (ts Tokens) Attributes() Tokens {
	return lo.Filter(ts, func(t Token, _ int) bool {
		return t.Kind == KindAttribute
	})
}

// HasFlag reports whether a flag with the given name occurs.
func (ts Tokens) HasFlag(name string) bool {
	return lo.ContainsBy(ts, func(t Token) bool {
		return t.Kind == KindFlag && t.Name == name
	})
}

// LookupAttribute returns the value of the first attribute with the given
// name.
func (ts Tokens) LookupAttribute(name string) (value string, has bool) {
	token, has := lo.Find(ts, func(t Token) bool {
		return t.Kind == KindAttribute && t.Name == name
	})
	return token.Value, has
}

// Strings renders every token back to its canonical argument form.
func (ts Tokens) Strings() []string {
	return lo.Map(ts, func(t Token, _ int) string {
		return t.String()
	})
}
