package zeroarg

import "unicode/utf8"

// Kind discriminates the three token cases.
type Kind int

const (
	KindOperand Kind = iota
	KindFlag
	KindAttribute
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindAttribute:
		return "attribute"
	default:
		return "operand"
	}
}

// Token is one classified component of an argument. Exactly one case applies:
// an operand carries Text, a flag carries Name, an attribute carries Name and
// Value. Tokens are comparable and safe to use as map keys.
type Token struct {
	Kind  Kind
	Text  string
	Name  string
	Value string
}

// Operand returns a token holding positional content that is never
// interpreted as a flag or attribute.
func Operand(text string) Token {
	return Token{Kind: KindOperand, Text: text}
}

// Flag returns a named switch token with no value.
func Flag(name string) Token {
	return Token{Kind: KindFlag, Name: name}
}

// Attribute returns a named token carrying a value. An empty value is
// distinct from no value at all: attributes only come from arguments where
// "=" occurred.
func Attribute(name, value string) Token {
	return Token{Kind: KindAttribute, Name: name, Value: value}
}

// IsShort reports whether the token is a short-form flag or attribute,
// that is, its name is a single character.
func (t Token) IsShort() bool {
	return t.Name != "" && utf8.RuneCountInString(t.Name) == 1
}

// String renders the token back as a single argument string, using the "-"
// prefix for short names and "--" for long ones. Operands render verbatim.
func (t Token) String() string {
	switch t.Kind {
	case KindFlag:
		return t.prefix() + t.Name
	case KindAttribute:
		return t.prefix() + t.Name + "=" + t.Value
	default:
		return t.Text
	}
}

func (t Token) prefix() string {
	if t.IsShort() {
		return "-"
	}
	return "--"
}
