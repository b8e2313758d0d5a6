// Package zeroarg classifies command-line arguments into operands, flags and
// attributes using syntax alone, with no option schema to set up.
//
// A flag is introduced by "--", a single "-" or "+"; "name=value" pairs form
// attributes; several named options can share one argument joined by "+"; a
// single "-" compounds single-character flags. A bare "-", "--" or "+" ends
// option interpretation: everything after it is an operand, verbatim.
package zeroarg

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Classify classifies the full ordered argument sequence. The token order
// follows the argument order, and within one compound argument the source
// left-to-right order. Classification halts at the first malformed argument
// and returns an *ArgumentError naming it; no tokens are returned then.
func Classify(args []string) (Tokens, error) {
	var tokens Tokens
	if err := Iterate(args, func(token Token) bool {
		tokens = append(tokens, token)
		return true
	}); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Iterate classifies args one token at a time, calling yield for each token
// in order. Returning false from yield stops the iteration early with no
// error. A malformed argument stops it with an *ArgumentError; tokens of the
// preceding arguments have been yielded by then.
func Iterate(args []string, yield func(Token) bool) error {
	delimiterSeen := false
	for i, arg := range args {
		if delimiterSeen {
			if !yield(Operand(arg)) {
				return nil
			}
			continue
		}
		if arg == "-" || arg == "--" || arg == "+" {
			// The delimiter is a mode switch, not data: it yields no token
			// itself and cannot be revoked by a later argument.
			delimiterSeen = true
			continue
		}
		tokens, err := classifyArgument(arg)
		if err != nil {
			return &ArgumentError{Index: i, Arg: arg, cause: err}
		}
		for _, token := range tokens {
			if !yield(token) {
				return nil
			}
		}
	}
	return nil
}

// classifyArgument segments a single argument. Bare delimiters never reach
// this point.
func classifyArgument(arg string) ([]Token, error) {
	switch {
	case strings.HasPrefix(arg, "--"):
		return parseNamedBody(arg[2:])
	case strings.HasPrefix(arg, "+"):
		return parseNamedBody(arg[1:])
	case strings.HasPrefix(arg, "-"):
		return parseShortBody(arg[1:])
	case strings.ContainsAny(arg, "+="):
		// Unprefixed "a+b" or "a=b" forms still name options. A bare word
		// without "+" and "=" is indistinguishable from data and stays an
		// operand.
		return parseNamedBody(arg)
	default:
		return []Token{Operand(arg)}, nil
	}
}

// parseNamedBody splits a named body on "+" into flag components, the last
// of which may carry an "=value" suffix making it an attribute.
func parseNamedBody(body string) ([]Token, error) {
	if body == "" {
		return nil, ErrEmptyBody
	}
	components := strings.Split(body, "+")
	tokens := make([]Token, 0, len(components))
	for i, component := range components {
		if component == "" {
			return nil, errors.Wrap(ErrMalformedNamedBody, "empty component")
		}
		name, value, hasValue := strings.Cut(component, "=")
		if !hasValue {
			tokens = append(tokens, Flag(component))
			continue
		}
		if i != len(components)-1 {
			return nil, errors.Wrap(ErrMalformedNamedBody, `"=" before the final component`)
		}
		if name == "" {
			return nil, errors.Wrap(ErrMalformedNamedBody, "attribute with no name")
		}
		tokens = append(tokens, Attribute(name, value))
	}
	return tokens, nil
}

// parseShortBody reads a short body as a run of single-character flags with
// at most one trailing "=value". The character right before "=" names the
// attribute; "+" never compounds short options.
func parseShortBody(body string) ([]Token, error) {
	if body == "" {
		return nil, ErrEmptyBody
	}
	if strings.ContainsRune(body, '+') {
		return nil, errors.Wrap(ErrMalformedShortBody, `"+" in a short option run`)
	}
	names, value, hasValue := strings.Cut(body, "=")
	if hasValue {
		if names == "" {
			return nil, errors.Wrap(ErrMalformedShortBody, "attribute with no name")
		}
		if strings.ContainsRune(value, '=') {
			return nil, errors.Wrap(ErrMalformedShortBody, `second "="`)
		}
	}
	runes := []rune(names)
	tokens := make([]Token, 0, len(runes))
	if hasValue {
		for _, r := range runes[:len(runes)-1] {
			tokens = append(tokens, Flag(string(r)))
		}
		return append(tokens, Attribute(string(runes[len(runes)-1]), value)), nil
	}
	for _, r := range runes {
		tokens = append(tokens, Flag(string(r)))
	}
	return tokens, nil
}
