// Package printer renders classified token sequences for the zeroarg tool.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Torm/zeroarg"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Format selects an output rendering.
type Format string

const (
	FormatColor Format = "color"
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatColor, FormatPlain, FormatTable, FormatJSON:
		return Format(s), nil
	}
	return "", errors.Newf("unknown format %q: must be color, plain, table or json", s)
}

var kindColors = map[zeroarg.Kind]*color.Color{
	zeroarg.KindOperand:   color.New(color.FgGreen),
	zeroarg.KindFlag:      color.New(color.FgBlue),
	zeroarg.KindAttribute: color.New(color.FgYellow),
}

// Print writes one entry per token to w, in token order.
func Print(w io.Writer, tokens zeroarg.Tokens, format Format) error {
	switch format {
	case FormatTable:
		return printTable(w, tokens)
	case FormatJSON:
		return printJSON(w, tokens)
	case FormatPlain:
		return printLines(w, tokens, false)
	default:
		return printLines(w, tokens, true)
	}
}

func printLines(w io.Writer, tokens zeroarg.Tokens, colored bool) error {
	for _, t := range tokens {
		kind := t.Kind.String()
		if colored {
			kind = kindColors[t.Kind].Sprint(kind)
		}
		var err error
		switch t.Kind {
		case zeroarg.KindFlag:
			_, err = fmt.Fprintf(w, "%s: %s\n", kind, t.Name)
		case zeroarg.KindAttribute:
			_, err = fmt.Fprintf(w, "%s: %s = %s\n", kind, t.Name, t.Value)
		default:
			_, err = fmt.Fprintf(w, "%s: %s\n", kind, t.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printTable(w io.Writer, tokens zeroarg.Tokens) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"#", "Kind", "Name", "Value"})
	for i, t := range tokens {
		switch t.Kind {
		case zeroarg.KindFlag:
			tw.AppendRow(table.Row{i, t.Kind.String(), t.Name, ""})
		case zeroarg.KindAttribute:
			tw.AppendRow(table.Row{i, t.Kind.String(), t.Name, t.Value})
		default:
			tw.AppendRow(table.Row{i, t.Kind.String(), "", t.Text})
		}
	}
	tw.Render()
	return nil
}

// tokenJSON keeps the empty-but-present attribute value distinguishable from
// a flag, which has no value at all.
type tokenJSON struct {
	Kind  string  `json:"kind"`
	Text  *string `json:"text,omitempty"`
	Name  string  `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}

func printJSON(w io.Writer, tokens zeroarg.Tokens) error {
	enc := json.NewEncoder(w)
	for _, t := range tokens {
		out := tokenJSON{Kind: t.Kind.String()}
		switch t.Kind {
		case zeroarg.KindFlag:
			out.Name = t.Name
		case zeroarg.KindAttribute:
			out.Name = t.Name
			value := t.Value
			out.Value = &value
		default:
			text := t.Text
			out.Text = &text
		}
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "encoding token")
		}
	}
	return nil
}
