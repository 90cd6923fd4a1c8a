// Package substitute fills the placeholder cells an encoded board reserves
// for variables with their runtime values.
package substitute

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/encode"
	"github.com/matzehuels/flapboard/pkg/palette"
)

// Values maps variable references to their current values.
type Values map[content.VariableRef]string

// Enabled reports whether a plugin's values may be shown.
type Enabled func(pluginID string) bool

// Row returns a copy of row with every placeholder replaced. A value is
// truncated to the cells reserved for it and padded with blanks when
// shorter; missing values and values of disabled plugins leave the cells
// blank. The result has the same length as row. Characters are not resolved
// here; [encode.Encoder.Codes] rejects the ones the board cannot show.
func Row(row encode.Row, values Values, resolver *palette.Resolver, enabled Enabled) encode.Row {
	out := make(encode.Row, len(row))
	blank := encode.Blank(resolver.Blank())

	var (
		ref   content.VariableRef
		runes []rune
	)
	for i, c := range row {
		if c.Kind != encode.CellPlaceholder {
			out[i] = c
			continue
		}
		if c.Offset == 0 || c.Ref != ref {
			ref = c.Ref
			runes = nil
			if v, ok := values[ref]; ok && (enabled == nil || enabled(ref.PluginID)) {
				runes = []rune(norm.NFC.String(v))
			}
		}
		if c.Offset < len(runes) {
			out[i] = encode.Char(runes[c.Offset])
		} else {
			out[i] = blank
		}
	}
	return out
}

// Board applies [Row] to every row.
func Board(rows []encode.Row, values Values, resolver *palette.Resolver, enabled Enabled) []encode.Row {
	out := make([]encode.Row, len(rows))
	for i, row := range rows {
		out[i] = Row(row, values, resolver, enabled)
	}
	return out
}

// ParseRef parses "plugin.field". The field may itself contain dots.
func ParseRef(s string) (content.VariableRef, error) {
	plugin, field, ok := strings.Cut(s, ".")
	if !ok || plugin == "" || field == "" {
		return content.VariableRef{}, fmt.Errorf("invalid variable %q, want plugin.field", s)
	}
	return content.VariableRef{PluginID: plugin, Field: field}, nil
}

// ParseAssignment parses "plugin.field=value".
func ParseAssignment(s string) (content.VariableRef, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return content.VariableRef{}, "", fmt.Errorf("invalid assignment %q, want plugin.field=value", s)
	}
	ref, err := ParseRef(key)
	if err != nil {
		return content.VariableRef{}, "", fmt.Errorf("invalid assignment %q, want plugin.field=value", s)
	}
	return ref, value, nil
}
