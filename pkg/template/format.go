package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
)

var braceEscaper = strings.NewReplacer("{", "{{", "}", "}}")

// Names written into tags must lex back as the same tokens.
var (
	identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	fieldRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(\.[A-Za-z_][A-Za-z0-9_-]*)*$`)
)

// Format renders b in template syntax, one line per row. Fill IDs are not
// preserved. Nodes whose names the template grammar cannot express, such as a
// variable field containing a space, fail with INVALID_TEMPLATE.
func Format(b *content.Board) (string, error) {
	var sb strings.Builder
	for i, row := range b.Rows {
		for j, n := range row {
			switch n := n.(type) {
			case content.Text:
				braceEscaper.WriteString(&sb, n.Value)
			case content.ColorTile:
				if !identRegex.MatchString(n.Color) || n.Color == "fill" {
					return "", unformattable(i, j, "color %q", n.Color)
				}
				fmt.Fprintf(&sb, "{%s}", n.Color)
			case content.Variable:
				if !identRegex.MatchString(n.PluginID) || !fieldRegex.MatchString(n.Field) {
					return "", unformattable(i, j, "variable %q", n.Ref().String())
				}
				fmt.Fprintf(&sb, "{var:%s.%s:%d}", n.PluginID, n.Field, n.MaxLength)
			case content.FillSpace:
				sb.WriteString("{fill}")
			case content.Symbol:
				if !identRegex.MatchString(n.Name) {
					return "", unformattable(i, j, "symbol %q", n.Name)
				}
				fmt.Fprintf(&sb, "{sym:%s}", n.Name)
			default:
				return "", errors.New(errors.ErrCodeConfiguration, "row %d node %d: unrecognized node type %T", i+1, j, n)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func unformattable(row, node int, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidTemplate, "row %d node %d: %s cannot be written as a template tag",
		row+1, node, fmt.Sprintf(format, args...))
}
