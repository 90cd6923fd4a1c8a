package layout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
)

// Width returns the number of cells n occupies, with fill space counted as 0.
// Unrecognized nodes (including nil) fail with a CONFIGURATION error.
func Width(n content.Node) (int, error) {
	switch n := n.(type) {
	case content.Text:
		return utf8.RuneCountInString(n.Value), nil
	case content.ColorTile:
		return 1, nil
	case content.Variable:
		if err := errors.ValidateMaxLength(n.MaxLength); err != nil {
			return 0, err
		}
		return n.MaxLength, nil
	case content.FillSpace:
		return 0, nil
	case content.Symbol:
		return utf8.RuneCountInString(n.Character), nil
	case nil:
		return 0, errors.New(errors.ErrCodeConfiguration, "nil node")
	default:
		return 0, errors.New(errors.ErrCodeConfiguration, "unrecognized node type %T (kind %v)", n, n.Kind())
	}
}

// LineLength sums the widths of every node in row. An empty row has length 0.
// A sum that would not fit in an int fails with CONFIGURATION rather than
// wrapping.
func LineLength(row content.Row) (int, error) {
	total := 0
	for i, n := range row {
		w, err := Width(n)
		if err != nil {
			return 0, fmt.Errorf("node %d: %w", i, err)
		}
		if w > math.MaxInt-total {
			return 0, errors.New(errors.ErrCodeConfiguration, "node %d: line length exceeds %d", i, math.MaxInt)
		}
		total += w
	}
	return total, nil
}
