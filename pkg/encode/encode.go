// Package encode turns rows of board content into fixed-length cell arrays.
//
// The encoder is the last step before transmission. It refuses rows that do
// not fit, spreads unused width over fill-space nodes, resolves colors and
// symbol glyphs through a [palette.Resolver], and reserves placeholder cells
// for variables. Every returned row is exactly as wide as the board; any
// other outcome is an error and no partial row is returned.
package encode

import (
	"fmt"
	"unicode/utf8"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
	"github.com/matzehuels/flapboard/pkg/layout"
	"github.com/matzehuels/flapboard/pkg/palette"
)

// Encoder encodes rows for one board geometry and palette.
// It holds no mutable state and is safe for concurrent use.
type Encoder struct {
	resolver *palette.Resolver
	columns  int
}

// New returns an encoder for rows of the given width.
func New(resolver *palette.Resolver, columns int) *Encoder {
	if resolver == nil {
		resolver = palette.Default()
	}
	return &Encoder{resolver: resolver, columns: columns}
}

// Columns returns the column budget.
func (e *Encoder) Columns() int { return e.columns }

// Resolver returns the palette used for lookups.
func (e *Encoder) Resolver() *palette.Resolver { return e.resolver }

// EncodeRow returns the cells of row, exactly Columns() long.
//
// Rows wider than the budget fail with an [errors.OverflowError]. Unknown
// colors and symbols fail with UNKNOWN_COLOR and UNKNOWN_SYMBOL. A length
// mismatch after encoding is reported as INTERNAL_INVARIANT.
func (e *Encoder) EncodeRow(row content.Row) (Row, error) {
	fills, err := layout.Distribute(row, e.columns)
	if err != nil {
		return nil, err
	}

	cells := make(Row, 0, e.columns)
	blank := Blank(e.resolver.Blank())
	fill := 0
	for i, n := range row {
		switch n := n.(type) {
		case content.Text:
			for _, ch := range n.Value {
				cells = append(cells, Char(ch))
			}
		case content.ColorTile:
			code, err := e.resolver.ResolveColor(n.Color)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			cells = append(cells, Color(code))
		case content.Variable:
			ref := n.Ref()
			for off := range n.MaxLength {
				cells = append(cells, Cell{
					Kind:   CellPlaceholder,
					Code:   e.resolver.Placeholder(),
					Ref:    ref,
					Offset: off,
				})
			}
		case content.FillSpace:
			for range fills[fill] {
				cells = append(cells, blank)
			}
			fill++
		case content.Symbol:
			glyph, err := e.resolver.ResolveSymbol(n.Name)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			if utf8.RuneCountInString(glyph) != utf8.RuneCountInString(n.Character) {
				return nil, errors.New(errors.ErrCodeConfiguration,
					"node %d: symbol %q renders as %q but the node declares %q", i, n.Name, glyph, n.Character)
			}
			for _, ch := range glyph {
				cells = append(cells, Char(ch))
			}
		default:
			// Distribute already rejects unknown nodes via Width.
			return nil, errors.New(errors.ErrCodeConfiguration, "node %d: unrecognized node type %T", i, n)
		}
	}

	// Without fill space the row is left-aligned.
	if len(fills) == 0 {
		for len(cells) < e.columns {
			cells = append(cells, blank)
		}
	}

	if len(cells) != e.columns {
		return nil, errors.New(errors.ErrCodeInvariant,
			"encoded row has %d cells, want %d", len(cells), e.columns)
	}
	return cells, nil
}

// BlankRow returns a row of blank cells.
func (e *Encoder) BlankRow() Row {
	row := make(Row, e.columns)
	for i := range row {
		row[i] = Blank(e.resolver.Blank())
	}
	return row
}

// Codes converts cells to native flap codes, resolving characters through the
// palette. Unsupported characters fail with UNKNOWN_CHARACTER.
func (e *Encoder) Codes(row Row) ([]palette.Code, error) {
	codes := make([]palette.Code, len(row))
	for i, c := range row {
		if c.Kind != CellChar {
			codes[i] = c.Code
			continue
		}
		code, err := e.resolver.ResolveChar(c.Char)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		codes[i] = code
	}
	return codes, nil
}
