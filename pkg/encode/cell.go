package encode

import (
	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/palette"
)

// CellKind says what produced a cell.
type CellKind int

const (
	CellBlank CellKind = iota
	CellChar
	CellColor
	CellPlaceholder
)

var cellKindNames = [...]string{"blank", "char", "color", "placeholder"}

func (k CellKind) String() string {
	if int(k) < len(cellKindNames) {
		return cellKindNames[k]
	}
	return "unknown"
}

// Cell is one physical position on the board.
//
// Char is set for CellChar. Code is the native flap code for every kind except
// CellChar, whose code is resolved by [Encoder.Codes] right before
// transmission. Placeholder cells carry the variable they are reserved for and
// their offset within it.
type Cell struct {
	Kind   CellKind
	Char   rune
	Code   palette.Code
	Ref    content.VariableRef
	Offset int
}

// Blank returns an empty cell with the given code.
func Blank(code palette.Code) Cell {
	return Cell{Kind: CellBlank, Code: code}
}

// Char returns a character cell.
func Char(ch rune) Cell {
	return Cell{Kind: CellChar, Char: ch}
}

// Color returns a color flap cell.
func Color(code palette.Code) Cell {
	return Cell{Kind: CellColor, Code: code}
}

// Row is a budget-exact sequence of cells.
type Row []Cell

// String renders the row as plain text: characters as-is, color flaps as '#',
// placeholders as '?', blanks as spaces. Intended for logs and tests.
func (r Row) String() string {
	out := make([]rune, len(r))
	for i, c := range r {
		switch c.Kind {
		case CellChar:
			out[i] = c.Char
		case CellColor:
			out[i] = '#'
		case CellPlaceholder:
			out[i] = '?'
		default:
			out[i] = ' '
		}
	}
	return string(out)
}
