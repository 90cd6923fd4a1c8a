package layout

import (
	"github.com/matzehuels/flapboard/pkg/content"
)

// WillOverflow reports whether row is wider than budget.
// A row exactly budget cells wide fits.
func WillOverflow(row content.Row, budget int) (bool, error) {
	n, err := LineLength(row)
	if err != nil {
		return false, err
	}
	return n > budget, nil
}

// OverflowAmount returns how many cells row exceeds budget by, or 0 if it fits.
func OverflowAmount(row content.Row, budget int) (int, error) {
	n, err := LineLength(row)
	if err != nil {
		return 0, err
	}
	return max(0, n-budget), nil
}

// Measurement is the live status of one row, as shown next to the editor.
type Measurement struct {
	Length   int  `json:"length"`
	Budget   int  `json:"budget"`
	Fills    int  `json:"fills"`
	Overflow bool `json:"overflow"`
	Amount   int  `json:"overflowAmount"`
}

// Remaining returns the number of free cells, which is negative on overflow.
func (m Measurement) Remaining() int {
	return m.Budget - m.Length
}

// Measure computes length and overflow status of row in one pass.
func Measure(row content.Row, budget int) (Measurement, error) {
	n, err := LineLength(row)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{
		Length:   n,
		Budget:   budget,
		Fills:    row.FillCount(),
		Overflow: n > budget,
		Amount:   max(0, n-budget),
	}, nil
}
