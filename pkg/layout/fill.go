package layout

import (
	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
)

// Distribute computes the effective width of each fill-space node in row, in
// left-to-right order, so that the row totals exactly budget cells.
//
// The slack (budget minus the width of all other nodes) is split evenly; when
// it does not divide, the earliest fill nodes get one extra cell each. The
// result is nil when row has no fill nodes, in which case the slack stays
// unused as trailing blanks. An overflowing row fails with an
// [errors.OverflowError].
func Distribute(row content.Row, budget int) ([]int, error) {
	used, err := LineLength(row)
	if err != nil {
		return nil, err
	}
	if used > budget {
		return nil, errors.NewOverflow(used, budget)
	}

	k := row.FillCount()
	if k == 0 {
		return nil, nil
	}
	return split(budget-used, k), nil
}

// split divides slack into k parts that differ by at most one, larger parts
// first.
func split(slack, k int) []int {
	base, extra := slack/k, slack%k
	widths := make([]int, k)
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}
