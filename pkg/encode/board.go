package encode

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
)

// EncodeBoard encodes every row of b and pads the result with blank rows up
// to rows. Rows are encoded concurrently; the error of the lowest failing row
// index is returned, so results are deterministic.
//
// Overflow errors are annotated with the row index. A board with more than
// rows rows fails with TOO_MANY_ROWS.
func (e *Encoder) EncodeBoard(b *content.Board, rows int) ([]Row, error) {
	if len(b.Rows) > rows {
		return nil, errors.New(errors.ErrCodeTooManyRows, "board has %d rows, display has %d", len(b.Rows), rows)
	}

	out := make([]Row, rows)
	errs := make([]error, len(b.Rows))

	var g errgroup.Group
	for i, row := range b.Rows {
		g.Go(func() error {
			cells, err := e.EncodeRow(row)
			if err != nil {
				errs[i] = annotate(i, err)
				return errs[i]
			}
			out[i] = cells
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	for i := len(b.Rows); i < rows; i++ {
		out[i] = e.BlankRow()
	}
	return out, nil
}

func annotate(row int, err error) error {
	if oe, ok := errors.AsOverflow(err); ok {
		annotated := *oe
		annotated.Row = row
		return &annotated
	}
	return fmt.Errorf("row %d: %w", row+1, err)
}
