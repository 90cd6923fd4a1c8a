package encode

import (
	"strings"
	"testing"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
)

func TestEncodeBoard(t *testing.T) {
	b := &content.Board{Rows: []content.Row{
		{content.FillSpace{}, content.Text{Value: "GOOD MORNING"}, content.FillSpace{}},
		{content.Text{Value: "Left"}, content.FillSpace{}, content.Text{Value: "Right"}},
	}}

	rows, err := newEncoder().EncodeBoard(b, 6)
	if err != nil {
		t.Fatalf("EncodeBoard() error = %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("len = %d, want 6", len(rows))
	}
	if want := "     GOOD MORNING     "; rows[0].String() != want {
		t.Errorf("row 0 = %q, want %q", rows[0].String(), want)
	}
	for i := 2; i < 6; i++ {
		if rows[i].String() != strings.Repeat(" ", columns) {
			t.Errorf("row %d = %q, want blank", i, rows[i].String())
		}
	}
}

func TestEncodeBoardReportsFirstFailingRow(t *testing.T) {
	b := &content.Board{Rows: []content.Row{
		{content.Text{Value: "fine"}},
		{content.Text{Value: strings.Repeat("x", 24)}},
		{content.Text{Value: strings.Repeat("x", 30)}},
	}}

	for range 20 {
		_, err := newEncoder().EncodeBoard(b, 6)
		oe, ok := errors.AsOverflow(err)
		if !ok {
			t.Fatalf("error = %v, want OverflowError", err)
		}
		if oe.Row != 1 || oe.Amount != 2 {
			t.Fatalf("OverflowError = %+v, want row 1 amount 2", oe)
		}
	}
}

func TestEncodeBoardWrapsOtherErrors(t *testing.T) {
	b := &content.Board{Rows: []content.Row{
		{content.Text{Value: "fine"}},
		{content.ColorTile{Color: "mauve"}},
	}}
	_, err := newEncoder().EncodeBoard(b, 6)
	if !errors.Is(err, errors.ErrCodeUnknownColor) {
		t.Fatalf("error = %v, want %s", err, errors.ErrCodeUnknownColor)
	}
	if !strings.HasPrefix(err.Error(), "row 2:") {
		t.Errorf("error %q should name row 2", err)
	}
}

func TestEncodeBoardTooManyRows(t *testing.T) {
	b := &content.Board{Rows: make([]content.Row, 7)}
	if _, err := newEncoder().EncodeBoard(b, 6); !errors.Is(err, errors.ErrCodeTooManyRows) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeTooManyRows)
	}
}
