package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
	"github.com/matzehuels/flapboard/pkg/palette"
)

const columns = 22

func newEncoder() *Encoder {
	return New(palette.Default(), columns)
}

func TestEncodeRowText(t *testing.T) {
	got, err := newEncoder().EncodeRow(content.Row{content.Text{Value: "Hello World"}})
	if err != nil {
		t.Fatalf("EncodeRow() error = %v", err)
	}
	if len(got) != columns {
		t.Fatalf("len = %d, want %d", len(got), columns)
	}
	if want := "Hello World" + strings.Repeat(" ", 11); got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}
	for i := 11; i < columns; i++ {
		if got[i].Kind != CellBlank || got[i].Code != palette.BlankCode {
			t.Errorf("cell %d = %+v, want blank", i, got[i])
		}
	}
}

func TestEncodeRowColorTiles(t *testing.T) {
	red := content.ColorTile{Color: "red", Code: 63}
	got, err := newEncoder().EncodeRow(content.Row{red, content.Text{Value: " Alert "}, red})
	if err != nil {
		t.Fatalf("EncodeRow() error = %v", err)
	}

	want := Row{Color(63), Char(' '), Char('A'), Char('l'), Char('e'), Char('r'), Char('t'), Char(' '), Color(63)}
	if diff := cmp.Diff(want, got[:9]); diff != "" {
		t.Errorf("EncodeRow() prefix mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRowVariable(t *testing.T) {
	v := content.Variable{PluginID: "weather", Field: "temp", MaxLength: 3}
	got, err := newEncoder().EncodeRow(content.Row{v, content.Text{Value: "F"}})
	if err != nil {
		t.Fatalf("EncodeRow() error = %v", err)
	}

	ref := content.VariableRef{PluginID: "weather", Field: "temp"}
	want := Row{
		{Kind: CellPlaceholder, Code: palette.PlaceholderCode, Ref: ref, Offset: 0},
		{Kind: CellPlaceholder, Code: palette.PlaceholderCode, Ref: ref, Offset: 1},
		{Kind: CellPlaceholder, Code: palette.PlaceholderCode, Ref: ref, Offset: 2},
		Char('F'),
	}
	if diff := cmp.Diff(want, got[:4]); diff != "" {
		t.Errorf("EncodeRow() prefix mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRowFill(t *testing.T) {
	tests := []struct {
		name string
		row  content.Row
		want string
	}{
		{
			name: "left right",
			row:  content.Row{content.Text{Value: "Left"}, content.FillSpace{}, content.Text{Value: "Right"}},
			want: "Left" + strings.Repeat(" ", 13) + "Right",
		},
		{
			name: "centered odd slack",
			row:  content.Row{content.FillSpace{}, content.Text{Value: strings.Repeat("x", 17)}, content.FillSpace{}},
			want: "   " + strings.Repeat("x", 17) + "  ",
		},
		{
			name: "right aligned",
			row:  content.Row{content.FillSpace{}, content.Text{Value: "END"}},
			want: strings.Repeat(" ", 19) + "END",
		},
		{
			name: "full row with fill",
			row:  content.Row{content.Text{Value: strings.Repeat("y", 22)}, content.FillSpace{}},
			want: strings.Repeat("y", 22),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newEncoder().EncodeRow(tt.row)
			if err != nil {
				t.Fatalf("EncodeRow() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("EncodeRow() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestEncodeRowSymbols(t *testing.T) {
	row := content.Row{
		content.Symbol{Name: "sun", Character: "*"},
		content.Symbol{Name: "heart", Character: "<3"},
	}
	got, err := newEncoder().EncodeRow(row)
	if err != nil {
		t.Fatalf("EncodeRow() error = %v", err)
	}
	if !strings.HasPrefix(got.String(), "*<3 ") {
		t.Errorf("EncodeRow() = %q, want prefix %q", got.String(), "*<3 ")
	}
}

func TestEncodeRowErrors(t *testing.T) {
	tests := []struct {
		name     string
		row      content.Row
		wantCode errors.Code
	}{
		{"overflow", content.Row{content.Text{Value: strings.Repeat("x", 26)}}, errors.ErrCodeOverflow},
		{"unknown color", content.Row{content.ColorTile{Color: "mauve"}}, errors.ErrCodeUnknownColor},
		{"unknown symbol", content.Row{content.Symbol{Name: "unicorn", Character: "U"}}, errors.ErrCodeUnknownSymbol},
		{"stale symbol width", content.Row{content.Symbol{Name: "heart", Character: "♥"}}, errors.ErrCodeConfiguration},
		{"nil node", content.Row{nil}, errors.ErrCodeConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newEncoder().EncodeRow(tt.row)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("EncodeRow() error = %v, want %s", err, tt.wantCode)
			}
			if got != nil {
				t.Errorf("EncodeRow() returned partial row %q", got.String())
			}
		})
	}
}

func TestEncodeRowOverflowAmount(t *testing.T) {
	_, err := newEncoder().EncodeRow(content.Row{content.Text{Value: strings.Repeat("x", 26)}})
	oe, ok := errors.AsOverflow(err)
	if !ok {
		t.Fatalf("error = %v, want OverflowError", err)
	}
	if oe.Amount != 4 {
		t.Errorf("Amount = %d, want 4", oe.Amount)
	}
}

func TestEncodeRowAlwaysBudgetLength(t *testing.T) {
	for used := 0; used <= columns; used++ {
		for k := 0; k <= 3; k++ {
			row := content.Row{content.Text{Value: strings.Repeat("z", used)}}
			for range k {
				row = append(row, content.FillSpace{})
			}
			got, err := newEncoder().EncodeRow(row)
			if err != nil {
				t.Fatalf("used=%d k=%d: %v", used, k, err)
			}
			if len(got) != columns {
				t.Errorf("used=%d k=%d: len = %d, want %d", used, k, len(got), columns)
			}
		}
	}
}

func TestEncodeRowOtherGeometry(t *testing.T) {
	enc := New(nil, 15)
	got, err := enc.EncodeRow(content.Row{content.FillSpace{}, content.Text{Value: "NOTE"}, content.FillSpace{}})
	if err != nil {
		t.Fatal(err)
	}
	if want := "      NOTE     "; got.String() != want {
		t.Errorf("EncodeRow() = %q, want %q", got.String(), want)
	}
}

func TestCodes(t *testing.T) {
	enc := newEncoder()
	row, err := enc.EncodeRow(content.Row{content.ColorTile{Color: "green"}, content.Text{Value: "ok 1"}})
	if err != nil {
		t.Fatal(err)
	}
	codes, err := enc.Codes(row)
	if err != nil {
		t.Fatalf("Codes() error = %v", err)
	}
	want := []palette.Code{66, 15, 11, 0, 27}
	if diff := cmp.Diff(want, codes[:5]); diff != "" {
		t.Errorf("Codes() mismatch (-want +got):\n%s", diff)
	}
	if len(codes) != columns {
		t.Errorf("len(Codes()) = %d, want %d", len(codes), columns)
	}

	row, _ = enc.EncodeRow(content.Row{content.Text{Value: "naïve"}})
	if _, err := enc.Codes(row); !errors.Is(err, errors.ErrCodeUnknownCharacter) {
		t.Errorf("Codes(naïve) error = %v, want %s", err, errors.ErrCodeUnknownCharacter)
	}
}

func TestCellKindString(t *testing.T) {
	if CellPlaceholder.String() != "placeholder" || CellKind(9).String() != "unknown" {
		t.Errorf("unexpected CellKind strings %q %q", CellPlaceholder, CellKind(9))
	}
}
