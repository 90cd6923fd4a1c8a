package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/flapboard/pkg/content"
)

const budget = 22

func TestWillOverflow(t *testing.T) {
	tests := []struct {
		name       string
		row        content.Row
		wantOver   bool
		wantAmount int
	}{
		{"empty", content.Row{}, false, 0},
		{"short", content.Row{content.Text{Value: "Hello World"}}, false, 0},
		{"exactly budget", content.Row{content.Text{Value: strings.Repeat("X", 22)}}, false, 0},
		{"one over", content.Row{content.Text{Value: strings.Repeat("X", 23)}}, true, 1},
		{"26 chars", content.Row{content.Text{Value: strings.Repeat("X", 26)}}, true, 4},
		{"fills do not rescue overflow", content.Row{content.Text{Value: strings.Repeat("X", 23)}, content.FillSpace{}}, true, 1},
		{"variable pushes over", content.Row{content.Text{Value: strings.Repeat("X", 20)}, content.Variable{PluginID: "p", Field: "f", MaxLength: 5}}, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			over, err := WillOverflow(tt.row, budget)
			if err != nil {
				t.Fatalf("WillOverflow() error = %v", err)
			}
			if over != tt.wantOver {
				t.Errorf("WillOverflow() = %v, want %v", over, tt.wantOver)
			}

			amount, err := OverflowAmount(tt.row, budget)
			if err != nil {
				t.Fatalf("OverflowAmount() error = %v", err)
			}
			if amount != tt.wantAmount {
				t.Errorf("OverflowAmount() = %d, want %d", amount, tt.wantAmount)
			}
		})
	}
}

func TestOverflowAmountMatchesLineLength(t *testing.T) {
	for n := 0; n <= 40; n++ {
		row := content.Row{content.Text{Value: strings.Repeat("a", n)}}
		length, _ := LineLength(row)
		amount, _ := OverflowAmount(row, budget)
		if want := max(0, length-budget); amount != want {
			t.Errorf("n=%d: OverflowAmount() = %d, want %d", n, amount, want)
		}
	}
}

func TestOverflowPropagatesErrors(t *testing.T) {
	row := content.Row{nil}
	if _, err := WillOverflow(row, budget); err == nil {
		t.Error("WillOverflow() error = nil, want error")
	}
	if _, err := OverflowAmount(row, budget); err == nil {
		t.Error("OverflowAmount() error = nil, want error")
	}
}

func TestMeasure(t *testing.T) {
	row := content.Row{content.Text{Value: "Left"}, content.FillSpace{}, content.Text{Value: "Right"}}
	got, err := Measure(row, budget)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	want := Measurement{Length: 9, Budget: 22, Fills: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Measure() mismatch (-want +got):\n%s", diff)
	}
	if got.Remaining() != 13 {
		t.Errorf("Remaining() = %d, want 13", got.Remaining())
	}

	over, _ := Measure(content.Row{content.Text{Value: strings.Repeat("X", 26)}}, budget)
	if !over.Overflow || over.Amount != 4 || over.Remaining() != -4 {
		t.Errorf("Measure(26 chars) = %+v, want overflow by 4", over)
	}
}
