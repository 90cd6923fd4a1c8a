package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/flapboard/pkg/encode"
	"github.com/matzehuels/flapboard/pkg/palette"
	"github.com/matzehuels/flapboard/pkg/pipeline"
)

func TestRenderBoard(t *testing.T) {
	row := encode.Row{
		encode.Char('H'),
		encode.Char('I'),
		encode.Blank(0),
		encode.Color(63),
		{Kind: encode.CellPlaceholder},
	}
	out := renderBoard([]encode.Row{row}, palette.Default())

	if !strings.Contains(out, "HI") {
		t.Errorf("renderBoard() missing text:\n%s", out)
	}
	if !strings.Contains(out, glyphPlaceholder) {
		t.Errorf("renderBoard() missing placeholder:\n%s", out)
	}
}

func TestRenderMeasureTable(t *testing.T) {
	reports := []pipeline.RowReport{{Row: 0}, {Row: 1}}
	reports[0].Length, reports[0].Budget = 5, 22
	reports[1].Length, reports[1].Budget, reports[1].Overflow, reports[1].Amount = 25, 22, true, 3

	out := renderMeasureTable(reports, 6)
	for _, want := range []string{"5/22", "25/22", "over by 3", "fits"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPaletteTable(t *testing.T) {
	out := renderPaletteTable(palette.Default())
	for _, want := range []string{"red", "63", "heart", "<3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteCodeLines(t *testing.T) {
	var sb strings.Builder
	if err := writeCodeLines(&sb, [][]palette.Code{{1, 2}, {63}}); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), "1 2\n63\n"; got != want {
		t.Errorf("writeCodeLines() = %q, want %q", got, want)
	}
}

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"weather.temp=72", "clock.time=12:30"})
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 {
		t.Errorf("got %d values, want 2", len(values))
	}
	if _, err := parseValues([]string{"bad"}); err == nil {
		t.Error("parseValues(bad) = nil error")
	}
}
