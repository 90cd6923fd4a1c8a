package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/flapboard/pkg/encode"
	"github.com/matzehuels/flapboard/pkg/palette"
	"github.com/matzehuels/flapboard/pkg/pipeline"
)

// flapColors maps palette color names to terminal colors. Names not listed
// here render as gray tiles.
var flapColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("196"),
	"orange": lipgloss.Color("208"),
	"yellow": lipgloss.Color("226"),
	"green":  lipgloss.Color("34"),
	"blue":   lipgloss.Color("27"),
	"violet": lipgloss.Color("93"),
	"white":  lipgloss.Color("255"),
	"black":  lipgloss.Color("16"),
	"filled": lipgloss.Color("250"),
}

var (
	styleFlap        = lipgloss.NewStyle().Background(colorFlap).Foreground(colorWhite)
	stylePlaceholder = lipgloss.NewStyle().Background(colorFlap).Foreground(colorDim)
	styleBoard       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
)

const glyphPlaceholder = "·"

// renderBoard draws encoded rows the way the board shows them: characters
// on dark flaps, color flaps as colored tiles, unsubstituted variables as
// dots.
func renderBoard(rows []encode.Row, resolver *palette.Resolver) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(renderCell(c, resolver))
		}
		lines[i] = b.String()
	}
	return styleBoard.Render(strings.Join(lines, "\n"))
}

func renderCell(c encode.Cell, resolver *palette.Resolver) string {
	switch c.Kind {
	case encode.CellChar:
		return styleFlap.Render(string(c.Char))
	case encode.CellColor:
		bg := colorGray
		if name, ok := resolver.ColorName(c.Code); ok {
			if col, ok := flapColors[name]; ok {
				bg = col
			}
		}
		return lipgloss.NewStyle().Background(bg).Render(" ")
	case encode.CellPlaceholder:
		return stylePlaceholder.Render(glyphPlaceholder)
	default:
		return styleFlap.Render(" ")
	}
}

// renderMeasureTable lists the measurement of every row. Rows past maxRows
// are marked as not fitting on the board.
func renderMeasureTable(reports []pipeline.RowReport, maxRows int) string {
	rows := make([][]string, len(reports))
	for i, r := range reports {
		status := iconSuccess + " fits"
		switch {
		case r.Overflow:
			status = fmt.Sprintf("%s over by %d", iconError, r.Amount)
		case r.Row >= maxRows:
			status = iconWarning + " no room"
		}
		rows[i] = []string{
			fmt.Sprintf("%d", r.Row+1),
			fmt.Sprintf("%d/%d", r.Length, r.Budget),
			fmt.Sprintf("%d", r.Fills),
			status,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Row", "Length", "Fills", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col != 3 || row < 0 || row >= len(reports) {
				return base
			}
			switch {
			case reports[row].Overflow:
				return base.Foreground(colorRed)
			case reports[row].Row >= maxRows:
				return base.Foreground(colorYellow)
			}
			return base.Foreground(colorGreen)
		})
	return t.Render()
}

// renderPaletteTable lists colors with their codes and symbols with their
// glyphs.
func renderPaletteTable(resolver *palette.Resolver) string {
	t := resolver.Tables()
	var rows [][]string
	for _, name := range resolver.Colors() {
		rows = append(rows, []string{"color", name, fmt.Sprintf("%d", t.Colors[name])})
	}
	for _, name := range resolver.Symbols() {
		rows = append(rows, []string{"symbol", name, t.Symbols[name]})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Name", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 1 {
				return lipgloss.NewStyle().Padding(0, 1).Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
