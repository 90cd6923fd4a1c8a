package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flapboard/pkg/board"
	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/encode"
	"github.com/matzehuels/flapboard/pkg/errors"
	"github.com/matzehuels/flapboard/pkg/layout"
	"github.com/matzehuels/flapboard/pkg/template"
)

// liveCommand creates the live command: an interactive measurer for a single
// template line.
func (c *CLI) liveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Type a row and watch its length and preview update",
		Long: `Type a row in template syntax and watch its length, overflow and
preview update on every keystroke. The final line is printed on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(newLiveModel(cfg), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(liveModel); ok && len(m.input) > 0 {
				fmt.Println(string(m.input))
			}
			return nil
		},
	}
}

var (
	liveOverflowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	liveCursorStyle   = lipgloss.NewStyle().Foreground(colorCyan)
)

// liveModel is the bubbletea model behind the live command.
type liveModel struct {
	cfg     *board.Config
	encoder *encode.Encoder

	input   []rune
	measure layout.Measurement
	preview encode.Row
	err     error
}

func newLiveModel(cfg *board.Config) liveModel {
	m := liveModel{
		cfg:     cfg,
		encoder: encode.New(cfg.Palette, cfg.Columns),
	}
	m.refresh()
	return m
}

func (m liveModel) Init() tea.Cmd {
	return nil
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// refresh re-parses the input and recomputes measurement and preview.
// Incomplete tags keep the last good measurement and report the parse error.
func (m *liveModel) refresh() {
	b, err := template.ParseString(string(m.input), m.cfg.Palette)
	if err != nil {
		m.err = err
		m.preview = nil
		return
	}
	var row content.Row
	if len(b.Rows) > 0 {
		row = b.Rows[0]
	}

	meas, err := layout.Measure(row, m.cfg.Columns)
	if err != nil {
		m.err = err
		m.preview = nil
		return
	}
	m.measure = meas
	m.err = nil
	m.preview = nil
	if meas.Overflow {
		return
	}
	m.preview, m.err = m.encoder.EncodeRow(row)
}

func (m liveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Live measure"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d columns", m.cfg.Columns)))
	b.WriteString("\n\n")

	b.WriteString(liveCursorStyle.Render(iconInfo) + " " + string(m.input) + liveCursorStyle.Render("▏"))
	b.WriteString("\n\n")

	counter := fmt.Sprintf("%d/%d", m.measure.Length, m.measure.Budget)
	if m.measure.Overflow {
		b.WriteString(liveOverflowStyle.Render(fmt.Sprintf("%s %s  over by %d", iconError, counter, m.measure.Amount)))
	} else {
		b.WriteString(StyleNumber.Render(counter))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %d free · %d fill", m.measure.Remaining(), m.measure.Fills)))
	}
	b.WriteString("\n")

	if m.preview != nil {
		b.WriteString(renderBoard([]encode.Row{m.preview}, m.cfg.Palette))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(StyleWarning.Render(errors.UserMessage(m.err)))
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render("type to edit  ⌫ delete  ⏎/esc done"))
	return b.String()
}
