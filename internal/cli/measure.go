package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// measureCommand creates the measure command.
func (c *CLI) measureCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "measure <file|->",
		Short: "Report row lengths and overflow against the board width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			b, err := c.readBoard(args[0], cfg)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			reports, err := runner.Measure(cmd.Context(), b)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}

			fmt.Println(renderMeasureTable(reports, cfg.Rows))
			if len(b.Rows) > cfg.Rows {
				printWarning("%d rows, board has %d", len(b.Rows), cfg.Rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print measurements as JSON")
	return cmd
}
