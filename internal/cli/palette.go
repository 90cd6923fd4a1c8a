package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// paletteCommand creates the palette command.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List colors and symbols of the active board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			printKeyValue("Board", fmt.Sprintf("%d×%d", cfg.Columns, cfg.Rows))
			printKeyValue("Blank", fmt.Sprintf("%d", cfg.Palette.Blank()))
			printKeyValue("Placeholder", fmt.Sprintf("%d", cfg.Palette.Placeholder()))
			fmt.Println(renderPaletteTable(cfg.Palette))
			return nil
		},
	}
}
