package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flapboard/pkg/errors"
	"github.com/matzehuels/flapboard/pkg/pipeline"
)

// checkCommand creates the check command. It exits non-zero when the board
// would not encode, which makes it usable in CI for template repositories.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|->",
		Short: "Fail if any row overflows or references unknown names",
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

			failed := 0
			for _, r := range reports {
				if r.Overflow {
					printError("row %d overflows by %d (%d/%d columns)", r.Row+1, r.Amount, r.Length, r.Budget)
					failed++
				}
			}
			if failed > 0 {
				return errors.New(errors.ErrCodeOverflow, "%d of %d rows overflow", failed, len(reports))
			}

			// Raw encoding surfaces unknown colors, symbols and characters
			// without needing variable values.
			if _, err := runner.Encode(cmd.Context(), b, pipeline.Options{Raw: true}); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			printSuccess("%d rows fit on %d×%d", len(b.Rows), cfg.Columns, cfg.Rows)
			printNextStep("Encode it", fmt.Sprintf("%s encode %s", appName, args[0]))
			return nil
		},
	}
}
