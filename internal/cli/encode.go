package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flapboard/pkg/encode"
	flapio "github.com/matzehuels/flapboard/pkg/io"
	"github.com/matzehuels/flapboard/pkg/palette"
	"github.com/matzehuels/flapboard/pkg/pipeline"
	"github.com/matzehuels/flapboard/pkg/substitute"
)

// encodeOpts holds the command-line flags for the encode command.
type encodeOpts struct {
	output  string   // output file path, stdout when empty
	format  string   // json, codes or preview
	values  []string // plugin.field=value assignments
	raw     bool     // keep variable placeholders
	noCache bool     // disable the encode cache
	refresh bool     // ignore cached results
}

// encodeCommand creates the encode command.
func (c *CLI) encodeCommand() *cobra.Command {
	opts := encodeOpts{format: pipeline.FormatPreview}

	cmd := &cobra.Command{
		Use:   "encode <file|->",
		Short: "Encode a board into native cell codes",
		Long: `Encode a board into native cell codes.

Input is template text (one row per line) or an editor document (*.json).
Variables are filled from --values; missing values render blank.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runEncode(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: preview (default), json, codes")
	cmd.Flags().StringArrayVar(&opts.values, "values", nil, "variable value as plugin.field=value (repeatable)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "keep variable placeholders instead of substituting")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")

	return cmd
}

func (c *CLI) runEncode(cmd *cobra.Command, path string, opts encodeOpts) error {
	values, err := parseValues(opts.values)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	b, err := c.readBoard(path, cfg)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(cmd.Context(), cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Encode(cmd.Context(), b, pipeline.Options{
		Values:  values,
		Raw:     opts.raw,
		Refresh: opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Encoded %d rows", len(result.Rows)))

	if opts.output == "" {
		return writeEncoded(os.Stdout, opts.format, cfg.Columns, result, cfg.Palette, true)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := writeEncoded(f, opts.format, cfg.Columns, result, cfg.Palette, false); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	printSuccess("Encoded board")
	printFile(opts.output)
	printStats(len(result.Rows), cfg.Columns, result.CacheHit)
	return nil
}

// writeEncoded writes result in format. Previews are styled only when going
// to a terminal; files get plain rows.
func writeEncoded(w io.Writer, format string, columns int, result *pipeline.Result, resolver *palette.Resolver, styled bool) error {
	switch format {
	case pipeline.FormatJSON:
		return flapio.WriteCodes(w, columns, result.Codes)
	case pipeline.FormatCodes:
		return writeCodeLines(w, result.Codes)
	case pipeline.FormatPreview:
		if styled {
			_, err := fmt.Fprintln(w, renderBoard(result.Rows, resolver))
			return err
		}
		return writePlainRows(w, result.Rows)
	}
	return pipeline.ValidateFormat(format)
}

// writeCodeLines writes one line of space-separated codes per row.
func writeCodeLines(w io.Writer, rows [][]palette.Code) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for i, code := range row {
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d", code)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writePlainRows(w io.Writer, rows []encode.Row) error {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// parseValues parses repeated plugin.field=value flags.
func parseValues(assignments []string) (substitute.Values, error) {
	values := make(substitute.Values, len(assignments))
	for _, a := range assignments {
		ref, v, err := substitute.ParseAssignment(a)
		if err != nil {
			return nil, err
		}
		values[ref] = v
	}
	return values, nil
}
