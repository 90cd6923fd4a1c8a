// Package pipeline runs the measure → encode → substitute pipeline for whole
// boards.
//
// Both the CLI and the HTTP API go through a [Runner] so they share caching,
// logging and instrumentation. Encoded rows are cached before substitution:
// variable values change every send, the surrounding layout does not.
//
// # Usage
//
//	runner := pipeline.NewRunner(cfg, cache, nil, logger)
//	result, err := runner.Encode(ctx, b, pipeline.Options{Values: values})
//	if err != nil {
//	    return err
//	}
//	send(result.Codes)
package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/flapboard/pkg/encode"
	"github.com/matzehuels/flapboard/pkg/layout"
	"github.com/matzehuels/flapboard/pkg/palette"
	"github.com/matzehuels/flapboard/pkg/substitute"
)

// Format constants for encoded output.
const (
	FormatJSON    = "json"
	FormatCodes   = "codes"
	FormatPreview = "preview"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:    true,
	FormatCodes:   true,
	FormatPreview: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, codes, preview)", format)
	}
	return nil
}

// Options controls a single Encode call.
type Options struct {
	// Values are substituted into variable placeholders. Nil leaves every
	// placeholder blank.
	Values substitute.Values

	// Raw skips substitution and returns placeholder cells as encoded.
	Raw bool

	// Refresh bypasses the cache read. The fresh result is still stored.
	Refresh bool
}

// RowReport is the measurement of one board row.
type RowReport struct {
	Row int `json:"row"`
	layout.Measurement
}

// Result contains the outputs of an Encode call.
type Result struct {
	// BoardHash is the content hash of the board, fill IDs excluded.
	BoardHash string

	// Rows are the encoded cells, one row per display row.
	Rows []encode.Row

	// Codes are the native flap codes of Rows.
	Codes [][]palette.Code

	// CacheHit reports whether the encoded rows came from the cache.
	CacheHit bool

	// Duration is the wall time of the call.
	Duration time.Duration
}
