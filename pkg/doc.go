// Package pkg provides the libraries behind flapboard, a layout and encoding
// engine for split-flap character displays.
//
// # Overview
//
// A board is a fixed grid of flaps, 22 columns by 6 rows on the flagship
// model. Content is authored as rows of typed nodes and must be turned into
// exactly one native code per cell before it can be sent. The pkg directory is
// organized into:
//
//  1. [content] - Row and node model shared by every other package
//  2. [layout] - Width accounting, overflow detection and fill distribution
//  3. [palette] - Color, symbol and character lookup tables
//  4. [encode] - Rows to budget-exact cell arrays
//  5. [board] - Board geometry and palette from TOML configuration
//  6. [io], [template] - Editor documents and the compact text format
//  7. [substitute], [override] - Runtime values and per-service toggles
//  8. [pipeline], [cache], [server] - Orchestration, caching and HTTP API
//
// # Architecture
//
// The typical data flow:
//
//	editor document / template text
//	         ↓
//	    [io] or [template] (parse into content.Board)
//	         ↓
//	    [layout] (measure, reject overflow, distribute fill)
//	         ↓
//	    [encode] (cells, resolved through [palette])
//	         ↓
//	    [substitute] (variable values)
//	         ↓
//	    native codes for transmission
//
// # Quick Start
//
//	cfg := board.Default()
//	b, err := template.ParseString("{red} HELLO {fill}{var:clock.time:5}", cfg.Palette)
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(cfg, nil, nil, logger)
//	result, err := runner.Encode(ctx, b, pipeline.Options{
//	    Values: substitute.Values{{PluginID: "clock", Field: "time"}: "09:41"},
//	})
//
// # Error Handling
//
// Errors carry a code from [errors]. Overflow is reported as
// *errors.OverflowError with the offending row and amount; unknown colors,
// symbols and characters are never silently replaced.
package pkg
