// Package layout measures rows of board content against a fixed column budget.
//
// Widths are integers counted in board cells. Text and symbol glyphs occupy
// one cell per Unicode code point, color tiles one cell, variables their
// reserved maximum length. Fill-space nodes have a base width of zero; only
// [Distribute] decides how wide they become once everything else is placed.
//
// All functions are pure and safe for concurrent use. The column budget is
// always passed in by the caller; nothing in this package assumes a board
// geometry.
package layout
