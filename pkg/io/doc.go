// Package io provides JSON import and export for editor documents and encoded
// boards.
//
// # Document Format
//
// The editor stores a board as a tree with one paragraph per row:
//
//	{
//	  "type": "doc",
//	  "content": [
//	    {
//	      "type": "paragraph",
//	      "content": [
//	        {"type": "colorTile", "attrs": {"color": "red", "code": 63}},
//	        {"type": "text", "text": " Alert "},
//	        {"type": "fillSpace", "attrs": {"id": "2b1f..."}},
//	        {"type": "variable", "attrs": {"pluginId": "weather", "field": "temp", "maxLength": 3}},
//	        {"type": "symbol", "attrs": {"symbol": "heart", "character": "<3"}}
//	      ]
//	    }
//	  ]
//	}
//
// A paragraph without content is an empty row. Any inline node whose type is
// not one of text, colorTile, variable, fillSpace or symbol is rejected with a
// CONFIGURATION error rather than skipped.
//
// Text is normalized to Unicode NFC on import, so a character typed as a base
// letter plus combining mark counts as the single cell it occupies on the
// board. Fill-space nodes without an ID are given a random one.
//
// # Encoded Format
//
// [WriteCodes] emits what the transmission layer consumes: one array of
// native cell codes per row, every array exactly as long as the board is wide.
//
//	{"columns": 22, "rows": [[0, 8, 5, ...], ...]}
package io
