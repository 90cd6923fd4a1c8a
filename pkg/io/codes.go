package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/flapboard/pkg/palette"
)

// Encoded is the wire form of an encoded board.
type Encoded struct {
	Columns int              `json:"columns"`
	Rows    [][]palette.Code `json:"rows"`
}

// WriteCodes writes rows of native cell codes as JSON.
func WriteCodes(w io.Writer, columns int, rows [][]palette.Code) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(Encoded{Columns: columns, Rows: rows}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
