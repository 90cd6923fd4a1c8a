package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/matzehuels/flapboard/pkg/errors"
	flapio "github.com/matzehuels/flapboard/pkg/io"
	"github.com/matzehuels/flapboard/pkg/palette"
	"github.com/matzehuels/flapboard/pkg/pipeline"
	"github.com/matzehuels/flapboard/pkg/substitute"
)

// MeasureResponse is the body of a /v1/measure response.
type MeasureResponse struct {
	Columns     int                  `json:"columns"`
	MaxRows     int                  `json:"maxRows"`
	TooManyRows bool                 `json:"tooManyRows"`
	Rows        []pipeline.RowReport `json:"rows"`
}

// EncodeRequest is the body of a /v1/encode request.
type EncodeRequest struct {
	Document json.RawMessage   `json:"document"`
	Values   map[string]string `json:"values,omitempty"` // "plugin.field" → value
	Raw      bool              `json:"raw,omitempty"`
}

// EncodeResponse is the body of a /v1/encode response.
type EncodeResponse struct {
	BoardHash string           `json:"boardHash"`
	Cached    bool             `json:"cached"`
	Columns   int              `json:"columns"`
	Rows      [][]palette.Code `json:"rows"`
	Preview   []string         `json:"preview"`
}

// PaletteResponse is the body of a /v1/palette response.
type PaletteResponse struct {
	Columns int                     `json:"columns"`
	Rows    int                     `json:"rows"`
	Colors  map[string]palette.Code `json:"colors"`
	Symbols map[string]string       `json:"symbols"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	b, err := flapio.ReadDocument(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}

	reports, err := s.runner.Measure(r.Context(), b)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cfg := s.runner.Config
	writeJSON(w, http.StatusOK, MeasureResponse{
		Columns:     cfg.Columns,
		MaxRows:     cfg.Rows,
		TooManyRows: len(b.Rows) > cfg.Rows,
		Rows:        reports,
	})
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if len(req.Document) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "document is required"))
		return
	}

	b, err := flapio.ReadDocument(bytes.NewReader(req.Document))
	if err != nil {
		s.writeError(w, err)
		return
	}

	values := make(substitute.Values, len(req.Values))
	for k, v := range req.Values {
		ref, err := substitute.ParseRef(k)
		if err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid value key"))
			return
		}
		values[ref] = v
	}

	result, err := s.runner.Encode(r.Context(), b, pipeline.Options{Values: values, Raw: req.Raw})
	if err != nil {
		s.writeError(w, err)
		return
	}

	preview := make([]string, len(result.Rows))
	for i, row := range result.Rows {
		preview[i] = row.String()
	}
	writeJSON(w, http.StatusOK, EncodeResponse{
		BoardHash: result.BoardHash,
		Cached:    result.CacheHit,
		Columns:   s.runner.Config.Columns,
		Rows:      result.Codes,
		Preview:   preview,
	})
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	cfg := s.runner.Config
	t := cfg.Palette.Tables()
	writeJSON(w, http.StatusOK, PaletteResponse{
		Columns: cfg.Columns,
		Rows:    cfg.Rows,
		Colors:  t.Colors,
		Symbols: t.Symbols,
	})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeOverflow,
		errors.ErrCodeConfiguration,
		errors.ErrCodeUnknownColor,
		errors.ErrCodeUnknownSymbol,
		errors.ErrCodeUnknownCharacter,
		errors.ErrCodeTooManyRows:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, ErrorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
