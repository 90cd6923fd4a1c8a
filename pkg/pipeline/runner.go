package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flapboard/pkg/board"
	"github.com/matzehuels/flapboard/pkg/cache"
	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/encode"
	"github.com/matzehuels/flapboard/pkg/errors"
	"github.com/matzehuels/flapboard/pkg/layout"
	"github.com/matzehuels/flapboard/pkg/observability"
	"github.com/matzehuels/flapboard/pkg/palette"
	"github.com/matzehuels/flapboard/pkg/substitute"
)

const keyTypeEncode = "encode"

// Runner encapsulates pipeline execution with caching for one board
// configuration.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner.
type Runner struct {
	Config *board.Config
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	encoder *encode.Encoder
}

// NewRunner creates a runner for cfg.
// If cfg is nil, the default board is used.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(cfg *board.Config, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if cfg == nil {
		cfg = board.Default()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Config:  cfg,
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		encoder: encode.New(cfg.Palette, cfg.Columns),
	}
}

// Encoder returns the encoder for the runner's board.
func (r *Runner) Encoder() *encode.Encoder {
	return r.encoder
}

// Measure reports the length and overflow state of every row of b against the
// board width. Rows beyond the board's row count are still measured.
func (r *Runner) Measure(ctx context.Context, b *content.Board) ([]RowReport, error) {
	reports := make([]RowReport, 0, len(b.Rows))
	for i, row := range b.Rows {
		m, err := layout.Measure(row, r.Config.Columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		observability.Encode().OnMeasure(ctx, i, m.Length, m.Budget, m.Overflow)
		if m.Overflow {
			r.Logger.Debug("row overflows", "row", i+1, "length", m.Length, "budget", m.Budget)
		}
		reports = append(reports, RowReport{Row: i, Measurement: m})
	}
	return reports, nil
}

// Encode encodes b, substitutes variable values and resolves native codes.
// No partial result is returned on error.
func (r *Runner) Encode(ctx context.Context, b *content.Board, opts Options) (*Result, error) {
	start := time.Now()
	observability.Encode().OnEncodeStart(ctx, len(b.Rows))

	result, err := r.encode(ctx, b, opts)
	if result != nil {
		result.Duration = time.Since(start)
	}
	observability.Encode().OnEncodeComplete(ctx, len(b.Rows), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("encoded board",
		"rows", len(result.Rows),
		"columns", r.Config.Columns,
		"cached", result.CacheHit,
		"duration", result.Duration)
	return result, nil
}

func (r *Runner) encode(ctx context.Context, b *content.Board, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	boardHash, err := HashBoard(b)
	if err != nil {
		return nil, err
	}
	result := &Result{BoardHash: boardHash}

	rows, hit, err := r.encodeRows(ctx, b, boardHash, opts.Refresh)
	if err != nil {
		return nil, err
	}
	result.CacheHit = hit

	if !opts.Raw {
		rows = substitute.Board(rows, opts.Values, r.Config.Palette, r.Config.ServiceEnabled)
	}
	result.Rows = rows

	result.Codes = make([][]palette.Code, len(rows))
	for i, row := range rows {
		codes, err := r.encoder.Codes(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		result.Codes[i] = codes
	}
	return result, nil
}

// encodeRows returns the unsubstituted rows of b, from the cache when
// possible.
func (r *Runner) encodeRows(ctx context.Context, b *content.Board, boardHash string, refresh bool) ([]encode.Row, bool, error) {
	key := r.Keyer.EncodeKey(boardHash, cache.EncodeKeyOpts{Config: r.Config.Fingerprint()})

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var rows []encode.Row
			if err := json.Unmarshal(data, &rows); err == nil && len(rows) == r.Config.Rows {
				observability.Cache().OnCacheHit(ctx, keyTypeEncode)
				return rows, true, nil
			}
			// Undecodable entry: fall through and re-encode.
		} else if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeEncode)
	}

	rows, err := r.encoder.EncodeBoard(b, r.Config.Rows)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(rows); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.Config.Cache.TTL); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeEncode, len(data))
		}
	}
	return rows, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// HashBoard returns the content hash of b. Fill-space IDs do not contribute,
// so boards that differ only in fill identity hash the same.
func HashBoard(b *content.Board) (string, error) {
	rows := make([][]any, len(b.Rows))
	for i, row := range b.Rows {
		nodes := make([]any, 0, len(row))
		for j, n := range row {
			if n == nil {
				return "", errors.New(errors.ErrCodeConfiguration, "row %d node %d: nil node", i+1, j)
			}
			if _, ok := n.(content.FillSpace); ok {
				n = content.FillSpace{}
			}
			nodes = append(nodes, []any{n.Kind(), n})
		}
		rows[i] = nodes
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("hash board: %w", err)
	}
	return cache.Hash(data), nil
}
