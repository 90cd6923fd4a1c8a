package board

import (
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flapboard/pkg/errors"
	"github.com/matzehuels/flapboard/pkg/override"
	"github.com/matzehuels/flapboard/pkg/palette"
)

type configFile struct {
	Board struct {
		Columns int `toml:"columns"`
		Rows    int `toml:"rows"`
	} `toml:"board"`
	Palette struct {
		Replace     bool              `toml:"replace"`
		Blank       *int              `toml:"blank"`
		Placeholder *int              `toml:"placeholder"`
		Colors      map[string]int    `toml:"colors"`
		Symbols     map[string]string `toml:"symbols"`
		Characters  map[string]int    `toml:"characters"`
	} `toml:"palette"`
	Services map[string]override.Toggle `toml:"services"`
	Cache    struct {
		Redis string `toml:"redis"`
		TTL   string `toml:"ttl"`
	} `toml:"cache"`
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()
	return ReadConfig(f)
}

// ReadConfig parses TOML configuration from r. Omitted settings keep the
// flagship defaults; palette tables are merged over the defaults unless
// palette.replace is set. Unknown keys are rejected.
func ReadConfig(r io.Reader) (*Config, error) {
	var file configFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg := Default()
	if file.Board.Columns != 0 {
		cfg.Columns = file.Board.Columns
	}
	if file.Board.Rows != 0 {
		cfg.Rows = file.Board.Rows
	}
	if err := errors.ValidateDimensions(cfg.Columns, cfg.Rows); err != nil {
		return nil, err
	}

	tables, err := buildTables(file)
	if err != nil {
		return nil, err
	}
	if cfg.Palette, err = palette.New(tables); err != nil {
		return nil, err
	}

	cfg.Services = override.Set(file.Services)
	cfg.Cache.Redis = file.Cache.Redis
	if file.Cache.TTL != "" {
		ttl, err := time.ParseDuration(file.Cache.TTL)
		if err != nil || ttl < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid cache ttl %q", file.Cache.TTL)
		}
		cfg.Cache.TTL = ttl
	}
	return cfg, nil
}

func buildTables(file configFile) (palette.Tables, error) {
	p := file.Palette
	t := palette.DefaultTables()
	if p.Replace {
		t = palette.Tables{
			Colors:     map[string]palette.Code{},
			Symbols:    map[string]string{},
			Characters: map[rune]palette.Code{},
		}
	}
	if p.Blank != nil {
		t.Blank = palette.Code(*p.Blank)
	}
	if p.Placeholder != nil {
		t.Placeholder = palette.Code(*p.Placeholder)
	}
	for name, code := range p.Colors {
		t.Colors[name] = palette.Code(code)
	}
	for name, glyph := range p.Symbols {
		t.Symbols[name] = glyph
	}
	for key, code := range p.Characters {
		if utf8.RuneCountInString(key) != 1 {
			return palette.Tables{}, errors.New(errors.ErrCodeInvalidConfig, "character key %q must be a single character", key)
		}
		ch, _ := utf8.DecodeRuneInString(key)
		t.Characters[ch] = palette.Code(code)
	}
	return t, nil
}
