// Package palette resolves color names, symbol names and characters to the
// native cell codes of a display board.
//
// A [Resolver] is built from [Tables] and never changes afterwards, so one
// resolver per board configuration can be shared freely between goroutines.
// Lookups never fall back to a default: a name missing from the tables is an
// authoring error, because the board would otherwise show a blank or the
// wrong flap.
package palette

import (
	"maps"
	"slices"
	"unicode"

	"github.com/matzehuels/flapboard/pkg/errors"
)

// Code is a native board cell code.
type Code int

// Tables is the raw lookup data of a board model.
type Tables struct {
	Colors      map[string]Code
	Symbols     map[string]string
	Characters  map[rune]Code
	Blank       Code
	Placeholder Code
}

// Resolver answers lookups against a fixed set of tables.
type Resolver struct {
	colors      map[string]Code
	colorNames  map[Code]string
	symbols     map[string]string
	chars       map[rune]Code
	blank       Code
	placeholder Code
}

// New validates t and returns a resolver holding private copies of its maps.
func New(t Tables) (*Resolver, error) {
	for name := range t.Colors {
		if err := errors.ValidateName("color", name); err != nil {
			return nil, err
		}
	}
	for name, glyph := range t.Symbols {
		if err := errors.ValidateName("symbol", name); err != nil {
			return nil, err
		}
		if glyph == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "symbol %q has an empty glyph", name)
		}
	}

	r := &Resolver{
		colors:      maps.Clone(t.Colors),
		colorNames:  make(map[Code]string, len(t.Colors)),
		symbols:     maps.Clone(t.Symbols),
		chars:       maps.Clone(t.Characters),
		blank:       t.Blank,
		placeholder: t.Placeholder,
	}
	for _, name := range slices.Sorted(maps.Keys(t.Colors)) {
		if _, dup := r.colorNames[t.Colors[name]]; !dup {
			r.colorNames[t.Colors[name]] = name
		}
	}
	return r, nil
}

// MustNew is like New but panics on invalid tables. Intended for package-level
// defaults.
func MustNew(t Tables) *Resolver {
	r, err := New(t)
	if err != nil {
		panic(err)
	}
	return r
}

// ResolveColor returns the cell code of a named color.
func (r *Resolver) ResolveColor(name string) (Code, error) {
	if c, ok := r.colors[name]; ok {
		return c, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownColor, "unknown color %q", name)
}

// ResolveSymbol returns the glyph sequence of a named symbol.
func (r *Resolver) ResolveSymbol(name string) (string, error) {
	if g, ok := r.symbols[name]; ok {
		return g, nil
	}
	return "", errors.New(errors.ErrCodeUnknownSymbol, "unknown symbol %q", name)
}

// ResolveChar returns the cell code of a character. Lower-case letters are
// folded to upper case when only the upper-case flap exists.
func (r *Resolver) ResolveChar(ch rune) (Code, error) {
	if c, ok := r.chars[ch]; ok {
		return c, nil
	}
	if up := unicode.ToUpper(ch); up != ch {
		if c, ok := r.chars[up]; ok {
			return c, nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnknownCharacter, "character %q has no flap on this board", ch)
}

// ColorName returns the name of the color with the given code. When several
// names share a code the alphabetically first one wins.
func (r *Resolver) ColorName(c Code) (string, bool) {
	name, ok := r.colorNames[c]
	return name, ok
}

// Blank returns the code of an empty cell.
func (r *Resolver) Blank() Code { return r.blank }

// Placeholder returns the code reserved for cells awaiting variable substitution.
func (r *Resolver) Placeholder() Code { return r.placeholder }

// Colors returns all color names, sorted.
func (r *Resolver) Colors() []string {
	return slices.Sorted(maps.Keys(r.colors))
}

// Symbols returns all symbol names, sorted.
func (r *Resolver) Symbols() []string {
	return slices.Sorted(maps.Keys(r.symbols))
}

// Tables returns a copy of the resolver's tables.
func (r *Resolver) Tables() Tables {
	return Tables{
		Colors:      maps.Clone(r.colors),
		Symbols:     maps.Clone(r.symbols),
		Characters:  maps.Clone(r.chars),
		Blank:       r.blank,
		Placeholder: r.placeholder,
	}
}
