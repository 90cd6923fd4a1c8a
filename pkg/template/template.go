// Package template parses the compact text form of a board.
//
// Each line is one row. Literal text is copied as-is; tags in braces insert
// the other node kinds:
//
//	{red}                 color tile (any palette color)
//	{fill}                fill space
//	{sym:heart}           symbol, glyph taken from the palette
//	{var:weather.temp:3}  variable reserving 3 cells
//	{{  }}                literal braces
//
// For example "{red} ALERT {fill}{var:clock.time:5}" is a red tile, the text
// " ALERT ", a fill and a five-cell clock value.
package template

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
	"github.com/matzehuels/flapboard/pkg/palette"
)

var (
	lineLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Escape", Pattern: `\{\{|\}\}`},
		{Name: "Tag", Pattern: `\{[^{}\r\n]*\}`},
		{Name: "Text", Pattern: `[^{}\r\n]+`},
		{Name: "Stray", Pattern: `[{}]`},
	})

	tagLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[:.]`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})

	lineParser = participle.MustBuild[line](
		participle.Lexer(lineLexer),
	)

	tagParser = participle.MustBuild[tag](
		participle.Lexer(tagLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

type line struct {
	Segments []*segment `parser:"@@+"`
}

type segment struct {
	Escape *string `parser:"  @Escape"`
	Tag    *string `parser:"| @Tag"`
	Text   *string `parser:"| @Text"`
}

type tag struct {
	Fill     bool    `parser:"  @'fill'"`
	Symbol   *string `parser:"| 'sym' ':' @Ident"`
	Variable *varTag `parser:"| 'var' ':' @@"`
	Color    *string `parser:"| @Ident"`
}

type varTag struct {
	Plugin    string `parser:"@Ident '.'"`
	Field     string `parser:"@Ident ( @'.' @Ident )*"`
	MaxLength int    `parser:"':' @Int"`
}

// ParseString parses a template held in memory.
func ParseString(src string, resolver *palette.Resolver) (*content.Board, error) {
	return Parse(strings.NewReader(src), resolver)
}

// ParseFile parses the template file at path.
func ParseFile(path string, resolver *palette.Resolver) (*content.Board, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "template %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "open template %s", path)
	}
	defer f.Close()
	return Parse(f, resolver)
}

// Parse reads a template from r. Colors and symbols are checked against
// resolver (the flagship palette when nil); a trailing newline does not add a
// row.
func Parse(r io.Reader, resolver *palette.Resolver) (*content.Board, error) {
	if resolver == nil {
		resolver = palette.Default()
	}

	b := &content.Board{}
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		row, err := parseLine(norm.NFC.String(sc.Text()), resolver)
		if err != nil {
			return nil, withLine(n, err)
		}
		b.Rows = append(b.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "read template")
	}
	return b, nil
}

func withLine(n int, err error) error {
	if code := errors.GetCode(err); code != "" && code != errors.ErrCodeInvalidTemplate {
		return errors.Wrap(code, err, "line %d", n)
	}
	return errors.Wrap(errors.ErrCodeInvalidTemplate, err, "line %d", n)
}

func parseLine(src string, resolver *palette.Resolver) (content.Row, error) {
	src = strings.TrimSuffix(src, "\r")
	if src == "" {
		return content.Row{}, nil
	}

	ast, err := lineParser.ParseString("", src)
	if err != nil {
		return nil, err
	}

	var (
		row  content.Row
		text strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			row = append(row, content.Text{Value: text.String()})
			text.Reset()
		}
	}
	for _, seg := range ast.Segments {
		switch {
		case seg.Escape != nil:
			text.WriteByte((*seg.Escape)[0])
		case seg.Text != nil:
			text.WriteString(*seg.Text)
		case seg.Tag != nil:
			node, err := parseTag(*seg.Tag, resolver)
			if err != nil {
				return nil, err
			}
			flush()
			row = append(row, node)
		}
	}
	flush()
	return row, nil
}

func parseTag(raw string, resolver *palette.Resolver) (content.Node, error) {
	inner := raw[1 : len(raw)-1]
	t, err := tagParser.ParseString("", inner)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "tag %s", raw)
	}

	switch {
	case t.Fill:
		return content.NewFillSpace(), nil
	case t.Symbol != nil:
		glyph, err := resolver.ResolveSymbol(*t.Symbol)
		if err != nil {
			return nil, err
		}
		return content.Symbol{Name: *t.Symbol, Character: glyph}, nil
	case t.Variable != nil:
		v := t.Variable
		if err := errors.ValidateVariableRef(v.Plugin, v.Field); err != nil {
			return nil, err
		}
		if err := errors.ValidateMaxLength(v.MaxLength); err != nil {
			return nil, err
		}
		return content.Variable{PluginID: v.Plugin, Field: v.Field, MaxLength: v.MaxLength}, nil
	case t.Color != nil:
		code, err := resolver.ResolveColor(*t.Color)
		if err != nil {
			return nil, err
		}
		return content.ColorTile{Color: *t.Color, Code: int(code)}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidTemplate, "empty tag %s", raw)
}
