package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/flapboard/pkg/content"
	"github.com/matzehuels/flapboard/pkg/errors"
)

const (
	typeDoc       = "doc"
	typeParagraph = "paragraph"
)

type document struct {
	Type    string      `json:"type"`
	Content []paragraph `json:"content"`
}

type paragraph struct {
	Type    string `json:"type"`
	Content []node `json:"content,omitempty"`
}

type node struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Attrs *attrs `json:"attrs,omitempty"`
}

type attrs struct {
	Color     string `json:"color,omitempty"`
	Code      int    `json:"code,omitempty"`
	PluginID  string `json:"pluginId,omitempty"`
	Field     string `json:"field,omitempty"`
	MaxLength int    `json:"maxLength,omitempty"`
	ID        string `json:"id,omitempty"`
	Symbol    string `json:"symbol,omitempty"`
	Character string `json:"character,omitempty"`
}

// ReadDocument decodes an editor document from r. ReadDocument does not
// close r.
func ReadDocument(r io.Reader) (*content.Board, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode document")
	}
	return fromDocument(doc)
}

// ImportDocument reads an editor document from the file at path.
func ImportDocument(path string) (*content.Board, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f)
}

// WriteDocument encodes b as an editor document and writes it to w.
// The output can be re-imported with [ReadDocument].
func WriteDocument(w io.Writer, b *content.Board) error {
	doc, err := toDocument(b)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportDocument writes b to a JSON file at path.
func ExportDocument(path string, b *content.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDocument(f, b)
}

func fromDocument(doc document) (*content.Board, error) {
	if doc.Type != typeDoc {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "document type %q, want %q", doc.Type, typeDoc)
	}

	b := &content.Board{Rows: make([]content.Row, 0, len(doc.Content))}
	for i, p := range doc.Content {
		if p.Type != typeParagraph {
			return nil, errors.New(errors.ErrCodeConfiguration, "row %d: block type %q, want %q", i+1, p.Type, typeParagraph)
		}
		row := make(content.Row, 0, len(p.Content))
		for j, n := range p.Content {
			cn, err := fromNode(n)
			if err != nil {
				return nil, fmt.Errorf("row %d node %d: %w", i+1, j, err)
			}
			row = append(row, cn)
		}
		b.Rows = append(b.Rows, row)
	}
	return b, nil
}

func fromNode(n node) (content.Node, error) {
	kind, ok := content.ParseKind(n.Type)
	if !ok {
		return nil, errors.New(errors.ErrCodeConfiguration, "unrecognized node type %q", n.Type)
	}

	var a attrs
	if n.Attrs != nil {
		a = *n.Attrs
	}

	switch kind {
	case content.KindText:
		return content.Text{Value: norm.NFC.String(n.Text)}, nil
	case content.KindColorTile:
		if a.Color == "" {
			return nil, errors.New(errors.ErrCodeConfiguration, "colorTile without color")
		}
		return content.ColorTile{Color: a.Color, Code: a.Code}, nil
	case content.KindVariable:
		if err := errors.ValidateVariableRef(a.PluginID, a.Field); err != nil {
			return nil, err
		}
		if err := errors.ValidateMaxLength(a.MaxLength); err != nil {
			return nil, err
		}
		return content.Variable{PluginID: a.PluginID, Field: a.Field, MaxLength: a.MaxLength}, nil
	case content.KindFillSpace:
		if a.ID == "" {
			return content.NewFillSpace(), nil
		}
		return content.FillSpace{ID: a.ID}, nil
	case content.KindSymbol:
		if a.Symbol == "" {
			return nil, errors.New(errors.ErrCodeConfiguration, "symbol without name")
		}
		return content.Symbol{Name: a.Symbol, Character: norm.NFC.String(a.Character)}, nil
	}
	return nil, errors.New(errors.ErrCodeConfiguration, "unhandled node kind %v", kind)
}

func toDocument(b *content.Board) (document, error) {
	doc := document{Type: typeDoc, Content: make([]paragraph, len(b.Rows))}
	for i, row := range b.Rows {
		p := paragraph{Type: typeParagraph}
		for j, n := range row {
			var out node
			switch n := n.(type) {
			case content.Text:
				out = node{Type: content.KindText.String(), Text: n.Value}
			case content.ColorTile:
				out = node{Type: content.KindColorTile.String(), Attrs: &attrs{Color: n.Color, Code: n.Code}}
			case content.Variable:
				out = node{Type: content.KindVariable.String(), Attrs: &attrs{PluginID: n.PluginID, Field: n.Field, MaxLength: n.MaxLength}}
			case content.FillSpace:
				out = node{Type: content.KindFillSpace.String(), Attrs: &attrs{ID: n.ID}}
			case content.Symbol:
				out = node{Type: content.KindSymbol.String(), Attrs: &attrs{Symbol: n.Name, Character: n.Character}}
			default:
				return document{}, errors.New(errors.ErrCodeConfiguration, "row %d node %d: unrecognized node type %T", i+1, j, n)
			}
			p.Content = append(p.Content, out)
		}
		doc.Content[i] = p
	}
	return doc, nil
}
