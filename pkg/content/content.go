// Package content defines the structured content of a display board: rows of
// typed nodes as produced by the editor.
//
// [Node] is a closed set of value types. Every consumer switches over the
// concrete types and treats anything else as a configuration error, so a node
// kind added here without a matching case fails loudly instead of silently
// contributing nothing.
//
// Rows and boards are snapshots. Nothing in this module mutates them after
// construction; derived artifacts such as encoded cells are recomputed from
// the snapshot whenever they are needed.
package content

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies the variant of a [Node].
type Kind int

const (
	KindText Kind = iota + 1
	KindColorTile
	KindVariable
	KindFillSpace
	KindSymbol
)

var kindNames = map[Kind]string{
	KindText:      "text",
	KindColorTile: "colorTile",
	KindVariable:  "variable",
	KindFillSpace: "fillSpace",
	KindSymbol:    "symbol",
}

// String returns the editor's type name for k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps an editor type name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Node is one piece of row content.
type Node interface {
	Kind() Kind
	node()
}

// Text is a run of literal characters.
type Text struct {
	Value string
}

// ColorTile is a single color flap. Color is the palette name; Code is the
// editor's cached cell code and is informational only.
type ColorTile struct {
	Color string
	Code  int
}

// Variable reserves MaxLength cells for a value supplied at send time.
type Variable struct {
	PluginID  string
	Field     string
	MaxLength int
}

// FillSpace absorbs unused row width.
type FillSpace struct {
	ID string
}

// Symbol is a named glyph rendered as Character, which may span several cells.
type Symbol struct {
	Name      string
	Character string
}

func (Text) Kind() Kind      { return KindText }
func (ColorTile) Kind() Kind { return KindColorTile }
func (Variable) Kind() Kind  { return KindVariable }
func (FillSpace) Kind() Kind { return KindFillSpace }
func (Symbol) Kind() Kind    { return KindSymbol }

func (Text) node()      {}
func (ColorTile) node() {}
func (Variable) node()  {}
func (FillSpace) node() {}
func (Symbol) node()    {}

// Ref returns the (plugin, field) pair the variable is bound to.
func (v Variable) Ref() VariableRef {
	return VariableRef{PluginID: v.PluginID, Field: v.Field}
}

// NewFillSpace returns a fill node with a fresh random ID.
func NewFillSpace() FillSpace {
	return FillSpace{ID: uuid.NewString()}
}

// VariableRef identifies a runtime value.
type VariableRef struct {
	PluginID string `json:"pluginId"`
	Field    string `json:"field"`
}

// String returns "plugin.field".
func (r VariableRef) String() string {
	return r.PluginID + "." + r.Field
}

// Row is an ordered, left-to-right sequence of nodes.
type Row []Node

// FillCount returns the number of fill-space nodes in r.
func (r Row) FillCount() int {
	n := 0
	for _, node := range r {
		if _, ok := node.(FillSpace); ok {
			n++
		}
	}
	return n
}

// Variables returns the variables of r in order of appearance.
func (r Row) Variables() []Variable {
	var vars []Variable
	for _, node := range r {
		if v, ok := node.(Variable); ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// Board is the full content of one display, top row first.
type Board struct {
	Rows []Row
}

// Variables returns the distinct variable references of b in order of first
// appearance.
func (b *Board) Variables() []VariableRef {
	seen := make(map[VariableRef]bool)
	var refs []VariableRef
	for _, row := range b.Rows {
		for _, v := range row.Variables() {
			ref := v.Ref()
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}
	return refs
}
