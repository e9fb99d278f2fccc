// Package highlight resolves regular-expression syntax highlighting rules
// into per-character styles.
//
// A caller builds an ordered list of HighlightRules once,
// and calls Resolve with the current text whenever it changes.
// Resolve applies a base font and color to every character,
// then applies each rule's FormattingRules to the capture groups
// of each of the rule's matches, in order.
// Later writes override earlier writes,
// except that font traits are merged into the font already present.
package highlight

import (
	"image/color"
	"strings"
)

// Traits is a set of font trait flags.
type Traits uint32

const (
	// Bold is a heavy-weight font.
	Bold Traits = 1 << iota
	// Italic is a slanted font.
	Italic
	// Monospace is a fixed-advance font.
	Monospace
	// Condensed is a narrow-width font.
	Condensed
	// Expanded is a wide-width font.
	Expanded
)

var traitNames = []struct {
	t    Traits
	name string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Monospace, "monospace"},
	{Condensed, "condensed"},
	{Expanded, "expanded"},
}

// Has returns whether t contains all of the traits in u.
func (t Traits) Has(u Traits) bool { return t&u == u }

func (t Traits) String() string {
	if t == 0 {
		return "none"
	}
	var names []string
	for _, n := range traitNames {
		if t.Has(n.t) {
			names = append(names, n.name)
			t &^= n.t
		}
	}
	if t != 0 {
		names = append(names, "unknown")
	}
	return strings.Join(names, "|")
}

// ParseTraits returns the trait with the given name
// as printed by Traits.String, and whether the name is known.
func ParseTraits(name string) (Traits, bool) {
	for _, n := range traitNames {
		if n.name == name {
			return n.t, true
		}
	}
	return 0, false
}

// A Font is a font that can derive variants of itself.
//
// Font values are compared with ==,
// so implementations should be comparable.
type Font interface {
	// WithTraits returns the font with the given traits
	// added to its existing traits.
	// Traits are never removed.
	// WithTraits may return nil if the font has no such variant,
	// in which case the font is used unchanged.
	WithTraits(Traits) Font
}

// A FontDesc describes a font by family name, point size, and traits.
// It is the default Font implementation.
type FontDesc struct {
	Family string
	Size   float64
	Traits Traits
}

// WithTraits returns a copy of f with traits added.
func (f FontDesc) WithTraits(traits Traits) Font {
	f.Traits |= traits
	return f
}

var (
	// DefaultFont is the base font used by Resolve
	// when the caller supplies none.
	DefaultFont Font = FontDesc{Family: "Go", Size: 11}

	// DefaultColor is the base color used by Resolve
	// when the caller supplies none.
	DefaultColor color.Color = color.RGBA{R: 0x10, G: 0x28, B: 0x34, A: 0xFF}
)
