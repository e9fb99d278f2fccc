package highlight

import (
	"image/color"
	"reflect"
)

// A Style is the resolved style of a single character.
type Style struct {
	Font  Font
	Color color.Color
	attrs *attrs
}

// attrs is an immutable attribute set, shared between positions.
type attrs struct {
	m map[AttrKey]any
}

func (a *attrs) with(key AttrKey, value any) *attrs {
	n := &attrs{m: make(map[AttrKey]any, a.len()+1)}
	if a != nil {
		for k, v := range a.m {
			n.m[k] = v
		}
	}
	n.m[key] = value
	return n
}

func (a *attrs) len() int {
	if a == nil {
		return 0
	}
	return len(a.m)
}

// Attr returns the value of an attribute and whether it is set.
func (s Style) Attr(key AttrKey) (any, bool) {
	if s.attrs == nil {
		return nil, false
	}
	v, ok := s.attrs.m[key]
	return v, ok
}

// Attrs returns a copy of the style's attributes.
// It returns nil if there are none.
func (s Style) Attrs() map[AttrKey]any {
	if s.attrs.len() == 0 {
		return nil
	}
	m := make(map[AttrKey]any, len(s.attrs.m))
	for k, v := range s.attrs.m {
		m[k] = v
	}
	return m
}

// Equal returns whether two styles have the same font, color, and attributes.
func (s Style) Equal(o Style) bool {
	return sameValue(s.Font, o.Font) && sameColor(s.Color, o.Color) && sameAttrs(s.attrs, o.attrs)
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	r0, g0, b0, a0 := a.RGBA()
	r1, g1, b1, a1 := b.RGBA()
	return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
}

func sameAttrs(a, b *attrs) bool {
	if a == b {
		return true
	}
	if a.len() != b.len() {
		return false
	}
	if a.len() == 0 {
		return true
	}
	for k, v := range a.m {
		w, ok := b.m[k]
		if !ok || !sameValue(v, w) {
			return false
		}
	}
	return true
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) {
		return false
	}
	if !t.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// StyledText is text with a resolved Style for each character.
// Positions are indices of Unicode code points, not bytes.
type StyledText struct {
	runes  []rune
	styles []Style
}

// A Run is a maximal span of characters sharing a Style.
type Run struct {
	// At is the half-open span [At[0], At[1]) of character positions.
	At [2]int
	Style
}

func newStyledText(text string, font Font, fg color.Color) *StyledText {
	runes := []rune(text)
	styles := make([]Style, len(runes))
	for i := range styles {
		styles[i] = Style{Font: font, Color: fg}
	}
	return &StyledText{runes: runes, styles: styles}
}

// Len returns the number of characters.
func (st *StyledText) Len() int { return len(st.runes) }

// String returns the unstyled text.
func (st *StyledText) String() string { return string(st.runes) }

// Runes returns a copy of the characters.
func (st *StyledText) Runes() []rune { return append([]rune(nil), st.runes...) }

// At returns the style of the character at position i.
// It panics if i is out of range.
func (st *StyledText) At(i int) Style { return st.styles[i] }

// FontAt returns the font of the character at position i.
// If i is out of range or there is no font at i,
// the error is an *InternalInvariantError.
func (st *StyledText) FontAt(i int) (Font, error) {
	if i < 0 || i >= len(st.styles) {
		return nil, &InternalInvariantError{At: i, Reason: "out of range"}
	}
	f := st.styles[i].Font
	if f == nil {
		return nil, &InternalInvariantError{At: i, Reason: "no font"}
	}
	return f, nil
}

// ColorAt returns the color of the character at position i.
// It panics if i is out of range.
func (st *StyledText) ColorAt(i int) color.Color { return st.styles[i].Color }

// Attr returns the value of an attribute on the character at position i.
// It panics if i is out of range.
func (st *StyledText) Attr(i int, key AttrKey) (any, bool) { return st.styles[i].Attr(key) }

// Runs returns the text's styles coalesced into maximal runs,
// in order of position.
func (st *StyledText) Runs() []Run {
	var runs []Run
	for i, s := range st.styles {
		if n := len(runs); n > 0 && runs[n-1].Style.Equal(s) {
			runs[n-1].At[1] = i + 1
			continue
		}
		runs = append(runs, Run{At: [2]int{i, i + 1}, Style: s})
	}
	return runs
}

// Equal returns whether two styled texts have the same characters and styles.
func (st *StyledText) Equal(o *StyledText) bool {
	if len(st.runes) != len(o.runes) {
		return false
	}
	for i := range st.runes {
		if st.runes[i] != o.runes[i] || !st.styles[i].Equal(o.styles[i]) {
			return false
		}
	}
	return true
}
