package highlight

import (
	"image/color"
	"time"

	"github.com/dlclark/regexp2"
)

// slowResolve is the duration after which a Resolve is logged in Debug mode.
const slowResolve = time.Second

// Resolve returns text styled by rules.
//
// Every character first gets font and fg;
// if either is nil, DefaultFont or DefaultColor is used.
// Then, for each rule in order, for each match of the rule's pattern
// against text in order, for each of the rule's FormattingRules in order,
// the FormattingRule is applied to its capture group.
// A group that does not exist or did not participate in the match
// is not styled.
//
// Patterns are always matched against text itself,
// so styling never changes which matches are found.
//
// Resolve retains no reference to the result,
// and it is safe to call concurrently with the same rules.
// Debug is read without synchronization,
// so it must be set before any concurrent calls.
func Resolve(text string, rules []HighlightRule, font Font, fg color.Color) *StyledText {
	t0 := time.Now()
	if font == nil {
		font = DefaultFont
	}
	if fg == nil {
		fg = DefaultColor
	}
	st := newStyledText(text, font, fg)
	for i := range rules {
		apply(st, &rules[i])
	}
	if dur := time.Since(t0); dur > slowResolve {
		debugLog("resolve of %d characters with %d rules took %v", st.Len(), len(rules), dur)
	}
	return st
}

func apply(st *StyledText, rule *HighlightRule) {
	if rule.re == nil || len(rule.formats) == 0 {
		return
	}
	m, err := rule.re.FindRunesMatch(st.runes)
	for m != nil {
		for _, f := range rule.formats {
			if s, e, ok := span(m, f.Group); ok {
				format(st, s, e, f)
			}
		}
		m, err = rule.re.FindNextMatch(m)
	}
	if err != nil {
		debugLog("%s: %v", rule.re, err)
	}
}

// span returns the character span of a group of m,
// and false if the group does not exist or did not participate.
func span(m *regexp2.Match, group int) (int, int, bool) {
	if group < 0 {
		return 0, 0, false
	}
	g := m.GroupByNumber(group)
	if g == nil || len(g.Captures) == 0 {
		return 0, 0, false
	}
	return g.Index, g.Index + g.Length, true
}

func format(st *StyledText, s, e int, f FormattingRule) {
	if s >= e {
		return
	}
	if f.Traits != 0 {
		// The base pass guarantees a font at every position.
		cur := st.styles[s].Font
		if font := cur.WithTraits(f.Traits); font != nil {
			setFont(st, s, e, font)
		} else {
			debugLog("%v has no %v variant", cur, f.Traits)
		}
	}
	if !f.HasAttribute() {
		return
	}
	switch v := f.Value.(type) {
	case color.Color:
		if f.Key == ForegroundKey {
			for i := s; i < e; i++ {
				st.styles[i].Color = v
			}
			return
		}
	case Font:
		if f.Key == FontKey {
			setFont(st, s, e, v)
			return
		}
	}
	setAttr(st, s, e, f.Key, f.Value)
}

func setFont(st *StyledText, s, e int, font Font) {
	for i := s; i < e; i++ {
		st.styles[i].Font = font
	}
}

func setAttr(st *StyledText, s, e int, key AttrKey, value any) {
	// Positions that shared an attribute set before still share one after.
	memo := make(map[*attrs]*attrs)
	for i := s; i < e; i++ {
		old := st.styles[i].attrs
		n, ok := memo[old]
		if !ok {
			n = old.with(key, value)
			memo[old] = n
		}
		st.styles[i].attrs = n
	}
}
