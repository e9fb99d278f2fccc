package syntax

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/dlclark/regexp2"
	"github.com/eaburns/hl/highlight"
	"github.com/lucasb-eyer/go-colorful"
)

// Compile returns the theme's rules compiled to HighlightRules.
// Errors identify the offending rule by index,
// and wrap highlight.ErrPatternCompile for malformed patterns.
func (th *Theme) Compile() ([]highlight.HighlightRule, error) {
	rules := make([]highlight.HighlightRule, 0, len(th.Rules))
	for i, r := range th.Rules {
		hr, err := r.Compile()
		if err != nil {
			return nil, fmt.Errorf("%s: rule %d: %w", th.Name, i, err)
		}
		rules = append(rules, hr)
	}
	return rules, nil
}

// MustCompile is like Compile, but panics on error.
func (th *Theme) MustCompile() []highlight.HighlightRule {
	rules, err := th.Compile()
	if err != nil {
		panic(err.Error())
	}
	return rules
}

// Compile returns the rule compiled to a HighlightRule.
func (r Rule) Compile() (highlight.HighlightRule, error) {
	if r.Pattern == "" {
		return highlight.HighlightRule{}, fmt.Errorf("empty pattern (%w)", ErrInvalidRule)
	}
	opts := regexp2.None
	if r.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if r.Multiline {
		opts |= regexp2.Multiline
	}
	var formats []highlight.FormattingRule
	for i, f := range r.Formats {
		fs, err := f.formattingRules()
		if err != nil {
			return highlight.HighlightRule{}, fmt.Errorf("format %d: %w", i, err)
		}
		formats = append(formats, fs...)
	}
	return highlight.CompileOptions(r.Pattern, opts, formats...)
}

func (f Format) formattingRules() ([]highlight.FormattingRule, error) {
	if f.Group < 0 {
		return nil, fmt.Errorf("negative group %d (%w)", f.Group, ErrInvalidRule)
	}
	var traits highlight.Traits
	if f.Bold {
		traits |= highlight.Bold
	}
	if f.Italic {
		traits |= highlight.Italic
	}
	if f.Monospace {
		traits |= highlight.Monospace
	}
	var fs []highlight.FormattingRule
	add := func(key highlight.AttrKey, value any) {
		fs = append(fs, highlight.FormattingRule{Group: f.Group, Key: key, Value: value})
	}
	if traits != 0 {
		fs = append(fs, highlight.FormattingRule{Group: f.Group, Traits: traits})
	}
	if f.Color != "" {
		c, err := ParseColor(f.Color)
		if err != nil {
			return nil, err
		}
		add(highlight.ForegroundKey, c)
	}
	if f.Background != "" {
		c, err := ParseColor(f.Background)
		if err != nil {
			return nil, err
		}
		add(highlight.BackgroundKey, c)
	}
	if f.Underline {
		add(highlight.UnderlineKey, true)
	}
	if f.Strikethrough {
		add(highlight.StrikethroughKey, true)
	}
	keys := make([]string, 0, len(f.Attrs))
	for k := range f.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("empty attribute name (%w)", ErrInvalidRule)
		}
		add(highlight.AttrKey(k), f.Attrs[k])
	}
	return fs, nil
}

// ParseColor returns the opaque color of a #rgb or #rrggbb hex string.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %v (%w)", s, err, ErrInvalidColor)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
