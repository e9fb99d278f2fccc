package highlight

import (
	"github.com/dlclark/regexp2"
)

// An AttrKey names an attribute of styled text.
type AttrKey string

const (
	// ForegroundKey with a color.Color value sets the text color.
	ForegroundKey AttrKey = "foreground"
	// FontKey with a Font value replaces the font.
	FontKey AttrKey = "font"
	// BackgroundKey is conventionally a color.Color.
	BackgroundKey AttrKey = "background"
	// UnderlineKey is conventionally a bool.
	UnderlineKey AttrKey = "underline"
	// StrikethroughKey is conventionally a bool.
	StrikethroughKey AttrKey = "strikethrough"
	// LinkKey is conventionally a URL string.
	LinkKey AttrKey = "link"
)

// A FormattingRule is a style operation applied
// to one capture group of a match.
//
// The zero value applies nothing to group 0.
type FormattingRule struct {
	// Group is the numbered capture group to style.
	// Group 0 is the entire match.
	Group int
	// Key and Value are an attribute to set on the group.
	// The attribute is only applied if both are non-zero.
	Key   AttrKey
	Value any
	// Traits are merged into the font already on the group.
	Traits Traits
}

// Attribute returns a FormattingRule that sets an attribute on the entire match.
func Attribute(key AttrKey, value any) FormattingRule {
	return FormattingRule{Key: key, Value: value}
}

// Trait returns a FormattingRule that merges traits
// into the font of the entire match.
func Trait(traits Traits) FormattingRule {
	return FormattingRule{Traits: traits}
}

// HasAttribute returns whether the rule sets an attribute.
func (f FormattingRule) HasAttribute() bool {
	return f.Key != "" && f.Value != nil
}

// A HighlightRule is a pattern and the FormattingRules
// applied to each of its matches.
type HighlightRule struct {
	re      *regexp2.Regexp
	formats []FormattingRule
}

// Compile returns a HighlightRule for a pattern
// using the default regexp2 syntax.
// If the pattern is malformed, the error is a *PatternCompileError.
func Compile(pattern string, formats ...FormattingRule) (HighlightRule, error) {
	return CompileOptions(pattern, regexp2.None, formats...)
}

// CompileOptions is like Compile, but with regexp2 options,
// for example regexp2.IgnoreCase or regexp2.Multiline.
func CompileOptions(pattern string, opts regexp2.RegexOptions, formats ...FormattingRule) (HighlightRule, error) {
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return HighlightRule{}, &PatternCompileError{Pattern: pattern, Err: err}
	}
	return NewHighlightRule(re, formats...), nil
}

// MustCompile is like Compile, but panics if the pattern is malformed.
func MustCompile(pattern string, formats ...FormattingRule) HighlightRule {
	r, err := Compile(pattern, formats...)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// NewHighlightRule returns a HighlightRule for a compiled pattern.
// The regexp must not be modified after the call.
func NewHighlightRule(re *regexp2.Regexp, formats ...FormattingRule) HighlightRule {
	return HighlightRule{
		re:      re,
		formats: append([]FormattingRule(nil), formats...),
	}
}

// Pattern returns the source of the rule's pattern.
func (r HighlightRule) Pattern() string {
	if r.re == nil {
		return ""
	}
	return r.re.String()
}

// Formats returns a copy of the rule's FormattingRules.
func (r HighlightRule) Formats() []FormattingRule {
	return append([]FormattingRule(nil), r.formats...)
}
