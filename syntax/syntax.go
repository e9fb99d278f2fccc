// Package syntax defines syntax highlighting themes declaratively.
//
// A Theme is a list of Rules, each a regular expression
// and the Formats applied to its capture groups.
// Themes are written in Go, or decoded from YAML, TOML, or JSON,
// and compiled into highlight.HighlightRules.
package syntax

import (
	"fmt"
	"regexp"
)

var (
	// Err is the base error; every error in this package wraps it.
	Err = fmt.Errorf("syntax error")

	ErrDecode        = fmt.Errorf("theme decoding error (%w)", Err)
	ErrUnknownFormat = fmt.Errorf("unknown theme format (%w)", Err)
	ErrInvalidColor  = fmt.Errorf("invalid color (%w)", Err)
	ErrInvalidRule   = fmt.Errorf("invalid rule (%w)", Err)
)

// A Theme is a named, ordered list of highlighting rules.
// Later rules override earlier rules.
type Theme struct {
	// Name names the theme.
	Name string `yaml:"name" toml:"name" json:"name"`
	// Files are regular expressions (regexp package syntax)
	// matching the paths of files the theme applies to.
	Files []string `yaml:"files,omitempty" toml:"files,omitempty" json:"files,omitempty"`
	// Rules are the theme's rules in order.
	Rules []Rule `yaml:"rules" toml:"rules" json:"rules"`
}

// A Rule describes a syntactic element using a regular expression.
type Rule struct {
	// Pattern is the regexp2 regular expression to match the element.
	Pattern string `yaml:"pattern" toml:"pattern" json:"pattern"`
	// IgnoreCase matches letters case-insensitively.
	IgnoreCase bool `yaml:"ignore_case,omitempty" toml:"ignore_case,omitempty" json:"ignore_case,omitempty"`
	// Multiline makes ^ and $ match at line boundaries.
	Multiline bool `yaml:"multiline,omitempty" toml:"multiline,omitempty" json:"multiline,omitempty"`
	// Formats are applied to each match, in order.
	Formats []Format `yaml:"formats" toml:"formats" json:"formats"`
}

// A Format is the style of one capture group of a match.
type Format struct {
	// Group is the numbered capture group of the element text.
	Group int `yaml:"group,omitempty" toml:"group,omitempty" json:"group,omitempty"`

	Bold      bool `yaml:"bold,omitempty" toml:"bold,omitempty" json:"bold,omitempty"`
	Italic    bool `yaml:"italic,omitempty" toml:"italic,omitempty" json:"italic,omitempty"`
	Monospace bool `yaml:"monospace,omitempty" toml:"monospace,omitempty" json:"monospace,omitempty"`

	// Color and Background are #rgb or #rrggbb hex colors.
	Color      string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Background string `yaml:"background,omitempty" toml:"background,omitempty" json:"background,omitempty"`

	Underline     bool `yaml:"underline,omitempty" toml:"underline,omitempty" json:"underline,omitempty"`
	Strikethrough bool `yaml:"strikethrough,omitempty" toml:"strikethrough,omitempty" json:"strikethrough,omitempty"`

	// Attrs are additional string-valued attributes.
	Attrs map[string]string `yaml:"attrs,omitempty" toml:"attrs,omitempty" json:"attrs,omitempty"`
}

// MatchFile returns whether any of the theme's Files matches path.
// Malformed Files expressions never match.
func (th *Theme) MatchFile(path string) bool {
	for _, f := range th.Files {
		re, err := regexp.Compile(f)
		if err != nil {
			continue
		}
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
