// Package gosyntax implements a syntax highlighting theme for Go syntax.
package gosyntax

import (
	"strings"

	"github.com/eaburns/hl/highlight"
	"github.com/eaburns/hl/syntax"
)

const (
	commentColor = "#707070"
	stringColor  = "#2f6f89"
)

// Tokens are alternatives of a single pattern,
// so the leftmost token wins and tokens never overlap:
// a // inside a string is not a comment,
// and a keyword inside a comment is not bold.
// Each alternative is one capture group, in order.
var tokens = []string{
	`/[*](?:[^*]|[*]+[^*/])*[*]+/|//.*`,
	`"(?:[^"\\\n]|\\.)*"|` + "`[^`]*`",
	`'(?:[^'\\\n]|\\(?:[0-7]{3}|x[0-9a-fA-F]{2}|u[0-9a-fA-F]{4}|U[0-9a-fA-F]{8}|.))'`,
	`\b(?:break|default|func|interface|select|case|defer|go|map|struct|chan|else|goto|package|switch|const|fallthrough|if|range|type|continue|for|import|return|var)\b`,
	`\b(?:true|false|nil|iota)\b`,
}

// Theme is the Go syntax highlighting theme.
var Theme = syntax.Theme{
	Name:  "go",
	Files: []string{`.*\.go$`},
	Rules: []syntax.Rule{
		{
			Pattern: "(" + strings.Join(tokens, ")|(") + ")",
			Formats: []syntax.Format{
				{Group: 1, Color: commentColor},
				{Group: 2, Color: stringColor},
				{Group: 3, Color: stringColor},
				{Group: 4, Bold: true},
				{Group: 5, Italic: true},
			},
		},
	},
}

// Rules returns the compiled Go theme.
func Rules() []highlight.HighlightRule { return Theme.MustCompile() }
