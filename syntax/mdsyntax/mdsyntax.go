// Package mdsyntax implements a syntax highlighting theme for Markdown.
package mdsyntax

import (
	"github.com/eaburns/hl/highlight"
	"github.com/eaburns/hl/syntax"
)

const (
	headingColor = "#102834"
	linkColor    = "#2f6f89"
	quoteColor   = "#707070"
	codeBG       = "#efe6dc"
)

// Theme is the Markdown theme.
var Theme = syntax.Theme{
	Name:  "markdown",
	Files: []string{`.*\.(md|markdown)$`},
	Rules: []syntax.Rule{
		{
			Pattern:   `^#{1,6}[ \t]+(.*)$`,
			Multiline: true,
			Formats: []syntax.Format{
				{Color: quoteColor},
				{Group: 1, Bold: true, Color: headingColor},
			},
		},
		{
			Pattern:   `^>.*$`,
			Multiline: true,
			Formats:   []syntax.Format{{Italic: true, Color: quoteColor}},
		},
		{
			Pattern: `\*\*(.+?)\*\*|__(.+?)__`,
			Formats: []syntax.Format{
				{Group: 1, Bold: true},
				{Group: 2, Bold: true},
			},
		},
		{
			Pattern: `(?<![*\w])\*(?!\*)([^*\n]+)\*|(?<![_\w])_(?!_)([^_\n]+)_`,
			Formats: []syntax.Format{
				{Group: 1, Italic: true},
				{Group: 2, Italic: true},
			},
		},
		{
			Pattern: `~~(.+?)~~`,
			Formats: []syntax.Format{{Group: 1, Strikethrough: true}},
		},
		{
			Pattern: `\[([^\]\n]+)\]\(([^)\s]+)\)`,
			Formats: []syntax.Format{
				{Group: 1, Underline: true, Color: linkColor},
				{Group: 2, Color: quoteColor},
			},
		},
		{
			Pattern: "`([^`\n]+)`",
			Formats: []syntax.Format{{Group: 1, Monospace: true, Background: codeBG}},
		},
	},
}

// Rules returns the compiled Markdown theme.
func Rules() []highlight.HighlightRule { return Theme.MustCompile() }
