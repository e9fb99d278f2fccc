// Package dirsyntax implements a syntax highlighting theme for directory entries.
package dirsyntax

import (
	"github.com/eaburns/hl/highlight"
	"github.com/eaburns/hl/syntax"
)

// Theme is the directory listing theme.
// Directories end in / and hidden entries begin with a dot.
var Theme = syntax.Theme{
	Name:  "dir",
	Files: []string{`.*/$`},
	Rules: []syntax.Rule{
		{
			Pattern:   `^.*/$`,
			Multiline: true,
			Formats:   []syntax.Format{{Color: "#2f6f89"}},
		},
		{
			Pattern:   `^(.+/)?\..*$`,
			Multiline: true,
			Formats:   []syntax.Format{{Color: "#707070"}},
		},
	},
}

// Rules returns the compiled directory listing theme.
func Rules() []highlight.HighlightRule { return Theme.MustCompile() }
