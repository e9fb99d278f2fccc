// Package render draws styled text for terminals, web pages, and images.
package render

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/eaburns/hl/highlight"
	"github.com/eaburns/hl/text"
	"github.com/muesli/termenv"
)

// Traits returns the traits of a font.
// FontDescs and fonts with a Traits method report their traits;
// other fonts have none.
func Traits(f highlight.Font) highlight.Traits {
	switch f := f.(type) {
	case highlight.FontDesc:
		return f.Traits
	case interface{ Traits() highlight.Traits }:
		return f.Traits()
	default:
		return 0
	}
}

func flag(s highlight.Style, key highlight.AttrKey) bool {
	v, ok := s.Attr(key)
	if !ok {
		return false
	}
	b, isBool := v.(bool)
	return !isBool || b
}

func background(s highlight.Style) (color.Color, bool) {
	v, ok := s.Attr(highlight.BackgroundKey)
	if !ok {
		return nil, false
	}
	c, ok := v.(color.Color)
	return c, ok
}

// ANSI writes the styled text to w with terminal escape sequences
// for the given color profile.
// Lines are styled separately, so the output has no trailing padding.
func ANSI(w io.Writer, st *highlight.StyledText, profile termenv.Profile) error {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	runes := st.Runes()
	var b strings.Builder
	for _, run := range st.Runs() {
		sty := r.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Foreground(lipgloss.Color(text.Hex(run.Color)))
		traits := Traits(run.Font)
		if traits.Has(highlight.Bold) {
			sty = sty.Bold(true)
		}
		if traits.Has(highlight.Italic) {
			sty = sty.Italic(true)
		}
		if flag(run.Style, highlight.UnderlineKey) {
			sty = sty.Underline(true)
		}
		if flag(run.Style, highlight.StrikethroughKey) {
			sty = sty.Strikethrough(true)
		}
		if bg, ok := background(run.Style); ok {
			sty = sty.Background(lipgloss.Color(text.Hex(bg)))
		}
		for i, line := range strings.Split(string(runes[run.At[0]:run.At[1]]), "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(sty.Render(line))
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// HTML writes the styled text to w as a <pre> element
// with a <span> for each run.
func HTML(w io.Writer, st *highlight.StyledText) error {
	runes := st.Runes()
	var b strings.Builder
	b.WriteString("<pre>")
	for _, run := range st.Runs() {
		fmt.Fprintf(&b, `<span style="%s">%s</span>`,
			css(run.Style), html.EscapeString(string(runes[run.At[0]:run.At[1]])))
	}
	b.WriteString("</pre>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func css(s highlight.Style) string {
	decls := []string{"color:" + text.Hex(s.Color)}
	if bg, ok := background(s); ok {
		decls = append(decls, "background-color:"+text.Hex(bg))
	}
	traits := Traits(s.Font)
	if traits.Has(highlight.Bold) {
		decls = append(decls, "font-weight:bold")
	}
	if traits.Has(highlight.Italic) {
		decls = append(decls, "font-style:italic")
	}
	if traits.Has(highlight.Monospace) {
		decls = append(decls, "font-family:monospace")
	}
	var deco []string
	if flag(s, highlight.UnderlineKey) {
		deco = append(deco, "underline")
	}
	if flag(s, highlight.StrikethroughKey) {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		decls = append(decls, "text-decoration:"+strings.Join(deco, " "))
	}
	return strings.Join(decls, ";")
}
