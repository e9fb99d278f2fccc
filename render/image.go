package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
	"unicode"

	"github.com/eaburns/hl/highlight"
	"github.com/eaburns/hl/text"
	"golang.org/x/image/math/fixed"
)

// ImageOptions are options for Image. The zero value is default.
type ImageOptions struct {
	// DPI is the resolution; 0 means 96.
	DPI float32
	// Width is the pixel width of the image;
	// 0 means wide enough for the longest line.
	// Lines are clipped, not wrapped.
	Width int
	// Pad is the pixel padding around the text.
	Pad int
	// BG is the background color; nil means white.
	BG color.Color
}

type span struct {
	text  []rune
	style text.Style
}

type line struct {
	spans   []span
	a, h, w fixed.Int26_6
}

// faceMu guards the faces from text.Face, which are shared and not safe
// for concurrent use.
var faceMu sync.Mutex

// Image returns the styled text drawn onto a new image,
// one line of the image for each line of the text.
//
// Image is safe to call concurrently,
// but calls are serialized while drawing.
// Faces provided by a text.Facer font must not be used
// elsewhere concurrently with Image.
func Image(st *highlight.StyledText, opts ImageOptions) *image.RGBA {
	faceMu.Lock()
	defer faceMu.Unlock()
	if opts.DPI == 0 {
		opts.DPI = 96
	}
	if opts.BG == nil {
		opts.BG = color.White
	}
	def := text.StyleOf(highlight.Style{Font: highlight.DefaultFont, Color: highlight.DefaultColor}, opts.DPI)
	lines := layout(st, def, opts.DPI)

	var w, h fixed.Int26_6
	for _, l := range lines {
		if l.w > w {
			w = l.w
		}
		h += l.h
	}
	width := opts.Width
	if width <= 0 {
		width = w.Ceil() + 2*opts.Pad
	}
	img := image.NewRGBA(image.Rect(0, 0, width, h.Ceil()+2*opts.Pad))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.BG), image.Point{}, draw.Src)

	y := fixed.I(opts.Pad)
	for _, l := range lines {
		drawLine(img, def, l, fixed.I(opts.Pad), y)
		y += l.h
	}
	return img
}

func layout(st *highlight.StyledText, def text.Style, dpi float32) []line {
	runes := st.Runes()
	m := def.Face.Metrics()
	cur := line{a: m.Ascent, h: m.Height + m.Descent}
	var lines []line
	var prev rune
	for _, run := range st.Runs() {
		sty := def.Merge(text.StyleOf(run.Style, dpi))
		m := sty.Face.Metrics()
		s := span{style: sty}
		for _, r := range runes[run.At[0]:run.At[1]] {
			if r == '\n' {
				cur.spans = appendSpan(cur.spans, s)
				lines = append(lines, cur)
				cur = line{a: m.Ascent, h: m.Height + m.Descent}
				s = span{style: sty}
				prev = 0
				continue
			}
			cur.a = max(cur.a, m.Ascent)
			cur.h = max(cur.h, m.Height+m.Descent)
			cur.w += kern(sty, prev, r) + advance(def, sty, cur.w, r)
			s.text = append(s.text, r)
			prev = r
		}
		cur.spans = appendSpan(cur.spans, s)
		prev = 0
	}
	return append(lines, cur)
}

func appendSpan(spans []span, s span) []span {
	if len(s.text) == 0 {
		return spans
	}
	return append(spans, s)
}

// drawLine draws a line with its left edge at pad.
// Tab stops are relative to pad.
func drawLine(img draw.Image, def text.Style, l line, pad, y0 fixed.Int26_6) {
	yb, y1 := y0+l.a, y0+l.h
	var x fixed.Int26_6
	for _, s := range l.spans {
		var prev rune
		for _, r := range s.text {
			x += kern(s.style, prev, r)
			prev = r
			adv := advance(def, s.style, x, r)
			x0 := pad + x
			if s.style.BG != nil {
				fillRect(img, s.style.BG, image.Rect(x0.Floor(), y0.Floor(), (x0 + adv).Ceil(), y1.Ceil()))
			}
			if r != '\t' {
				drawGlyph(img, s.style, x0, yb, r)
			}
			x += adv
		}
	}
}

func drawGlyph(img draw.Image, style text.Style, x0, yb fixed.Int26_6, r rune) {
	pt := fixed.Point26_6{X: x0, Y: yb}
	dr, m, mp, _, ok := style.Face.Glyph(pt, r)
	if !ok {
		dr, m, mp, _, ok = style.Face.Glyph(pt, unicode.ReplacementChar)
		if !ok {
			return
		}
	}
	dr = dr.Add(img.Bounds().Min)
	fg := image.NewUniform(style.FG)
	draw.DrawMask(img, dr, fg, image.Point{}, m, mp, draw.Over)
}

func fillRect(img draw.Image, c color.Color, r image.Rectangle) {
	z := img.Bounds().Min
	draw.Draw(img, r.Add(z), image.NewUniform(c), image.Point{}, draw.Src)
}

func kern(style text.Style, prev, cur rune) fixed.Int26_6 {
	if prev == 0 {
		return 0
	}
	return style.Face.Kern(prev, cur)
}

func advance(def, style text.Style, x fixed.Int26_6, r rune) fixed.Int26_6 {
	if r == '\t' {
		spaceWidth, ok := def.Face.GlyphAdvance(' ')
		if !ok {
			return 0
		}
		tabWidth := spaceWidth.Mul(fixed.I(8))
		adv := tabWidth - (x % tabWidth)
		if adv < spaceWidth {
			adv += tabWidth
		}
		return adv
	}
	adv, ok := style.Face.GlyphAdvance(r)
	if !ok {
		adv, _ = style.Face.GlyphAdvance(unicode.ReplacementChar)
	}
	return adv
}

func max(a, b fixed.Int26_6) fixed.Int26_6 {
	if a > b {
		return a
	}
	return b
}
