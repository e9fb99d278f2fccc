package text

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/eaburns/hl/highlight"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func TestStyle_Merge(t *testing.T) {
	face1, face2 := testFace{1}, testFace{2}
	tests := []struct {
		a, b Style
		want Style
	}{
		{
			a:    Style{},
			b:    Style{},
			want: Style{},
		},
		{
			a:    Style{FG: color.White},
			b:    Style{FG: color.Black},
			want: Style{FG: color.Black},
		},
		{
			a:    Style{FG: color.White},
			b:    Style{BG: color.Black},
			want: Style{FG: color.White, BG: color.Black},
		},
		{
			a:    Style{FG: color.White},
			b:    Style{Face: face1},
			want: Style{FG: color.White, Face: face1},
		},
		{
			a:    Style{BG: color.White},
			b:    Style{BG: color.Black},
			want: Style{BG: color.Black},
		},
		{
			a:    Style{BG: color.White},
			b:    Style{FG: color.Black},
			want: Style{FG: color.Black, BG: color.White},
		},
		{
			a:    Style{BG: color.White},
			b:    Style{Face: face1},
			want: Style{BG: color.White, Face: face1},
		},
		{
			a:    Style{Face: face1},
			b:    Style{Face: face2},
			want: Style{Face: face2},
		},
		{
			a:    Style{Face: face1},
			b:    Style{FG: color.White},
			want: Style{FG: color.White, Face: face1},
		},
		{
			a:    Style{Face: face1},
			b:    Style{BG: color.Black},
			want: Style{BG: color.Black, Face: face1},
		},
		{
			a:    Style{FG: color.White, BG: color.Black, Face: face1},
			b:    Style{FG: color.Black, BG: color.White, Face: face2},
			want: Style{FG: color.Black, BG: color.White, Face: face2},
		},
	}
	for _, test := range tests {
		got := test.a.Merge(test.b)
		if got != test.want {
			t.Errorf("(%v).Merge(%v)=%v, want %v",
				test.a, test.b, got, test.want)
		}
	}
}

type testFace struct{ int }

func (testFace) Close() error { panic("unimplemented") }
func (testFace) Glyph(fixed.Point26_6, rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	panic("unimplemented")
}
func (testFace) GlyphBounds(rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) { panic("unimplemented") }
func (testFace) GlyphAdvance(rune) (fixed.Int26_6, bool)                     { panic("unimplemented") }
func (testFace) Kern(rune, rune) fixed.Int26_6                               { panic("unimplemented") }
func (testFace) Metrics() font.Metrics                                       { panic("unimplemented") }

func TestTTF(t *testing.T) {
	tests := []struct {
		family string
		traits highlight.Traits
		want   []byte
	}{
		{family: "Go", want: goregular.TTF},
		{family: "go", traits: highlight.Bold, want: gobold.TTF},
		{family: "Go", traits: highlight.Italic, want: goitalic.TTF},
		{family: "Go", traits: highlight.Bold | highlight.Italic, want: gobolditalic.TTF},
		{family: "Go Medium", traits: highlight.Italic, want: gomediumitalic.TTF},
		{family: "Go Mono", want: gomono.TTF},
		{family: "Go", traits: highlight.Monospace | highlight.Bold, want: gomonobold.TTF},
		{family: "Helvetica", traits: highlight.Condensed, want: goregular.TTF},
	}
	for _, test := range tests {
		if got := TTF(test.family, test.traits); !bytes.Equal(got, test.want) {
			t.Errorf("TTF(%q, %v) is the wrong font", test.family, test.traits)
		}
	}
}

func TestFaceCached(t *testing.T) {
	desc := highlight.FontDesc{Family: "Go", Size: 12, Traits: highlight.Bold}
	a := Face(desc, 96)
	b := Face(desc, 96)
	if a != b {
		t.Error("Face returned different faces for the same font")
	}
	if c := Face(desc.WithTraits(highlight.Italic).(highlight.FontDesc), 96); c == a {
		t.Error("Face returned the same face for different traits")
	}
	if c := Face(desc, 192); c == a {
		t.Error("Face returned the same face for different DPIs")
	}
	if m := a.Metrics(); m.Height <= 0 {
		t.Errorf("Metrics().Height=%v, want > 0", m.Height)
	}
	if _, ok := a.GlyphAdvance('x'); !ok {
		t.Error("GlyphAdvance('x') not ok")
	}
}

type facer struct{ face font.Face }

func (f facer) WithTraits(highlight.Traits) highlight.Font { return f }
func (f facer) Face(float32) font.Face                     { return f.face }

func TestStyleOf(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	desc := highlight.FontDesc{Family: "Go", Size: 11}
	rules := []highlight.HighlightRule{
		highlight.MustCompile("b", highlight.Attribute(highlight.BackgroundKey, blue)),
		highlight.MustCompile("c", highlight.Attribute(highlight.BackgroundKey, "blue")),
	}
	st := highlight.Resolve("abc", rules, desc, red)

	sty := StyleOf(st.At(0), 96)
	if sty.FG != color.Color(red) || sty.BG != nil || sty.Face != Face(desc, 96) {
		t.Errorf("StyleOf(a)=%v, want FG red, no BG, the Go face", sty)
	}
	if sty := StyleOf(st.At(1), 96); sty.BG != color.Color(blue) {
		t.Errorf("StyleOf(b).BG=%v, want %v", sty.BG, blue)
	}
	if sty := StyleOf(st.At(2), 96); sty.BG != nil {
		t.Errorf("StyleOf(c).BG=%v, want nil", sty.BG)
	}

	f := facer{face: testFace{3}}
	st = highlight.Resolve("x", nil, f, red)
	if sty := StyleOf(st.At(0), 96); sty.Face != font.Face(testFace{3}) {
		t.Errorf("StyleOf(x).Face=%v, want %v", sty.Face, testFace{3})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.RGBA{R: 0x2F, G: 0x6F, B: 0x89, A: 0xFF}, "#2f6f89"},
		{color.Black, "#000000"},
		{color.White, "#ffffff"},
		{color.Gray{Y: 0x70}, "#707070"},
	}
	for _, test := range tests {
		if got := Hex(test.c); got != test.want {
			t.Errorf("Hex(%v)=%q, want %q", test.c, got, test.want)
		}
	}
}
