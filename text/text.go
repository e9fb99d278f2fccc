// Package text has text styles and the font faces to draw them.
package text

import (
	"image/color"
	"strings"
	"sync"

	"github.com/eaburns/hl/highlight"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// A Style describes the color, font, and size of text.
type Style struct {
	// FG and BG are the foreground and background colors of the text.
	FG, BG color.Color
	// Face is the font face, describing the font and size.
	font.Face
}

// Merge returns other with any nil fields
// replaced by the corresponding field of sty.
func (sty Style) Merge(other Style) Style {
	if other.FG == nil {
		other.FG = sty.FG
	}
	if other.BG == nil {
		other.BG = sty.BG
	}
	if other.Face == nil {
		other.Face = sty.Face
	}
	return other
}

// A Facer is a highlight.Font that provides its own font face.
type Facer interface {
	highlight.Font
	Face(dpi float32) font.Face
}

// StyleOf returns the Style to draw text with a resolved style at a given DPI.
// The BG is the background attribute, if it is a color, or nil.
func StyleOf(s highlight.Style, dpi float32) Style {
	sty := Style{FG: s.Color}
	if bg, ok := s.Attr(highlight.BackgroundKey); ok {
		sty.BG, _ = bg.(color.Color)
	}
	switch f := s.Font.(type) {
	case Facer:
		sty.Face = f.Face(dpi)
	case highlight.FontDesc:
		sty.Face = Face(f, dpi)
	default:
		d, _ := highlight.DefaultFont.(highlight.FontDesc)
		sty.Face = Face(d, dpi)
	}
	return sty
}

// Hex returns c as a #rrggbb hex string, ignoring alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 0xFFFF,
		G: float64(g) / 0xFFFF,
		B: float64(b) / 0xFFFF,
	}.Hex()
}

type faceKey struct {
	ttf  *byte
	size float64
	dpi  float32
}

var (
	mu    sync.Mutex
	fonts = make(map[*byte]*truetype.Font)
	faces = make(map[faceKey]font.Face)
)

// Face returns a font.Face for a font description at a given DPI.
//
// The face is one of the Go fonts:
// the family is matched case-insensitively against
// "Go", "Go Medium", and "Go Mono";
// any other family is "Go", and the Monospace trait selects "Go Mono".
// Faces are cached and shared;
// like all truetype faces, they are not safe for concurrent use.
func Face(desc highlight.FontDesc, dpi float32) font.Face {
	ttf := TTF(desc.Family, desc.Traits)
	size := desc.Size
	if size <= 0 {
		size = 11
	}
	key := faceKey{ttf: &ttf[0], size: size, dpi: dpi}

	mu.Lock()
	defer mu.Unlock()
	if face, ok := faces[key]; ok {
		return face
	}
	f, ok := fonts[key.ttf]
	if !ok {
		var err error
		if f, err = truetype.Parse(ttf); err != nil {
			panic(err.Error())
		}
		fonts[key.ttf] = f
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size: size,
		DPI:  float64(dpi * (72.0 / 96.0)),
	})
	faces[key] = face
	return face
}

// TTF returns the TrueType data of the Go font
// for a family with the given traits.
func TTF(family string, traits highlight.Traits) []byte {
	bold := traits.Has(highlight.Bold)
	italic := traits.Has(highlight.Italic)
	switch fam := strings.ToLower(family); {
	case fam == "go mono" || traits.Has(highlight.Monospace):
		return pick(bold, italic, gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF)
	case fam == "go medium":
		return pick(bold, italic, gomedium.TTF, gobold.TTF, gomediumitalic.TTF, gobolditalic.TTF)
	default:
		return pick(bold, italic, goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF)
	}
}

func pick(bold, italic bool, regular, b, i, bi []byte) []byte {
	switch {
	case bold && italic:
		return bi
	case bold:
		return b
	case italic:
		return i
	default:
		return regular
	}
}
