package render

import (
	"bytes"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/eaburns/hl/highlight"
)

func count(img *image.RGBA, c color.Color) int {
	want := color.RGBAModel.Convert(c)
	var n int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestImage(t *testing.T) {
	st := resolve(t, "ab\n\ncd")
	img := Image(st, ImageOptions{Pad: 4})
	b := img.Bounds()
	if b.Dx() <= 8 || b.Dy() <= 8 {
		t.Fatalf("Image bounds=%v, want larger than the padding", b)
	}
	one := Image(resolve(t, "ab"), ImageOptions{Pad: 4})
	if h1, h3 := one.Bounds().Dy()-8, b.Dy()-8; h3 > 3*h1 || h3 < 3*h1-2 {
		t.Errorf("three lines are %d pixels tall, want about 3×%d", h3, h1)
	}
	if n, total := count(img, color.White), b.Dx()*b.Dy(); n == total || n < total/2 {
		t.Errorf("%d of %d pixels are background", n, total)
	}
	// The padding is untouched.
	for x := 0; x < b.Dx(); x++ {
		if img.At(x, 0) != color.RGBAModel.Convert(color.White) {
			t.Fatalf("pixel (%d, 0)=%v, want white", x, img.At(x, 0))
		}
	}
}

func TestImageWidth(t *testing.T) {
	img := Image(resolve(t, "a very long line of text"), ImageOptions{Width: 20})
	if w := img.Bounds().Dx(); w != 20 {
		t.Errorf("width=%d, want 20", w)
	}
}

func TestImageEmpty(t *testing.T) {
	img := Image(resolve(t, ""), ImageOptions{Pad: 2})
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() <= 4 {
		t.Errorf("Image(\"\") bounds=%v, want 4 wide and one line tall", b)
	}
}

func TestImageBackground(t *testing.T) {
	bg := color.RGBA{R: 0xEF, G: 0xE6, B: 0xDC, A: 0xFF}
	with := Image(resolve(t, "x `code` y"), ImageOptions{})
	if count(with, bg) == 0 {
		t.Error("no pixels have the code background color")
	}
	without := Image(resolve(t, "x code y"), ImageOptions{})
	if count(without, bg) != 0 {
		t.Error("pixels have the code background color without code")
	}
}

func ink(img *image.RGBA) int {
	b := img.Bounds()
	return b.Dx()*b.Dy() - count(img, color.White)
}

func TestImageBold(t *testing.T) {
	plain := Image(highlight.Resolve("mmmm", nil, nil, color.Black), ImageOptions{})
	bold := Image(highlight.Resolve("mmmm", []highlight.HighlightRule{
		highlight.MustCompile("m+", highlight.Trait(highlight.Bold)),
	}, nil, color.Black), ImageOptions{})
	if ink(bold) <= ink(plain) {
		t.Errorf("bold text has %d ink pixels, plain has %d", ink(bold), ink(plain))
	}
}

func TestImageConcurrent(t *testing.T) {
	st := resolve(t, "# Title\n**bold** *it* `code`")
	want := Image(st, ImageOptions{})
	var wg sync.WaitGroup
	imgs := make([]*image.RGBA, 8)
	for i := range imgs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			imgs[i] = Image(st, ImageOptions{})
		}(i)
	}
	wg.Wait()
	for i, img := range imgs {
		if img.Bounds() != want.Bounds() || !bytes.Equal(img.Pix, want.Pix) {
			t.Errorf("image %d differs from the sequential image", i)
		}
	}
}
