package effects

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestGradientPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	img.Set(1, 0, color.RGBA{R: 85, G: 0, B: 0, A: 255})
	img.Set(2, 0, color.RGBA{R: 170, G: 0, B: 0, A: 255})
	img.Set(3, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestLoadGradientPaletteProducesOrderedStops(t *testing.T) {
	data := encodeTestGradientPNG(t)
	g, err := LoadGradientPalette(bytes.NewReader(data), 4)
	if err != nil {
		t.Fatalf("LoadGradientPalette: %v", err)
	}

	lo := g.At(0)
	hi := g.At(255)
	if lo.R >= hi.R {
		t.Errorf("At(0).R = %d, At(255).R = %d, want increasing red across the strip", lo.R, hi.R)
	}
}

func TestLoadGradientPaletteClampsMinimumStops(t *testing.T) {
	data := encodeTestGradientPNG(t)
	g, err := LoadGradientPalette(bytes.NewReader(data), 1)
	if err != nil {
		t.Fatalf("LoadGradientPalette: %v", err)
	}
	if g.At(0) == g.At(255) {
		// With only 2 clamped stops, endpoints should still differ given
		// a strip that goes from black to red.
		t.Errorf("At(0) == At(255) == %v, want distinct endpoints", g.At(0))
	}
}
