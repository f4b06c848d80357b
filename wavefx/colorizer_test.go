package wavefx

import (
	"testing"

	"github.com/kestrelfx/ledfx/pixel"
)

func TestGrayscaleMapIdentity(t *testing.T) {
	g := GrayscaleMap{}
	for _, v := range []uint8{0, 1, 128, 255} {
		want := pixel.Pixel{R: v, G: v, B: v}
		if got := g.At(v); got != want {
			t.Errorf("GrayscaleMap.At(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestGrayscaleMapFillMatchesAt(t *testing.T) {
	g := GrayscaleMap{}
	indices := []uint8{0, 64, 128, 255}
	out := make([]pixel.Pixel, len(indices))
	g.Fill(indices, out)
	for i, v := range indices {
		if out[i] != g.At(v) {
			t.Errorf("Fill[%d] = %v, want %v", i, out[i], g.At(v))
		}
	}
}

func TestGradientMapFillIdempotent(t *testing.T) {
	gm := NewGradientMap(HeatPalette)
	indices := []uint8{0, 10, 85, 170, 200, 255}
	out1 := make([]pixel.Pixel, len(indices))
	out2 := make([]pixel.Pixel, len(indices))
	gm.Fill(indices, out1)
	gm.Fill(indices, out2)
	for i := range indices {
		if out1[i] != out2[i] {
			t.Errorf("GradientMap.Fill not idempotent at %d: %v != %v", i, out1[i], out2[i])
		}
	}
}

func TestGradientMapEndpointsMatchStops(t *testing.T) {
	gm := NewGradientMap(HeatPalette)
	if got := gm.At(0); got != (pixel.Pixel{R: 0, G: 0, B: 0}) {
		t.Errorf("At(0) = %v, want black", got)
	}
	if got := gm.At(255); got != (pixel.Pixel{R: 255, G: 255, B: 255}) {
		t.Errorf("At(255) = %v, want white", got)
	}
}

func TestGradientMapOutOfRangeClampsToEndpoints(t *testing.T) {
	stops := []Stop{HeatPalette[1], HeatPalette[2]} // pos 85..170 only
	gm := NewGradientMap(stops)
	below := gm.At(0)
	above := gm.At(255)
	if below != gm.At(85) {
		t.Errorf("At below range = %v, want clamp to first stop %v", below, gm.At(85))
	}
	if above != gm.At(170) {
		t.Errorf("At above range = %v, want clamp to last stop %v", above, gm.At(170))
	}
}
