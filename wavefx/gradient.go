package wavefx

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/kestrelfx/ledfx/pixel"
)

// Stop is one color anchor in a GradientMap, at palette position pos
// in [0,255].
type Stop struct {
	Pos   uint8
	Color colorful.Color
}

// GradientMap is a colorizer backed by a small ordered set of color
// stops, blended in Lab space between the two bracketing stops for a
// given amplitude. This generalizes FastLED's ColorFromPalette, which
// linearly blends RGB between 16/32/256 fixed palette entries; Lab
// blending avoids the muddy midpoints plain RGB interpolation produces
// between saturated, far-apart hues.
type GradientMap struct {
	stops []Stop
}

// NewGradientMap builds a GradientMap from stops, sorted by Pos.
// Amplitudes below the first stop or above the last clamp to that
// stop's color; a single stop gives a constant color and no stops give
// black.
func NewGradientMap(stops []Stop) *GradientMap {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })
	return &GradientMap{stops: sorted}
}

// At returns the Lab-blended color for amplitude v.
func (g *GradientMap) At(v uint8) pixel.Pixel {
	if len(g.stops) == 0 {
		return pixel.Black
	}
	if len(g.stops) == 1 || v <= g.stops[0].Pos {
		return toPixel(g.stops[0].Color)
	}
	last := g.stops[len(g.stops)-1]
	if v >= last.Pos {
		return toPixel(last.Color)
	}
	for i := 1; i < len(g.stops); i++ {
		hi := g.stops[i]
		if v > hi.Pos {
			continue
		}
		lo := g.stops[i-1]
		span := int(hi.Pos) - int(lo.Pos)
		if span <= 0 {
			return toPixel(hi.Color)
		}
		t := float64(int(v)-int(lo.Pos)) / float64(span)
		return toPixel(lo.Color.BlendLab(hi.Color, t))
	}
	return toPixel(last.Color)
}

// Fill colorizes a batch of amplitude indices into out by calling At
// for each index; no work is shared between indices. GradientMap.At
// does a linear scan of the (typically small) stop list, so batching
// only saves callers a per-pixel interface dispatch.
func (g *GradientMap) Fill(indices []uint8, out []pixel.Pixel) {
	n := len(indices)
	if len(out) < n {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		out[i] = g.At(indices[i])
	}
}

func toPixel(c colorful.Color) pixel.Pixel {
	r, g, b := c.Clamped().RGB255()
	return pixel.Pixel{R: r, G: g, B: b}
}
