// Package wavefx pairs a wavesim simulation with a colorizer to turn
// amplitudes into pixels, and exposes the result as an fx.Effect.
package wavefx

import "github.com/kestrelfx/ledfx/pixel"

// Colorizer maps an 8-bit amplitude (wavesim's GetU8 output) to a
// Pixel. Fill is the batch form of At; both GrayscaleMap and
// GradientMap implement it as a per-element loop over At.
type Colorizer interface {
	At(v uint8) pixel.Pixel
	Fill(indices []uint8, out []pixel.Pixel)
}

// GrayscaleMap is the simplest colorizer: amplitude v maps directly to
// Pixel{v,v,v}.
type GrayscaleMap struct{}

func (GrayscaleMap) At(v uint8) pixel.Pixel { return pixel.Pixel{R: v, G: v, B: v} }

func (g GrayscaleMap) Fill(indices []uint8, out []pixel.Pixel) {
	n := len(indices)
	if len(out) < n {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		out[i] = g.At(indices[i])
	}
}
