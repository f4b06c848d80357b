package effects

import (
	"image"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/kestrelfx/ledfx/wavefx"
)

// LoadGradientPalette decodes a PNG gradient strip (any width/height)
// and resamples it down to numStops evenly spaced color stops spanning
// amplitude positions 0..255, returning a wavefx.GradientMap. This is
// the hosted-build equivalent of the original firmware's hand-written
// palette tables: instead of baking stop colors into source, they are
// authored as a one-row image asset and resampled at load time.
func LoadGradientPalette(r io.Reader, numStops int) (*wavefx.GradientMap, error) {
	if numStops < 2 {
		numStops = 2
	}

	src, err := png.Decode(r)
	if err != nil {
		return nil, err
	}

	strip := image.NewRGBA(image.Rect(0, 0, numStops, 1))
	draw.CatmullRom.Scale(strip, strip.Bounds(), src, src.Bounds(), draw.Over, nil)

	stops := make([]wavefx.Stop, numStops)
	for i := 0; i < numStops; i++ {
		// image.RGBA stores alpha-premultiplied channels; un-premultiply
		// before treating them as straight [0,1] color components.
		px := strip.RGBAAt(i, 0)
		var rf, gf, bf float64
		if px.A > 0 {
			rf = float64(px.R) / float64(px.A)
			gf = float64(px.G) / float64(px.A)
			bf = float64(px.B) / float64(px.A)
		}
		pos := i * 255 / (numStops - 1)
		stops[i] = wavefx.Stop{
			Pos:   uint8(pos),
			Color: colorful.Color{R: rf, G: gf, B: bf},
		}
	}
	return wavefx.NewGradientMap(stops), nil
}
