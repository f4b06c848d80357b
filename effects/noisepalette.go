package effects

import (
	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/wavefx"
	"github.com/kestrelfx/ledfx/xymap"
)

// NoiseSource is the external collaborator that generates the raw noise
// field NoisePalette colorizes. The noise generator itself is out of
// scope here; implementations are free to wrap any Perlin/simplex/value
// noise library.
type NoiseSource interface {
	// At returns the noise value at grid cell (x,y) at time t, as an
	// 8-bit amplitude.
	At(x, y int, t int64) uint8
}

// NoisePalette samples a NoiseSource across an XYMap each frame and
// colorizes the result through a wavefx.Colorizer (typically a
// GradientMap loaded from one of the preset palettes).
type NoisePalette struct {
	name      string
	xy        xymap.XYMap
	source    NoiseSource
	colorizer wavefx.Colorizer
}

// NewNoisePalette builds a NoisePalette over xy, sampling source and
// coloring through colorizer.
func NewNoisePalette(name string, xy xymap.XYMap, source NoiseSource, colorizer wavefx.Colorizer) *NoisePalette {
	return &NoisePalette{name: name, xy: xy, source: source, colorizer: colorizer}
}

// SetColorizer swaps the active palette without disturbing the noise
// source's internal state.
func (n *NoisePalette) SetColorizer(c wavefx.Colorizer) { n.colorizer = c }

func (n *NoisePalette) Name() string    { return n.name }
func (n *NoisePalette) NumLeds() uint16 { return uint16(n.xy.Total()) }

func (n *NoisePalette) Draw(ctx fx.DrawContext) {
	w, h := n.xy.Width(), n.xy.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := n.xy.Map(x, y)
			if idx < 0 || idx >= len(ctx.Pixels) {
				continue
			}
			v := n.source.At(x, y, ctx.NowMS)
			ctx.Pixels[idx] = n.colorizer.At(v)
		}
	}
}
