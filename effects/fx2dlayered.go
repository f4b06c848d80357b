package effects

import (
	"strings"

	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/xymap"
)

// Fx2dLayered composites layers back-to-front into one shared raw
// frame that is cleared only once per Draw, not between layers, so
// each successive layer's effect draws on top of everything already
// accumulated beneath it. After every layer's draw, the current state
// of that frame is blended into the output again (non-black pixels
// overwrite, black pixels leave the output untouched), matching the
// original's habit of re-compositing on every iteration rather than
// once at the end.
type Fx2dLayered struct {
	xy     xymap.XYMap
	layers []fx.Effect

	frame *pixel.Frame
}

// NewFx2dLayered constructs an empty Fx2dLayered over xy.
func NewFx2dLayered(xy xymap.XYMap) *Fx2dLayered {
	return &Fx2dLayered{xy: xy, frame: pixel.NewFrame(xy.Total())}
}

// AddLayer appends a layer. Layers are drawn in reverse of the order
// they were added: the most recently added layer is drawn first (and
// so sits at the back).
func (f *Fx2dLayered) AddLayer(layer fx.Effect) { f.layers = append(f.layers, layer) }

// Clear removes every layer.
func (f *Fx2dLayered) Clear() { f.layers = nil }

func (f *Fx2dLayered) Name() string {
	names := make([]string, len(f.layers))
	for i, l := range f.layers {
		names[i] = l.Name()
	}
	return "Fx2dLayered(" + strings.Join(names, ",") + ")"
}

func (f *Fx2dLayered) NumLeds() uint16 { return uint16(f.xy.Total()) }

func (f *Fx2dLayered) Draw(ctx fx.DrawContext) {
	f.frame.Clear()
	for i := range ctx.Pixels {
		ctx.Pixels[i] = pixel.Black
	}

	for i := len(f.layers) - 1; i >= 0; i-- {
		f.layers[i].Draw(fx.DrawContext{NowMS: ctx.NowMS, Pixels: f.frame.Pixels()})
		f.frame.Composite(ctx.Pixels, pixel.BlendByBlack)
	}
}
