package effects

import (
	"strings"

	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/xymap"
)

// Blend2d stacks N delegate effects over a shared XYMap. Each layer
// draws into a shared raw accumulation frame (not cleared between
// layers, so a layer that leaves cells untouched inherits whatever the
// layer below it left there), and after every layer's draw the current
// state of that frame is composited into the transformed output: the
// bottom layer overwrites, every layer above it only contributes its
// non-black pixels.
type Blend2d struct {
	xy     xymap.XYMap
	layers []fx.Effect

	frame          *pixel.Frame
	frameTransform *pixel.Frame
}

// NewBlend2d constructs an empty Blend2d over xy; layers are added
// with Add.
func NewBlend2d(xy xymap.XYMap) *Blend2d {
	return &Blend2d{
		xy:             xy,
		frame:          pixel.NewFrame(xy.Total()),
		frameTransform: pixel.NewFrame(xy.Total()),
	}
}

// Add appends a layer to the stack, drawn after (on top of) every
// layer already present.
func (b *Blend2d) Add(layer fx.Effect) { b.layers = append(b.layers, layer) }

// Clear removes every layer.
func (b *Blend2d) Clear() { b.layers = nil }

func (b *Blend2d) Name() string {
	names := make([]string, len(b.layers))
	for i, l := range b.layers {
		names[i] = l.Name()
	}
	return "Blend2d(" + strings.Join(names, ",") + ")"
}

func (b *Blend2d) NumLeds() uint16 { return uint16(b.xy.Total()) }

func (b *Blend2d) Draw(ctx fx.DrawContext) {
	b.frame.Clear()
	b.frameTransform.Clear()

	first := true
	for _, layer := range b.layers {
		layer.Draw(fx.DrawContext{NowMS: ctx.NowMS, Pixels: b.frame.Pixels()})
		mode := pixel.BlendByBlack
		if first {
			mode = pixel.Overwrite
			first = false
		}
		b.frame.Composite(b.frameTransform.Pixels(), mode)
	}

	b.frameTransform.Draw(ctx.Pixels, b.xy, pixel.Overwrite)
}
