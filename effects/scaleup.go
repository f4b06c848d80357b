// Package effects supplements the engine with the concrete Fx2d
// implementations named in spec.md's component table but not detailed
// in its body: layer compositors, a noise+palette generator, a
// super-sampled upscaler, an Animartrix adapter, and a byte-stream
// video player.
package effects

import (
	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/xymap"
)

// ScaleUp renders a delegate effect at its own (typically smaller)
// resolution and bilinearly upsamples the result onto a larger XYMap,
// trading fidelity for the delegate's reduced compute cost.
type ScaleUp struct {
	name       string
	xy         xymap.XYMap
	delegate   fx.Effect
	delegateXY xymap.XYMap
	surface    []pixel.Pixel
}

// NewScaleUp wraps delegate, which renders at delegateXY's resolution,
// and presents the result scaled up to xy's resolution.
func NewScaleUp(name string, xy, delegateXY xymap.XYMap, delegate fx.Effect) *ScaleUp {
	return &ScaleUp{
		name:       name,
		xy:         xy,
		delegate:   delegate,
		delegateXY: delegateXY,
		surface:    make([]pixel.Pixel, delegateXY.Total()),
	}
}

func (s *ScaleUp) Name() string    { return s.name }
func (s *ScaleUp) NumLeds() uint16 { return uint16(s.xy.Total()) }

// Draw renders the delegate into its native-resolution surface, then
// bilinearly expands it across the output XYMap. When the delegate and
// output share the same dimensions this degenerates to a direct copy
// (FastLED's ScaleUp::noExpand debug passthrough).
func (s *ScaleUp) Draw(ctx fx.DrawContext) {
	s.delegate.Draw(fx.DrawContext{NowMS: ctx.NowMS, Pixels: s.surface})

	srcW, srcH := s.delegateXY.Width(), s.delegateXY.Height()
	dstW, dstH := s.xy.Width(), s.xy.Height()
	if srcW == dstW && srcH == dstH {
		for y := 0; y < dstH; y++ {
			for x := 0; x < dstW; x++ {
				idx := s.delegateXY.Map(x, y)
				if idx < 0 || idx >= len(s.surface) {
					continue
				}
				out := s.xy.Map(x, y)
				if out >= 0 && out < len(ctx.Pixels) {
					ctx.Pixels[out] = s.surface[idx]
				}
			}
		}
		return
	}

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			p := s.bilinear(x, y, srcW, srcH, dstW, dstH)
			out := s.xy.Map(x, y)
			if out >= 0 && out < len(ctx.Pixels) {
				ctx.Pixels[out] = p
			}
		}
	}
}

func (s *ScaleUp) src(x, y, srcW, srcH int) pixel.Pixel {
	if x < 0 {
		x = 0
	}
	if x >= srcW {
		x = srcW - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= srcH {
		y = srcH - 1
	}
	idx := s.delegateXY.Map(x, y)
	if idx < 0 || idx >= len(s.surface) {
		return pixel.Black
	}
	return s.surface[idx]
}

// bilinear samples the delegate's surface at the fractional source
// coordinate corresponding to output pixel (x,y), interpolating each
// channel independently.
func (s *ScaleUp) bilinear(x, y, srcW, srcH, dstW, dstH int) pixel.Pixel {
	fx := float64(x) * float64(srcW) / float64(dstW)
	fy := float64(y) * float64(srcH) / float64(dstH)
	x0, y0 := int(fx), int(fy)
	tx, ty := fx-float64(x0), fy-float64(y0)

	p00 := s.src(x0, y0, srcW, srcH)
	p10 := s.src(x0+1, y0, srcW, srcH)
	p01 := s.src(x0, y0+1, srcW, srcH)
	p11 := s.src(x0+1, y0+1, srcW, srcH)

	lerpCh := func(a, b uint8, t float64) float64 { return float64(a) + (float64(b)-float64(a))*t }
	mix := func(c00, c10, c01, c11 uint8) uint8 {
		top := lerpCh(c00, c10, tx)
		bot := lerpCh(c01, c11, tx)
		return uint8(top + (bot-top)*ty)
	}
	return pixel.Pixel{
		R: mix(p00.R, p10.R, p01.R, p11.R),
		G: mix(p00.G, p10.G, p01.G, p11.G),
		B: mix(p00.B, p10.B, p01.B, p11.B),
	}
}
