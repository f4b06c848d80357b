package fx

import "github.com/kestrelfx/ledfx/pixel"

// Interpolator renders a fixed-FPS effect at its own frame period and
// linearly interpolates between the two most recently rendered frames
// on every Draw call, giving smooth output even when Draw is called
// more often than the effect actually advances.
type Interpolator struct {
	fx          Effect
	periodMS    float64
	initialized bool
	tPrev       int64
	tNext       int64
	framePrev   *pixel.Frame
	frameNext   *pixel.Frame
}

// NewInterpolator wraps fx, which must declare a positive fps.
func NewInterpolator(fx Effect, fps float64) *Interpolator {
	n := int(fx.NumLeds())
	return &Interpolator{
		fx:        fx,
		periodMS:  1000 / fps,
		framePrev: pixel.NewFrame(n),
		frameNext: pixel.NewFrame(n),
	}
}

func (it *Interpolator) effect() Effect { return it.fx }

func (it *Interpolator) render(frame *pixel.Frame, at int64) {
	it.fx.Draw(DrawContext{NowMS: at, Pixels: frame.Pixels(), Alpha: frame.Alpha()})
}

// Draw produces the interpolated frame for real time now into out. On
// the first call both framePrev and frameNext are rendered to
// initialize the window (tPrev=now, tNext=now+period).
func (it *Interpolator) Draw(now int64, out []pixel.Pixel) {
	if !it.initialized {
		it.tPrev = now
		it.tNext = now + int64(it.periodMS)
		it.render(it.framePrev, it.tPrev)
		it.render(it.frameNext, it.tNext)
		it.initialized = true
	}
	for now >= it.tNext {
		it.framePrev, it.frameNext = it.frameNext, it.framePrev
		it.tPrev = it.tNext
		it.tNext = it.tPrev + int64(it.periodMS)
		it.render(it.frameNext, it.tNext)
	}
	alpha := clampAlpha((now - it.tPrev) * 255 / int64(it.periodMS))
	a := it.framePrev.Pixels()
	b := it.frameNext.Pixels()
	n := len(out)
	if n > len(a) {
		n = len(a)
	}
	if n > len(b) {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		out[i] = pixel.Blend(a[i], b[i], alpha)
	}
}

func clampAlpha(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
