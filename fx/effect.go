// Package fx implements the compositor core: the Effect contract, the
// two-layer cross-fading Compositor, the bounded Engine registry, and
// the fixed-FPS frame Interpolator. Everything here is single-threaded
// and cooperative: Draw is the only entry point and never blocks.
package fx

import "github.com/kestrelfx/ledfx/pixel"

// DrawContext is passed to an Effect's Draw method. Pixels is the
// effect's own scratch buffer, owned exclusively for the duration of
// the call. Alpha is non-nil only when the layer's frame was allocated
// with an alpha channel.
type DrawContext struct {
	NowMS  int64
	Pixels []pixel.Pixel
	Alpha  []uint8
}

// Effect is the contract every visual effect implements. It deliberately
// carries only the methods every effect needs; optional behavior
// (fixed-FPS declaration, pause/resume, nested effect selection) is
// expressed via the capability interfaces below and recovered with a
// type assertion, matching fl::Fx's optional virtual hooks collapsed
// into Go's duck typing.
type Effect interface {
	Draw(ctx DrawContext)
	Name() string
	NumLeds() uint16
}

// FixedFPS is implemented by effects that render at a constant frame
// period, making them eligible for interpolated rendering (§4.7).
type FixedFPS interface {
	FixedFPS() float64
}

// Pauser is implemented by effects that need to know when they are
// taken off screen or brought back, e.g. to freeze or reseed internal
// state. Layer calls Resume before the first Draw after a Set, and
// Pause when releasing or replacing the effect.
type Pauser interface {
	Pause(now int64)
	Resume(now int64)
}

// Selector is implemented by effects that themselves hold a
// sub-collection of effects (e.g. a layered or switchable composite),
// letting a host enumerate and switch among them without the engine
// needing to know about composite effects specifically.
type Selector interface {
	FxCount() int
	FxSet(i int)
	FxNext(delta int)
	FxGet() int
}

// HasAlpha is implemented by effects that want a parallel alpha plane
// allocated in their layer's scratch frame.
type HasAlpha interface {
	HasAlphaChannel() bool
}
