package effects

import (
	"strconv"

	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/xymap"
)

// AnimartrixRenderer is the external collaborator that does the actual
// per-animation rendering work; the animartrix detail library's
// internals are out of scope here. Render fills out for the selected
// animation index at time now.
type AnimartrixRenderer interface {
	Render(animation int, xy xymap.XYMap, now int64, out []pixel.Pixel)
}

// Animartrix adapts an AnimartrixRenderer to fx.Effect, tracking the
// active animation index and exposing switching through fx.Selector so
// a host can cycle presets without knowing about Animartrix
// specifically.
type Animartrix struct {
	xy       xymap.XYMap
	renderer AnimartrixRenderer
	numAnims int
	current  int
}

// NewAnimartrix builds an Animartrix over xy, delegating rendering to
// renderer. numAnims bounds the animation index FxSet/FxNext cycle
// through.
func NewAnimartrix(xy xymap.XYMap, renderer AnimartrixRenderer, numAnims int) *Animartrix {
	return &Animartrix{xy: xy, renderer: renderer, numAnims: numAnims}
}

func (a *Animartrix) Name() string    { return "Animartrix(" + strconv.Itoa(a.current) + ")" }
func (a *Animartrix) NumLeds() uint16 { return uint16(a.xy.Total()) }

func (a *Animartrix) Draw(ctx fx.DrawContext) {
	a.renderer.Render(a.current, a.xy, ctx.NowMS, ctx.Pixels)
}

// FxCount, FxSet, FxNext, FxGet implement fx.Selector.
func (a *Animartrix) FxCount() int { return a.numAnims }

func (a *Animartrix) FxSet(i int) {
	if a.numAnims <= 0 {
		a.current = 0
		return
	}
	i %= a.numAnims
	if i < 0 {
		i += a.numAnims
	}
	a.current = i
}

func (a *Animartrix) FxNext(delta int) { a.FxSet(a.current + delta) }
func (a *Animartrix) FxGet() int       { return a.current }
