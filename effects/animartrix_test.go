package effects

import (
	"testing"

	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/xymap"
)

type recordingRenderer struct {
	lastAnim int
	lastNow  int64
}

func (r *recordingRenderer) Render(animation int, xy xymap.XYMap, now int64, out []pixel.Pixel) {
	r.lastAnim = animation
	r.lastNow = now
	for i := range out {
		out[i] = pixel.Pixel{R: uint8(animation)}
	}
}

func TestAnimartrixDrawDelegatesToRenderer(t *testing.T) {
	xy := xymap.NewRectangular(2, 2)
	renderer := &recordingRenderer{}
	a := NewAnimartrix(xy, renderer, 5)
	a.FxSet(3)

	out := make([]pixel.Pixel, 4)
	a.Draw(fx.DrawContext{NowMS: 42, Pixels: out})

	if renderer.lastAnim != 3 {
		t.Errorf("renderer got animation %d, want 3", renderer.lastAnim)
	}
	if renderer.lastNow != 42 {
		t.Errorf("renderer got now %d, want 42", renderer.lastNow)
	}
	for i, p := range out {
		if p.R != 3 {
			t.Errorf("out[%d] = %v", i, p)
		}
	}
}

func TestAnimartrixFxNextWrapsAround(t *testing.T) {
	xy := xymap.NewRectangular(1, 1)
	a := NewAnimartrix(xy, &recordingRenderer{}, 3)
	a.FxSet(2)
	a.FxNext(1)
	if got := a.FxGet(); got != 0 {
		t.Errorf("FxGet() = %d, want 0 (wrapped)", got)
	}
	a.FxNext(-1)
	if got := a.FxGet(); got != 2 {
		t.Errorf("FxGet() = %d, want 2 (wrapped negative)", got)
	}
}

func TestAnimartrixFxCount(t *testing.T) {
	a := NewAnimartrix(xymap.NewRectangular(1, 1), &recordingRenderer{}, 7)
	if got := a.FxCount(); got != 7 {
		t.Errorf("FxCount() = %d, want 7", got)
	}
}
