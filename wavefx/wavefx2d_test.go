package wavefx

import (
	"testing"

	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/wavesim"
	"github.com/kestrelfx/ledfx/xymap"
)

func TestWaveFx2DImplementsEffect(t *testing.T) {
	sim := wavesim.NewSim2D(4, 4, wavesim.SuperSampleNone, 0.16, 6)
	w := NewWaveFx2D("wave", sim, GrayscaleMap{}, xymap.NewRectangular(4, 4))
	var _ fx.Effect = w

	if got, want := w.Name(), "wave"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if got, want := w.NumLeds(), uint16(16); got != want {
		t.Errorf("NumLeds() = %d, want %d", got, want)
	}
}

func TestWaveFx2DDrawWritesThroughXYMap(t *testing.T) {
	sim := wavesim.NewSim2D(4, 4, wavesim.SuperSampleNone, 0.16, 6)
	sim.SetHalfDuplex(true)
	w := NewWaveFx2D("wave", sim, GrayscaleMap{}, xymap.NewRectangular(4, 4))
	w.SetF(2, 2, 1.0)

	out := make([]pixel.Pixel, 16)
	w.Draw(fx.DrawContext{NowMS: 0, Pixels: out})

	idx := 2*4 + 2
	if out[idx] == pixel.Black {
		t.Errorf("stimulated cell (2,2) at index %d is black after draw", idx)
	}
}

func TestWaveFx2DAutoUpdateOffLeavesSimUntouched(t *testing.T) {
	sim := wavesim.NewSim2D(4, 4, wavesim.SuperSampleNone, 0.16, 6)
	sim.SetHalfDuplex(true)
	w := NewWaveFx2D("wave", sim, GrayscaleMap{}, xymap.NewRectangular(4, 4))
	w.SetAutoUpdate(false)
	w.SetF(2, 2, 1.0)
	before := sim.GetI16(2, 2)

	out := make([]pixel.Pixel, 16)
	w.Draw(fx.DrawContext{NowMS: 0, Pixels: out})

	if got := sim.GetI16(2, 2); got != before {
		t.Errorf("Draw with auto-update off stepped the simulation: %d -> %d", before, got)
	}
}

func TestWaveFx2DAddFClamps(t *testing.T) {
	sim := wavesim.NewSim2D(2, 2, wavesim.SuperSampleNone, 0.1, 4)
	w := NewWaveFx2D("wave", sim, GrayscaleMap{}, xymap.NewRectangular(2, 2))
	w.SetF(0, 0, 0.9)
	w.AddF(0, 0, 0.9)
	if got := w.sim.GetF(0, 0); got > 1.0 {
		t.Errorf("AddF allowed amplitude %v > 1.0", got)
	}
}
