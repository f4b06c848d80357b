package wavefx

import (
	"testing"

	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/wavesim"
)

func TestWaveFx1DImplementsEffect(t *testing.T) {
	sim := wavesim.NewSim1D(8, wavesim.SuperSampleNone, 0.16, 6)
	w := NewWaveFx1D("strip", sim, GrayscaleMap{})
	var _ fx.Effect = w

	if got, want := w.NumLeds(), uint16(8); got != want {
		t.Errorf("NumLeds() = %d, want %d", got, want)
	}
}

func TestWaveFx1DDrawProducesNonBlackAtStimulus(t *testing.T) {
	sim := wavesim.NewSim1D(8, wavesim.SuperSampleNone, 0.16, 6)
	sim.SetHalfDuplex(true)
	w := NewWaveFx1D("strip", sim, GrayscaleMap{})
	w.SetF(4, 1.0)

	out := make([]pixel.Pixel, 8)
	w.Draw(fx.DrawContext{NowMS: 0, Pixels: out})
	if out[4] == pixel.Black {
		t.Errorf("stimulated cell 4 is black after draw")
	}
}
