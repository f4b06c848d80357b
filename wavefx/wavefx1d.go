package wavefx

import (
	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/wavesim"
)

// WaveFx1D is the 1D counterpart to WaveFx2D: a super-sampled strip
// simulation plus a colorizer, addressed linearly (no XYMap needed for
// a single strip).
type WaveFx1D struct {
	name       string
	sim        *wavesim.Sim1D
	colorizer  Colorizer
	autoUpdate bool
	amps       []uint8
	colors     []pixel.Pixel
}

// NewWaveFx1D constructs a 1D wave effect over sim's outer length.
func NewWaveFx1D(name string, sim *wavesim.Sim1D, colorizer Colorizer) *WaveFx1D {
	return &WaveFx1D{
		name:       name,
		sim:        sim,
		colorizer:  colorizer,
		autoUpdate: true,
		amps:       make([]uint8, sim.Length()),
		colors:     make([]pixel.Pixel, sim.Length()),
	}
}

func (w *WaveFx1D) SetF(x int, v float64) { w.sim.SetF(x, v) }

func (w *WaveFx1D) AddF(x int, delta float64) {
	sum := w.sim.GetF(x) + delta
	if sum > 1 {
		sum = 1
	}
	if sum < -1 {
		sum = -1
	}
	w.sim.SetF(x, sum)
}

func (w *WaveFx1D) SetColorizer(c Colorizer) { w.colorizer = c }
func (w *WaveFx1D) SetSpeed(speed float64)   { w.sim.SetSpeed(speed) }
func (w *WaveFx1D) SetDamping(exp int)       { w.sim.SetDamping(exp) }
func (w *WaveFx1D) SetHalfDuplex(on bool)    { w.sim.SetHalfDuplex(on) }
func (w *WaveFx1D) SetAutoUpdate(on bool)    { w.autoUpdate = on }
func (w *WaveFx1D) Update()                  { w.sim.Update() }

// Draw advances the simulation (unless auto-update is off) and writes
// colorized amplitudes linearly into ctx.Pixels.
func (w *WaveFx1D) Draw(ctx fx.DrawContext) {
	if w.autoUpdate {
		w.Update()
	}
	length := w.sim.Length()
	for x := 0; x < length; x++ {
		w.amps[x] = w.sim.GetU8(x)
	}
	w.colorizer.Fill(w.amps, w.colors)
	n := len(ctx.Pixels)
	if n > length {
		n = length
	}
	copy(ctx.Pixels[:n], w.colors[:n])
}

func (w *WaveFx1D) Name() string    { return w.name }
func (w *WaveFx1D) NumLeds() uint16 { return uint16(w.sim.Length()) }
