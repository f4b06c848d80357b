package wavefx

import (
	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/wavesim"
	"github.com/kestrelfx/ledfx/xymap"
)

// WaveFx2D pairs a super-sampled 2D wave simulation with a colorizer
// and an XYMap, and implements fx.Effect (via Draw/Name/NumLeds) so it
// can be registered directly with an Engine.
type WaveFx2D struct {
	name       string
	sim        *wavesim.Sim2D
	colorizer  Colorizer
	xy         xymap.XYMap
	autoUpdate bool

	// scratch reused across Draw calls
	amps   []uint8
	colors []pixel.Pixel
}

// NewWaveFx2D constructs a wave effect over xy's dimensions, which
// must match sim's outer width/height.
func NewWaveFx2D(name string, sim *wavesim.Sim2D, colorizer Colorizer, xy xymap.XYMap) *WaveFx2D {
	n := sim.Width() * sim.Height()
	return &WaveFx2D{
		name:       name,
		sim:        sim,
		colorizer:  colorizer,
		xy:         xy,
		autoUpdate: true,
		amps:       make([]uint8, n),
		colors:     make([]pixel.Pixel, n),
	}
}

// SetF stores amplitude v (clamped to [-1,1]) at (x,y).
func (w *WaveFx2D) SetF(x, y int, v float64) { w.sim.SetF(x, y, v) }

// AddF adds delta to the amplitude already at (x,y), clamping the sum
// to [-1,1].
func (w *WaveFx2D) AddF(x, y int, delta float64) {
	sum := w.sim.GetF(x, y) + delta
	if sum > 1 {
		sum = 1
	}
	if sum < -1 {
		sum = -1
	}
	w.sim.SetF(x, y, sum)
}

// SetColorizer replaces the amplitude-to-pixel mapping.
func (w *WaveFx2D) SetColorizer(c Colorizer) { w.colorizer = c }

func (w *WaveFx2D) SetSpeed(speed float64)         { w.sim.SetSpeed(speed) }
func (w *WaveFx2D) SetDamping(exp int)             { w.sim.SetDamping(exp) }
func (w *WaveFx2D) SetHalfDuplex(on bool)          { w.sim.SetHalfDuplex(on) }
func (w *WaveFx2D) SetXCyclical(on bool)           { w.sim.SetXCyclical(on) }
func (w *WaveFx2D) SetEasingMode(e wavesim.Easing) { w.sim.SetEasingMode(e) }
func (w *WaveFx2D) SetUseChangeGrid(on bool)       { w.sim.SetUseChangeGrid(on) }
func (w *WaveFx2D) SetSuperSample(factor wavesim.SuperSample) {
	w.sim.SetSuperSample(factor)
}

// SetAutoUpdate controls whether Draw advances the simulation itself.
// Disable it to drive Update manually, e.g. to step the physics at a
// different cadence than the render loop.
func (w *WaveFx2D) SetAutoUpdate(on bool) { w.autoUpdate = on }

// Update advances the simulation by one outer step.
func (w *WaveFx2D) Update() { w.sim.Update() }

// Draw advances the simulation (unless auto-update is off), reads every
// outer cell's amplitude, colorizes it, and writes it into ctx.Pixels
// through the XYMap.
func (w *WaveFx2D) Draw(ctx fx.DrawContext) {
	if w.autoUpdate {
		w.Update()
	}
	width, height := w.sim.Width(), w.sim.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w.amps[y*width+x] = w.sim.GetU8(x, y)
		}
	}
	w.colorizer.Fill(w.amps, w.colors)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := w.xy.Map(x, y)
			if idx >= 0 && idx < len(ctx.Pixels) {
				ctx.Pixels[idx] = w.colors[y*width+x]
			}
		}
	}
}

// Name returns the effect's registration name.
func (w *WaveFx2D) Name() string { return w.name }

// NumLeds returns the XYMap's total cell count.
func (w *WaveFx2D) NumLeds() uint16 { return uint16(w.xy.Total()) }
