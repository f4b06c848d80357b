// Command ledview is an ebiten-backed LED wall preview: the downstream
// "LED driver" sink spec.md treats as an external collaborator,
// implemented here the same way gintendo's console.Bus drives the PPU
// and blits its pixel buffer to the screen every tick.
package main

import (
	"flag"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/internal/logging"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/wavefx"
	"github.com/kestrelfx/ledfx/wavesim"
	"github.com/kestrelfx/ledfx/xymap"
)

var (
	width       = flag.Int("width", 32, "panel width in LEDs")
	height      = flag.Int("height", 16, "panel height in LEDs")
	pixelScale  = flag.Int("scale", 16, "window pixels per LED")
	interpolate = flag.Bool("interpolate", true, "enable fixed-FPS frame interpolation")
)

// View is an ebiten.Game driving an fx.Engine and blitting its output
// frame to the window, one LED per pixelScale x pixelScale block.
type View struct {
	engine *fx.Engine
	xy     xymap.XYMap
	out    []pixel.Pixel
	start  time.Time
}

func NewView(engine *fx.Engine, xy xymap.XYMap) *View {
	w, h := xy.Width(), xy.Height()
	ebiten.SetWindowSize(w*(*pixelScale), h*(*pixelScale))
	ebiten.SetWindowTitle("ledfx")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return &View{
		engine: engine,
		xy:     xy,
		out:    make([]pixel.Pixel, xy.Total()),
		start:  time.Now(),
	}
}

// Layout returns the panel's native resolution; ebiten scales the
// window to fit, the same pattern console.Bus uses for the NES's
// fixed resolution.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.xy.Width(), v.xy.Height()
}

func (v *View) Update() error {
	now := time.Since(v.start).Milliseconds()
	v.engine.Draw(now, v.out)
	return nil
}

func (v *View) Draw(screen *ebiten.Image) {
	w, h := v.xy.Width(), v.xy.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := v.xy.Map(x, y)
			if idx < 0 || idx >= len(v.out) {
				continue
			}
			p := v.out[idx]
			screen.Set(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
}

func main() {
	flag.Parse()
	log := logging.Default()

	xy := xymap.NewRectangular(*width, *height)
	sim := wavesim.NewSim2D(*width, *height, wavesim.SuperSampleNone, 0.16, 6)
	demo := wavefx.NewWaveFx2D("ripple", sim, wavefx.NewGradientMap(wavefx.OceanPalette), xy)

	engine := fx.New(xy.Total(), *interpolate)
	if _, err := engine.Add(demo); err != nil {
		log.Fatal().Err(err).Msg("add demo effect")
	}

	view := NewView(engine, xy)
	if err := ebiten.RunGame(view); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
