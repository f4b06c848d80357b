// Command termview is a tcell-backed terminal LED-wall preview, a
// second and lighter-weight downstream sink than cmd/ledview,
// exercising the same Effect/Engine surface headlessly over a
// character cell grid instead of a pixel grid.
package main

import (
	"flag"
	"time"

	"github.com/gdamore/tcell/v2"

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
	interpolate = flag.Bool("interpolate", true, "enable fixed-FPS frame interpolation")
)

func run(screen tcell.Screen, engine *fx.Engine, xy xymap.XYMap) {
	defer screen.Fini()

	out := make([]pixel.Pixel, xy.Total())
	start := time.Now()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	// PollEvent unblocks and returns nil once Fini runs on screen, which
	// is how this goroutine is told to stop; it must never be called
	// again afterward.
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	w, h := xy.Width(), xy.Height()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			now := time.Since(start).Milliseconds()
			engine.Draw(now, out)

			screen.Clear()
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					idx := xy.Map(x, y)
					if idx < 0 || idx >= len(out) {
						continue
					}
					p := out[idx]
					color := tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
					style := tcell.StyleDefault.Background(color)
					screen.SetContent(x, y, ' ', nil, style)
				}
			}
			screen.Show()
		}
	}
}

func main() {
	flag.Parse()
	log := logging.Default()

	xy := xymap.NewRectangular(*width, *height)
	sim := wavesim.NewSim2D(*width, *height, wavesim.SuperSampleNone, 0.16, 6)
	demo := wavefx.NewWaveFx2D("ripple", sim, wavefx.NewGradientMap(wavefx.RainbowPalette), xy)

	engine := fx.New(xy.Total(), *interpolate)
	if _, err := engine.Add(demo); err != nil {
		log.Fatal().Err(err).Msg("add demo effect")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("new screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("init screen")
	}

	run(screen, engine, xy)
}
