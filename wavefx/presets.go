package wavefx

import "github.com/lucasb-eyer/go-colorful"

// Preset color stops recovered from FastLED's built-in named palettes
// (HeatColors, OceanColors, RainbowColors), supplementing the spec's
// colorizer description with the preset-switching behavior the
// original noise/wave effects expose via SetupRandomPalette-style
// helpers.
var (
	HeatPalette = []Stop{
		{Pos: 0, Color: colorful.Color{R: 0, G: 0, B: 0}},
		{Pos: 85, Color: colorful.Color{R: 1, G: 0, B: 0}},
		{Pos: 170, Color: colorful.Color{R: 1, G: 1, B: 0}},
		{Pos: 255, Color: colorful.Color{R: 1, G: 1, B: 1}},
	}

	OceanPalette = []Stop{
		{Pos: 0, Color: colorful.Color{R: 0, G: 0, B: 0.1}},
		{Pos: 128, Color: colorful.Color{R: 0, G: 0.3, B: 0.6}},
		{Pos: 255, Color: colorful.Color{R: 0.6, G: 1, B: 1}},
	}

	RainbowPalette = []Stop{
		{Pos: 0, Color: colorful.Hsv(0, 1, 1)},
		{Pos: 64, Color: colorful.Hsv(90, 1, 1)},
		{Pos: 128, Color: colorful.Hsv(180, 1, 1)},
		{Pos: 192, Color: colorful.Hsv(270, 1, 1)},
		{Pos: 255, Color: colorful.Hsv(360, 1, 1)},
	}

	BlackAndWhiteStripedPalette = []Stop{
		{Pos: 0, Color: colorful.Color{R: 0, G: 0, B: 0}},
		{Pos: 63, Color: colorful.Color{R: 0, G: 0, B: 0}},
		{Pos: 64, Color: colorful.Color{R: 1, G: 1, B: 1}},
		{Pos: 127, Color: colorful.Color{R: 1, G: 1, B: 1}},
		{Pos: 128, Color: colorful.Color{R: 0, G: 0, B: 0}},
		{Pos: 191, Color: colorful.Color{R: 0, G: 0, B: 0}},
		{Pos: 192, Color: colorful.Color{R: 1, G: 1, B: 1}},
		{Pos: 255, Color: colorful.Color{R: 1, G: 1, B: 1}},
	}
)
