// Package pixel implements the RGB pixel type and frame buffer shared by
// every effect in the engine.
package pixel

// Pixel is a single RGB LED value. Each channel saturates independently;
// there is no alpha component here (a Frame carries alpha separately).
type Pixel struct {
	R, G, B uint8
}

// Black is the zero value, named for readability at call sites.
var Black = Pixel{}

func sat(a, b int) uint8 {
	v := a + b
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// AddSat returns p + o with each channel saturating at 255.
func (p Pixel) AddSat(o Pixel) Pixel {
	return Pixel{sat(int(p.R), int(o.R)), sat(int(p.G), int(o.G)), sat(int(p.B), int(o.B))}
}

// SubSat returns p - o with each channel saturating at 0.
func (p Pixel) SubSat(o Pixel) Pixel {
	return Pixel{sat(int(p.R), -int(o.R)), sat(int(p.G), -int(o.G)), sat(int(p.B), -int(o.B))}
}

func maxu8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func minu8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

// Or is the component-wise max of two pixels (mirrors the C++ "|=" idiom
// in pixelset.h, which FastLED uses for additive highlight compositing).
func (p Pixel) Or(o Pixel) Pixel {
	return Pixel{maxu8(p.R, o.R), maxu8(p.G, o.G), maxu8(p.B, o.B)}
}

// And is the component-wise min of two pixels ("&=" in pixelset.h).
func (p Pixel) And(o Pixel) Pixel {
	return Pixel{minu8(p.R, o.R), minu8(p.G, o.G), minu8(p.B, o.B)}
}

func scale8(c, frac uint8) uint8 {
	return uint8((uint16(c) * uint16(frac)) >> 8)
}

// ScaleBy multiplies each channel by frac/256.
func (p Pixel) ScaleBy(frac uint8) Pixel {
	return Pixel{scale8(p.R, frac), scale8(p.G, frac), scale8(p.B, frac)}
}

// ScaleVideo is ScaleBy but a nonzero input channel never scales down to
// exactly zero output, matching FastLED's nscale8_video: dimming never
// fully extinguishes a lit LED.
func (p Pixel) ScaleVideo(frac uint8) Pixel {
	scale := func(c uint8) uint8 {
		if c == 0 {
			return 0
		}
		v := (uint16(c) * uint16(frac)) >> 8
		if v == 0 {
			return 1
		}
		return uint8(v)
	}
	return Pixel{scale(p.R), scale(p.G), scale(p.B)}
}

// IsBlack reports whether all channels are zero.
func (p Pixel) IsBlack() bool {
	return p.R == 0 && p.G == 0 && p.B == 0
}

// Blend performs channel-wise linear interpolation from a to b, at
// progress amt in [0,255]. amt=0 returns a, amt=255 returns b.
func Blend(a, b Pixel, amt uint8) Pixel {
	lerp := func(x, y uint8) uint8 {
		delta := int(y) - int(x)
		return uint8(int(x) + delta*int(amt)/255)
	}
	return Pixel{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B)}
}
