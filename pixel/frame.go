package pixel

import "github.com/kestrelfx/ledfx/xymap"

// DrawMode selects how Frame.Draw composites its source pixels onto a
// destination buffer.
type DrawMode int

const (
	// Overwrite replaces every destination pixel unconditionally.
	Overwrite DrawMode = iota
	// BlendByBlack only writes source pixels that are non-black, leaving
	// the destination untouched wherever the source is black. This is
	// how FastLED layers effects on top of each other without a
	// transparency channel.
	BlendByBlack
)

// Frame is an owned buffer of N pixels with an optional parallel N-byte
// alpha channel.
type Frame struct {
	pixels []Pixel
	alpha  []uint8
}

// NewFrame allocates a zeroed frame of n pixels with no alpha channel.
func NewFrame(n int) *Frame {
	return &Frame{pixels: make([]Pixel, n)}
}

// NewFrameWithAlpha allocates a zeroed frame of n pixels plus an n-byte
// alpha channel, initialized fully opaque (255).
func NewFrameWithAlpha(n int) *Frame {
	f := &Frame{pixels: make([]Pixel, n), alpha: make([]uint8, n)}
	for i := range f.alpha {
		f.alpha[i] = 255
	}
	return f
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int { return len(f.pixels) }

// Pixels returns the frame's backing pixel slice for direct read/write.
func (f *Frame) Pixels() []Pixel { return f.pixels }

// Alpha returns the frame's alpha channel, or nil if none was allocated.
func (f *Frame) Alpha() []uint8 { return f.alpha }

// HasAlpha reports whether the frame carries an alpha channel.
func (f *Frame) HasAlpha() bool { return f.alpha != nil }

// Clear zeroes every pixel (and alpha byte, if present).
func (f *Frame) Clear() {
	for i := range f.pixels {
		f.pixels[i] = Black
	}
	for i := range f.alpha {
		f.alpha[i] = 0
	}
}

// CopyTo copies this frame's pixels into an external buffer. If dst is
// shorter than the frame, only len(dst) pixels are copied.
func (f *Frame) CopyTo(dst []Pixel) {
	n := len(dst)
	if n > len(f.pixels) {
		n = len(f.pixels)
	}
	copy(dst[:n], f.pixels[:n])
}

// Composite writes this frame's pixels into dst index-for-index (no
// XYMap remap) according to mode, for compositing passes that operate
// in raw linear index space between intermediate frames; only the
// final write to a display buffer needs to remap through an XYMap.
func (f *Frame) Composite(dst []Pixel, mode DrawMode) {
	n := len(dst)
	if n > len(f.pixels) {
		n = len(f.pixels)
	}
	for i := 0; i < n; i++ {
		p := f.pixels[i]
		if mode == BlendByBlack && p.IsBlack() {
			continue
		}
		dst[i] = p
	}
}

// Draw remaps this frame's pixels through xy and writes them into dst
// according to mode. dst must be sized to xy.Total().
func (f *Frame) Draw(dst []Pixel, xy xymap.XYMap, mode DrawMode) {
	w, h := xy.Width(), xy.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := y*w + x
			if srcIdx >= len(f.pixels) {
				continue
			}
			p := f.pixels[srcIdx]
			if mode == BlendByBlack && p.IsBlack() {
				continue
			}
			dstIdx := xy.Map(x, y)
			if dstIdx >= 0 && dstIdx < len(dst) {
				dst[dstIdx] = p
			}
		}
	}
}
