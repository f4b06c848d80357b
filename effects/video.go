package effects

import (
	"github.com/kestrelfx/ledfx/fx"
	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/ring"
	"github.com/kestrelfx/ledfx/xymap"
)

// bytesPerVideoPixel is the wire size of one 0x00RRGGBB pixel triple.
const bytesPerVideoPixel = 4

// Video reads pixels from a byte-stream source (typically a
// ring.Buffer fed by an external demuxer) and paints them across an
// XYMap in row-major order, one frame's worth of pixels per Draw call.
// It never rewinds the stream itself; refilling or looping the
// underlying buffer is the caller's responsibility.
type Video struct {
	xy     xymap.XYMap
	source *ring.Buffer
}

// NewVideo builds a Video reading from source, whose frames it expects
// in (width*height) pixel-sized chunks of 0x00RRGGBB bytes.
func NewVideo(xy xymap.XYMap, source *ring.Buffer) *Video {
	return &Video{xy: xy, source: source}
}

func (v *Video) Name() string    { return "video" }
func (v *Video) NumLeds() uint16 { return uint16(v.xy.Total()) }

// Draw reads one pixel per cell from the byte stream in row-major
// order. A cell is painted black whenever fewer than
// bytesPerVideoPixel bytes remain buffered for it, mirroring the
// original's "ran dry" fallback to black rather than stalling.
func (v *Video) Draw(ctx fx.DrawContext) {
	w, h := v.xy.Width(), v.xy.Height()
	var frame [bytesPerVideoPixel]byte

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := v.xy.Map(x, y)
			if idx < 0 || idx >= len(ctx.Pixels) {
				continue
			}
			if !v.source.Available(bytesPerVideoPixel) {
				ctx.Pixels[idx] = pixel.Black
				continue
			}
			v.source.Read(frame[:])
			ctx.Pixels[idx] = pixel.Pixel{R: frame[1], G: frame[2], B: frame[3]}
		}
	}
}
