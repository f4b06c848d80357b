package fx

import "github.com/kestrelfx/ledfx/pixel"

// Layer owns at most one Effect plus a scratch Frame sized to its
// output. Set replaces (and pauses) any previous effect; Draw lazily
// allocates the scratch frame, resumes the effect on its first draw
// after being set, clears the scratch, and calls the effect.
type Layer struct {
	fx      Effect
	frame   *pixel.Frame
	running bool
}

// NewLayer returns an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// SetFx replaces the layer's effect. The previous effect (if any and
// if different) is paused and released; the frame is kept but will be
// cleared on the next Draw.
func (l *Layer) SetFx(next Effect) {
	if l.fx == next {
		return
	}
	l.pause()
	l.fx = next
	l.running = false
}

// Fx returns the layer's current effect, or nil if empty.
func (l *Layer) Fx() Effect { return l.fx }

func (l *Layer) pause() {
	if l.fx == nil || !l.running {
		return
	}
	if p, ok := l.fx.(Pauser); ok {
		p.Pause(0)
	}
	l.running = false
}

// Pause pauses the running effect, if any, passing now through to its
// Pauser hook.
func (l *Layer) Pause(now int64) {
	if l.fx == nil || !l.running {
		return
	}
	if p, ok := l.fx.(Pauser); ok {
		p.Pause(now)
	}
	l.running = false
}

// Release pauses and clears the layer's effect.
func (l *Layer) Release() {
	l.pause()
	l.fx = nil
}

// Draw renders the layer's effect into its scratch frame at time now.
// A layer with no effect leaves its frame untouched (the compositor
// is responsible for checking Fx() before calling Draw).
func (l *Layer) Draw(now int64) {
	if l.fx == nil {
		return
	}
	n := int(l.fx.NumLeds())
	if l.frame == nil || l.frame.Len() != n {
		if ha, ok := l.fx.(HasAlpha); ok && ha.HasAlphaChannel() {
			l.frame = pixel.NewFrameWithAlpha(n)
		} else {
			l.frame = pixel.NewFrame(n)
		}
	}
	if !l.running {
		l.frame.Clear()
		if p, ok := l.fx.(Pauser); ok {
			p.Resume(now)
		}
		l.running = true
	}
	l.fx.Draw(DrawContext{NowMS: now, Pixels: l.frame.Pixels(), Alpha: l.frame.Alpha()})
}

// Surface returns the layer's current scratch pixels, or nil if the
// layer has never drawn.
func (l *Layer) Surface() []pixel.Pixel {
	if l.frame == nil {
		return nil
	}
	return l.frame.Pixels()
}
