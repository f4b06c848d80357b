package fx

import "github.com/kestrelfx/ledfx/pixel"

// Compositor holds exactly two layers, A and B, and a Transition
// between them. When not transitioning, B is always empty. It is
// grounded on FxCompositor/FxLayer in the original engine, generalized
// from a fixed CRGB* buffer to a caller-owned pixel.Pixel slice.
type Compositor struct {
	layers     [2]*Layer
	numLeds    int
	transition *Transition
}

// NewCompositor constructs a compositor sized for numLeds.
func NewCompositor(numLeds int) *Compositor {
	return &Compositor{
		layers:     [2]*Layer{NewLayer(), NewLayer()},
		numLeds:    numLeds,
		transition: NewTransition(),
	}
}

func (c *Compositor) swap() {
	c.layers[0], c.layers[1] = c.layers[1], c.layers[0]
}

// StartTransition completes any in-flight transition, then begins a
// new one into next over duration ms. duration==0 swaps in next
// immediately with no cross-fade.
func (c *Compositor) StartTransition(now uint32, duration uint32, next Effect) {
	c.CompleteTransition()
	if duration == 0 {
		c.layers[0].SetFx(next)
		return
	}
	c.layers[1].SetFx(next)
	c.transition.Start(now, duration)
}

// CompleteTransition finishes any in-flight transition: if B holds an
// effect, A and B swap and B is released.
func (c *Compositor) CompleteTransition() {
	if c.layers[1].Fx() != nil {
		c.swap()
		c.layers[1].Release()
	}
	c.transition.End()
}

// CurrentFx returns the active (layer A) effect, or nil if empty.
func (c *Compositor) CurrentFx() Effect { return c.layers[0].Fx() }

// Draw renders the current layer (and, mid-transition, the next layer)
// at warpedTime and blends them into out by the transition's progress
// at real time now, per spec.md §4.5.
func (c *Compositor) Draw(now uint32, warpedTime int64, out []pixel.Pixel) {
	if c.layers[0].Fx() == nil {
		for i := range out {
			out[i] = pixel.Black
		}
		return
	}
	c.layers[0].Draw(warpedTime)
	progress := c.transition.Progress(now)
	surfaceA := c.layers[0].Surface()
	if progress == 0 {
		copy(out, surfaceA)
		return
	}
	c.layers[1].Draw(warpedTime)
	surfaceB := c.layers[1].Surface()
	n := len(out)
	if n > len(surfaceA) {
		n = len(surfaceA)
	}
	if n > len(surfaceB) {
		n = len(surfaceB)
	}
	for i := 0; i < n; i++ {
		out[i] = pixel.Blend(surfaceA[i], surfaceB[i], progress)
	}
	if progress == 255 {
		c.CompleteTransition()
	}
}
