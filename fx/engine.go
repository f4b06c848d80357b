package fx

import (
	"errors"

	"github.com/kestrelfx/ledfx/pixel"
	"github.com/kestrelfx/ledfx/timescale"
)

// ErrCapacityExceeded is returned by Add when the registry is full.
var ErrCapacityExceeded = errors.New("fx: engine registry is full")

// ErrNotFound is returned by operations referencing an id that is not
// registered.
var ErrNotFound = errors.New("fx: effect id not found")

// DefaultMaxFx is the registry capacity used by New when the caller
// does not override it, matching FASTLED_FX_ENGINE_MAX_FX's default.
const DefaultMaxFx = 64

// Engine is the top-level façade: a bounded id->Effect registry, the
// current/next selection state, a TimeScale controlling playback
// speed, and a Compositor doing the actual cross-fade rendering.
type Engine struct {
	numLeds     int
	maxFx       int
	effects     map[int]Effect
	order       []int
	counter     int
	currID      int
	pendingID   int
	pendingDur  uint32
	pendingSet  bool
	timeScale   *timescale.TimeScale
	compositor  *Compositor
	interpolate bool
	interp      *Interpolator
}

// New constructs an engine for numLeds pixels. interpolate enables the
// fixed-FPS frame interpolator for effects that declare one.
func New(numLeds int, interpolate bool) *Engine {
	return &Engine{
		numLeds:     numLeds,
		maxFx:       DefaultMaxFx,
		effects:     make(map[int]Effect),
		currID:      -1,
		timeScale:   timescale.New(0, 0, 1),
		compositor:  NewCompositor(numLeds),
		interpolate: interpolate,
	}
}

// SetMaxFx overrides the registry capacity; must be called before any
// Add.
func (e *Engine) SetMaxFx(n int) { e.maxFx = n }

// Add registers effect and returns its new id. The very first
// successful Add auto-activates the effect with a zero-length
// transition. Fails with ErrCapacityExceeded once the registry holds
// maxFx effects.
func (e *Engine) Add(effect Effect) (int, error) {
	if len(e.effects) >= e.maxFx {
		return 0, ErrCapacityExceeded
	}
	id := e.counter
	e.counter++
	e.effects[id] = effect
	e.order = append(e.order, id)
	if e.currID < 0 {
		e.currID = id
		e.compositor.StartTransition(0, 0, effect)
	}
	return id, nil
}

// Remove unregisters id and returns the removed effect. If id was the
// active effect, the engine advances to the next entry with a
// zero-length transition.
func (e *Engine) Remove(id int) (Effect, error) {
	effect, ok := e.effects[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(e.effects, id)
	for i, o := range e.order {
		if o == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	if id == e.currID {
		if next, ok := e.nextIDAfter(id); ok {
			e.currID = next
			e.compositor.StartTransition(0, 0, e.effects[next])
		} else {
			e.currID = -1
			e.compositor.StartTransition(0, 0, nil)
		}
	}
	return effect, nil
}

// Get returns the registered effect for id, or nil if absent.
func (e *Engine) Get(id int) (Effect, bool) {
	effect, ok := e.effects[id]
	return effect, ok
}

// CurrentID returns the id of the active effect, or -1 if the
// registry is empty.
func (e *Engine) CurrentID() int { return e.currID }

func (e *Engine) nextIDAfter(id int) (int, bool) {
	if len(e.order) == 0 {
		return 0, false
	}
	for i, o := range e.order {
		if o == id {
			return e.order[(i+1)%len(e.order)], true
		}
	}
	return e.order[0], true
}

// Next arms a pending transition to the next registered effect in
// ascending id order, wrapping to the first.
func (e *Engine) Next(durationMS uint32) bool {
	next, ok := e.nextIDAfter(e.currID)
	if !ok {
		return false
	}
	return e.SetNext(next, durationMS)
}

// SetNext arms a pending transition to id, to be consumed on the next
// Draw call. Fails if id is not registered.
func (e *Engine) SetNext(id int, durationMS uint32) bool {
	if _, ok := e.effects[id]; !ok {
		return false
	}
	e.pendingID = id
	e.pendingDur = durationMS
	e.pendingSet = true
	return true
}

// SetSpeed rescales the engine's logical clock, affecting every
// effect's perceived time uniformly.
func (e *Engine) SetSpeed(now int64, scale float64) {
	e.timeScale.SetScale(now, scale)
}

// Draw advances the clock, consumes any pending transition, and
// renders into out. Returns false if the registry is empty.
func (e *Engine) Draw(now int64, out []pixel.Pixel) bool {
	warped := e.timeScale.Logical(now)
	if len(e.effects) == 0 {
		return false
	}
	if e.pendingSet {
		if next, ok := e.effects[e.pendingID]; ok {
			e.compositor.StartTransition(uint32(warped), e.pendingDur, next)
			e.currID = e.pendingID
		}
		e.pendingSet = false
	}
	active := e.compositor.CurrentFx()
	if e.interpolate && active != nil {
		if fps, ok := active.(FixedFPS); ok {
			if f := fps.FixedFPS(); f > 0 {
				if e.interp == nil || e.interp.effect() != active {
					e.interp = NewInterpolator(active, f)
				}
				e.interp.Draw(now, out)
				return true
			}
		}
	}
	e.compositor.Draw(uint32(now), warped, out)
	return true
}
