package fx

// Transition tracks the progress of a cross-fade over [start,
// start+duration). A Transition from NewTransition (or after End) has
// not been started and reports progress 0 and isTransitioning false; the
// zero value is instead treated as started at 0 with duration 0.
type Transition struct {
	start      uint32
	duration   uint32
	notStarted bool
}

// NewTransition returns a Transition that has not been started.
func NewTransition() *Transition {
	return &Transition{notStarted: true}
}

// Progress returns 0 before start, 255 at or after start+duration, and
// a linear ramp in between. duration==0 makes Progress jump straight
// to 255 once now reaches start.
func (t *Transition) Progress(now uint32) uint8 {
	if t.notStarted {
		return 0
	}
	if now < t.start {
		return 0
	}
	if now >= t.start+t.duration {
		return 255
	}
	return uint8((uint64(now-t.start) * 255) / uint64(t.duration))
}

// Start arms the transition at now, running for duration ms.
func (t *Transition) Start(now, duration uint32) {
	t.notStarted = false
	t.start = now
	t.duration = duration
}

// End disarms the transition; subsequent Progress calls return 0.
func (t *Transition) End() {
	t.notStarted = true
}

// IsTransitioning reports whether now falls within [start,
// start+duration).
func (t *Transition) IsTransitioning(now uint32) bool {
	if t.notStarted {
		return false
	}
	return now >= t.start && now < t.start+t.duration
}
