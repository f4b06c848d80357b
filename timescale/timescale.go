// Package timescale implements the engine's time-warp clock: a
// monotonic logical time derived from wall-clock milliseconds by an
// affine transform that can be rescaled in place without discontinuity.
package timescale

// TimeScale maps real (wall-clock) milliseconds to logical milliseconds
// via logical = originLogical + (real - originReal) * scale.
type TimeScale struct {
	originReal    int64
	originLogical int64
	scale         float64
}

// New constructs a TimeScale anchored so that Logical(originReal) ==
// originLogical, with the given initial scale factor.
func New(originReal, originLogical int64, scale float64) *TimeScale {
	return &TimeScale{originReal: originReal, originLogical: originLogical, scale: scale}
}

// Logical returns the warped time corresponding to real wall-clock time
// now. With scale == 1 and no SetScale call, Logical(now) == now.
func (t *TimeScale) Logical(now int64) int64 {
	delta := float64(now-t.originReal) * t.scale
	return t.originLogical + int64(delta)
}

// Scale returns the current scale factor.
func (t *TimeScale) Scale() float64 { return t.scale }

// SetScale changes the scale factor, rebasing the origins at real time
// now so that Logical is continuous across the change: the logical
// value just before and just after SetScale, evaluated at now, is the
// same.
func (t *TimeScale) SetScale(now int64, scale float64) {
	t.originLogical = t.Logical(now)
	t.originReal = now
	t.scale = scale
}
