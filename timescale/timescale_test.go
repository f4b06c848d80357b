package timescale

import "testing"

func TestIdentityScale(t *testing.T) {
	ts := New(0, 0, 1)
	for _, now := range []int64{0, 1, 100, 123456} {
		if got := ts.Logical(now); got != now {
			t.Errorf("Logical(%d) = %d, want %d (scale=1, no rebase)", now, got, now)
		}
	}
}

func TestSetScaleRebasesForContinuity(t *testing.T) {
	ts := New(0, 0, 1)
	t0 := int64(1000)
	logicalAtT0 := ts.Logical(t0)
	ts.SetScale(t0, 2.0)

	if got := ts.Logical(t0); got != logicalAtT0 {
		t.Errorf("Logical(t0) after SetScale = %d, want continuity at %d", got, logicalAtT0)
	}
	for _, dt := range []int64{0, 1, 50, 500} {
		tNow := t0 + dt
		want := logicalAtT0 + int64(float64(dt)*2.0)
		if got := ts.Logical(tNow); got != want {
			t.Errorf("Logical(%d) = %d, want %d", tNow, got, want)
		}
	}
}

func TestChainedSetScale(t *testing.T) {
	ts := New(0, 0, 1)
	ts.SetScale(100, 2.0)
	ts.SetScale(200, 0.5)
	// At t=200, logical should equal origin-logical established by the
	// second rebase exactly (no drift from the first rescale).
	if got, want := ts.Logical(200), ts.originLogical; got != want {
		t.Errorf("Logical(200) = %d, want %d", got, want)
	}
	if got, want := ts.Logical(220), ts.originLogical+10; got != want {
		t.Errorf("Logical(220) = %d, want %d", got, want)
	}
}
