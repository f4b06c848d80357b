package wavesim

import "testing"

func TestSim1DSetFReplicatesAcrossInnerBlock(t *testing.T) {
	s := NewSim1D(4, SuperSample4X, 0.16, 6)
	s.SetF(2, 1.0)
	m := s.multiplier
	for i := 0; i < m; i++ {
		v := s.inner.GetI16(2*m + i)
		if v != 32767 {
			t.Errorf("inner cell %d = %d, want 32767 (full replication)", 2*m+i, v)
		}
	}
}

func TestSim1DOutOfRangeIsNoOpAndZero(t *testing.T) {
	s := NewSim1D(4, SuperSampleNone, 0.16, 6)
	s.SetF(-1, 1.0)
	s.SetF(10, 1.0)
	if v := s.GetI16(-1); v != 0 {
		t.Errorf("GetI16(-1) = %d, want 0", v)
	}
	if v := s.GetI16(10); v != 0 {
		t.Errorf("GetI16(10) = %d, want 0", v)
	}
}

func TestSim1DUpdateStaysInQ15Range(t *testing.T) {
	s := NewSim1D(8, SuperSample2X, 0.4, 3)
	s.SetHalfDuplex(false)
	s.SetF(4, 1.0)
	for i := 0; i < 300; i++ {
		s.Update()
		for x := 0; x < 8; x++ {
			if v := s.GetI16(x); v < -32768 || v > 32767 {
				t.Fatalf("step %d: x=%d value %d out of Q15 range", i, x, v)
			}
		}
	}
}

func TestSim1DGetU8Identities(t *testing.T) {
	s := NewSim1D(4, SuperSampleNone, 0.1, 4)
	s.SetHalfDuplex(true)
	if got := s.GetU8(0); got != 0 {
		t.Errorf("GetU8(0) at zero amplitude = %d, want 0", got)
	}
	s.SetF(0, 1.0)
	if got := s.GetU8(0); got != 255 {
		t.Errorf("GetU8(0) at max amplitude = %d, want 255", got)
	}
}
