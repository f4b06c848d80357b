package wavesim

// Sim1D is the super-sampled wrapper around Grid1D. 1D has no diamond
// anti-aliasing concern (there's no second axis to alias against), so
// SetF replicates the value across the whole inner block, matching
// WaveSimulation1D::setf in original_source/src/fl/wave_simulation.cpp.
type Sim1D struct {
	outerLen    int
	multiplier  int
	extraFrames int
	easing      Easing
	inner       *Grid1D
}

// NewSim1D constructs a super-sampled 1D simulation.
func NewSim1D(length int, factor SuperSample, speed float64, dampingExp int) *Sim1D {
	s := &Sim1D{}
	s.init(length, factor, speed, dampingExp)
	return s
}

func (s *Sim1D) init(length int, factor SuperSample, speed float64, dampingExp int) {
	s.outerLen = length
	s.multiplier = int(factor)
	s.inner = NewGrid1D(length*s.multiplier, speed, dampingExp)
	s.extraFrames = s.multiplier - 1
}

func (s *Sim1D) SetSuperSample(factor SuperSample) {
	if int(factor) == s.multiplier {
		return
	}
	s.init(s.outerLen, factor, s.inner.Speed(), s.inner.Damping())
}

func (s *Sim1D) SetEasingMode(e Easing) { s.easing = e }
func (s *Sim1D) SetSpeed(speed float64) { s.inner.SetSpeed(speed) }
func (s *Sim1D) Speed() float64         { return s.inner.Speed() }
func (s *Sim1D) SetDamping(exp int)     { s.inner.SetDamping(exp) }
func (s *Sim1D) Damping() int           { return s.inner.Damping() }
func (s *Sim1D) SetHalfDuplex(on bool)  { s.inner.SetHalfDuplex(on) }
func (s *Sim1D) HalfDuplex() bool       { return s.inner.HalfDuplex() }
func (s *Sim1D) SetExtraFrames(n int)   { s.extraFrames = n }
func (s *Sim1D) Length() int            { return s.outerLen }

func (s *Sim1D) has(x int) bool { return x >= 0 && x < s.outerLen }

func (s *Sim1D) GetF(x int) float64 {
	if !s.has(x) {
		return 0
	}
	m := s.multiplier
	sum := 0.0
	for i := 0; i < m; i++ {
		sum += s.inner.GetF(x*m + i)
	}
	return sum / float64(m)
}

func (s *Sim1D) GetI16(x int) int16 {
	if !s.has(x) {
		return 0
	}
	m := s.multiplier
	var sum int32
	for i := 0; i < m; i++ {
		sum += int32(s.inner.GetI16(x*m + i))
	}
	return int16(sum / int32(m))
}

func (s *Sim1D) GetI16Previous(x int) int16 {
	if !s.has(x) {
		return 0
	}
	m := s.multiplier
	var sum int32
	for i := 0; i < m; i++ {
		sum += int32(s.inner.GetI16Previous(x*m + i))
	}
	return int16(sum / int32(m))
}

func (s *Sim1D) GetU8(x int) uint8 {
	v := s.GetI16(x)
	if !s.inner.HalfDuplex() {
		return getU8FullDuplex(v)
	}
	switch s.easing {
	case Sqrt:
		return getU8HalfDuplexSqrt(v)
	default:
		return getU8HalfDuplexLinear(v)
	}
}

// SetF replicates value across the outer cell's m-wide inner block.
func (s *Sim1D) SetF(x int, value float64) {
	if !s.has(x) {
		return
	}
	m := s.multiplier
	for i := 0; i < m; i++ {
		s.inner.SetF(x*m+i, value)
	}
}

func (s *Sim1D) Update() {
	s.inner.Update()
	for f := 0; f < s.extraFrames; f++ {
		s.inner.Update()
	}
}

func (s *Sim1D) Real() *Grid1D { return s.inner }
