package wavesim

// Sim2D is the super-sampled wrapper (WaveSimulation2D) around an inner
// Grid2D: it presents an outer Wo x Ho grid while the real simulation
// runs at m*Wo x m*Ho.
type Sim2D struct {
	outerW, outerH int
	multiplier     int
	extraFrames    int
	easing         Easing
	inner          *Grid2D

	useChangeGrid bool
	changeGrid    []int16
	changed       []bool
}

// NewSim2D constructs a super-sampled 2D simulation with the given outer
// dimensions, super-sample factor, speed, and damping exponent.
func NewSim2D(outerW, outerH int, factor SuperSample, speed float64, dampingExp int) *Sim2D {
	s := &Sim2D{}
	s.init(outerW, outerH, factor, speed, dampingExp)
	return s
}

func (s *Sim2D) init(outerW, outerH int, factor SuperSample, speed float64, dampingExp int) {
	s.outerW, s.outerH = outerW, outerH
	s.multiplier = int(factor)
	s.inner = NewGrid2D(outerW*s.multiplier, outerH*s.multiplier, speed, dampingExp)
	// Extra frames keep wall-clock speed roughly invariant to m: the
	// inner simulation is stepped once per multiplier unit.
	s.extraFrames = s.multiplier - 1
	n := outerW * outerH
	s.changeGrid = make([]int16, n)
	s.changed = make([]bool, n)
}

// SetSuperSample reinitializes the inner simulation at a new multiplier,
// preserving speed and damping. State (amplitudes, change grid) is not
// preserved, per spec.md §4.2.
func (s *Sim2D) SetSuperSample(factor SuperSample) {
	if int(factor) == s.multiplier {
		return
	}
	s.init(s.outerW, s.outerH, factor, s.inner.Speed(), s.inner.Damping())
}

// SetEasingMode selects the amplitude->brightness curve used by GetU8.
func (s *Sim2D) SetEasingMode(e Easing) { s.easing = e }

// SetUseChangeGrid enables re-stamping of pending set-points across the
// extra inner updates within one outer Update() call (see DESIGN.md for
// the exact cadence this resolves from spec.md's open question).
func (s *Sim2D) SetUseChangeGrid(on bool) {
	s.useChangeGrid = on
	if !on {
		for i := range s.changed {
			s.changed[i] = false
		}
	}
}

func (s *Sim2D) SetSpeed(speed float64) { s.inner.SetSpeed(speed) }
func (s *Sim2D) Speed() float64         { return s.inner.Speed() }
func (s *Sim2D) SetDamping(exp int)     { s.inner.SetDamping(exp) }
func (s *Sim2D) Damping() int           { return s.inner.Damping() }
func (s *Sim2D) SetHalfDuplex(on bool)  { s.inner.SetHalfDuplex(on) }
func (s *Sim2D) HalfDuplex() bool       { return s.inner.HalfDuplex() }
func (s *Sim2D) SetXCyclical(on bool)   { s.inner.SetXCyclical(on) }
func (s *Sim2D) SetExtraFrames(n int)   { s.extraFrames = n }
func (s *Sim2D) Width() int             { return s.outerW }
func (s *Sim2D) Height() int            { return s.outerH }

func (s *Sim2D) has(x, y int) bool {
	return x >= 0 && x < s.outerW && y >= 0 && y < s.outerH
}

// GetF averages the m x m inner block under outer cell (x,y).
func (s *Sim2D) GetF(x, y int) float64 {
	if !s.has(x, y) {
		return 0
	}
	m := s.multiplier
	sum := 0.0
	for j := 0; j < m; j++ {
		for i := 0; i < m; i++ {
			sum += s.inner.GetF(x*m+i, y*m+j)
		}
	}
	return sum / float64(m*m)
}

// GetI16 averages the m x m inner block under outer cell (x,y), using
// i32 accumulation to avoid overflow.
func (s *Sim2D) GetI16(x, y int) int16 {
	if !s.has(x, y) {
		return 0
	}
	m := s.multiplier
	var sum int32
	for j := 0; j < m; j++ {
		for i := 0; i < m; i++ {
			sum += int32(s.inner.GetI16(x*m+i, y*m+j))
		}
	}
	return int16(sum / int32(m*m))
}

// GetI16Previous is GetI16 over the inner grid's previous values.
func (s *Sim2D) GetI16Previous(x, y int) int16 {
	if !s.has(x, y) {
		return 0
	}
	m := s.multiplier
	var sum int32
	for j := 0; j < m; j++ {
		for i := 0; i < m; i++ {
			sum += int32(s.inner.GetI16Previous(x*m+i, y*m+j))
		}
	}
	return int16(sum / int32(m*m))
}

// GetU8 maps the averaged amplitude at (x,y) to brightness, applying the
// configured easing curve in half-duplex mode.
func (s *Sim2D) GetU8(x, y int) uint8 {
	v := s.GetI16(x, y)
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

// diamondCells yields the (di,dj) offsets within an m x m block whose
// Manhattan distance from the block center (radius r = m/2) is <= r.
// This is the anti-aliasing stamp shape from spec.md §4.2/§6.
func diamondCells(m int, yield func(di, dj int)) {
	r := m / 2
	for dj := 0; dj < m; dj++ {
		for di := 0; di < m; di++ {
			if absInt(di-r)+absInt(dj-r) <= r {
				yield(di, dj)
			}
		}
	}
}

func (s *Sim2D) stampDiamond(x, y int, v int16) {
	m := s.multiplier
	diamondCells(m, func(di, dj int) {
		xx, yy := x*m+di, y*m+dj
		if s.inner.has(xx, yy) {
			s.inner.SetI16(xx, yy, v)
		}
	})
}

// SetI16 stamps v across the diamond-shaped subset of the m x m inner
// block under outer cell (x,y), matching FastLED's anti-aliased upsample
// write. Out-of-range (x,y) is a no-op.
func (s *Sim2D) SetI16(x, y int, v int16) {
	if !s.has(x, y) {
		return
	}
	s.stampDiamond(x, y, v)
	if s.useChangeGrid {
		i := y*s.outerW + x
		s.changeGrid[i] = v
		s.changed[i] = true
	}
}

// SetF is SetI16 with a float amplitude in [-1,1].
func (s *Sim2D) SetF(x, y int, value float64) {
	s.SetI16(x, y, floatToQ15(value))
}

// Update steps the inner simulation once, then extraFrames more times to
// keep perceived speed roughly invariant to the super-sample factor. When
// the change grid is enabled, every extra step re-stamps the pending
// set-points recorded since the previous Update() call before advancing
// (the first step already has them from the synchronous Set call).
func (s *Sim2D) Update() {
	s.inner.Update()
	for f := 0; f < s.extraFrames; f++ {
		if s.useChangeGrid {
			for i, on := range s.changed {
				if !on {
					continue
				}
				x, y := i%s.outerW, i/s.outerW
				s.stampDiamond(x, y, s.changeGrid[i])
			}
		}
		s.inner.Update()
	}
	if s.useChangeGrid {
		for i := range s.changed {
			s.changed[i] = false
		}
	}
}

// Real exposes the inner high-resolution simulation for advanced use
// (e.g. direct per-sample inspection by a colorizer).
func (s *Sim2D) Real() *Grid2D { return s.inner }
