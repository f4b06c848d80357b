package wavesim

// Grid1D is the 1D restriction of Grid2D's PDE: a single row, padded by
// one boundary cell on each end, Neumann-only (no cyclical option in 1D
// per spec.md §4.1).
type Grid1D struct {
	length int
	grid   [2][]int16
	active int

	courantSq  int32
	dampingExp int
	halfDuplex bool
}

// NewGrid1D constructs an inner grid of the given length.
func NewGrid1D(length int, speed float64, dampingExp int) *Grid1D {
	g := &Grid1D{length: length, dampingExp: dampingExp, halfDuplex: true}
	g.grid[0] = make([]int16, length+2)
	g.grid[1] = make([]int16, length+2)
	g.courantSq = int32(floatToQ15(speed))
	return g
}

func (g *Grid1D) curr() []int16 { return g.grid[g.active] }
func (g *Grid1D) next() []int16 { return g.grid[1-g.active] }

func (g *Grid1D) SetSpeed(speed float64) { g.courantSq = int32(floatToQ15(speed)) }
func (g *Grid1D) Speed() float64         { return q15ToFloat(int16(g.courantSq)) }
func (g *Grid1D) SetDamping(exp int)     { g.dampingExp = exp }
func (g *Grid1D) Damping() int           { return g.dampingExp }
func (g *Grid1D) SetHalfDuplex(on bool)  { g.halfDuplex = on }
func (g *Grid1D) HalfDuplex() bool       { return g.halfDuplex }
func (g *Grid1D) Length() int            { return g.length }

func (g *Grid1D) has(x int) bool { return x >= 0 && x < g.length }

func (g *Grid1D) GetF(x int) float64 {
	if !g.has(x) {
		return 0
	}
	return q15ToFloat(g.curr()[x+1])
}

func (g *Grid1D) GetI16(x int) int16 {
	if !g.has(x) {
		return 0
	}
	return g.curr()[x+1]
}

func (g *Grid1D) GetI16Previous(x int) int16 {
	if !g.has(x) {
		return 0
	}
	return g.next()[x+1]
}

func (g *Grid1D) GetU8(x int, easing Easing) uint8 {
	v := g.GetI16(x)
	if !g.halfDuplex {
		return getU8FullDuplex(v)
	}
	switch easing {
	case Sqrt:
		return getU8HalfDuplexSqrt(v)
	default:
		return getU8HalfDuplexLinear(v)
	}
}

func (g *Grid1D) SetF(x int, value float64) { g.SetI16(x, floatToQ15(value)) }

func (g *Grid1D) SetI16(x int, value int16) {
	if !g.has(x) {
		return
	}
	g.curr()[x+1] = value
}

// Update advances the simulation by one time step.
func (g *Grid1D) Update() {
	curr := g.curr()
	next := g.next()
	length := g.length

	curr[0] = curr[1]
	curr[length+1] = curr[length]

	dampFactor := int32(1) << uint(g.dampingExp)
	courant := g.courantSq

	for i := 1; i <= length; i++ {
		lap := int32(curr[i+1]) - (int32(curr[i]) << 1) + int32(curr[i-1])
		term := (courant * lap) >> 15
		f := -int32(next[i]) + (int32(curr[i]) << 1) + term
		f = f - f/dampFactor
		next[i] = clampQ15(f)
	}

	if g.halfDuplex {
		for i := 1; i <= length; i++ {
			if next[i] < 0 {
				next[i] = 0
			}
		}
	}

	g.active ^= 1
}
