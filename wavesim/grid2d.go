package wavesim

// Grid2D is the 2D Q15 PDE solver (WaveSimReal), grounded on
// original_source/src/fl/wave_simulation_real.cpp.hpp. It owns two
// ping-pong grids padded by one cell on every edge. Out-of-range
// accessors are no-ops/zero-sentinels; update() never fails.
type Grid2D struct {
	width, height, stride int
	grid                  [2][]int16
	active                int

	courantSq  int32 // Q15, stored widened for the update's arithmetic
	dampingExp int
	halfDuplex bool
	xCyclical  bool
}

// NewGrid2D constructs an inner width x height grid (excluding the
// 1-cell border), with the given speed (courant parameter, clamped to
// [-1,1] and stored in Q15) and damping exponent.
func NewGrid2D(width, height int, speed float64, dampingExp int) *Grid2D {
	stride := width + 2
	size := stride * (height + 2)
	g := &Grid2D{
		width:      width,
		height:     height,
		stride:     stride,
		dampingExp: dampingExp,
		halfDuplex: true,
	}
	g.grid[0] = make([]int16, size)
	g.grid[1] = make([]int16, size)
	g.courantSq = int32(floatToQ15(speed))
	return g
}

func (g *Grid2D) curr() []int16 { return g.grid[g.active] }
func (g *Grid2D) next() []int16 { return g.grid[1-g.active] }

// SetSpeed stores clamp(speed,-1,1) in Q15.
func (g *Grid2D) SetSpeed(speed float64) { g.courantSq = int32(floatToQ15(speed)) }

// Speed returns the stored courant parameter as a float.
func (g *Grid2D) Speed() float64 { return q15ToFloat(int16(g.courantSq)) }

// SetDamping sets the damping exponent; effective factor is 2^exp.
func (g *Grid2D) SetDamping(exp int) { g.dampingExp = exp }

// Damping returns the current damping exponent.
func (g *Grid2D) Damping() int { return g.dampingExp }

// SetHalfDuplex toggles whether post-update negative values clamp to 0.
func (g *Grid2D) SetHalfDuplex(on bool) { g.halfDuplex = on }

// HalfDuplex reports the current half-duplex setting.
func (g *Grid2D) HalfDuplex() bool { return g.halfDuplex }

// SetXCyclical toggles toroidal wraparound on the horizontal axis.
func (g *Grid2D) SetXCyclical(on bool) { g.xCyclical = on }

// Width and Height are the inner grid dimensions.
func (g *Grid2D) Width() int  { return g.width }
func (g *Grid2D) Height() int { return g.height }

func (g *Grid2D) has(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid2D) idx(x, y int) int {
	return (y+1)*g.stride + (x + 1)
}

// GetF reads the active grid at (x,y), converted Q15->float.
func (g *Grid2D) GetF(x, y int) float64 {
	if !g.has(x, y) {
		return 0
	}
	return q15ToFloat(g.curr()[g.idx(x, y)])
}

// GetI16 reads the active grid's raw Q15 value at (x,y).
func (g *Grid2D) GetI16(x, y int) int16 {
	if !g.has(x, y) {
		return 0
	}
	return g.curr()[g.idx(x, y)]
}

// GetI16Previous reads the inactive (previous) grid's value at (x,y).
func (g *Grid2D) GetI16Previous(x, y int) int16 {
	if !g.has(x, y) {
		return 0
	}
	return g.next()[g.idx(x, y)]
}

// GetU8 maps the current amplitude at (x,y) to an 8-bit brightness using
// easing (relevant only in half-duplex mode; ignored in full-duplex).
func (g *Grid2D) GetU8(x, y int, easing Easing) uint8 {
	v := g.GetI16(x, y)
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

// SetF stores value (clamped to [-1,1]) into the active grid's inner
// cell (x,y). Out-of-range coordinates are a no-op.
func (g *Grid2D) SetF(x, y int, value float64) {
	g.SetI16(x, y, floatToQ15(value))
}

// SetI16 stores a raw Q15 value into the active grid's inner cell.
// Out-of-range coordinates are a no-op.
func (g *Grid2D) SetI16(x, y int, value int16) {
	if !g.has(x, y) {
		return
	}
	g.curr()[g.idx(x, y)] = value
}

// Update advances the simulation by one time step.
func (g *Grid2D) Update() {
	curr := g.curr()
	next := g.next()
	w, h, stride := g.width, g.height, g.stride

	// Horizontal border fill.
	for j := 0; j < h+2; j++ {
		base := j * stride
		if g.xCyclical {
			curr[base+0] = curr[base+w]
			curr[base+w+1] = curr[base+1]
		} else {
			curr[base+0] = curr[base+1]
			curr[base+w+1] = curr[base+w]
		}
	}

	// Vertical border fill (Neumann).
	for i := 0; i < w+2; i++ {
		curr[0*stride+i] = curr[1*stride+i]
		curr[(h+1)*stride+i] = curr[h*stride+i]
	}

	dampFactor := int32(1) << uint(g.dampingExp)
	courant := g.courantSq

	for j := 1; j <= h; j++ {
		for i := 1; i <= w; i++ {
			index := j*stride + i
			lap := int32(curr[index+1]) + int32(curr[index-1]) +
				int32(curr[index+stride]) + int32(curr[index-stride]) -
				(int32(curr[index]) << 2)
			term := (courant * lap) >> 15
			f := -int32(next[index]) + (int32(curr[index]) << 1) + term
			f = f - f/dampFactor // truncating division, asymmetric across sign, intended
			next[index] = clampQ15(f)
		}
	}

	if g.halfDuplex {
		for j := 1; j <= h; j++ {
			for i := 1; i <= w; i++ {
				index := j*stride + i
				if next[index] < 0 {
					next[index] = 0
				}
			}
		}
	}

	g.active ^= 1
}
