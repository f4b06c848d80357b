package wavesim

// SuperSample selects the inner-grid resolution multiplier for Sim1D and
// Sim2D. Higher factors trade CPU for smoother, alias-free visuals.
type SuperSample int

const (
	SuperSampleNone SuperSample = 1
	SuperSample2X   SuperSample = 2
	SuperSample4X   SuperSample = 4
	SuperSample8X   SuperSample = 8
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
