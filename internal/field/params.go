package field

// Params holds the per-session constants of a particle field.
type Params struct {
	ParticleCount       int
	NarrowParticleCount int
	// NarrowBreakpoint is the viewport width below which NarrowParticleCount is used.
	NarrowBreakpoint int

	ConnectionDistance float64
	MouseDistance      float64
	MaxSpeed           float64
	MaxRadius          float64
	Repulsion          float64

	Alpha       float64 // particle disc opacity
	LineWidth   float64
	LineOpacity float64 // opacity of a connection at zero distance
}

// DefaultParams returns the values the portfolio background has always shipped with.
func DefaultParams() Params {
	return Params{
		ParticleCount:       50,
		NarrowParticleCount: 40,
		NarrowBreakpoint:    768,
		ConnectionDistance:  150,
		MouseDistance:       150,
		MaxSpeed:            0.2,
		MaxRadius:           2,
		Repulsion:           0.05,
		Alpha:               0.5,
		LineWidth:           1,
		LineOpacity:         0.2,
	}
}

// CountFor returns the particle count to use for a viewport of the given width.
func (p Params) CountFor(width int) int {
	if width < p.NarrowBreakpoint {
		return p.NarrowParticleCount
	}
	return p.ParticleCount
}

// LinkOpacity returns the opacity of a connection between two particles d
// apart. ok is false when the pair is too far apart to be connected.
func (p Params) LinkOpacity(d float64) (opacity float64, ok bool) {
	if d >= p.ConnectionDistance {
		return 0, false
	}
	return (1 - d/p.ConnectionDistance) * p.LineOpacity, true
}
