// Package field simulates and draws the drifting particle network used as
// an animated background.
//
// A Field is not safe for concurrent use; it is meant to be owned by a
// single frame loop that calls Step and Render once per tick.
package field

import (
	"math"
	"math/rand/v2"
)

// Connection is a pair of particles close enough to be linked by a line.
type Connection struct {
	A, B     int
	Distance float64
	Opacity  float64
}

// Field owns a batch of particles and the pointer state that repels them.
type Field struct {
	params Params
	rng    *rand.Rand

	width, height float64
	particles     []Particle
	pointer       Pointer

	conns []Connection
}

// New returns an empty field. A nil rng seeds a fresh PCG source.
func New(params Params, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{params: params, rng: rng}
}

// Params returns the field constants.
func (f *Field) Params() Params { return f.params }

// Init replaces every particle with count fresh ones scattered over a
// width x height surface. Negative sizes and counts are treated as zero.
func (f *Field) Init(width, height, count int) {
	f.width = float64(max(width, 0))
	f.height = float64(max(height, 0))
	count = max(count, 0)

	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng, f.width, f.height, f.params)
	}
}

// Resize matches the field to a new viewport and reseeds it.
// Existing particles are discarded, not rescaled.
func (f *Field) Resize(width, height int) {
	f.Init(width, height, f.params.CountFor(width))
}

// Size returns the current surface dimensions.
func (f *Field) Size() (width, height float64) { return f.width, f.height }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Particles exposes the live particle slice. Callers must not retain it
// across Init or Resize.
func (f *Field) Particles() []Particle { return f.particles }

// SetPointer records a pointer move.
func (f *Field) SetPointer(x, y float64) {
	f.pointer = Pointer{X: x, Y: y, Active: true}
}

// ClearPointer records the pointer leaving the surface.
func (f *Field) ClearPointer() {
	f.pointer = Pointer{}
}

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer { return f.pointer }

// Step advances every particle by one frame.
func (f *Field) Step() {
	for i := range f.particles {
		f.particles[i].Update(f.width, f.height, f.pointer, f.params)
	}
}

// Connections returns every unordered pair closer than the connection
// distance. The returned slice is reused by the next call.
func (f *Field) Connections() []Connection {
	f.conns = f.conns[:0]
	for i := range f.particles {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			opacity, ok := f.params.LinkOpacity(d)
			if !ok {
				continue
			}
			f.conns = append(f.conns, Connection{A: i, B: j, Distance: d, Opacity: opacity})
		}
	}
	return f.conns
}
