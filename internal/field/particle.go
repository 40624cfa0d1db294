package field

import (
	"math"
	"math/rand/v2"
)

// Particle is a point mass drifting across the field.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Pointer is the last observed pointer position. Active is false while the
// pointer is outside the surface or untracked.
type Pointer struct {
	X, Y   float64
	Active bool
}

func newParticle(rng *rand.Rand, width, height float64, p Params) Particle {
	return Particle{
		X:    rng.Float64() * width,
		Y:    rng.Float64() * height,
		VX:   (rng.Float64() - 0.5) * p.MaxSpeed,
		VY:   (rng.Float64() - 0.5) * p.MaxSpeed,
		Size: rng.Float64()*p.MaxRadius + 1,
	}
}

// Update advances the particle by one frame inside a width x height surface.
//
// Leaving the surface only flips the matching velocity component; the
// position is never clamped, so a particle may overshoot for one frame.
func (pt *Particle) Update(width, height float64, ptr Pointer, p Params) {
	pt.X += pt.VX
	pt.Y += pt.VY

	if pt.X < 0 || pt.X > width {
		pt.VX = -pt.VX
	}
	if pt.Y < 0 || pt.Y > height {
		pt.VY = -pt.VY
	}

	if !ptr.Active {
		return
	}
	dx := ptr.X - pt.X
	dy := ptr.Y - pt.Y
	d := math.Sqrt(dx*dx + dy*dy)
	// no direction to push along
	if d == 0 || d >= p.MouseDistance {
		return
	}

	force := (p.MouseDistance - d) / p.MouseDistance
	pt.VX -= dx / d * force * p.Repulsion
	pt.VY -= dy / d * force * p.Repulsion
}
