package crossy

import (
	"math/rand"

	"github.com/vovakirdan/crossy/internal/config"
	"github.com/vovakirdan/crossy/internal/core"
)

// particleColors are the colors of the chicken's feathers, beak and comb.
var particleColors = []core.Color{core.ColorPlayer, core.ColorBeak, core.ColorComb}

// Particle is a short-lived decorative fragment with no gameplay effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Size   int
	Color  core.Color
}

// Particles is the cosmetic death burst.
// It draws from its own random source so effects never shift gameplay.
type Particles struct {
	cfg   config.ParticleConfig
	rng   *rand.Rand
	items []Particle
}

// NewParticles creates an empty particle system.
func NewParticles(cfg config.ParticleConfig, seed int64) *Particles {
	return &Particles{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Burst spawns the configured number of particles at (x, y).
func (ps *Particles) Burst(x, y float64) {
	for range ps.cfg.Count {
		ps.items = append(ps.items, Particle{
			X:     x,
			Y:     y,
			VX:    ps.rng.Float64()*8 - 4,
			VY:    ps.rng.Float64()*8 - 6,
			Life:  ps.cfg.MinLife + ps.rng.Intn(ps.cfg.MaxLife-ps.cfg.MinLife+1),
			Size:  ps.cfg.MinSize + ps.rng.Intn(ps.cfg.MaxSize-ps.cfg.MinSize+1),
			Color: particleColors[ps.rng.Intn(len(particleColors))],
		})
	}
}

// Update moves every particle one tick and drops expired ones.
func (ps *Particles) Update() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ps.cfg.Gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

// Items returns the live particles.
func (ps *Particles) Items() []Particle {
	return ps.items
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.items)
}
