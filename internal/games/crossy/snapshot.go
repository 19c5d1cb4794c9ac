package crossy

import (
	"github.com/vovakirdan/crossy/internal/core"
)

// Snapshot is a read-only copy of the simulation for renderers, replay
// checks and the headless sim command. It shares no memory with the game.
type Snapshot struct {
	Tick      uint64             `yaml:"tick"`
	Run       core.RunState      `yaml:"run"`
	Paused    bool               `yaml:"paused"`
	Score     int                `yaml:"score"`
	Stats     Stats              `yaml:"stats"`
	Player    PlayerSnapshot     `yaml:"player"`
	Lanes     []LaneSnapshot     `yaml:"lanes"`
	Particles []ParticleSnapshot `yaml:"particles,omitempty"`
}

// PlayerSnapshot captures the player.
type PlayerSnapshot struct {
	X          int  `yaml:"x"`
	Y          int  `yaml:"y"`
	Alive      bool `yaml:"alive"`
	HasShield  bool `yaml:"has_shield"`
	Invincible int  `yaml:"invincible"`
}

// LaneSnapshot captures one lane and its entities.
type LaneSnapshot struct {
	Y         int               `yaml:"y"`
	Kind      LaneKind          `yaml:"kind"`
	Obstacles []int             `yaml:"obstacles,omitempty,flow"`
	Vehicles  []VehicleSnapshot `yaml:"vehicles,omitempty"`
	Items     []ItemSnapshot    `yaml:"items,omitempty"`
}

// VehicleSnapshot captures a vehicle body position and velocity.
type VehicleSnapshot struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Speed int `yaml:"speed"`
}

// ItemSnapshot captures a collectible's collision box origin.
type ItemSnapshot struct {
	Kind ItemKind `yaml:"kind"`
	X    int      `yaml:"x"`
	Y    int      `yaml:"y"`
}

// ParticleSnapshot captures a particle position and remaining life.
type ParticleSnapshot struct {
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Life int `yaml:"life"`
}

// Snapshot returns a deep copy of the current state.
// Obstacles are listed by the x of their cell.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:   g.tick,
		Run:    g.run,
		Paused: g.paused,
		Score:  g.score,
		Stats:  g.Stats(),
		Player: PlayerSnapshot{
			X:          p.X,
			Y:          p.Y,
			Alive:      p.Alive,
			HasShield:  p.HasShield,
			Invincible: p.Invincible,
		},
	}

	lanes := g.world.Lanes()
	snap.Lanes = make([]LaneSnapshot, 0, len(lanes))
	for _, lane := range lanes {
		ls := LaneSnapshot{Y: lane.Y, Kind: lane.Kind}
		for _, o := range lane.Obstacles {
			ls.Obstacles = append(ls.Obstacles, o.Cell.X)
		}
		for _, v := range lane.Vehicles {
			ls.Vehicles = append(ls.Vehicles, VehicleSnapshot{X: v.Body.X, Y: v.Body.Y, Speed: v.Speed})
		}
		for _, it := range lane.Items {
			ls.Items = append(ls.Items, ItemSnapshot{Kind: it.Kind, X: it.Box.X, Y: it.Box.Y})
		}
		snap.Lanes = append(snap.Lanes, ls)
	}

	for _, pt := range g.particles.Items() {
		snap.Particles = append(snap.Particles, ParticleSnapshot{X: int(pt.X), Y: int(pt.Y), Life: pt.Life})
	}

	return snap
}

// Hash returns a simple hash of the gameplay state for determinism testing.
// Particles are cosmetic and excluded.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Run)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Distance)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Coins)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.X)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Invincible) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Lanes))        //#nosec G115 -- hash computation
	if snap.Player.HasShield {
		h = h*31 + 1
	}

	for _, ls := range snap.Lanes {
		h = h*31 + uint64(ls.Y)    //#nosec G115 -- hash computation
		h = h*31 + uint64(ls.Kind) //#nosec G115 -- hash computation
		for _, x := range ls.Obstacles {
			h = h*31 + uint64(x) //#nosec G115 -- hash computation
		}
		for _, v := range ls.Vehicles {
			h = h*31 + uint64(v.X)     //#nosec G115 -- hash computation
			h = h*31 + uint64(v.Speed) //#nosec G115 -- hash computation
		}
		for _, it := range ls.Items {
			h = h*31 + uint64(it.Kind) //#nosec G115 -- hash computation
			h = h*31 + uint64(it.X)    //#nosec G115 -- hash computation
		}
	}

	return h
}
