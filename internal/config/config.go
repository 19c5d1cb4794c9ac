// Package config provides YAML-based game configuration loading and
// validation for the crossy game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// CrossyConfig contains all tunables of the lane-crosser.
// Distances are world units; the playfield is World.Width x World.Height.
type CrossyConfig struct {
	World        WorldConfig       `yaml:"world"`
	Player       PlayerConfig      `yaml:"player"`
	Vehicles     VehicleConfig     `yaml:"vehicles"`
	Grass        GrassConfig       `yaml:"grass"`
	Road         RoadConfig        `yaml:"road"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Scoring      ScoringConfig     `yaml:"scoring"`
	Shield       ShieldConfig      `yaml:"shield"`
	Particles    ParticleConfig    `yaml:"particles"`
}

// WorldConfig defines the playfield and grid.
type WorldConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	GridSize        int `yaml:"grid_size"`
	SearchTolerance int `yaml:"search_tolerance"` // lane distance considered by the block check
	TopOverscan     int `yaml:"top_overscan"`     // lanes are built while y > -TopOverscan
	SafeRowsAhead   int `yaml:"safe_rows_ahead"`  // forced grass rows above the start row
}

// PlayerConfig defines the player hitbox and start row.
type PlayerConfig struct {
	// Inset is the hitbox offset from the cell's top-left corner.
	Inset  int `yaml:"inset"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// StartRowsDown places the start row this many cells below the screen middle.
	StartRowsDown int `yaml:"start_rows_down"`

	// ClearingRadius is how many columns either side of the start column stay empty.
	ClearingRadius int `yaml:"clearing_radius"`
}

// VehicleConfig defines vehicle spawning and geometry.
type VehicleConfig struct {
	MinSpeed int `yaml:"min_speed"`
	MaxSpeed int `yaml:"max_speed"`
	MinCount int `yaml:"min_count"`
	MaxCount int `yaml:"max_count"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`

	// LaneOffset is the vertical offset of the body inside its lane.
	LaneOffset int `yaml:"lane_offset"`

	// HitboxInset shrinks each side of the collision box.
	HitboxInset int `yaml:"hitbox_inset"`

	// WrapMargin is how far off-screen a vehicle travels before wrapping.
	WrapMargin int `yaml:"wrap_margin"`
}

// GrassConfig defines the per-column outcome bands on grass lanes.
// Bands are evaluated in order obstacle, shield, coin on a single draw.
type GrassConfig struct {
	ObstacleChance float64 `yaml:"obstacle_chance"`
	ShieldChance   float64 `yaml:"shield_chance"`
	CoinChance     float64 `yaml:"coin_chance"`
}

// RoadConfig defines road-only spawns.
type RoadConfig struct {
	CoinChance float64 `yaml:"coin_chance"`
}

// CollectibleConfig defines pickup geometry and the cosmetic bob.
type CollectibleConfig struct {
	Inset        int     `yaml:"inset"`
	Size         int     `yaml:"size"`
	BobSpeed     float64 `yaml:"bob_speed"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	Step int `yaml:"step"`
	Coin int `yaml:"coin"`
}

// ShieldConfig defines the invincibility window after a shield absorbs a hit.
type ShieldConfig struct {
	InvincibilityTicks int `yaml:"invincibility_ticks"`
}

// ParticleConfig defines the death burst.
type ParticleConfig struct {
	Count   int     `yaml:"count"`
	MinLife int     `yaml:"min_life"`
	MaxLife int     `yaml:"max_life"`
	MinSize int     `yaml:"min_size"`
	MaxSize int     `yaml:"max_size"`
	Gravity float64 `yaml:"gravity"`
}

// Columns returns the number of grid columns across the playfield.
func (c CrossyConfig) Columns() int {
	return c.World.Width / c.World.GridSize
}

// Validate checks the configuration for values the simulation cannot use.
func (c CrossyConfig) Validate() error {
	w := c.World
	if w.GridSize <= 0 {
		return fmt.Errorf("%w: grid_size must be positive, got %d", ErrInvalidConfig, w.GridSize)
	}
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive, got %dx%d", ErrInvalidConfig, w.Width, w.Height)
	}
	if w.Width%w.GridSize != 0 || w.Height%w.GridSize != 0 {
		return fmt.Errorf("%w: world %dx%d is not a multiple of grid_size %d", ErrInvalidConfig, w.Width, w.Height, w.GridSize)
	}
	if w.TopOverscan <= 0 {
		return fmt.Errorf("%w: top_overscan must be positive, got %d", ErrInvalidConfig, w.TopOverscan)
	}
	if w.SearchTolerance <= 0 {
		return fmt.Errorf("%w: search_tolerance must be positive, got %d", ErrInvalidConfig, w.SearchTolerance)
	}
	if w.SafeRowsAhead < 0 {
		return fmt.Errorf("%w: safe_rows_ahead must not be negative", ErrInvalidConfig)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 || p.Inset < 0 || p.Inset+p.Width > w.GridSize || p.Inset+p.Height > w.GridSize {
		return fmt.Errorf("%w: player hitbox must fit inside one grid cell", ErrInvalidConfig)
	}
	startY := w.Height/2 + p.StartRowsDown*w.GridSize
	if startY < 0 || startY >= w.Height {
		return fmt.Errorf("%w: start row %d is outside the playfield", ErrInvalidConfig, startY)
	}
	if startY%w.GridSize != 0 {
		return fmt.Errorf("%w: start row %d is not on the grid", ErrInvalidConfig, startY)
	}

	v := c.Vehicles
	if v.MinSpeed <= 0 || v.MaxSpeed < v.MinSpeed {
		return fmt.Errorf("%w: vehicle speed range [%d,%d]", ErrInvalidConfig, v.MinSpeed, v.MaxSpeed)
	}
	if v.MinCount <= 0 || v.MaxCount < v.MinCount {
		return fmt.Errorf("%w: vehicle count range [%d,%d]", ErrInvalidConfig, v.MinCount, v.MaxCount)
	}
	if v.Width <= 0 || v.Height <= 0 || 2*v.HitboxInset >= v.Width || 2*v.HitboxInset >= v.Height {
		return fmt.Errorf("%w: vehicle hitbox must be non-empty", ErrInvalidConfig)
	}

	g := c.Grass
	for name, chance := range map[string]float64{
		"grass.obstacle_chance": g.ObstacleChance,
		"grass.shield_chance":   g.ShieldChance,
		"grass.coin_chance":     g.CoinChance,
		"road.coin_chance":      c.Road.CoinChance,
	} {
		if chance < 0 || chance > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %g", ErrInvalidConfig, name, chance)
		}
	}
	if sum := g.ObstacleChance + g.ShieldChance + g.CoinChance; sum > 1 {
		return fmt.Errorf("%w: grass bands sum to %g, above 1", ErrInvalidConfig, sum)
	}

	if c.Collectibles.Size <= 0 || c.Collectibles.Inset < 0 || c.Collectibles.Inset+c.Collectibles.Size > w.GridSize {
		return fmt.Errorf("%w: collectible box must fit inside one grid cell", ErrInvalidConfig)
	}
	if c.Shield.InvincibilityTicks < 0 {
		return fmt.Errorf("%w: invincibility_ticks must not be negative", ErrInvalidConfig)
	}
	ps := c.Particles
	if ps.Count < 0 || ps.MinLife <= 0 || ps.MaxLife < ps.MinLife {
		return fmt.Errorf("%w: particle life range [%d,%d]", ErrInvalidConfig, ps.MinLife, ps.MaxLife)
	}
	if ps.MinSize <= 0 || ps.MaxSize < ps.MinSize {
		return fmt.Errorf("%w: particle size range [%d,%d]", ErrInvalidConfig, ps.MinSize, ps.MaxSize)
	}
	return nil
}
