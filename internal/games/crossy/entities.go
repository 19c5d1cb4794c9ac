package crossy

import (
	"math"

	"github.com/vovakirdan/crossy/internal/core"
)

// LaneKind is the terrain of a lane.
type LaneKind int

const (
	LaneGrass LaneKind = iota
	LaneRoad
)

// String returns the terrain name.
func (k LaneKind) String() string {
	switch k {
	case LaneGrass:
		return "grass"
	case LaneRoad:
		return "road"
	default:
		return "unknown"
	}
}

// MarshalText lets lane kinds appear by name in snapshots.
func (k LaneKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ItemKind is the type of a collectible.
type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemShield
)

// String returns the item name.
func (k ItemKind) String() string {
	switch k {
	case ItemCoin:
		return "coin"
	case ItemShield:
		return "shield"
	default:
		return "unknown"
	}
}

// MarshalText lets item kinds appear by name in snapshots.
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Vehicle is a car driving along a road lane.
type Vehicle struct {
	Body  core.Rect  // Visual footprint
	Speed int        // World units per tick, negative drives left
	Inset int        // Hitbox shrink per side
	Color core.Color // Body color
}

// Update moves the vehicle one tick and wraps it around the playfield.
// A vehicle leaving one edge by more than margin re-enters past the
// opposite edge, so it reappears off-screen.
func (v *Vehicle) Update(worldW, margin int) {
	v.Body.X += v.Speed
	if v.Body.X > worldW+margin {
		v.Body.X = -margin
	}
	if v.Body.X < -margin {
		v.Body.X = worldW + margin
	}
}

// Hitbox returns the collision box, smaller than the body so near misses stay fair.
func (v Vehicle) Hitbox() core.Rect {
	return v.Body.Inflate(-2*v.Inset, -2*v.Inset)
}

// Obstacle is a tree occupying exactly one grid cell.
type Obstacle struct {
	Cell core.Rect
}

// Footprint returns the movement-blocking box.
func (o Obstacle) Footprint() core.Rect {
	return o.Cell
}

// VisualRect returns the area the tree art covers.
// The crown overflows the cell upwards by half a cell.
func (o Obstacle) VisualRect() core.Rect {
	g := o.Cell.W
	return core.NewRect(o.Cell.X+g/8, o.Cell.Y-g/2, g*3/4, g*5/4)
}

// Collectible is a coin or shield waiting to be picked up.
type Collectible struct {
	Kind  ItemKind
	Box   core.Rect
	Phase float64 // Bob animation phase
}

// Update advances the bob animation.
func (c *Collectible) Update(speed float64) {
	c.Phase += speed
}

// BobOffset returns the vertical draw offset of the bob animation.
// It never affects Box.
func (c Collectible) BobOffset(amplitude float64) int {
	return int(math.Round(amplitude * math.Sin(c.Phase)))
}
