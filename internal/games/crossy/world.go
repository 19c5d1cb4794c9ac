package crossy

import (
	"github.com/vovakirdan/crossy/internal/config"
	"github.com/vovakirdan/crossy/internal/core"
)

// World owns the contiguous stack of lanes.
// Lanes are ordered bottom first; consecutive lanes differ in Y by exactly
// one grid cell. Screen coordinates are used, so Y grows downwards and an
// advance shifts every lane down by one cell.
type World struct {
	cfg      config.CrossyConfig
	gen      *Generator
	lanes    []*Lane
	distance int // Completed advances
}

// NewWorld builds the initial lane stack around the player's start cell.
func NewWorld(cfg config.CrossyConfig, gen *Generator, startX, startY int) *World {
	w := &World{cfg: cfg, gen: gen}
	w.build(startX, startY)
	return w
}

// build generates lanes from the bottom edge up past the top edge.
// Lanes from the bottom up to SafeRowsAhead rows above the start row are
// forced grass; the start row gets a clearing around the start column.
// Beyond that, a third consecutive grass lane is replaced by road.
func (w *World) build(startX, startY int) {
	wc := w.cfg.World
	safeEdge := startY - wc.SafeRowsAhead*wc.GridSize
	clearing := &Clearing{Col: startX / wc.GridSize, Radius: w.cfg.Player.ClearingRadius}

	w.lanes = w.lanes[:0]
	grassStreak := 0
	for y := wc.Height; y > -wc.TopOverscan; y -= wc.GridSize {
		var kind LaneKind
		switch {
		case y >= safeEdge:
			kind = LaneGrass
		case grassStreak >= 2:
			kind = LaneRoad
		default:
			kind = w.gen.RandomKind()
		}

		if kind == LaneGrass {
			grassStreak++
		} else {
			grassStreak = 0
		}

		var c *Clearing
		if y == startY {
			c = clearing
		}
		w.lanes = append(w.lanes, w.gen.Lane(y, kind, c))
	}
}

// Advance scrolls the world one cell towards the player.
// Every lane moves down one cell, one new lane of uniform random kind is
// added above the top lane, and the bottom lane is evicted once it has
// left the playfield.
func (w *World) Advance() {
	size := w.cfg.World.GridSize
	for _, lane := range w.lanes {
		lane.Shift(size)
	}

	top := w.lanes[len(w.lanes)-1]
	w.lanes = append(w.lanes, w.gen.Lane(top.Y-size, w.gen.RandomKind(), nil))

	if w.lanes[0].Y > w.cfg.World.Height {
		w.lanes[0] = nil
		w.lanes = w.lanes[1:]
	}
	w.distance++
}

// Update advances every lane by one tick.
func (w *World) Update() {
	for _, lane := range w.lanes {
		lane.Update(w.cfg)
	}
}

// Blocked reports whether target overlaps an obstacle in any lane whose Y
// lies within the search tolerance of target's cell.
func (w *World) Blocked(target core.Rect, cellY int) bool {
	tolerance := w.cfg.World.SearchTolerance
	for _, lane := range w.lanes {
		if core.Abs(lane.Y-cellY) >= tolerance {
			continue
		}
		for _, o := range lane.Obstacles {
			if target.Intersects(o.Footprint()) {
				return true
			}
		}
	}
	return false
}

// LaneAt returns the lane whose top edge is y, or nil.
func (w *World) LaneAt(y int) *Lane {
	for _, lane := range w.lanes {
		if lane.Y == y {
			return lane
		}
	}
	return nil
}

// Lanes returns the lanes bottom first. Callers must not modify them.
func (w *World) Lanes() []*Lane {
	return w.lanes
}

// Distance returns the number of advances since the world was built.
func (w *World) Distance() int {
	return w.distance
}
