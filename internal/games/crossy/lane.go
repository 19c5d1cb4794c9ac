package crossy

import (
	"math/rand"

	"github.com/vovakirdan/crossy/internal/config"
	"github.com/vovakirdan/crossy/internal/core"
)

// Lane is one grid-tall horizontal strip of the playfield.
// Y is the top edge in world units, always a multiple of the grid size.
type Lane struct {
	Y         int
	Kind      LaneKind
	Obstacles []Obstacle
	Vehicles  []Vehicle
	Items     []Collectible
}

// Shift moves the lane and everything on it vertically by dy.
func (l *Lane) Shift(dy int) {
	l.Y += dy
	for i := range l.Obstacles {
		l.Obstacles[i].Cell.Y += dy
	}
	for i := range l.Vehicles {
		l.Vehicles[i].Body.Y += dy
	}
	for i := range l.Items {
		l.Items[i].Box.Y += dy
	}
}

// Update advances vehicles and collectible animations by one tick.
func (l *Lane) Update(cfg config.CrossyConfig) {
	for i := range l.Vehicles {
		l.Vehicles[i].Update(cfg.World.Width, cfg.Vehicles.WrapMargin)
	}
	for i := range l.Items {
		l.Items[i].Update(cfg.Collectibles.BobSpeed)
	}
}

// Clearing marks the columns of a lane kept free of obstacles and items.
type Clearing struct {
	Col    int
	Radius int
}

// Excludes reports whether the column lies inside the clearing.
func (c *Clearing) Excludes(col int) bool {
	if c == nil {
		return false
	}
	return core.Abs(col-c.Col) <= c.Radius
}

// Generator populates lanes from a seeded random source.
type Generator struct {
	cfg config.CrossyConfig
	rng *rand.Rand
}

// NewGenerator creates a lane generator sharing the game's random source.
func NewGenerator(cfg config.CrossyConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// RandomKind picks grass or road with equal probability.
func (g *Generator) RandomKind() LaneKind {
	if g.rng.Intn(2) == 0 {
		return LaneGrass
	}
	return LaneRoad
}

// Lane builds a fully populated lane at y.
// clearing may be nil; it only applies to grass lanes.
func (g *Generator) Lane(y int, kind LaneKind, clearing *Clearing) *Lane {
	lane := &Lane{Y: y, Kind: kind}
	switch kind {
	case LaneRoad:
		g.populateRoad(lane)
	case LaneGrass:
		g.populateGrass(lane, clearing)
	}
	return lane
}

// populateRoad adds vehicles sharing one direction and speed, plus an occasional coin.
func (g *Generator) populateRoad(lane *Lane) {
	vc := g.cfg.Vehicles

	direction := 1
	if g.rng.Intn(2) == 0 {
		direction = -1
	}
	speed := vc.MinSpeed + g.rng.Intn(vc.MaxSpeed-vc.MinSpeed+1)
	count := vc.MinCount + g.rng.Intn(vc.MaxCount-vc.MinCount+1)

	lane.Vehicles = make([]Vehicle, 0, count)
	for range count {
		x := g.rng.Intn(g.cfg.World.Width + 1)
		lane.Vehicles = append(lane.Vehicles, Vehicle{
			Body:  core.NewRect(x, lane.Y+vc.LaneOffset, vc.Width, vc.Height),
			Speed: speed * direction,
			Inset: vc.HitboxInset,
			Color: core.CarColors[g.rng.Intn(len(core.CarColors))],
		})
	}

	if g.rng.Float64() < g.cfg.Road.CoinChance {
		col := g.rng.Intn(g.cfg.Columns())
		lane.Items = append(lane.Items, g.item(ItemCoin, col, lane.Y))
	}
}

// populateGrass draws once per column and partitions the draw into
// obstacle, shield, coin and empty bands, in that order.
func (g *Generator) populateGrass(lane *Lane, clearing *Clearing) {
	gc := g.cfg.Grass
	size := g.cfg.World.GridSize

	shieldBand := gc.ObstacleChance + gc.ShieldChance
	coinBand := shieldBand + gc.CoinChance

	for col := range g.cfg.Columns() {
		if clearing.Excludes(col) {
			continue
		}
		r := g.rng.Float64()
		switch {
		case r < gc.ObstacleChance:
			lane.Obstacles = append(lane.Obstacles, Obstacle{
				Cell: core.NewRect(col*size, lane.Y, size, size),
			})
		case r < shieldBand:
			lane.Items = append(lane.Items, g.item(ItemShield, col, lane.Y))
		case r < coinBand:
			lane.Items = append(lane.Items, g.item(ItemCoin, col, lane.Y))
		}
	}
}

// item places a collectible centered in the given cell.
func (g *Generator) item(kind ItemKind, col, y int) Collectible {
	cc := g.cfg.Collectibles
	return Collectible{
		Kind:  kind,
		Box:   core.NewRect(col*g.cfg.World.GridSize+cc.Inset, y+cc.Inset, cc.Size, cc.Size),
		Phase: float64(col),
	}
}
