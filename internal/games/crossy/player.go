package crossy

import (
	"github.com/vovakirdan/crossy/internal/config"
	"github.com/vovakirdan/crossy/internal/core"
)

// Player is the hopping character.
// X and Y are the top-left corner of the occupied grid cell. Y stays fixed
// on forward hops because the world scrolls instead.
type Player struct {
	X, Y       int
	Alive      bool
	HasShield  bool
	Invincible int // Ticks of hazard immunity left
}

// newPlayer places a player on the start cell.
func newPlayer(cfg config.CrossyConfig) Player {
	wc := cfg.World
	return Player{
		X:     (wc.Width / 2 / wc.GridSize) * wc.GridSize,
		Y:     wc.Height/2 + cfg.Player.StartRowsDown*wc.GridSize,
		Alive: true,
	}
}

// Hitbox returns the player's collision box inside its cell.
func (p Player) Hitbox(cfg config.PlayerConfig) core.Rect {
	return hitboxAt(cfg, p.X, p.Y)
}

// hitboxAt returns the player hitbox for the cell at (x, y).
func hitboxAt(cfg config.PlayerConfig, x, y int) core.Rect {
	return core.NewRect(x+cfg.Inset, y+cfg.Inset, cfg.Width, cfg.Height)
}

// MoveResult reports the outcome of one hop.
type MoveResult struct {
	Accepted   bool
	Advanced   bool
	ScoreDelta int
}

// attemptMove tries one grid hop in the direction of a.
// Forward hops score and advance the world; sideways hops only move the
// player. A rejected hop changes nothing.
func (g *Game) attemptMove(a core.Action) MoveResult {
	size := g.cfg.World.GridSize
	p := &g.player

	switch a {
	case core.ActionUp:
		targetY := p.Y - size
		if g.world.Blocked(hitboxAt(g.cfg.Player, p.X, targetY), targetY) {
			return MoveResult{}
		}
		g.addScore(core.EventAdvanced, g.cfg.Scoring.Step)
		g.world.Advance()
		return MoveResult{Accepted: true, Advanced: true, ScoreDelta: g.cfg.Scoring.Step}

	case core.ActionLeft, core.ActionRight:
		dx := size
		if a == core.ActionLeft {
			dx = -size
		}
		targetX := core.Clamp(p.X+dx, 0, g.cfg.World.Width-size)
		if targetX == p.X {
			return MoveResult{}
		}
		if g.world.Blocked(hitboxAt(g.cfg.Player, targetX, p.Y), p.Y) {
			return MoveResult{}
		}
		p.X = targetX
		return MoveResult{Accepted: true}
	}

	return MoveResult{}
}
