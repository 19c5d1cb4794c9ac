package crossy

import (
	"github.com/vovakirdan/crossy/internal/core"
)

// update runs one simulation step while playing: entities move, pickups
// resolve, then hazards resolve.
func (g *Game) update() {
	g.world.Update()
	g.collectItems()

	// Immunity replaces the hazard check for as long as it lasts.
	if g.player.Invincible > 0 {
		g.player.Invincible--
		return
	}
	g.checkHazards()
}

// collectItems consumes every collectible overlapping the player.
// A shield is left in place while the player already holds one.
func (g *Game) collectItems() {
	hitbox := g.player.Hitbox(g.cfg.Player)

	for _, lane := range g.world.Lanes() {
		if len(lane.Items) == 0 {
			continue
		}
		kept := lane.Items[:0]
		for _, item := range lane.Items {
			if !hitbox.Intersects(item.Box) {
				kept = append(kept, item)
				continue
			}
			switch item.Kind {
			case ItemCoin:
				g.coins++
				g.addScore(core.EventCoin, g.cfg.Scoring.Coin)
			case ItemShield:
				if g.player.HasShield {
					kept = append(kept, item)
					continue
				}
				g.player.HasShield = true
				g.emit(core.EventShieldPickup, 0)
			}
		}
		clear(lane.Items[len(kept):])
		lane.Items = kept
	}
}

// checkHazards resolves vehicle contact on the player's lane.
// A held shield absorbs the first hit and grants immunity; otherwise the
// player dies.
func (g *Game) checkHazards() {
	lane := g.world.LaneAt(g.player.Y)
	if lane == nil || lane.Kind != LaneRoad {
		return
	}

	hitbox := g.player.Hitbox(g.cfg.Player)
	for _, v := range lane.Vehicles {
		if !hitbox.Intersects(v.Hitbox()) {
			continue
		}
		if g.player.HasShield {
			g.player.HasShield = false
			g.player.Invincible = g.cfg.Shield.InvincibilityTicks
			g.shieldsUsed++
			g.emit(core.EventShieldAbsorbed, 0)
			return
		}
		g.die(hitbox)
		return
	}
}

// die ends the run and bursts particles from the player's center.
func (g *Game) die(hitbox core.Rect) {
	g.player.Alive = false
	g.run = core.RunGameOver
	cx, cy := hitbox.Center()
	g.particles.Burst(float64(cx), float64(cy))
	g.emit(core.EventDied, 0)
}
