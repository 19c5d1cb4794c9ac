package crossy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/crossy/internal/core"
)

func TestRenderTitleScreen(t *testing.T) {
	g := newTestGame(t, 1)
	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	assert.Contains(t, out, "CROSSY ROAD")
	assert.Contains(t, out, "Score: 0")
}

func TestRenderPlayfield(t *testing.T) {
	g := newTestGame(t, 2)
	startPlaying(t, g)

	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	assert.Contains(t, out, string(GrassChar))
	assert.NotContains(t, out, "CROSSY ROAD")

	l := g.layoutFor(s)
	body := l.rect(g.player.Hitbox(g.cfg.Player))
	assert.Equal(t, core.ColorPlayer, s.GetCell(body.X, body.Y).Color)
}

func TestRenderLayoutScales(t *testing.T) {
	g := newTestGame(t, 3)

	small := g.layoutFor(core.NewScreen(40, 24))
	assert.Equal(t, 2, small.cellW)
	assert.Equal(t, 1, small.cellH)

	large := g.layoutFor(core.NewScreen(120, 50))
	assert.Equal(t, 4, large.cellW)
	assert.Equal(t, 2, large.cellH)
	assert.Equal(t, 60, large.boardW)
	assert.Equal(t, 40, large.boardH)
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 4)
	s := core.NewScreen(30, 10)
	g.Render(s)

	assert.Contains(t, s.String(), "too small")
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 5)
	startPlaying(t, g)
	flattenWorld(g)
	parkCar(t, g)
	g.Step(core.NewInputFrame())

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Press R to restart")
	assert.Equal(t, 2, strings.Count(out, "Score: 0"), "HUD and overlay both show the final score")
}

func TestRenderHUDShowsShieldAndImmunity(t *testing.T) {
	g := newTestGame(t, 6)
	startPlaying(t, g)
	g.player.HasShield = true
	g.player.Invincible = 42

	s := core.NewScreen(80, 24)
	g.Render(s)
	hud := s.Row(0)
	assert.Contains(t, hud, "Shield: "+string(ShieldChar))
	assert.Contains(t, hud, "Immune: 42")
}

func TestMinSize(t *testing.T) {
	g := newTestGame(t, 7)
	w, h := g.MinSize()
	assert.Equal(t, 32, w)
	assert.Equal(t, 23, h)
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 1, floorDiv(79, 40))
	assert.Equal(t, -1, floorDiv(-1, 40))
	assert.Equal(t, -2, floorDiv(-41, 40))
	assert.Equal(t, 0, floorDiv(0, 40))
}
