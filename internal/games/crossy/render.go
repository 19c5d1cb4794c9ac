package crossy

import (
	"fmt"

	"github.com/vovakirdan/crossy/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	GrassChar    = '░'
	RoadChar     = '▒'
	MarkingChar  = '─'
	CrownChar    = '♣'
	TrunkChar    = '█'
	CarChar      = '█'
	PlayerChar   = '█'
	BeakChar     = '▸'
	CoinChar     = '●'
	ShieldChar   = '◆'
	ParticleChar = '*'
)

// hudRows is the number of rows above the playfield (status line and border).
const hudRows = 2

// layout maps world units onto screen cells.
type layout struct {
	cellW, cellH int // Characters per grid cell
	offX, offY   int // Screen position of world origin
	boardW       int
	boardH       int
	gridSize     int
}

// MinSize returns the smallest screen the playfield fits on:
// two characters per column, one row per lane, a border and the HUD.
func (g *Game) MinSize() (int, int) {
	cols := g.cfg.Columns()
	rows := g.cfg.World.Height / g.cfg.World.GridSize
	return cols*2 + 2, rows + hudRows + 1
}

// layoutFor picks the largest of the supported cell sizes that fits dst.
func (g *Game) layoutFor(dst *core.Screen) layout {
	cols := g.cfg.Columns()
	rows := g.cfg.World.Height / g.cfg.World.GridSize

	l := layout{cellW: 2, cellH: 1, gridSize: g.cfg.World.GridSize}
	if cols*4+2 <= dst.Width() {
		l.cellW = 4
	}
	if rows*2+hudRows+1 <= dst.Height() {
		l.cellH = 2
	}
	l.boardW = cols * l.cellW
	l.boardH = rows * l.cellH
	l.offX = (dst.Width() - l.boardW) / 2
	l.offY = hudRows
	return l
}

// sx converts a world x to a screen column.
func (l layout) sx(x int) int {
	return l.offX + floorDiv(x*l.cellW, l.gridSize)
}

// sy converts a world y to a screen row.
func (l layout) sy(y int) int {
	return l.offY + floorDiv(y*l.cellH, l.gridSize)
}

// rect converts a world rectangle to screen cells, at least one cell in size.
func (l layout) rect(r core.Rect) core.Rect {
	x0, y0 := l.sx(r.X), l.sy(r.Y)
	x1, y1 := l.sx(r.Right()-1)+1, l.sy(r.Bottom()-1)+1
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// clip restricts a screen rectangle to the board area.
func (l layout) clip(r core.Rect) core.Rect {
	x0 := core.Clamp(r.X, l.offX, l.offX+l.boardW)
	y0 := core.Clamp(r.Y, l.offY, l.offY+l.boardH)
	x1 := core.Clamp(r.Right(), l.offX, l.offX+l.boardW)
	y1 := core.Clamp(r.Bottom(), l.offY, l.offY+l.boardH)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinSize()
	if dst.Width() < minW || dst.Height() < minH {
		g.renderOverlay(dst, core.ColorAlert, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	l := g.layoutFor(dst)
	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(l.offX-1, l.offY-1, l.boardW+2, l.boardH+2), core.ColorDim)

	for _, lane := range g.world.Lanes() {
		g.renderLane(dst, l, lane)
	}
	g.renderPlayer(dst, l)
	g.renderParticles(dst, l)

	switch {
	case g.run == core.RunStart:
		g.renderOverlay(dst, core.ColorHUD, "CROSSY ROAD", "Press any key to start")
	case g.run == core.RunGameOver:
		g.renderOverlay(dst, core.ColorAlert, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, core.ColorHUD, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	shield := "-"
	if g.player.HasShield {
		shield = string(ShieldChar)
	}
	hud := fmt.Sprintf(" Crossy Road  Score: %d  Coins: %d  Shield: %s", g.score, g.coins, shield)
	if g.player.Invincible > 0 {
		hud += fmt.Sprintf("  Immune: %d", g.player.Invincible)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
}

// renderLane draws terrain, then obstacles, items and vehicles of one lane.
func (g *Game) renderLane(dst *core.Screen, l layout, lane *Lane) {
	size := g.cfg.World.GridSize
	strip := l.clip(l.rect(core.NewRect(0, lane.Y, g.cfg.World.Width, size)))
	if strip.W == 0 || strip.H == 0 {
		return
	}

	switch lane.Kind {
	case LaneGrass:
		dst.DrawRect(strip, GrassChar, core.ColorGrass)
		if l.cellH > 1 {
			dst.DrawHLine(strip.X, strip.Bottom()-1, strip.W, GrassChar, core.ColorGrassEdge)
		}
		for _, o := range lane.Obstacles {
			g.renderTree(dst, l, o)
		}
	case LaneRoad:
		dst.DrawRect(strip, RoadChar, core.ColorRoad)
		markY := l.sy(lane.Y + size/2)
		for x := size / 4; x < g.cfg.World.Width; x += size * 3 / 2 {
			m := l.clip(core.NewRect(l.sx(x), markY, core.Max(l.sx(x+size*3/4)-l.sx(x), 1), 1))
			dst.DrawRect(m, MarkingChar, core.ColorRoadMarking)
		}
	}

	for _, it := range lane.Items {
		box := it.Box.Translate(0, it.BobOffset(g.cfg.Collectibles.BobAmplitude))
		cx, cy := box.Center()
		ch, color := CoinChar, core.ColorCoin
		if it.Kind == ItemShield {
			ch, color = ShieldChar, core.ColorShield
		}
		if p := l.clip(core.NewRect(l.sx(cx), l.sy(cy), 1, 1)); p.W > 0 && p.H > 0 {
			dst.SetColored(p.X, p.Y, ch, color)
		}
	}

	for _, v := range lane.Vehicles {
		body := l.clip(l.rect(v.Body))
		if body.W == 0 || body.H == 0 {
			continue
		}
		dst.DrawRect(body, CarChar, v.Color)
		front := body.X
		if v.Speed > 0 {
			front = body.Right() - 1
		}
		dst.SetColored(front, body.Y, CarChar, core.ColorRoadMarking)
	}
}

// renderTree draws a tree inside its cell, using the horizontal extent of
// its visual box. Tall cells get a crown above the trunk.
func (g *Game) renderTree(dst *core.Screen, l layout, o Obstacle) {
	visual := o.VisualRect()
	cell := l.clip(l.rect(o.Footprint()))
	if cell.W == 0 || cell.H == 0 {
		return
	}
	x0 := core.Clamp(l.sx(visual.X), cell.X, cell.Right()-1)
	x1 := core.Clamp(l.sx(visual.Right()-1)+1, x0+1, cell.Right())

	crown := core.NewRect(x0, cell.Y, x1-x0, cell.H)
	if cell.H > 1 {
		crown.H = cell.H - 1
		trunkX := x0 + (x1-x0)/2
		dst.SetColored(trunkX, cell.Bottom()-1, TrunkChar, core.ColorTrunk)
	}
	dst.DrawRect(crown, CrownChar, core.ColorTreeTop)
}

// renderPlayer draws the chicken unless it has died.
// While immune it blinks.
func (g *Game) renderPlayer(dst *core.Screen, l layout) {
	p := g.player
	if !p.Alive {
		return
	}
	if p.Invincible > 0 && (p.Invincible/5)%2 == 1 {
		return
	}

	color := core.ColorPlayer
	if p.HasShield {
		color = core.ColorShield
	}
	body := l.clip(l.rect(p.Hitbox(g.cfg.Player)))
	dst.DrawRect(body, PlayerChar, color)
	dst.SetColored(body.Right()-1, body.Y+body.H/2, BeakChar, core.ColorBeak)
	if body.H > 1 {
		dst.SetColored(body.X+body.W/2, body.Y, PlayerChar, core.ColorComb)
	}
}

// renderParticles draws the death burst.
func (g *Game) renderParticles(dst *core.Screen, l layout) {
	for _, pt := range g.particles.Items() {
		x, y := l.sx(int(pt.X)), l.sy(int(pt.Y))
		if p := l.clip(core.NewRect(x, y, 1, 1)); p.W > 0 && p.H > 0 {
			dst.SetColored(x, y, ParticleChar, pt.Color)
		}
	}
}

// renderOverlay draws a centered box with one line of text per row.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}
	boxW := core.Min(maxLen+4, dst.Width())
	boxH := core.Min(len(lines)*2+1, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, line, color)
	}
}
