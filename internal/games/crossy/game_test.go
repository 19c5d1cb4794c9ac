package crossy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crossy/internal/config"
	"github.com/vovakirdan/crossy/internal/core"
	"github.com/vovakirdan/crossy/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultCrossyConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startPlaying leaves the title screen.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	res := g.Step(frame(core.ActionStart))
	require.Equal(t, core.RunPlaying, res.State.Run)
}

// flattenWorld turns every current lane into empty grass.
func flattenWorld(g *Game) {
	for _, lane := range g.world.Lanes() {
		lane.Kind = LaneGrass
		lane.Obstacles = nil
		lane.Vehicles = nil
		lane.Items = nil
	}
}

// playerLane returns the lane the player stands on.
func playerLane(t *testing.T, g *Game) *Lane {
	t.Helper()
	lane := g.world.LaneAt(g.player.Y)
	require.NotNil(t, lane)
	return lane
}

// parkCar turns the player's lane into a road with a stopped car on the player.
func parkCar(t *testing.T, g *Game) {
	t.Helper()
	vc := g.cfg.Vehicles
	lane := playerLane(t, g)
	lane.Kind = LaneRoad
	lane.Vehicles = []Vehicle{{
		Body:  core.NewRect(g.player.X, lane.Y+vc.LaneOffset, vc.Width, vc.Height),
		Speed: 0,
		Inset: vc.HitboxInset,
		Color: core.ColorCarRed,
	}}
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	require.NoError(t, err)
	assert.Equal(t, "Crossy Road", g.Title())
}

func TestResetPlacesPlayerOnStartCell(t *testing.T) {
	g := newTestGame(t, 1)

	assert.Equal(t, 280, g.player.X)
	assert.Equal(t, 520, g.player.Y)
	assert.True(t, g.player.Alive)
	assert.False(t, g.player.HasShield)
	assert.Zero(t, g.player.Invincible)
	assert.Equal(t, core.RunStart, g.State().Run)
	assert.Zero(t, g.State().Score)
}

func TestStartRequiresInput(t *testing.T) {
	g := newTestGame(t, 2)
	before := g.Snapshot()

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, core.RunStart, res.State.Run)

	after := g.Snapshot()
	assert.Equal(t, before.Lanes, after.Lanes, "world must not move on the title screen")
}

func TestStartKeyDoesNotMove(t *testing.T) {
	g := newTestGame(t, 3)
	flattenWorld(g)

	res := g.Step(frame(core.ActionUp))
	assert.Equal(t, core.RunPlaying, res.State.Run)
	assert.Zero(t, res.State.Score)
	assert.True(t, hasEvent(res.Events, core.EventStarted))
	assert.Zero(t, g.world.Distance())
}

func TestThreeHopsForward(t *testing.T) {
	g := newTestGame(t, 4)
	startPlaying(t, g)
	flattenWorld(g)

	size := g.cfg.World.GridSize
	tracked := g.world.Lanes()[10]
	trackedY := tracked.Y
	laneCount := len(g.world.Lanes())
	startY := g.player.Y

	for i := range 3 {
		res := g.Step(frame(core.ActionUp))
		require.Equal(t, i+1, res.State.Score)
		require.Len(t, g.world.Lanes(), laneCount)
	}

	assert.Equal(t, 3, g.State().Score)
	assert.Equal(t, 3, g.world.Distance())
	assert.Equal(t, startY, g.player.Y, "the world scrolls, the player stays")
	assert.Equal(t, trackedY+3*size, tracked.Y)

	// Sideways at the left boundary is clamped away.
	g.player.X = 0
	before := g.Snapshot()
	assert.False(t, g.attemptMove(core.ActionLeft).Accepted)
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, 3, g.State().Score)
}

func TestUpMoveEventCarriesScoreDelta(t *testing.T) {
	g := newTestGame(t, 5)
	startPlaying(t, g)
	flattenWorld(g)

	res := g.Step(frame(core.ActionUp))
	require.NotEmpty(t, res.Events)
	assert.Equal(t, core.Event{Kind: core.EventAdvanced, ScoreDelta: 1}, res.Events[0])
}

func TestSidewaysMoves(t *testing.T) {
	g := newTestGame(t, 6)
	startPlaying(t, g)
	flattenWorld(g)

	g.Step(frame(core.ActionRight))
	assert.Equal(t, 320, g.player.X)
	g.Step(frame(core.ActionLeft, core.ActionLeft))
	assert.Equal(t, 240, g.player.X)
	assert.Zero(t, g.State().Score)
	assert.Zero(t, g.world.Distance())

	g.player.X = g.cfg.World.Width - g.cfg.World.GridSize
	assert.False(t, g.attemptMove(core.ActionRight).Accepted)
	assert.Equal(t, 560, g.player.X)
}

func TestDownIsIgnored(t *testing.T) {
	g := newTestGame(t, 7)
	startPlaying(t, g)
	flattenWorld(g)

	before := g.player
	g.Step(frame(core.ActionDown))
	assert.Equal(t, before, g.player)
	assert.Zero(t, g.State().Score)
}

func TestBlockedMovesAreNoOps(t *testing.T) {
	g := newTestGame(t, 8)
	startPlaying(t, g)
	flattenWorld(g)

	size := g.cfg.World.GridSize
	lane := playerLane(t, g)
	lane.Obstacles = []Obstacle{{Cell: core.NewRect(g.player.X-size, lane.Y, size, size)}}
	ahead := g.world.LaneAt(g.player.Y - size)
	require.NotNil(t, ahead)
	ahead.Obstacles = []Obstacle{{Cell: core.NewRect(g.player.X, ahead.Y, size, size)}}

	before := g.Snapshot()
	assert.False(t, g.attemptMove(core.ActionLeft).Accepted)
	assert.False(t, g.attemptMove(core.ActionUp).Accepted)
	assert.Equal(t, before, g.Snapshot())

	assert.True(t, g.attemptMove(core.ActionRight).Accepted, "the right side is open")
}

func TestCoinPickup(t *testing.T) {
	g := newTestGame(t, 9)
	startPlaying(t, g)
	flattenWorld(g)

	lane := playerLane(t, g)
	lane.Items = []Collectible{NewGenerator(g.cfg, nil).item(ItemCoin, g.player.X/g.cfg.World.GridSize, lane.Y)}

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, 5, res.State.Score)
	assert.Empty(t, lane.Items)
	assert.Equal(t, 1, g.Stats().Coins)
	assert.Contains(t, res.Events, core.Event{Kind: core.EventCoin, ScoreDelta: 5})
}

func TestCoinOnNeighbourCellIsNotCollected(t *testing.T) {
	g := newTestGame(t, 10)
	startPlaying(t, g)
	flattenWorld(g)

	lane := playerLane(t, g)
	col := g.player.X/g.cfg.World.GridSize + 1
	lane.Items = []Collectible{NewGenerator(g.cfg, nil).item(ItemCoin, col, lane.Y)}

	g.Step(core.NewInputFrame())
	assert.Len(t, lane.Items, 1)
	assert.Zero(t, g.State().Score)
}

func TestShieldPickedUpOnce(t *testing.T) {
	g := newTestGame(t, 11)
	startPlaying(t, g)
	flattenWorld(g)

	lane := playerLane(t, g)
	col := g.player.X / g.cfg.World.GridSize
	gen := NewGenerator(g.cfg, nil)
	lane.Items = []Collectible{gen.item(ItemShield, col, lane.Y), gen.item(ItemShield, col, lane.Y)}

	res := g.Step(core.NewInputFrame())
	assert.True(t, g.player.HasShield)
	assert.Len(t, lane.Items, 1, "a second shield stays while one is held")
	assert.Zero(t, res.State.Score)

	g.Step(core.NewInputFrame())
	assert.Len(t, lane.Items, 1)
}

func TestShieldAbsorbsOneHit(t *testing.T) {
	g := newTestGame(t, 12)
	startPlaying(t, g)
	flattenWorld(g)
	parkCar(t, g)
	g.player.HasShield = true

	res := g.Step(core.NewInputFrame())
	assert.True(t, hasEvent(res.Events, core.EventShieldAbsorbed))
	assert.False(t, g.player.HasShield)
	assert.Equal(t, 120, g.player.Invincible)
	assert.True(t, g.player.Alive)
	assert.Equal(t, core.RunPlaying, res.State.Run)

	// Still overlapping the car while immune: nothing happens.
	for range 10 {
		res = g.Step(core.NewInputFrame())
		require.Empty(t, res.Events)
	}
	assert.True(t, g.player.Alive)
	assert.Equal(t, 110, g.player.Invincible)
	assert.Equal(t, 1, g.Stats().ShieldsUsed)
}

func TestImmunityRunsOut(t *testing.T) {
	g := newTestGame(t, 13)
	startPlaying(t, g)
	flattenWorld(g)
	parkCar(t, g)
	g.player.HasShield = true

	g.Step(core.NewInputFrame())
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	require.Zero(t, g.player.Invincible)
	require.True(t, g.player.Alive)

	res := g.Step(core.NewInputFrame())
	assert.False(t, g.player.Alive)
	assert.True(t, res.State.GameOver)
}

func TestDeathOnVehicle(t *testing.T) {
	g := newTestGame(t, 14)
	startPlaying(t, g)
	flattenWorld(g)
	parkCar(t, g)

	res := g.Step(core.NewInputFrame())
	assert.False(t, g.player.Alive)
	assert.Equal(t, core.RunGameOver, res.State.Run)
	assert.True(t, res.State.GameOver)
	assert.True(t, hasEvent(res.Events, core.EventDied))
	assert.Equal(t, g.cfg.Particles.Count, g.particles.Len())

	// No further score changes regardless of input.
	lane := playerLane(t, g)
	lane.Items = []Collectible{NewGenerator(g.cfg, nil).item(ItemCoin, g.player.X/g.cfg.World.GridSize, lane.Y)}
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionRight, core.ActionPause, core.ActionStart} {
		res = g.Step(frame(a))
		require.Zero(t, res.State.Score)
		require.Equal(t, core.RunGameOver, res.State.Run)
	}
	assert.Len(t, lane.Items, 1)
}

func TestVehicleOnOtherLaneIsHarmless(t *testing.T) {
	g := newTestGame(t, 15)
	startPlaying(t, g)
	flattenWorld(g)

	size := g.cfg.World.GridSize
	vc := g.cfg.Vehicles
	ahead := g.world.LaneAt(g.player.Y - size)
	ahead.Kind = LaneRoad
	ahead.Vehicles = []Vehicle{{Body: core.NewRect(g.player.X, ahead.Y+vc.LaneOffset, vc.Width, vc.Height), Inset: vc.HitboxInset}}

	g.Step(core.NewInputFrame())
	assert.True(t, g.player.Alive)
}

func TestParticlesFadeAfterDeath(t *testing.T) {
	g := newTestGame(t, 16)
	startPlaying(t, g)
	flattenWorld(g)
	parkCar(t, g)

	g.Step(core.NewInputFrame())
	require.Positive(t, g.particles.Len())
	for range g.cfg.Particles.MaxLife {
		g.Step(core.NewInputFrame())
	}
	assert.Zero(t, g.particles.Len())
}

func TestRestartReturnsToStart(t *testing.T) {
	g := newTestGame(t, 17)
	startPlaying(t, g)
	flattenWorld(g)
	g.Step(frame(core.ActionUp))
	parkCar(t, g)
	g.Step(core.NewInputFrame())
	require.True(t, g.State().GameOver)

	res := g.Step(frame(core.ActionRestart, core.ActionUp))
	assert.True(t, hasEvent(res.Events, core.EventRestarted))
	assert.Equal(t, core.RunStart, res.State.Run)
	assert.Zero(t, res.State.Score)
	assert.True(t, g.player.Alive)
	assert.Zero(t, g.world.Distance())
	assert.Zero(t, g.particles.Len())
	assert.Equal(t, 520, g.player.Y)
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 18)
	startPlaying(t, g)
	flattenWorld(g)

	vc := g.cfg.Vehicles
	top := g.world.Lanes()[len(g.world.Lanes())-1]
	top.Kind = LaneRoad
	top.Vehicles = []Vehicle{{Body: core.NewRect(100, top.Y+vc.LaneOffset, vc.Width, vc.Height), Speed: 3, Inset: vc.HitboxInset}}

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)

	res = g.Step(frame(core.ActionUp))
	assert.Zero(t, res.State.Score)
	assert.Equal(t, 100, top.Vehicles[0].Body.X, "vehicles freeze while paused")

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, 103, top.Vehicles[0].Body.X)

	g.Step(frame(core.ActionUp))
	assert.Equal(t, 1, g.State().Score)
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i%20 == 5:
			inputs[i].Set(core.ActionUp)
		case i%45 == 12:
			inputs[i].Set(core.ActionLeft)
		case i%70 == 30:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, 424242)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	assert.Equal(t, snap1, snap2)
	assert.Equal(t, snap1.Hash(), snap2.Hash())
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := newTestGame(t, 1)
	g2 := newTestGame(t, 2)
	s1, s2 := g1.Snapshot(), g2.Snapshot()
	assert.NotEqual(t, s1.Hash(), s2.Hash())
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 19)
	snap := g.Snapshot()
	require.NotEmpty(t, snap.Lanes)

	snap.Lanes[0].Y = -999
	snap.Player.X = -1
	assert.NotEqual(t, -999, g.world.Lanes()[0].Y)
	assert.Equal(t, 280, g.player.X)
}

func TestUnknownActionsAreIgnored(t *testing.T) {
	g := newTestGame(t, 20)
	startPlaying(t, g)
	flattenWorld(g)

	before := g.player
	res := g.Step(frame(core.Action(99), core.ActionNone))
	assert.Equal(t, before, g.player)
	assert.Zero(t, res.State.Score)
	assert.Empty(t, res.Events)
}

func TestMoveResult(t *testing.T) {
	g := newTestGame(t, 21)
	startPlaying(t, g)
	flattenWorld(g)

	up := g.attemptMove(core.ActionUp)
	assert.Equal(t, MoveResult{Accepted: true, Advanced: true, ScoreDelta: g.cfg.Scoring.Step}, up)

	right := g.attemptMove(core.ActionRight)
	assert.Equal(t, MoveResult{Accepted: true}, right)

	assert.Equal(t, MoveResult{}, g.attemptMove(core.ActionDown))
}
