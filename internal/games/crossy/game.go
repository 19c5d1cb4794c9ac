// Package crossy implements an endless lane-crossing game.
//
// The player hops forward across procedurally generated grass and road
// lanes. Each forward hop scores a point and scrolls the world by one
// grid cell. Trees block movement, cars kill on contact unless a shield
// absorbs the hit, and coins add bonus points.
package crossy

import (
	"math/rand"

	"github.com/vovakirdan/crossy/internal/config"
	"github.com/vovakirdan/crossy/internal/core"
	"github.com/vovakirdan/crossy/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "crossy"

// particleSeedSalt separates the cosmetic random stream from the gameplay one.
const particleSeedSalt = 0x5eed_f00d

// activeConfig is used by games created through the registry.
var activeConfig = config.DefaultCrossyConfig()

// SetConfig replaces the configuration used by New.
func SetConfig(cfg config.CrossyConfig) {
	activeConfig = cfg
}

// Game is the simulation context of one crossy session.
// All mutable state lives here and is rebuilt by Reset.
type Game struct {
	cfg     config.CrossyConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	world     *World
	player    Player
	particles *Particles

	tick        uint64
	ticksAlive  int
	score       int
	coins       int
	shieldsUsed int
	run         core.RunState
	paused      bool

	events []core.Event
}

// New creates a game using the configuration set with SetConfig.
func New() *Game {
	return &Game{cfg: activeConfig}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.CrossyConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Crossy Road"
}

// Reset returns the game to the title screen with a freshly built world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.particles = NewParticles(g.cfg.Particles, cfg.Seed^particleSeedSalt)

	g.player = newPlayer(g.cfg)
	g.world = NewWorld(g.cfg, NewGenerator(g.cfg, g.rng), g.player.X, g.player.Y)

	g.tick = 0
	g.ticksAlive = 0
	g.score = 0
	g.coins = 0
	g.shieldsUsed = 0
	g.run = core.RunStart
	g.paused = false
	g.events = nil
}

// Step applies the frame's actions in arrival order, then runs one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	for _, a := range in.Ordered() {
		if g.handleAction(a) {
			return g.result()
		}
	}

	if g.paused {
		return g.result()
	}

	if g.run == core.RunPlaying {
		g.ticksAlive++
		g.update()
	}
	g.particles.Update()

	return g.result()
}

// handleAction applies a single action. It reports true when the action
// reset the game and the rest of the frame must be dropped.
func (g *Game) handleAction(a core.Action) bool {
	if a == core.ActionNone || a == core.ActionQuit {
		return false
	}

	switch g.run {
	case core.RunStart:
		g.run = core.RunPlaying
		g.emit(core.EventStarted, 0)

	case core.RunPlaying:
		if a == core.ActionPause {
			g.paused = !g.paused
			return false
		}
		if !g.paused {
			g.attemptMove(a)
		}

	case core.RunGameOver:
		if a == core.ActionRestart {
			g.restart()
			return true
		}
	}
	return false
}

// restart rebuilds the session from a seed drawn from the current run.
func (g *Game) restart() {
	cfg := g.runtime
	cfg.Seed = g.rng.Int63()
	g.Reset(cfg)
	g.emit(core.EventRestarted, 0)
}

// addScore awards points and records the event that earned them.
func (g *Game) addScore(kind core.EventKind, points int) {
	g.score += points
	g.emit(kind, points)
}

// emit records an event for the current step.
func (g *Game) emit(kind core.EventKind, delta int) {
	g.events = append(g.events, core.Event{Kind: kind, ScoreDelta: delta})
}

// result packages the current state with this step's events.
func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Run:      g.run,
		GameOver: g.run == core.RunGameOver,
		Paused:   g.paused,
	}
}

// Stats summarizes the current run.
type Stats struct {
	Score       int   `yaml:"score"`
	Distance    int   `yaml:"distance"`
	Coins       int   `yaml:"coins"`
	ShieldsUsed int   `yaml:"shields_used"`
	Ticks       int   `yaml:"ticks"`
	Seed        int64 `yaml:"seed"`
}

// Stats returns the counters of the current run.
func (g *Game) Stats() Stats {
	return Stats{
		Score:       g.score,
		Distance:    g.world.Distance(),
		Coins:       g.coins,
		ShieldsUsed: g.shieldsUsed,
		Ticks:       g.ticksAlive,
		Seed:        g.runtime.Seed,
	}
}
