package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// RunState is the coarse phase of a single run.
type RunState int

const (
	RunStart RunState = iota
	RunPlaying
	RunGameOver
)

// String returns a human-readable name for the run state.
func (s RunState) String() string {
	switch s {
	case RunStart:
		return "start"
	case RunPlaying:
		return "playing"
	case RunGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText lets run states appear by name in YAML and logs.
func (s RunState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Current score
	Run      RunState // Start, Playing or GameOver
	GameOver bool     // Whether the run has ended
	Paused   bool     // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists what happened during this tick, in order.
	Events []Event
}

// EventKind classifies gameplay outcomes reported back to the platform.
type EventKind int

const (
	EventStarted EventKind = iota
	EventAdvanced
	EventCoin
	EventShieldPickup
	EventShieldAbsorbed
	EventDied
	EventRestarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventAdvanced:
		return "advanced"
	case EventCoin:
		return "coin"
	case EventShieldPickup:
		return "shield_pickup"
	case EventShieldAbsorbed:
		return "shield_absorbed"
	case EventDied:
		return "died"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a single gameplay outcome with the score change it caused.
type Event struct {
	Kind       EventKind
	ScoreDelta int
}
