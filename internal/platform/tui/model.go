package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossy/internal/core"
	"github.com/vovakirdan/crossy/internal/games/crossy"
	"github.com/vovakirdan/crossy/internal/registry"
	"github.com/vovakirdan/crossy/internal/storage"
)

// footerRows is the number of terminal rows reserved below the playfield.
const footerRows = 1

// sizer is implemented by games that need a minimum terminal size.
type sizer interface {
	MinSize() (int, int)
}

// runReporter is implemented by games that can summarize a finished run.
type runReporter interface {
	Stats() crossy.Stats
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	scoreboard ScoreboardModel
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	best       int
	showScores bool
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		help:       help.New(),
		scoreboard: NewScoreboardModel(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}

	// The game is reset here rather than in Init because Init has a value receiver.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.refreshBest()

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Scores):
		m.showScores = !m.showScores
		if m.showScores {
			m.scoreboard.Refresh()
		}
		return m, nil
	}

	if m.showScores {
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Pause) {
			m.showScores = false
			return m, nil
		}
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame, m.gameState.Run) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The run continues; only the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.scoreboard.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showScores || m.tooSmall() {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		if !m.runSaved {
			m.recordRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// tooSmall reports whether the playfield cannot fit the terminal.
func (m Model) tooSmall() bool {
	s, ok := m.game.(sizer)
	if !ok {
		return false
	}
	w, h := s.MinSize()
	return m.screen.Width() < w || m.screen.Height() < h
}

// recordRun stores the finished run in the session scoreboard.
func (m *Model) recordRun() {
	rec := storage.RunRecord{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
	}
	if r, ok := m.game.(runReporter); ok {
		st := r.Stats()
		rec.Distance = st.Distance
		rec.Coins = st.Coins
		rec.ShieldsUsed = st.ShieldsUsed
		rec.Ticks = st.Ticks
		rec.Seed = st.Seed
	}

	m.logger.Info("run finished",
		"score", rec.Score,
		"distance", rec.Distance,
		"coins", rec.Coins,
		"shields_used", rec.ShieldsUsed,
		"seed", rec.Seed,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.refreshBest()
}

// refreshBest reloads the session best score.
func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	m.best = best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not locate home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".crossy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer renders the session best next to the key help.
func (m Model) footer() string {
	line := fmt.Sprintf("Best: %d  ", m.best) + m.help.View(m.keys.Keys())
	return footerStyle.Render(line)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
