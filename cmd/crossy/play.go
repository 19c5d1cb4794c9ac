package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossy/internal/core"
	"github.com/vovakirdan/crossy/internal/games/crossy"
	"github.com/vovakirdan/crossy/internal/platform/tui"
	"github.com/vovakirdan/crossy/internal/registry"
	"github.com/vovakirdan/crossy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Up/W       - Hop forward
  Left/A     - Hop left
  Right/D    - Hop right
  Enter      - Start (any key works on the title screen)
  P/Esc      - Pause
  R/Space    - Restart (after game over)
  Tab        - Session scores
  Ctrl+S     - Save a screenshot to ~/.crossy/screenshots
  Q/Ctrl+C   - Quit

Scores are kept for the current session only.

Examples:
  crossy play
  crossy play --seed 42
  crossy play --config ./my-crossy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if _, err := loadConfig(logger); err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(crossy.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open session scoreboard", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	// The terminal belongs to the program while it runs; its log lines
	// are buffered and replayed once the alternate screen is gone.
	var gameLog bytes.Buffer
	runLogger, _ := newLogger(&gameLog)

	runErr := tui.Run(game, store, runLogger, cfg)

	os.Stderr.Write(gameLog.Bytes()) //nolint:errcheck // Best-effort replay

	if store != nil {
		if n, err := store.RunCount(crossy.ID); err == nil && n > 0 {
			best, _ := store.HighScore(crossy.ID)
			logger.Info("session over", "runs", n, "best", best)
		}
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
