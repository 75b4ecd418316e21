package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/games/doodle"
	"github.com/vovakirdan/doodle-arcade/internal/platform/tui"
	"github.com/vovakirdan/doodle-arcade/internal/registry"
	"github.com/vovakirdan/doodle-arcade/internal/storage"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a run",
	Long: `Start a run in the terminal.

Controls:
  A/Left, D/Right  - Steer
  Space/W/Up       - Jump (only while standing)
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Esc            - Quit

Examples:
  doodle play
  doodle play --difficulty easy
  doodle play --demo
  doodle play doodle-demo --seed 7
  doodle play --config ./my-doodle.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := doodle.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagDemo {
		gameID = doodle.DemoGameID
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q\nRun 'doodle list' to see available games.", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := playGame(gameID, runtime, gameDeps(cfg, store, logger), store); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playGame runs one game on the local terminal until the player quits.
func playGame(gameID string, runtime core.RuntimeConfig, deps registry.Deps, store *storage.Store) error {
	game, err := registry.Create(gameID, deps)
	if err != nil {
		return err
	}

	var scores tui.ScoreRecorder
	if store != nil {
		scores = store
	}
	return tui.Run(game, scores, deps.Logger, runtime)
}
