package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/games/doodle"
	"github.com/vovakirdan/doodle-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the launcher menu",
	Long: `Start in interactive menu mode.

After a run or the scoreboard closes, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	deps := gameDeps(cfg, store, logger)

	width, height := terminalSize()
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		best := 0
		if deps.Store != nil {
			if v, ok, err := deps.Store.LoadHighScore(cfg.HighScoreKey); err == nil && ok {
				best = v
			}
		}

		choice, updated, err := tui.RunMenu(runtime, best)
		if err != nil {
			return err
		}
		runtime = updated

		switch choice {
		case tui.ChoicePlay:
			err = playGame(doodle.GameID, runtime, deps, store)
		case tui.ChoiceDemo:
			err = playGame(doodle.DemoGameID, runtime, deps, store)
		case tui.ChoiceScores:
			var source tui.ScoreSource
			if store != nil {
				source = store
			}
			err = tui.RunScoreboard(source, doodle.GameID, runtime.ScreenW, runtime.ScreenH)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}
