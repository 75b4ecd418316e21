// doodle is an endless vertical platformer for the terminal.
//
// Usage:
//
//	doodle play              - Play a run
//	doodle play --demo       - Watch the autopilot play
//	doodle menu              - Launcher menu
//	doodle serve             - Start SSH server for remote play
//	doodle scores            - Show high scores
//	doodle simulate          - Run headless autopilot sessions
//	doodle config            - Print the resolved configuration
//	doodle list              - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <dsn>            - Scores database: a SQLite path or a postgres:// URL
//	--config <path>       - Custom doodle.yaml
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write game logs to a file while the TUI runs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/registry"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
	"github.com/vovakirdan/doodle-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/doodle-arcade/internal/games/doodle"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle Jump - an endless platformer in your terminal",
	Long: `Doodle Jump is an endless vertical platformer. Bounce from platform to
platform, collect coins and springs, and keep away from traps and black holes.

Available commands:
  play      - Play a run (or watch the autopilot with --demo)
  menu      - Launcher menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run headless autopilot sessions
  config    - Print the resolved configuration
  list      - Show registered games

Examples:
  doodle play
  doodle play --difficulty hard
  doodle play --demo --seed 42
  doodle serve --ssh :2222 --db postgres://arcade@localhost/arcade
  doodle simulate --runs 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Scores database path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom doodle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Interactive commands pass
// interactive=true so nothing is written over the alternate screen unless
// a log file was requested.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "doodle",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the doodle configuration and applies the preset.
func loadConfig() (config.DoodleConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DoodleConfig{}, err
	}
	cfg, err := config.LoadDoodle(flagConfig)
	if err != nil {
		return config.DoodleConfig{}, err
	}
	config.ApplyDoodlePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.DoodleConfig{}, err
	}
	return cfg, nil
}

// openStore opens the scores database. A failure is reported and the
// caller continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// gameDeps builds the shared services for game factories. Without a
// database the high score lives in memory for the life of the process.
func gameDeps(cfg config.DoodleConfig, store *storage.Store, logger *log.Logger) registry.Deps {
	deps := registry.Deps{Config: cfg, Logger: logger, Store: sim.NewMemoryHighScores()}
	if store != nil {
		deps.Store = store
	}
	return deps
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
