package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/doodle-arcade/internal/games/doodle"
	"github.com/vovakirdan/doodle-arcade/internal/platform/tui"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

var (
	flagSimRuns   int
	flagSimTicks  uint64
	flagSimCols   int
	flagSimRows   int
	flagSimRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot sessions",
	Long: `Play sessions with the autopilot and no terminal UI, then print a YAML
summary. Useful for tuning a config file or a difficulty preset.

Run N uses seed --seed+N, so a fixed --seed reproduces the whole batch.
With --record, finished runs are saved under doodle-demo and the shared
high score is updated.

Examples:
  doodle simulate
  doodle simulate --runs 50 --difficulty hard
  doodle simulate --seed 42 --ticks 20000 --config ./tuned.yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of sessions")
	simulateCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 36000, "Tick limit per session (0 = until game over)")
	simulateCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Terminal columns the viewport is sized for")
	simulateCmd.Flags().IntVar(&flagSimRows, "rows", 26, "Terminal rows the viewport is sized for")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save finished runs to the scores database")
}

type simulationReport struct {
	Config struct {
		Difficulty string       `yaml:"difficulty"`
		Viewport   sim.Viewport `yaml:"viewport"`
		TickLimit  uint64       `yaml:"tick_limit"`
	} `yaml:"config"`
	Runs    []doodle.RunSummary `yaml:"runs"`
	Summary struct {
		Runs      int            `yaml:"runs"`
		BestScore int            `yaml:"best_score"`
		AvgScore  float64        `yaml:"avg_score"`
		AvgTicks  float64        `yaml:"avg_ticks"`
		Endings   map[string]int `yaml:"endings"`
	} `yaml:"summary"`
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	var report simulationReport
	report.Config.Difficulty = flagDifficulty
	if report.Config.Difficulty == "" {
		report.Config.Difficulty = "normal"
	}
	report.Config.Viewport = doodle.ViewportFor(cfg, flagSimCols, flagSimRows)
	report.Config.TickLimit = flagSimTicks
	report.Summary.Endings = make(map[string]int)

	opts := doodle.HeadlessOptions{
		Viewport: report.Config.Viewport,
		MaxTicks: flagSimTicks,
		Logger:   logger,
	}

	var recorder tui.ScoreRecorder
	if flagSimRecord {
		if store := openStore(); store != nil {
			defer store.Close()
			opts.Store = store
			recorder = store
		}
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var totalScore int
	var totalTicks uint64
	for i := range flagSimRuns {
		opts.Seed = baseSeed + int64(i)
		summary, err := doodle.RunHeadless(cfg, opts)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		logger.Debug("run finished", "run", summary.RunID, "score", summary.Score, "reason", summary.Reason)

		if recorder != nil && summary.Reason != "timeout" && summary.Score > 0 {
			if _, err := recorder.SaveScore(doodle.DemoGameID, summary.RunID, summary.Score); err != nil {
				logger.Warn("Failed to save score", "run", summary.RunID, "err", err)
			}
		}

		report.Runs = append(report.Runs, summary)
		report.Summary.Endings[summary.Reason]++
		report.Summary.BestScore = max(report.Summary.BestScore, summary.Score)
		totalScore += summary.Score
		totalTicks += summary.Ticks
	}

	report.Summary.Runs = len(report.Runs)
	if n := len(report.Runs); n > 0 {
		report.Summary.AvgScore = float64(totalScore) / float64(n)
		report.Summary.AvgTicks = float64(totalTicks) / float64(n)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
