package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/registry"
)

// ScoreRecorder stores the final score of a run.
type ScoreRecorder interface {
	SaveScore(gameID, runID string, score int) (int64, error)
}

// Model is the Bubble Tea model running one game.
// Key presses are collected into an input frame between ticks; Update runs
// on a single goroutine so no locking is needed.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     ScoreRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool
}

// NewModel creates a model for the given game. scores and logger may be nil.
func NewModel(game registry.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     scores,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKeyToFrame(msg, &m.inputFrame) {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		closeGame(m.game, m.logger)
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
	}
	return m, nil
}

// restart begins a new run. The tick loop is idle after game over, so it
// is started again here.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The playfield is sized from the terminal, so a resize starts over.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.saveScore()
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the finished run once. Failures are logged; play goes on.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.scores == nil || m.gameState.Score <= 0 {
		return
	}

	runID := ""
	if rt, ok := m.game.(registry.RunTracker); ok {
		runID = rt.RunID()
	}
	if _, err := m.scores.SaveScore(m.game.ID(), runID, m.gameState.Score); err != nil {
		m.logger.Warn("Failed to save score", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Debug("Score saved", "game", m.game.ID(), "run", runID, "score", m.gameState.Score)
}

// saveScreenshot writes the current screen as plain text under
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("Cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Cannot save screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("Cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for the game on the local terminal.
func Run(game registry.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, scores, logger, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	closeGame(game, model.logger)
	return err
}

// closeGame lets a game that implements io.Closer persist what it buffers.
// Close may be called more than once.
func closeGame(game registry.Game, logger *log.Logger) {
	c, ok := game.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("Failed to close game", "game", game.ID(), "err", err)
	}
}
