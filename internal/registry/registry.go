// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so hosts can look them up
// by ID without importing game packages directly.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

// Game is what the terminal host drives. Games hold pure logic and know
// nothing about Bubble Tea; the host maps keys to actions, schedules ticks
// and prints the screen buffer.
type Game interface {
	// ID returns the identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new run sized for the given screen.
	// Called at start, on restart and when the terminal is resized.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns score, high score and whether the run is over.
	State() core.GameState
}

// RunTracker is implemented by games that identify each run, so the host can
// store the run ID next to the score.
type RunTracker interface {
	RunID() string
}

// Deps are the shared services a game is built with.
type Deps struct {
	Config config.DoodleConfig
	Store  sim.HighScoreStore // Optional
	Logger *log.Logger        // Optional
}

// WithDefaults fills unset optional fields.
func (d Deps) WithDefaults() Deps {
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func(deps Deps) Game

type entry struct {
	factory Factory
	title   string
}

var (
	games = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a game factory. It panics on duplicate IDs.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: title}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for id, e := range games {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(deps.WithDefaults()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
