// Package registry keeps the playable game variants by ID.
// Variants register themselves in init() so the CLI, menu and SSH server can
// list and create them without importing each one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tilt2048/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation that renders into
// a core.Screen. Games never touch the terminal themselves.
type Game interface {
	// ID returns the variant identifier used on the command line and in score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game. Called once at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current score and status flags.
	State() core.GameState
}

// Reporter is implemented by games that can summarize a finished run.
type Reporter interface {
	Result() core.Result
}

// Resizer is implemented by games that can follow a terminal resize without
// a restart. Games without it are reset with the new dimensions.
type Resizer interface {
	Resize(w, h int)
}

// LevelStarter is implemented by games with selectable starting levels.
type LevelStarter interface {
	StartAtLevel(level int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory under id.
// Panics if the id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
