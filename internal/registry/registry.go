// Package registry holds the playable game modes.
// Modes register a factory in init(); the CLI, menu and SSH server look them
// up by id without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is what the platform drives. Implementations contain no Bubble Tea code;
// the platform owns input mapping, timing and display.
type Game interface {
	// ID returns the unique mode identifier (e.g. "blockfall", "blockfall_bag").
	// Used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame. in.Elapsed carries the wall time
	// since the previous frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current score, level, lines and status flags.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line menu description.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

type entry struct {
	factory Factory
	info    GameInfo
}

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	games[id] = entry{factory: f, info: info}
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for _, e := range games {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
