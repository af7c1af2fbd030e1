// Package registry keeps the playable board variants by ID.
// Variants register from init() so the CLI and the menus can list and
// create them without importing each one by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Game is what the terminal platform drives. Implementations hold pure
// logic and never import Bubble Tea; the platform maps input, paces the
// steps and paints the screen.
type Game interface {
	// ID is the stable key used on the command line and in stored results.
	ID() string

	// Title is the display name, e.g. "Minesweeper (Expert)".
	Title() string

	// Reset deals a fresh board for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the clock by one step.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the caller has cleared.
	Render(dst *core.Screen)

	// State reports progress, the clock and whether the game has ended.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // registration order
	byID    = make(map[string]int)
)

// Register adds a factory under id. List keeps registration order, so
// variants should register easiest first. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	byID[id] = len(entries)
	entries = append(entries, entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	})
}

// List returns every registered game in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return entries[i].factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byID[id]
	return ok
}
