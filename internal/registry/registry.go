// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gamehub/internal/core"
)

// Game is the interface every catalog entry implements.
// The engine behind a Game is a pure state machine; the Game adapts it to the
// platform: semantic actions in, timers and a screen buffer out.
// Nothing here depends on Bubble Tea.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "blockstack").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Block Stack").
	Title() string

	// Description returns a one-line summary for the catalog.
	Description() string

	// Reset loads configuration and starts a fresh session.
	// Called once at start; a configuration defect is returned here.
	Reset(cfg core.RuntimeConfig) error

	// HandleAction applies a platform action immediately.
	// Actions the game has no use for are ignored.
	HandleAction(a core.Action)

	// Timers lists the periodic drivers the platform must run while the
	// game is running. The slice is stable for the lifetime of a session.
	Timers() []core.Timer

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get catalog metadata by creating a temporary instance
	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Description: g.Description()}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
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
