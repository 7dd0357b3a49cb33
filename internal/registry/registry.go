// Package registry keeps the playable variants of the game. Variants
// register themselves in init(), so hosts discover them without importing
// game packages directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// Game is what a host drives: fixed frames in, a screen buffer out.
// Implementations hold no terminal or network state.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run sized for the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances one host frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score and run status.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Describer is implemented by games that provide a one-line description.
type Describer interface {
	Description() string
}

// Factory creates a new instance of a variant.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant, describing it from a throwaway instance.
// Registering an ID twice panics.
func Register(id string, f Factory) {
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns a variant's description without instantiating it.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}
