// Package registry provides a global registry for display backends.
// Backends register themselves in init() functions, allowing the CLI
// to pick one by name without hardcoded dependencies. Backends that need
// cgo or build tags are simply absent when not compiled in.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// ErrUnknown is returned for a display name nobody registered.
var ErrUnknown = errors.New("registry: unknown display")

// Factory creates a fresh display for one game.
type Factory func() engine.Display

// Runner drives run, which runs an engine loop on d, for backends that must
// own the main goroutine (e.g. a Bubble Tea program).
type Runner func(d engine.Display, run func() error, palette core.Palette) error

// Backend describes a registered display.
type Backend struct {
	Name  string
	Title string

	// Terminal is true when the backend takes over the terminal, so logs
	// must not be written to it while the game runs.
	Terminal bool

	New Factory

	// Run is optional; when nil the loop is run directly.
	Run Runner
}

// Play runs a loop created by newLoop on a fresh display.
func (b Backend) Play(newLoop func(engine.Display) (*engine.Loop, error), palette core.Palette) error {
	d := b.New()
	loop, err := newLoop(d)
	if err != nil {
		return err
	}
	if b.Run != nil {
		return b.Run(d, loop.Run, palette)
	}
	return loop.Run()
}

var (
	backends = make(map[string]Backend)
	mu       sync.RWMutex
)

// Register adds a backend to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()

	if b.New == nil {
		panic(fmt.Sprintf("registry: display %q has no factory", b.Name))
	}
	if _, exists := backends[b.Name]; exists {
		panic(fmt.Sprintf("registry: display %q already registered", b.Name))
	}
	backends[b.Name] = b
}

// List returns all registered backends, sorted by name.
func List() []Backend {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Backend, 0, len(backends))
	for _, b := range backends {
		result = append(result, b)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the backend registered under name.
func Get(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	b, ok := backends[name]
	if !ok {
		return Backend{}, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return b, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
