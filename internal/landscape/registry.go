package landscape

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrLandscapeExists   = errors.New("landscape already registered")
	ErrLandscapeNotFound = errors.New("landscape not found")
)

var registry = struct {
	mu sync.RWMutex
	m  map[string]Landscape
}{
	m: make(map[string]Landscape),
}

// Register adds a landscape under its name. The built-ins register
// themselves at package init.
func Register(l Landscape) error {
	if l == nil {
		return errors.New("landscape is required")
	}
	if l.Name() == "" {
		return errors.New("landscape name is required")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.m[l.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrLandscapeExists, l.Name())
	}
	registry.m[l.Name()] = l
	return nil
}

// Lookup resolves a landscape by name.
func Lookup(name string) (Landscape, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	l, ok := registry.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLandscapeNotFound, name)
	}
	return l, nil
}

// Names lists registered landscape names in sorted order.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.m))
	for name := range registry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	for _, l := range []Landscape{OneMax{}, Trap{}, Sphere{}, Rastrigin{}} {
		if err := Register(l); err != nil {
			panic(err)
		}
	}
}
