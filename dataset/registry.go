package dataset

import (
	"fmt"
	"sort"
	"sync"
)

// Loader materializes a Dataset. Loaders must be pure: same inputs, same
// Dataset; any I/O failure surfaces as ErrCorrupt or the underlying error.
type Loader func() (*Dataset, error)

// registry maps identifiers to loaders behind a read/write lock. A single
// package-level instance backs Register/Load/Names; the fixed built-in
// datasets are registered in builtin.go.
type registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

var defaultRegistry = &registry{loaders: make(map[string]Loader)}

// Register makes a dataset available under name, replacing any previous
// loader registered under the same identifier.
func Register(name string, l Loader) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.loaders[name] = l
}

// Load resolves name against the registry and materializes the Dataset.
// Unknown identifiers fail with ErrNotFound; loader failures propagate
// unchanged (typically wrapping ErrCorrupt).
func Load(name string) (*Dataset, error) {
	defaultRegistry.mu.RLock()
	l, ok := defaultRegistry.loaders[name]
	defaultRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return l()
}

// Names lists all registered identifiers in ascending order.
func Names() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	out := make([]string, 0, len(defaultRegistry.loaders))
	for name := range defaultRegistry.loaders {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
