// Package registry holds the process-wide helper method table: a
// mapping from lower-cased method name to the provider that supplies it
// and the invocable implementing it.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrReservedName means the method name is already taken by a
	// native facade operation; natives are never shadowable.
	ErrReservedName = errors.New("helper name is reserved by a native operation")

	// ErrDuplicateHelper means the method name is already registered by
	// a different provider.
	ErrDuplicateHelper = errors.New("helper name already registered")
)

// Func is the invocable shape every registered helper exposes.
type Func func(args ...interface{}) (interface{}, error)

// Provider is an explicit capability descriptor: a named bundle of
// helper methods registered as a unit.
type Provider struct {
	Name    string
	Methods map[string]Func
}

// Entry is one registration: the provider identity and the
// original-case method name are kept for dispatch and error messages.
type Entry struct {
	Provider string
	Method   string
	Fn       Func
}

// Registry is safe for concurrent use. Registration is monotonic: there
// is no removal operation for the life of the process.
type Registry struct {
	mu       sync.RWMutex
	reserved map[string]struct{}
	entries  map[string]Entry
}

// New creates a registry that refuses registrations colliding with the
// given native operation names.
func New(nativeNames []string) *Registry {
	reserved := make(map[string]struct{}, len(nativeNames))
	for _, name := range nativeNames {
		reserved[strings.ToLower(name)] = struct{}{}
	}
	return &Registry{
		reserved: reserved,
		entries:  make(map[string]Entry),
	}
}

// RegisterProvider registers every method listed by the provider.
func (r *Registry) RegisterProvider(p Provider) error {
	names := make([]string, 0, len(p.Methods))
	for name := range p.Methods {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.RegisterMethod(p.Name, name, p.Methods[name]); err != nil {
			return fmt.Errorf("provider %s: %w", p.Name, err)
		}
	}
	return nil
}

// RegisterMethod registers a single helper method under its lower-cased
// name. Re-registering the same name from the same provider overwrites
// the entry; from a different provider it fails.
func (r *Registry) RegisterMethod(provider, name string, fn Func) error {
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.reserved[key]; taken {
		return fmt.Errorf("%w: %s", ErrReservedName, name)
	}

	if existing, ok := r.entries[key]; ok && existing.Provider != provider {
		return fmt.Errorf("%w: %s (held by %s)", ErrDuplicateHelper, name, existing.Provider)
	}

	r.entries[key] = Entry{Provider: provider, Method: name, Fn: fn}

	logrus.WithFields(logrus.Fields{
		"provider": provider,
		"method":   name,
	}).Debug("Registered helper method")

	return nil
}

// Resolve looks up a helper method by name, case-insensitively.
func (r *Registry) Resolve(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[strings.ToLower(name)]
	return entry, ok
}

// Entries returns all registrations sorted by lookup key.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, r.entries[key])
	}
	return entries
}
