// Package facade is the process-wide entry point for the toolkit: it
// owns the helper registry, the debug flag, and the exception-handler
// slot, and dispatches calls it does not natively recognize through the
// registry.
package facade

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mlind/helpkit/internal/guard"
	"github.com/mlind/helpkit/internal/helpers"
	"github.com/mlind/helpkit/internal/registry"
)

// ErrUnknownHelper is returned by Call for a name that is neither a
// native operation nor a registered helper.
var ErrUnknownHelper = errors.New("unknown helper method")

// nativeNames is the fixed operation set of the facade itself. Helper
// registrations may never shadow these.
var nativeNames = []string{
	"Run",
	"Dump",
	"Call",
	"Debug",
	"SetDebug",
	"SetExceptionHandler",
	"RegisterProvider",
	"RegisterMethod",
}

// Kit aggregates the registry, the execution guard, and the debug flag.
// One Kit is meant to live for the whole process; see Default.
type Kit struct {
	mu       sync.RWMutex
	registry *registry.Registry
	guard    *guard.Guard
	debug    bool
	out      io.Writer
}

func New(threshold guard.Severity) *Kit {
	return &Kit{
		registry: registry.New(nativeNames),
		guard:    guard.New(threshold),
		out:      os.Stdout,
	}
}

var (
	defaultKit  *Kit
	defaultOnce sync.Once
)

// Default returns the process-wide Kit, creating it on first use with
// the built-in providers registered.
func Default() *Kit {
	defaultOnce.Do(func() {
		defaultKit = New(guard.SeverityWarning)
		for _, p := range []registry.Provider{
			helpers.Strings(),
			helpers.Slices(),
			helpers.DateTime(),
		} {
			if err := defaultKit.RegisterProvider(p); err != nil {
				logrus.WithError(err).Fatal("Failed to register built-in provider")
			}
		}
	})
	return defaultKit
}

// RegisterProvider registers every method the provider lists.
func (k *Kit) RegisterProvider(p registry.Provider) error {
	return k.registry.RegisterProvider(p)
}

// RegisterMethod registers a single helper method.
func (k *Kit) RegisterMethod(provider, name string, fn registry.Func) error {
	return k.registry.RegisterMethod(provider, name, fn)
}

// Helpers returns all registered helper methods.
func (k *Kit) Helpers() []registry.Entry {
	return k.registry.Entries()
}

// Call dispatches a method by name: the native operation set is
// consulted first (natives have typed entry points and are not
// dispatched through the table), then the registry.
func (k *Kit) Call(name string, args ...interface{}) (interface{}, error) {
	for _, native := range nativeNames {
		if strings.EqualFold(native, name) {
			return nil, fmt.Errorf("%s is a native operation, call it directly", native)
		}
	}

	entry, ok := k.registry.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHelper, name)
	}

	logrus.WithFields(logrus.Fields{
		"provider": entry.Provider,
		"method":   entry.Method,
	}).Debug("Dispatching helper call")

	return entry.Fn(args...)
}

// Run executes fn under the execution guard; see guard.Guard.Run.
func (k *Kit) Run(fn guard.Callable, args ...interface{}) interface{} {
	return k.guard.Run(fn, args...)
}

// SetExceptionHandler installs the handler that receives failures
// escaping guarded invocations.
func (k *Kit) SetExceptionHandler(h guard.Handler) {
	k.guard.SetHandler(h)
}

// SetErrorLevel changes the guard's reporting threshold.
func (k *Kit) SetErrorLevel(threshold guard.Severity) {
	k.guard.SetThreshold(threshold)
}

func (k *Kit) SetDebug(debug bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.debug = debug
}

func (k *Kit) Debug() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.debug
}

// SetOutput redirects Dump output; it defaults to stdout.
func (k *Kit) SetOutput(w io.Writer) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.out = w
}

// Dump pretty-prints a value when the debug flag is set and is a no-op
// otherwise.
func (k *Kit) Dump(v interface{}) {
	k.mu.RLock()
	debug := k.debug
	out := k.out
	k.mu.RUnlock()

	if !debug {
		return
	}
	fmt.Fprint(out, helpers.Dump(v))
}
