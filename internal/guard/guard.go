// Package guard wraps arbitrary invocations with a scoped
// error-promotion policy: while a guarded call runs, recoverable
// runtime faults reported through this package are promoted to
// structured failures, and any failure escaping the call is routed to a
// single handler whose return value becomes the call's result.
package guard

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// Callable is the shape of work executed under the guard.
type Callable func(args ...interface{}) (interface{}, error)

// Handler consumes the single failure escaping a guarded call and
// decides the call's overall result.
type Handler func(f *Failure) interface{}

// Failure is a promoted runtime fault: severity, message, and the
// location that reported it.
type Failure struct {
	Severity Severity
	Message  string
	File     string
	Line     int
	Err      error
}

func (f *Failure) Error() string {
	if f.File != "" {
		return fmt.Sprintf("%s: %s (%s:%d)", f.Severity, f.Message, f.File, f.Line)
	}
	return fmt.Sprintf("%s: %s", f.Severity, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// policy is the active error-promotion mode. It is process-wide shared
// state: install and restore follow stack discipline so that re-entrant
// guarded calls nest correctly.
type policy struct {
	threshold Severity
}

var (
	policyMu sync.Mutex
	current  *policy
)

func install(p *policy) *policy {
	policyMu.Lock()
	defer policyMu.Unlock()
	prev := current
	current = p
	return prev
}

func restore(prev *policy) {
	policyMu.Lock()
	defer policyMu.Unlock()
	current = prev
}

func activePolicy() *policy {
	policyMu.Lock()
	defer policyMu.Unlock()
	return current
}

// Report raises a recoverable runtime fault. Under an active policy,
// severities at or above the policy threshold are promoted to a
// *Failure panic caught by Run; severities below it are suppressed and
// execution continues. Outside any guarded call the fault is only
// logged.
func Report(severity Severity, format string, args ...interface{}) {
	p := activePolicy()
	message := fmt.Sprintf(format, args...)

	if p == nil {
		logrus.WithField("severity", severity.String()).Warn(message)
		return
	}
	if severity < p.threshold {
		return
	}

	_, file, line, _ := runtime.Caller(1)
	panic(&Failure{Severity: severity, Message: message, File: file, Line: line})
}

// Guard executes callables under a temporary error-promotion policy and
// routes escaping failures to its handler.
type Guard struct {
	mu        sync.RWMutex
	threshold Severity
	handler   Handler
}

func New(threshold Severity) *Guard {
	return &Guard{threshold: threshold}
}

// SetHandler installs the failure handler; a nil handler means the
// default handler is used.
func (g *Guard) SetHandler(h Handler) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handler = h
}

// SetThreshold changes the reporting threshold used for subsequent
// guarded invocations.
func (g *Guard) SetThreshold(threshold Severity) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.threshold = threshold
}

// Run invokes fn under the guard. A normal completion returns fn's
// result untouched. Any escaping failure — a promoted fault, a foreign
// panic, or a non-nil returned error — is given to the handler exactly
// once, after the prior policy has been restored, and the handler's
// return value becomes the result of Run.
func (g *Guard) Run(fn Callable, args ...interface{}) interface{} {
	result, failure := g.invoke(fn, args...)
	if failure == nil {
		return result
	}

	g.mu.RLock()
	handler := g.handler
	g.mu.RUnlock()
	if handler == nil {
		handler = DefaultHandler
	}
	return handler(failure)
}

func (g *Guard) invoke(fn Callable, args ...interface{}) (result interface{}, failure *Failure) {
	g.mu.RLock()
	threshold := g.threshold
	g.mu.RUnlock()

	prev := install(&policy{threshold: threshold})
	defer restore(prev)
	defer func() {
		if r := recover(); r != nil {
			failure = asFailure(r)
		}
	}()

	result, err := fn(args...)
	if err != nil {
		return nil, &Failure{Severity: SeverityError, Message: err.Error(), Err: err}
	}
	return result, nil
}

func asFailure(recovered interface{}) *Failure {
	if f, ok := recovered.(*Failure); ok {
		return f
	}
	if err, ok := recovered.(error); ok {
		return &Failure{Severity: SeverityError, Message: err.Error(), Err: err}
	}
	return &Failure{Severity: SeverityError, Message: fmt.Sprint(recovered)}
}

// DefaultHandler is the fallback failure sink: it logs the failure and
// yields no result.
func DefaultHandler(f *Failure) interface{} {
	logrus.WithFields(logrus.Fields{
		"severity": f.Severity.String(),
		"file":     f.File,
		"line":     f.Line,
	}).Error(f.Message)
	return nil
}
