// SPDX-License-Identifier: MIT
// Package: lvsphere/pixelization
//
// registry.go — process-wide registry of named Schemes.
//
// Schemes register themselves from an init function, the same way
// database/sql drivers do, so that consumers resolve a scheme lazily by name
// and a missing implementation surfaces as a MissingDependencyError carrying
// an actionable hint instead of a link-time failure.

package pixelization

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrMissingDependency classifies every failure to resolve a Scheme.
	// Use errors.Is(err, ErrMissingDependency) to branch on it.
	ErrMissingDependency = errors.New("pixelization: missing dependency")

	// ErrNotRegistered is the underlying cause when no scheme was registered
	// under the requested name.
	ErrNotRegistered = errors.New("pixelization: scheme not registered")

	// ErrUnknownOrdering is returned by ParseOrdering for unknown names.
	ErrUnknownOrdering = errors.New("pixelization: unknown ordering")
)

// hints maps well-known scheme names to the import that provides them.
var hints = map[string]string{
	"healpix": `import _ "github.com/katalvlaran/lvsphere/healpix"`,
}

var (
	mu      sync.RWMutex
	schemes = make(map[string]Scheme)
)

// MissingDependencyError reports that a Scheme could not be resolved.
// It keeps the original failure in Err for diagnosis.
type MissingDependencyError struct {
	// Name is the scheme that was requested.
	Name string
	// Hint is a human-readable remediation (which package to import).
	Hint string
	// Err is the underlying failure.
	Err error
}

// Error names the scheme, the remediation and the original failure.
func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("pixelization: cannot load scheme %q. Choose another graph or add %s to your program. Original error: %v",
		e.Name, e.Hint, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *MissingDependencyError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMissingDependency) succeed.
func (e *MissingDependencyError) Is(target error) bool { return target == ErrMissingDependency }

// Register makes a Scheme available under name.
// Panics if s is nil or name is already registered; both are programmer errors.
func Register(name string, s Scheme) {
	if s == nil {
		panic("pixelization: Register scheme is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := schemes[name]; dup {
		panic("pixelization: Register called twice for scheme " + name)
	}
	schemes[name] = s
}

// Lookup returns the Scheme registered under name, or a *MissingDependencyError.
// Complexity: O(1).
func Lookup(name string) (Scheme, error) {
	mu.RLock()
	s, ok := schemes[name]
	mu.RUnlock()
	if ok {
		return s, nil
	}

	hint, known := hints[name]
	if !known {
		hint = "a package that calls pixelization.Register(" + fmt.Sprintf("%q", name) + ", ...)"
	}

	return nil, &MissingDependencyError{
		Name: name,
		Hint: hint,
		Err:  fmt.Errorf("%w: %q", ErrNotRegistered, name),
	}
}

// Schemes returns the sorted names of all registered schemes.
func Schemes() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(schemes))
	for name := range schemes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
