// Package pgerr defines the error taxonomy shared by every core package.
//
// The hierarchy mirrors pgdelta's exception hierarchy (PgDeltaError ->
// DependencyResolutionError -> CyclicDependencyError) as Go sentinel-wrapped
// error values instead of an inheritance chain.
package pgerr

import (
	"errors"
	"fmt"
	"strings"
)

// Base is the sentinel every error in this package wraps, so callers can
// test errors.Is(err, pgerr.Base) to catch anything the core returns.
var Base = errors.New("pgdelta")

// InvariantError reports a violated catalog invariant (dangling reference,
// duplicate stable_id). The core refuses to operate on such a catalog.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("pgdelta: catalog invariant violated: %s", e.Reason)
}

func (e *InvariantError) Unwrap() error { return Base }

// DependencyResolutionError is the base for failures during ordering.
type DependencyResolutionError struct {
	Reason string
}

func (e *DependencyResolutionError) Error() string {
	return fmt.Sprintf("pgdelta: dependency resolution failed: %s", e.Reason)
}

func (e *DependencyResolutionError) Unwrap() error { return Base }

// Cycle is one simple cycle in the constraint graph, reported by stable_id
// and operation kind for debugging.
type Cycle struct {
	// Steps is the ordered list of "kind stable_id (operation)" descriptions
	// that form the cycle, e.g. ["view v:public.a (replace)",
	// "view v:public.b (replace)"].
	Steps []string
}

func (c Cycle) String() string {
	return strings.Join(c.Steps, " -> ") + " -> " + c.Steps[0]
}

// CyclicDependencyError is raised when the constraint solver cannot produce
// a topological order. It carries every simple cycle it found.
type CyclicDependencyError struct {
	Cycles []Cycle
}

func (e *CyclicDependencyError) Error() string {
	var b strings.Builder
	b.WriteString("pgdelta: cyclic dependency detected in change constraints:\n")
	for _, c := range e.Cycles {
		b.WriteString("  ")
		b.WriteString(c.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *CyclicDependencyError) Unwrap() error {
	return &DependencyResolutionError{Reason: "cycle"}
}

// UnsupportedChangeError indicates a change variant reached the emitter
// dispatch without a case. This is a programming error: the emitter panics
// with this error rather than returning it, per the "fail loudly" policy.
type UnsupportedChangeError struct {
	TypeName string
}

func (e *UnsupportedChangeError) Error() string {
	return fmt.Sprintf("pgdelta: emitter has no case for change variant %s", e.TypeName)
}

func (e *UnsupportedChangeError) Unwrap() error { return Base }
