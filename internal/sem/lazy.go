package sem

import "fmt"

type lazyState uint8

const (
	lazyUnset lazyState = iota
	lazyComputing
	lazyDone
)

// Lazy is a compute-once cell for derived symbol properties. The first Get
// runs compute and caches the result, success or failure alike, so the cell
// is idempotent; every later Get returns the cached value without emitting
// diagnostics again.
//
// Reentrant forcing (compute transitively forcing the same cell) is an
// internal error, not a user diagnostic: the cell panics instead of
// recomputing or returning a half-built value.
type Lazy[T any] struct {
	state lazyState
	value T
}

// Get returns the cached value, computing it on first access. The owner is
// only used to name the offending symbol if a reentrancy bug is detected.
func (l *Lazy[T]) Get(owner Symbol, compute func() T) T {
	switch l.state {
	case lazyDone:
		return l.value
	case lazyComputing:
		panic(fmt.Sprintf("sem: reentrant forcing of lazy property on %q", ownerName(owner)))
	}
	l.state = lazyComputing
	l.value = compute()
	l.state = lazyDone
	return l.value
}

// Done reports whether the value has been computed.
func (l *Lazy[T]) Done() bool { return l.state == lazyDone }

func ownerName(owner Symbol) string {
	if owner == nil {
		return "<nil>"
	}
	if name := owner.Name(); name != "" {
		return name
	}
	return owner.Kind().String()
}
