package store

import "github.com/buraks/classtrack/internal/pkg/apperrors"

// Roster is an unordered collection with O(1) append and O(1) removal by
// identity. Removal swaps the last element into the vacated slot, so element
// order is an artifact of the removal strategy and carries no meaning;
// callers may rely on membership only.
type Roster[K comparable, T any] struct {
	identity func(T) K
	items    []T
	position map[K]int
}

// NewRoster returns an empty roster whose elements are keyed by the given
// identity function.
func NewRoster[K comparable, T any](identity func(T) K) *Roster[K, T] {
	return &Roster[K, T]{
		identity: identity,
		position: make(map[K]int),
	}
}

// Append places item at the end of the roster and records its position.
// Appending never fails; an element with a duplicate identity would shadow
// the earlier position entry, so callers check membership first.
func (r *Roster[K, T]) Append(item T) {
	r.position[r.identity(item)] = len(r.items)
	r.items = append(r.items, item)
}

// Remove deletes the element with the given identity. Unless the element is
// already last, the current last element is swapped into the vacated slot and
// its recorded position updated before the roster shrinks by one.
func (r *Roster[K, T]) Remove(id K) error {
	i, ok := r.position[id]
	if !ok {
		return apperrors.ErrRosterEntryNotFound
	}

	last := len(r.items) - 1
	if i != last {
		moved := r.items[last]
		r.items[i] = moved
		r.position[r.identity(moved)] = i
	}

	var zero T
	r.items[last] = zero
	r.items = r.items[:last]
	delete(r.position, id)
	return nil
}

// Get returns the stored copy of the element with the given identity.
func (r *Roster[K, T]) Get(id K) (T, bool) {
	if i, ok := r.position[id]; ok {
		return r.items[i], true
	}
	var zero T
	return zero, false
}

// Contains reports whether an element with the given identity is present.
func (r *Roster[K, T]) Contains(id K) bool {
	_, ok := r.position[id]
	return ok
}

// Count returns the number of elements currently in the roster.
func (r *Roster[K, T]) Count() int {
	return len(r.items)
}

// Snapshot returns a copy of the roster's elements for iteration. Order is
// unspecified.
func (r *Roster[K, T]) Snapshot() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Clone returns a deep copy of the roster sharing only the identity function.
func (r *Roster[K, T]) Clone() *Roster[K, T] {
	next := &Roster[K, T]{
		identity: r.identity,
		items:    make([]T, len(r.items)),
		position: make(map[K]int, len(r.position)),
	}
	copy(next.items, r.items)
	for k, i := range r.position {
		next.position[k] = i
	}
	return next
}
