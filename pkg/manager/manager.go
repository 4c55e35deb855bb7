// Package manager provides the in-memory collection shared by every entity
// kind. A Manager keeps insertion order and does not enforce name uniqueness.
// It holds no lock; callers drive it from a single goroutine.
package manager

// Named is the constraint satisfied by records a Manager can hold.
type Named interface {
	Name() string
}

// Manager stores records of one kind in insertion order.
type Manager[T Named] struct {
	items []T
}

// New creates an empty manager.
func New[T Named]() *Manager[T] {
	return &Manager[T]{}
}

// Add appends item and returns it unchanged.
func (m *Manager[T]) Add(item T) T {
	m.items = append(m.items, item)
	return item
}

// Remove drops every record whose name equals name exactly and returns the
// first one that matched. The boolean is false when nothing matched.
func (m *Manager[T]) Remove(name string) (T, bool) {
	found, ok := m.Get(name)
	if !ok {
		return found, false
	}

	kept := m.items[:0:0]
	for _, item := range m.items {
		if item.Name() != name {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return found, true
}

// Get returns the first record whose name equals name exactly.
func (m *Manager[T]) Get(name string) (T, bool) {
	for _, item := range m.items {
		if item.Name() == name {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// List returns a copy of the stored records in insertion order.
func (m *Manager[T]) List() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Len reports the number of stored records.
func (m *Manager[T]) Len() int {
	return len(m.items)
}
