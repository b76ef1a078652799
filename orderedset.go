package scene

import "slices"

// orderedSet is an insertion-ordered set. Adding an element that is already
// present is a no-op, so it keeps its original position.
type orderedSet[T comparable] struct {
	items   []T
	members map[T]struct{}
}

func newOrderedSet[T comparable]() *orderedSet[T] {
	return &orderedSet[T]{members: make(map[T]struct{})}
}

// Add appends v unless it is already present. It reports whether v was added.
func (s *orderedSet[T]) Add(v T) bool {
	if _, ok := s.members[v]; ok {
		return false
	}
	s.members[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// PushFront moves v to the head of the set, adding it if needed.
func (s *orderedSet[T]) PushFront(v T) {
	if _, ok := s.members[v]; ok {
		i := slices.Index(s.items, v)
		s.items = slices.Delete(s.items, i, i+1)
	}
	s.members[v] = struct{}{}
	s.items = slices.Insert(s.items, 0, v)
}

// Remove deletes v and reports whether it was present.
func (s *orderedSet[T]) Remove(v T) bool {
	if s == nil {
		return false
	}
	if _, ok := s.members[v]; !ok {
		return false
	}
	delete(s.members, v)
	i := slices.Index(s.items, v)
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *orderedSet[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[v]
	return ok
}

func (s *orderedSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Front returns the oldest element.
func (s *orderedSet[T]) Front() (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}
	return s.items[0], true
}

// Items returns a snapshot of the set in insertion order.
func (s *orderedSet[T]) Items() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Clear removes every element.
func (s *orderedSet[T]) Clear() {
	s.items = nil
	clear(s.members)
}
