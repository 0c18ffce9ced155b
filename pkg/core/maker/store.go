package maker

import "github.com/matzehuels/caliper/pkg/core/constraint"

// Store is an ordered, identity-keyed set of constraints declared for one
// element. Adding the same pointer twice is a no-op; two constraints built
// separately are distinct members even when their fields match.
//
// The zero value is an empty store ready to use.
type Store struct {
	items []*constraint.Constraint
	index map[*constraint.Constraint]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[*constraint.Constraint]int)}
}

// Add inserts constraints not yet present and returns how many were added.
func (s *Store) Add(cs ...*constraint.Constraint) int {
	if s.index == nil {
		s.index = make(map[*constraint.Constraint]int)
	}
	added := 0
	for _, c := range cs {
		if c == nil {
			continue
		}
		if _, ok := s.index[c]; ok {
			continue
		}
		s.index[c] = len(s.items)
		s.items = append(s.items, c)
		added++
	}
	return added
}

// Remove deletes the given constraints and returns how many were present.
func (s *Store) Remove(cs ...*constraint.Constraint) int {
	removed := 0
	for _, c := range cs {
		if _, ok := s.index[c]; !ok {
			continue
		}
		delete(s.index, c)
		removed++
	}
	if removed == 0 {
		return 0
	}
	kept := s.items[:0]
	for _, c := range s.items {
		if _, ok := s.index[c]; ok {
			s.index[c] = len(kept)
			kept = append(kept, c)
		}
	}
	clear(s.items[len(kept):])
	s.items = kept
	return removed
}

// Contains reports whether c is a member.
func (s *Store) Contains(c *constraint.Constraint) bool {
	_, ok := s.index[c]
	return ok
}

// Len returns the number of members.
func (s *Store) Len() int {
	return len(s.items)
}

// All returns the members in insertion order. The slice is a copy.
func (s *Store) All() []*constraint.Constraint {
	out := make([]*constraint.Constraint, len(s.items))
	copy(out, s.items)
	return out
}

// Clear empties the store and returns the former members in insertion order.
func (s *Store) Clear() []*constraint.Constraint {
	out := s.items
	s.items = nil
	s.index = make(map[*constraint.Constraint]int)
	return out
}
