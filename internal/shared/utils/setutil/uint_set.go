// Package setutil provides generic set utilities for common ID collection patterns.
package setutil

import "sort"

// UintSet is a set of uint values.
// It uses map[uint]struct{} internally for memory efficiency.
type UintSet struct {
	items map[uint]struct{}
}

// NewUintSet creates a new empty UintSet.
func NewUintSet() *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}),
	}
}

// NewUintSetOf creates a UintSet containing the given ids.
func NewUintSetOf(ids ...uint) *UintSet {
	s := &UintSet{
		items: make(map[uint]struct{}, len(ids)),
	}
	s.AddAll(ids)
	return s
}

// Add adds an id to the set.
func (s *UintSet) Add(id uint) {
	s.items[id] = struct{}{}
}

// AddAll adds all ids to the set.
func (s *UintSet) AddAll(ids []uint) {
	for _, id := range ids {
		s.items[id] = struct{}{}
	}
}

// Has returns true if the id exists in the set.
func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// ContainsAll returns true if every id exists in the set.
// An empty argument slice yields true.
func (s *UintSet) ContainsAll(ids []uint) bool {
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// ContainsAny returns true if at least one id exists in the set.
func (s *UintSet) ContainsAny(ids []uint) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// ToSlice returns all ids as a slice.
// The order is not guaranteed.
func (s *UintSet) ToSlice() []uint {
	result := make([]uint, 0, len(s.items))
	for id := range s.items {
		result = append(result, id)
	}
	return result
}

// ToSortedSlice returns all ids as a slice in ascending order.
func (s *UintSet) ToSortedSlice() []uint {
	result := s.ToSlice()
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Len returns the number of elements in the set.
func (s *UintSet) Len() int {
	return len(s.items)
}

// IsEmpty returns true if the set has no elements.
func (s *UintSet) IsEmpty() bool {
	return len(s.items) == 0
}

// Equal returns true if both sets contain exactly the same ids.
func (s *UintSet) Equal(other *UintSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.items {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
