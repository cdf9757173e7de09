package setutil

// StringSet is a set of string values.
type StringSet struct {
	items map[string]struct{}
}

// NewStringSet creates a new empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{
		items: make(map[string]struct{}),
	}
}

// Add adds a value to the set.
func (s *StringSet) Add(v string) {
	s.items[v] = struct{}{}
}

// AddAll adds all values to the set.
func (s *StringSet) AddAll(values []string) {
	for _, v := range values {
		s.items[v] = struct{}{}
	}
}

// Has returns true if the value exists in the set.
func (s *StringSet) Has(v string) bool {
	_, ok := s.items[v]
	return ok
}

// ToSlice returns all values as a slice.
// The order is not guaranteed.
func (s *StringSet) ToSlice() []string {
	result := make([]string, 0, len(s.items))
	for v := range s.items {
		result = append(result, v)
	}
	return result
}

// Len returns the number of elements in the set.
func (s *StringSet) Len() int {
	return len(s.items)
}

// IsEmpty returns true if the set has no elements.
func (s *StringSet) IsEmpty() bool {
	return len(s.items) == 0
}
