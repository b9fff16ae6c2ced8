package requirement

import "fmt"

// Set is an insertion-ordered, keyed collection of Requirement entries.
//
// The usual lifecycle is declare (Add), hand off for fulfilment (Fulfil),
// then read back (Value, AllFulfilled) — but the set stays open: Add and
// Remove are legal at any point. A Set is not safe for concurrent use;
// callers needing that must serialize access externally.
type Set struct {
	entries map[string]*Requirement
	order   []string
}

// NewSet returns an empty collection.
func NewSet() *Set {
	return &Set{entries: make(map[string]*Requirement)}
}

// Add creates a new Requirement and inserts it under its key.
// Fails with ErrDuplicateKey if the key is already present, leaving the
// collection unchanged, and propagates construction errors from New.
func (s *Set) Add(key string, opts ...Option) (*Requirement, error) {
	if _, ok := s.entries[key]; ok {
		return nil, fmt.Errorf("requirement %q: %w", key, ErrDuplicateKey)
	}
	r, err := New(key, opts...)
	if err != nil {
		return nil, err
	}
	s.entries[key] = r
	s.order = append(s.order, key)
	return r, nil
}

// Get returns the entry for key, or ErrUnknownKey.
func (s *Set) Get(key string) (*Requirement, error) {
	r, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("requirement %q: %w", key, ErrUnknownKey)
	}
	return r, nil
}

// Fulfil sets the value of the entry for key.
// Fails with ErrUnknownKey if absent; otherwise delegates to the entry,
// propagating ErrTypeMismatch and ErrDomainViolation unchanged.
func (s *Set) Fulfil(key string, v Value) error {
	r, err := s.Get(key)
	if err != nil {
		return err
	}
	return r.Fulfil(v)
}

// Value returns the fulfilled value for key.
func (s *Set) Value(key string) (Value, error) {
	r, err := s.Get(key)
	if err != nil {
		return Value{}, err
	}
	return r.Value()
}

// StringValue returns the fulfilled value for key as a string.
func (s *Set) StringValue(key string) (string, error) {
	r, err := s.Get(key)
	if err != nil {
		return "", err
	}
	return r.StringValue()
}

// BoolValue returns the fulfilled value for key as a bool.
func (s *Set) BoolValue(key string) (bool, error) {
	r, err := s.Get(key)
	if err != nil {
		return false, err
	}
	return r.BoolValue()
}

// IntValue returns the fulfilled value for key as an int64.
func (s *Set) IntValue(key string) (int64, error) {
	r, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	return r.IntValue()
}

// FloatValue returns the fulfilled value for key as a float64.
func (s *Set) FloatValue(key string) (float64, error) {
	r, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	return r.FloatValue()
}

// IsFulfilled reports whether the entry for key holds a value.
// Fails with ErrUnknownKey if absent.
func (s *Set) IsFulfilled(key string) (bool, error) {
	r, err := s.Get(key)
	if err != nil {
		return false, err
	}
	return r.IsFulfilled(), nil
}

// AllFulfilled reports whether every entry holds a value.
// Vacuously true for an empty collection.
func (s *Set) AllFulfilled() bool {
	for _, key := range s.order {
		if !s.entries[key].IsFulfilled() {
			return false
		}
	}
	return true
}

// Unfulfilled returns the keys of entries that hold no value, in insertion order.
func (s *Set) Unfulfilled() []string {
	var missing []string
	for _, key := range s.order {
		if !s.entries[key].IsFulfilled() {
			missing = append(missing, key)
		}
	}
	return missing
}

// Remove deletes the entry for key, fulfilled or not.
// Fails with ErrUnknownKey if absent.
func (s *Set) Remove(key string) error {
	if _, ok := s.entries[key]; !ok {
		return fmt.Errorf("requirement %q: %w", key, ErrUnknownKey)
	}
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Keys returns a snapshot of all declared keys in insertion order.
// Later mutation of the set does not alter an already-returned slice.
func (s *Set) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of entries.
func (s *Set) Len() int { return len(s.entries) }
