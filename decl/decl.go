// Package decl loads requirement-set declarations from YAML manifests.
//
// A manifest describes the shape of a set — keys, subtypes, domains — not
// its fulfilled values; fulfilment stays a runtime concern of the caller.
package decl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/reqset/requirement"
)

// Manifest is the YAML representation of a requirement-set declaration.
type Manifest struct {
	Requirements []Entry `yaml:"requirements"`
}

// Entry declares a single requirement.
type Entry struct {
	// Key is the unique identifier for the slot.
	Key string `yaml:"key"`
	// Subtype is an optional semantic tag (e.g. "filename", "email").
	Subtype string `yaml:"subtype,omitempty"`
	// Domain optionally restricts the slot to an enumerated list of scalars.
	// All members must share one scalar type.
	Domain []any `yaml:"domain,omitempty"`
}

// Validate checks that the manifest is well formed before building a set.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Requirements))
	for i, e := range m.Requirements {
		if e.Key == "" {
			return fmt.Errorf("requirements[%d]: key is required", i)
		}
		if seen[e.Key] {
			return fmt.Errorf("requirements[%d]: %q: %w", i, e.Key, requirement.ErrDuplicateKey)
		}
		seen[e.Key] = true
	}
	return nil
}

// Build constructs an unfulfilled requirement set from the manifest.
func (m *Manifest) Build() (*requirement.Set, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	set := requirement.NewSet()
	for _, e := range m.Requirements {
		opts := make([]requirement.Option, 0, 2)
		if e.Subtype != "" {
			opts = append(opts, requirement.WithSubtype(e.Subtype))
		}
		if e.Domain != nil {
			members := make([]requirement.Value, 0, len(e.Domain))
			for _, raw := range e.Domain {
				v, err := requirement.FromAny(raw)
				if err != nil {
					return nil, fmt.Errorf("requirement %q: domain: %w", e.Key, err)
				}
				members = append(members, v)
			}
			opts = append(opts, requirement.WithDomain(members...))
		}
		if _, err := set.Add(e.Key, opts...); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Parse decodes a YAML manifest and builds its requirement set.
func Parse(data []byte) (*requirement.Set, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m.Build()
}

// LoadFile reads and parses a manifest from disk.
func LoadFile(path string) (*requirement.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// FromSet converts a set back into its manifest form, keys in declaration
// order. Fulfilled values are not carried over; only the shape round-trips.
func FromSet(s *requirement.Set) (*Manifest, error) {
	m := &Manifest{Requirements: make([]Entry, 0, s.Len())}
	for _, key := range s.Keys() {
		r, err := s.Get(key)
		if err != nil {
			return nil, err
		}
		e := Entry{Key: key, Subtype: r.Subtype()}
		for _, v := range r.Domain() {
			e.Domain = append(e.Domain, v.Interface())
		}
		m.Requirements = append(m.Requirements, e)
	}
	return m, nil
}

// Marshal renders a set's declaration as YAML.
func Marshal(s *requirement.Set) ([]byte, error) {
	m, err := FromSet(s)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return out, nil
}
