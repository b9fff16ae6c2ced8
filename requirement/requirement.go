package requirement

import "fmt"

// Requirement is a single named parameter slot. It may restrict fulfilling
// values to a finite domain and may carry an informational subtype tag.
// A requirement holds at most one value; the key never changes after creation.
type Requirement struct {
	key     string
	subtype string
	domain  []Value
	value   Value
}

// Option configures a Requirement at construction time.
type Option func(*Requirement)

// WithDomain restricts the slot to the given members. The members must all
// carry the same kind; that kind becomes the slot's expected type.
// Duplicate members collapse to the first occurrence.
func WithDomain(members ...Value) Option {
	return func(r *Requirement) {
		r.domain = make([]Value, 0, len(members))
		for _, m := range members {
			if !containsValue(r.domain, m) {
				r.domain = append(r.domain, m)
			}
		}
	}
}

// WithSubtype attaches a semantic tag (e.g. "filename", "email").
// The tag is informational; the slot does not enforce it.
func WithSubtype(tag string) Option {
	return func(r *Requirement) { r.subtype = tag }
}

// New constructs an unfulfilled Requirement.
// Fails with ErrInvalidArgument if the key is empty, a domain is declared
// with no members, a domain member is the zero Value, or the domain mixes kinds.
func New(key string, opts ...Option) (*Requirement, error) {
	if key == "" {
		return nil, fmt.Errorf("empty key: %w", ErrInvalidArgument)
	}
	r := &Requirement{key: key}
	for _, opt := range opts {
		opt(r)
	}
	if r.domain != nil {
		if len(r.domain) == 0 {
			return nil, fmt.Errorf("requirement %q: empty domain: %w", key, ErrInvalidArgument)
		}
		want := r.domain[0].Kind()
		for _, m := range r.domain {
			if !m.IsValid() {
				return nil, fmt.Errorf("requirement %q: zero value in domain: %w", key, ErrInvalidArgument)
			}
			if m.Kind() != want {
				return nil, fmt.Errorf("requirement %q: domain mixes %s and %s: %w",
					key, want, m.Kind(), ErrInvalidArgument)
			}
		}
	}
	return r, nil
}

// Key returns the slot's immutable identifier.
func (r *Requirement) Key() string { return r.key }

// Subtype returns the informational tag, or "" if none was declared.
func (r *Requirement) Subtype() string { return r.subtype }

// Domain returns a copy of the permitted members, or nil when unconstrained.
func (r *Requirement) Domain() []Value {
	if r.domain == nil {
		return nil
	}
	out := make([]Value, len(r.domain))
	copy(out, r.domain)
	return out
}

// Type returns the slot's expected kind, inferred from the domain's element
// kind at construction. Returns KindInvalid when the slot is unconstrained.
func (r *Requirement) Type() Kind {
	if len(r.domain) == 0 {
		return KindInvalid
	}
	return r.domain[0].Kind()
}

// Fulfil sets the slot's value, overwriting any previous one.
// The kind is checked before domain membership: a value of the wrong kind
// for a domain-constrained slot fails with ErrTypeMismatch, and a value of
// the right kind outside the domain fails with ErrDomainViolation.
// On failure the previously held value, if any, is left intact.
func (r *Requirement) Fulfil(v Value) error {
	if !v.IsValid() {
		return fmt.Errorf("requirement %q: zero value: %w", r.key, ErrInvalidArgument)
	}
	if want := r.Type(); want != KindInvalid && v.Kind() != want {
		return fmt.Errorf("requirement %q: have %s, want %s: %w", r.key, v.Kind(), want, ErrTypeMismatch)
	}
	if r.domain != nil && !containsValue(r.domain, v) {
		return fmt.Errorf("requirement %q: %s: %w", r.key, v, ErrDomainViolation)
	}
	r.value = v
	return nil
}

// IsFulfilled reports whether the slot currently holds a value.
func (r *Requirement) IsFulfilled() bool { return r.value.IsValid() }

// Value returns the held value, or ErrNotFulfilled if the slot is empty.
func (r *Requirement) Value() (Value, error) {
	if !r.value.IsValid() {
		return Value{}, fmt.Errorf("requirement %q: %w", r.key, ErrNotFulfilled)
	}
	return r.value, nil
}

// StringValue returns the held value as a string.
// Fails with ErrNotFulfilled if empty, ErrTypeMismatch if another kind is held.
func (r *Requirement) StringValue() (string, error) {
	v, err := r.Value()
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// BoolValue returns the held value as a bool.
func (r *Requirement) BoolValue() (bool, error) {
	v, err := r.Value()
	if err != nil {
		return false, err
	}
	return v.AsBool()
}

// IntValue returns the held value as an int64.
func (r *Requirement) IntValue() (int64, error) {
	v, err := r.Value()
	if err != nil {
		return 0, err
	}
	return v.AsInt()
}

// FloatValue returns the held value as a float64.
func (r *Requirement) FloatValue() (float64, error) {
	v, err := r.Value()
	if err != nil {
		return 0, err
	}
	return v.AsFloat()
}

// Clear resets the slot to unfulfilled. Key, domain and subtype are unchanged.
func (r *Requirement) Clear() { r.value = Value{} }

func containsValue(vs []Value, v Value) bool {
	for _, m := range vs {
		if m.Equal(v) {
			return true
		}
	}
	return false
}
