package requirement

import "errors"

// Sentinel errors for requirement operations.
// All failures returned by this package wrap one of these; match with errors.Is.
var (
	// ErrInvalidArgument is returned for bad construction input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateKey is returned when adding a key that already exists in a set.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnknownKey is returned when an operation references a key not in the set.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDomainViolation is returned when a fulfilling value is outside the slot's domain.
	ErrDomainViolation = errors.New("value outside domain")
	// ErrTypeMismatch is returned when a value's kind does not match the expected kind.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNotFulfilled is returned when reading a value from an unfulfilled slot.
	ErrNotFulfilled = errors.New("requirement not fulfilled")
)
