package requirement

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value carries.
type Kind int

// Supported value kinds.
const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
)

// String returns the kind name used in error messages and manifests.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Value is a tagged union holding exactly one scalar.
// The zero Value is invalid and represents "no value held".
type Value struct {
	kind Kind
	str  string
	b    bool
	i    int64
	f    float64
}

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool constructs a bool Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int constructs an int Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// FromAny converts a dynamically typed scalar into a Value.
// Integer widths normalize to int64 and float32 to float64; anything else
// (nil, slices, maps, structs) fails with ErrInvalidArgument.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case Value:
		if !x.IsValid() {
			return Value{}, fmt.Errorf("zero value: %w", ErrInvalidArgument)
		}
		return x, nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T: %w", v, ErrInvalidArgument)
	}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the Value holds a variant.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsString returns the string payload, or ErrTypeMismatch for other kinds.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("have %s, want string: %w", v.kind, ErrTypeMismatch)
	}
	return v.str, nil
}

// AsBool returns the bool payload, or ErrTypeMismatch for other kinds.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("have %s, want bool: %w", v.kind, ErrTypeMismatch)
	}
	return v.b, nil
}

// AsInt returns the int payload, or ErrTypeMismatch for other kinds.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("have %s, want int: %w", v.kind, ErrTypeMismatch)
	}
	return v.i, nil
}

// AsFloat returns the float payload, or ErrTypeMismatch for other kinds.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("have %s, want float: %w", v.kind, ErrTypeMismatch)
	}
	return v.f, nil
}

// Equal reports whether both values carry the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	default:
		return true
	}
}

// Interface returns the payload as a dynamically typed value.
// Returns nil for the zero Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return nil
	}
}

// String returns a display form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return "<unset>"
	}
}
