package requirement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New("input_file", WithSubtype("filename"))
	require.NoError(t, err)

	assert.Equal(t, "input_file", r.Key())
	assert.Equal(t, "filename", r.Subtype())
	assert.Nil(t, r.Domain())
	assert.Equal(t, KindInvalid, r.Type())
	assert.False(t, r.IsFulfilled())
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		opts []Option
	}{
		{"empty key", "", nil},
		{"empty domain", "x", []Option{WithDomain()}},
		{"mixed kind domain", "x", []Option{WithDomain(Bool(true), Int(1))}},
		{"zero value in domain", "x", []Option{WithDomain(Value{})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.key, tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNew_DomainDeduplicates(t *testing.T) {
	r, err := New("mode", WithDomain(String("fast"), String("slow"), String("fast")))
	require.NoError(t, err)

	assert.Equal(t, []Value{String("fast"), String("slow")}, r.Domain())
	assert.Equal(t, KindString, r.Type())
}

func TestFulfil_Unconstrained(t *testing.T) {
	r, err := New("anything")
	require.NoError(t, err)

	require.NoError(t, r.Fulfil(String("first")))
	assert.True(t, r.IsFulfilled())

	// No domain means no inferred type: re-fulfilling with another kind is fine.
	require.NoError(t, r.Fulfil(Int(2)))
	got, err := r.IntValue()
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestFulfil_Domain(t *testing.T) {
	r, err := New("verbose", WithDomain(Bool(true), Bool(false)))
	require.NoError(t, err)
	assert.Equal(t, KindBool, r.Type())

	require.NoError(t, r.Fulfil(Bool(false)))
	got, err := r.BoolValue()
	require.NoError(t, err)
	assert.False(t, got)
}

func TestFulfil_TypeBeforeDomain(t *testing.T) {
	// The kind check runs before the membership check: a wrong-kind value on
	// a domain-constrained slot is always a type mismatch, never a domain
	// violation, even when it is also absent from the domain.
	r, err := New("verbose", WithDomain(Bool(true), Bool(false)))
	require.NoError(t, err)

	err = r.Fulfil(Int(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.NotErrorIs(t, err, ErrDomainViolation)
	assert.False(t, r.IsFulfilled())

	err = r.Fulfil(Int(2))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestFulfil_DomainViolation(t *testing.T) {
	r, err := New("mode", WithDomain(String("fast"), String("slow")))
	require.NoError(t, err)

	err = r.Fulfil(String("medium"))
	assert.ErrorIs(t, err, ErrDomainViolation)
	assert.False(t, r.IsFulfilled())
}

func TestFulfil_FailureKeepsPreviousValue(t *testing.T) {
	r, err := New("mode", WithDomain(String("fast"), String("slow")))
	require.NoError(t, err)

	require.NoError(t, r.Fulfil(String("fast")))
	assert.ErrorIs(t, r.Fulfil(String("medium")), ErrDomainViolation)
	assert.ErrorIs(t, r.Fulfil(Int(9)), ErrTypeMismatch)

	got, err := r.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "fast", got)
}

func TestFulfil_LastWriteWins(t *testing.T) {
	r, err := New("output_file")
	require.NoError(t, err)

	require.NoError(t, r.Fulfil(String("a.out")))
	require.NoError(t, r.Fulfil(String("b.out")))

	got, err := r.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "b.out", got)
}

func TestFulfil_ZeroValue(t *testing.T) {
	r, err := New("x")
	require.NoError(t, err)

	assert.ErrorIs(t, r.Fulfil(Value{}), ErrInvalidArgument)
	assert.False(t, r.IsFulfilled())
}

func TestValue_NotFulfilled(t *testing.T) {
	r, err := New("x")
	require.NoError(t, err)

	_, err = r.Value()
	assert.ErrorIs(t, err, ErrNotFulfilled)
	_, err = r.StringValue()
	assert.ErrorIs(t, err, ErrNotFulfilled)
}

func TestTypedValue_Mismatch(t *testing.T) {
	r, err := New("count")
	require.NoError(t, err)
	require.NoError(t, r.Fulfil(Int(3)))

	_, err = r.StringValue()
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = r.FloatValue()
	assert.ErrorIs(t, err, ErrTypeMismatch)

	got, err := r.IntValue()
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestClear(t *testing.T) {
	r, err := New("verbose", WithDomain(Bool(true), Bool(false)), WithSubtype("flag"))
	require.NoError(t, err)
	require.NoError(t, r.Fulfil(Bool(true)))

	r.Clear()

	assert.False(t, r.IsFulfilled())
	_, err = r.Value()
	assert.ErrorIs(t, err, ErrNotFulfilled)

	// Key, domain and subtype survive a clear.
	assert.Equal(t, "verbose", r.Key())
	assert.Equal(t, "flag", r.Subtype())
	assert.Len(t, r.Domain(), 2)
	require.NoError(t, r.Fulfil(Bool(false)))
}

func TestDomain_ReturnsCopy(t *testing.T) {
	r, err := New("mode", WithDomain(String("fast"), String("slow")))
	require.NoError(t, err)

	d := r.Domain()
	d[0] = String("hacked")

	assert.Equal(t, []Value{String("fast"), String("slow")}, r.Domain())
}
