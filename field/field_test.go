package field

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_ZeroIsAbsent(t *testing.T) {
	var o Optional[int]

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.False(t, o.IsSome())
	assert.Equal(t, 42, o.OrElse(42))
	assert.Equal(t, "None", o.String())
	assert.Equal(t, None[int](), o)
}

func TestOptional_SetAndClear(t *testing.T) {
	var o Optional[string]

	o.Set("a")
	o.Set("b")

	v, ok := o.Get()
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, Some("b"), o)
	assert.Equal(t, "Some(b)", o.String())

	o.Clear()
	assert.False(t, o.IsSome())
	assert.Equal(t, None[string](), o)
}

func TestRepeated(t *testing.T) {
	var r Repeated[string]
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Values())

	r = append(r, "x", "y")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"x", "y"}, r.Values())
}

func TestMissingFieldError(t *testing.T) {
	err := Missing("Command", "ID")
	assert.Equal(t, "Command: missing required field ID", err.Error())
	assert.ErrorIs(t, err, ErrMissingField)

	wrapped := fmt.Errorf("building: %w", err)

	var missing *MissingFieldError
	require.ErrorAs(t, wrapped, &missing)
	assert.Equal(t, "Command", missing.Record)
	assert.Equal(t, "ID", missing.Field)

	joined := errors.Join(Missing("Command", "ID"), Missing("Command", "Name"))
	assert.ErrorIs(t, joined, ErrMissingField)

	assert.Equal(t, "missing required field ID", (&MissingFieldError{Field: "ID"}).Error())
}
