package access

import (
	"testing"

	"github.com/papilio-go/papilio/internal/testutils/assert"
	"github.com/papilio-go/papilio/internal/testutils/require"
)

func TestOptionalAccessorEngaged(t *testing.T) {
	acc := OptionalAccessor()
	o := Some(42)

	hv, err := acc.Attribute(o, "has_value")
	require.NoError(t, err)
	b, _ := hv.AsBool()
	assert.Equal(t, true, b)

	val, err := acc.Attribute(o, "value")
	require.NoError(t, err)
	n, _ := val.AsInt()
	assert.Equal(t, int64(42), n)
}

func TestOptionalAccessorDisengaged(t *testing.T) {
	acc := OptionalAccessor()
	o := NoneOf[int]()

	hv, err := acc.Attribute(o, "has_value")
	require.NoError(t, err)
	b, _ := hv.AsBool()
	assert.Equal(t, false, b)

	val, err := acc.Attribute(o, "value")
	require.NoError(t, err)
	assert.Equal(t, true, val.IsNone())
}

func TestUnionAccessor(t *testing.T) {
	acc := UnionAccessor()
	u := NewUnion(1, "a string", 7)

	idx, err := acc.Attribute(u, "index")
	require.NoError(t, err)
	n, _ := idx.AsInt()
	assert.Equal(t, int64(1), n)

	val, err := acc.IndexInt(u, 1)
	require.NoError(t, err)
	vi, _ := val.AsInt()
	assert.Equal(t, int64(7), vi)

	inactive, err := acc.IndexInt(u, 0)
	require.NoError(t, err)
	assert.Equal(t, true, inactive.IsNone())
}

func TestExpectedAccessorOk(t *testing.T) {
	acc := ExpectedAccessor()
	e := Ok[string]("fine")

	hv, err := acc.Attribute(e, "has_value")
	require.NoError(t, err)
	b, _ := hv.AsBool()
	assert.Equal(t, true, b)

	val, err := acc.Attribute(e, "value")
	require.NoError(t, err)
	s, _ := val.AsString()
	assert.Equal(t, "fine", s)

	errv, err := acc.Attribute(e, "error")
	require.NoError(t, err)
	assert.Equal(t, true, errv.IsNone())
}

func TestExpectedAccessorErr(t *testing.T) {
	acc := ExpectedAccessor()
	e := Err[string]("boom")

	hv, err := acc.Attribute(e, "has_value")
	require.NoError(t, err)
	b, _ := hv.AsBool()
	assert.Equal(t, false, b)

	errv, err := acc.Attribute(e, "error")
	require.NoError(t, err)
	s, _ := errv.AsString()
	assert.Equal(t, "boom", s)
}

func TestTypeIDAccessor(t *testing.T) {
	acc := TypeIDAccessor()
	got, err := acc.Attribute(TypeID{Name: "widget"}, "name")
	require.NoError(t, err)
	s, _ := got.AsString()
	assert.Equal(t, "widget", s)

	_, err = acc.Attribute(TypeID{Name: "widget"}, "other")
	require.Error(t, err)
}
