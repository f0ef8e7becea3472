package access

import (
	"testing"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/testutils/assert"
	"github.com/papilio-go/papilio/internal/testutils/require"
)

func TestSequenceIndexInt(t *testing.T) {
	data := []int{10, 20, 30}
	acc := Sequence()

	v, err := acc.IndexInt(data, 1)
	require.NoError(t, err)
	i, ok := v.AsInt()
	require.Equal(t, true, ok)
	assert.Equal(t, int64(20), i)

	v, err = acc.IndexInt(data, -1)
	require.NoError(t, err)
	i, ok = v.AsInt()
	require.Equal(t, true, ok)
	assert.Equal(t, int64(30), i)

	v, err = acc.IndexInt(data, 5)
	require.NoError(t, err)
	assert.Equal(t, true, v.IsNone())
}

func TestSequenceIndexSlice(t *testing.T) {
	data := []int{10, 20, 30, 40}
	acc := Sequence()

	v, err := acc.IndexSlice(data, 1, 3)
	require.NoError(t, err)
	h, ok := v.AsHandle()
	require.Equal(t, true, ok)
	sub, ok := h.Data.([]int)
	require.Equal(t, true, ok)
	assert.Equal(t, []int{20, 30}, sub)
}

func TestBitSequence(t *testing.T) {
	data := []bool{true, false, true}
	acc := BitSequence()

	v, err := acc.IndexInt(data, 1)
	require.NoError(t, err)
	b, ok := v.AsBool()
	require.Equal(t, true, ok)
	assert.Equal(t, false, b)

	v, err = acc.IndexInt(data, -1)
	require.NoError(t, err)
	b, ok = v.AsBool()
	require.Equal(t, true, ok)
	assert.Equal(t, true, b)
}

func TestDispatchGenericChoosesByShape(t *testing.T) {
	assert.Equal(t, true, DispatchGeneric([]bool{true}) != nil)
	assert.Equal(t, true, DispatchGeneric([]int{1, 2}) != nil)
	assert.Equal(t, true, DispatchGeneric(map[string]int{"a": 1}) != nil)
	assert.Equal(t, true, DispatchGeneric(42) == nil)
}

func TestSequenceJoinedAttribute(t *testing.T) {
	data := []int{1, 2, 3}
	acc := Sequence()

	v, err := acc.Attribute(data, "joined")
	require.NoError(t, err)
	s, ok := v.AsString()
	require.Equal(t, true, ok)
	assert.Equal(t, "1, 2, 3", s)
}

func TestSequenceLengthAttribute(t *testing.T) {
	data := []int{1, 2, 3, 4}
	acc := Sequence()

	v, err := acc.Attribute(data, "length")
	require.NoError(t, err)
	n, _ := v.AsInt()
	assert.Equal(t, int64(4), n)
}

func TestValueIndexThroughHandle(t *testing.T) {
	v := core.FromAny([]int{1, 2, 3})
	sub, err := v.Index(core.IndexInt(2))
	require.NoError(t, err)
	i, ok := sub.AsInt()
	require.Equal(t, true, ok)
	assert.Equal(t, int64(3), i)
}
