package access

import (
	"testing"

	"github.com/papilio-go/papilio/internal/testutils/assert"
	"github.com/papilio-go/papilio/internal/testutils/require"
)

func TestTupleFirstSecond(t *testing.T) {
	data := [2]int{3, 9}
	acc := Tuple()

	first, err := acc.Attribute(data, "first")
	require.NoError(t, err)
	f, _ := first.AsInt()
	assert.Equal(t, int64(3), f)

	second, err := acc.Attribute(data, "second")
	require.NoError(t, err)
	s, _ := second.AsInt()
	assert.Equal(t, int64(9), s)
}

func TestTupleIndexingSharesSequence(t *testing.T) {
	data := [2]string{"a", "b"}
	acc := Tuple()

	v, err := acc.IndexInt(data, 1)
	require.NoError(t, err)
	s, _ := v.AsString()
	assert.Equal(t, "b", s)
}

func TestTupleUnknownAttribute(t *testing.T) {
	data := [2]int{1, 2}
	acc := Tuple()

	_, err := acc.Attribute(data, "third")
	require.Error(t, err)
}

// TestLengthTwoSliceRoutesToSequenceNotTuple is a regression test for
// DispatchGeneric: a dynamically-sized slice that happens to hold two
// elements is an ordinary contiguous sequence, not a tuple/pair, and
// must keep its "length"/"size"/"joined" attributes rather than gaining
// "first"/"second". Only a fixed-size array is tuple-like.
func TestLengthTwoSliceRoutesToSequenceNotTuple(t *testing.T) {
	acc := DispatchGeneric([]string{"a", "b"})
	require.Equal(t, true, acc != nil)

	v, err := acc.Attribute([]string{"a", "b"}, "length")
	require.NoError(t, err)
	n, _ := v.AsInt()
	assert.Equal(t, int64(2), n)

	_, err = acc.Attribute([]string{"a", "b"}, "first")
	require.Error(t, err)
}
