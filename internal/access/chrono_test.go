package access

import (
	"testing"

	"github.com/papilio-go/papilio/internal/testutils/assert"
	"github.com/papilio-go/papilio/internal/testutils/require"
)

func TestChronoAccessorFields(t *testing.T) {
	acc := ChronoAccessor()
	when := BrokenDownTime{Year: 2026, Month: 7, Day: 31, Hour: 9, Minute: 5, Second: 0, Weekday: 5}

	cases := []struct {
		field string
		want  int64
	}{
		{"year", 2026},
		{"month", 7},
		{"day", 31},
		{"hour", 9},
		{"minute", 5},
		{"second", 0},
		{"weekday", 5},
	}
	for _, tc := range cases {
		v, err := acc.Attribute(when, tc.field)
		require.NoError(t, err)
		n, _ := v.AsInt()
		assert.Equal(t, tc.want, n)
	}
}

func TestChronoAccessorUnknownField(t *testing.T) {
	acc := ChronoAccessor()
	_, err := acc.Attribute(BrokenDownTime{}, "nanosecond")
	require.Error(t, err)
}

func TestDispatchGenericVocabularyTypes(t *testing.T) {
	if DispatchGeneric(BrokenDownTime{}) == nil {
		t.Error("DispatchGeneric should route BrokenDownTime to the chrono accessor")
	}
	if DispatchGeneric(NewUnion(0, 1)) == nil {
		t.Error("DispatchGeneric should route Union to the union accessor")
	}
	if DispatchGeneric([2]int{1, 2}) == nil {
		t.Error("DispatchGeneric should route a length-2 array to the tuple accessor")
	}
}
