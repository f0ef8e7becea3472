package papilio

import (
	"bytes"
	"testing"

	"golang.org/x/text/language"

	"github.com/papilio-go/papilio/internal/testutils/require"
)

func TestFormatScenarios(t *testing.T) {
	cases := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"literal", "{}", []any{42}, "42"},
		{"zero-fill-sign", "{:+06d}", []any{42}, "+00042"},
		{"alt-hex", "{:#06x}", []any{10}, "0x000a"},
		{"center-precision", "{:^8.5}", []any{"hello!"}, " hello  "},
		{"attribute", "{.length:*>4}", []any{"hello"}, "***5"},
		{"float", "{:10.5f}", []any{float32(3.14)}, "   3.14000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Format(tc.format, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatNamedArgument(t *testing.T) {
	got, err := Format("hello {name}", Named("name", "world"))
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
}

func TestFormatToWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	n, err := FormatTo(&buf, "{} + {} = {}", 2, 2, 4)
	require.NoError(t, err)
	require.Equal(t, "2 + 2 = 4", buf.String())
	require.Equal(t, len("2 + 2 = 4"), n)
}

func TestFormatToNDropsPastLimit(t *testing.T) {
	var buf bytes.Buffer
	written, counted, err := FormatToN(&buf, 3, "{}", "hello world")
	require.NoError(t, err)
	require.Equal(t, "hel", buf.String())
	require.Equal(t, 3, written)
	require.Equal(t, len("hello world"), counted)
}

func TestFormattedSizeMatchesFormat(t *testing.T) {
	format := "{0} warning{${0}>1:'s'}"
	for _, n := range []int{1, 2, 5} {
		out, err := Format(format, n)
		require.NoError(t, err)
		size, err := FormattedSize(format, n)
		require.NoError(t, err)
		require.Equal(t, len(out), size)
	}
}

func TestLocaleIndependence(t *testing.T) {
	a, err := Format("{:.2f}", 3.14159, WithLocale(language.English))
	require.NoError(t, err)
	b, err := Format("{:.2f}", 3.14159, WithLocale(language.German))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestFprintlnAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	_, err := Fprintln(&buf, "{}", "done")
	require.NoError(t, err)
	require.Equal(t, "done\n", buf.String())
}

func TestInvalidFormatPropagatesError(t *testing.T) {
	_, err := Format("{:z}", 1)
	require.Error(t, err)
}

// TestGenericAccessorWiredThroughSurface exercises core.GenericAccessor
// end-to-end through a real Format call: a []int argument has no
// NewFormatter/Access of its own, so
// indexing/attribute access on them only works if internal/access's
// init() has already run and populated the hook (see papilio.go's
// blank import of internal/access).
func TestGenericAccessorWiredThroughSurface(t *testing.T) {
	got, err := Format("{0[1]}", []int{10, 20, 30})
	require.NoError(t, err)
	require.Equal(t, "20", got)

	got, err = Format("{0.length}", []int{10, 20, 30})
	require.NoError(t, err)
	require.Equal(t, "3", got)

	got, err = Format("{0.joined}", []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "1, 2, 3", got)
}
