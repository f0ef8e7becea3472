package interp

import (
	"testing"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/sink"
	"github.com/papilio-go/papilio/internal/testutils/require"
)

func runFormat(t *testing.T, format string, positional ...core.Value) string {
	t.Helper()
	args := core.NewArgStore(positional, nil)
	buf := sink.NewBuffer()
	fc := &core.FormatContext{Sink: buf, Args: args}
	pc := core.NewParseContext(format, args)
	require.NoError(t, Run(pc, fc))
	return buf.String()
}

// TestScenarios runs spec.md §8's concrete scenario table verbatim.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name   string
		format string
		args   []core.Value
		want   string
	}{
		{"1", "{}", []core.Value{core.Int(42)}, "42"},
		{"2", "{:+06d}", []core.Value{core.Int(42)}, "+00042"},
		{"3", "{:#06x}", []core.Value{core.Int(0xa)}, "0x000a"},
		{"4", "{:^8.5}", []core.Value{core.StringRef("hello!")}, " hello  "},
		{"5", "{.length:*>4}", []core.Value{core.StringRef("hello")}, "***5"},
		{"6a", "{0} warning{${0}>1:'s'}", []core.Value{core.Int(1)}, "1 warning"},
		{"6b", "{0} warning{${0}>1:'s'}", []core.Value{core.Int(2)}, "2 warnings"},
		{"7a", "{$ {}: 'true'}", []core.Value{core.Int(1)}, "true"},
		{"7b", "{$ {}: 'true'}", []core.Value{core.Int(0)}, ""},
		{"8", "{:10.5f}", []core.Value{core.Float(3.14)}, "   3.14000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := runFormat(t, tc.format, tc.args...)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	require.Equal(t, "{hi}", runFormat(t, "{{hi}}"))
}

func TestLiteralPreservation(t *testing.T) {
	require.Equal(t, "plain text, no fields", runFormat(t, "plain text, no fields"))
}

func TestAutoManualExclusivity(t *testing.T) {
	args := core.NewArgStore([]core.Value{core.Int(1), core.Int(2)}, nil)
	buf := sink.NewBuffer()
	fc := &core.FormatContext{Sink: buf, Args: args}
	pc := core.NewParseContext("{} {0}", args)
	err := Run(pc, fc)
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrInvalidFormat)
}

func TestScriptShortCircuitSingleBodyEmitted(t *testing.T) {
	got := runFormat(t, "{$ {0}==1: 'one' $ {0}==2: 'two' $ 'other'}", core.Int(2))
	require.Equal(t, "two", got)
}

func TestTypeCharExhaustiveness(t *testing.T) {
	args := core.NewArgStore([]core.Value{core.Int(1)}, nil)
	buf := sink.NewBuffer()
	fc := &core.FormatContext{Sink: buf, Args: args}
	pc := core.NewParseContext("{:z}", args)
	err := Run(pc, fc)
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrInvalidFormat)
}

func TestNamedArgument(t *testing.T) {
	args := core.NewArgStore(nil, []core.NamedArg{{Name: "name", Value: core.StringRef("world")}})
	buf := sink.NewBuffer()
	fc := &core.FormatContext{Sink: buf, Args: args}
	pc := core.NewParseContext("hello {name}", args)
	require.NoError(t, Run(pc, fc))
	require.Equal(t, "hello world", buf.String())
}

func TestSliceSubscript(t *testing.T) {
	got := runFormat(t, "{[1:3]}", core.StringRef("hello"))
	require.Equal(t, "el", got)
}
