package builtin

import (
	"fmt"
	"testing"

	"github.com/papilio-go/papilio/internal/core"
	"github.com/papilio-go/papilio/internal/sink"
	"github.com/papilio-go/papilio/internal/specparse"
	"github.com/papilio-go/papilio/internal/testutils/require"
)

func init() {
	// Exercising these formatters directly (rather than through
	// internal/interp) means no dynamic width/precision resolver is
	// wired; none of the cases below use a `{…}` dynamic field.
	DynamicFieldResolver = func(pc *core.ParseContext) (int64, error) {
		return 0, fmt.Errorf("dynamic fields unsupported in this test")
	}
}

func formatWith(t *testing.T, f core.SpecFormatter, spec string, data any) string {
	t.Helper()
	pc := core.NewParseContext(spec, core.NewArgStore(nil, nil))
	require.NoError(t, f.Parse(pc))
	buf := sink.NewBuffer()
	fc := &core.FormatContext{Sink: buf}
	require.NoError(t, f.Format(data, fc))
	return buf.String()
}

func TestBoolFormatterWordForm(t *testing.T) {
	require.Equal(t, "true", formatWith(t, NewBool(), "", core.Bool(true)))
	require.Equal(t, "false", formatWith(t, NewBool(), "", core.Bool(false)))
}

func TestBoolFormatterIntegerForm(t *testing.T) {
	require.Equal(t, "1", formatWith(t, NewBool(), "d", core.Bool(true)))
	require.Equal(t, "0", formatWith(t, NewBool(), "d", core.Bool(false)))
}

func TestCodepointFormatterDebugEscape(t *testing.T) {
	require.Equal(t, "'\\n'", formatWith(t, NewCodepoint(), "?", core.Codepoint('\n')))
	require.Equal(t, "a", formatWith(t, NewCodepoint(), "", core.Codepoint('a')))
}

func TestPointerFormatterHex(t *testing.T) {
	require.Equal(t, "0xff", formatWith(t, NewPointer(), "p", core.Pointer(0xff)))
	require.Equal(t, "0XFF", formatWith(t, NewPointer(), "P", core.Pointer(0xff)))
}

type stubStringer struct{ s string }

func (s stubStringer) String() string { return s.s }

func TestStringerFormatterFallback(t *testing.T) {
	factory := NewStringer(stubStringer{"hi"})
	got := formatWith(t, factory(), "^6", nil)
	require.Equal(t, "  hi  ", got)
}

func TestIntFormatterBases(t *testing.T) {
	require.Equal(t, "1010", formatWith(t, NewInt(), "b", core.Int(10)))
	require.Equal(t, "0b1010", formatWith(t, NewInt(), "#b", core.Int(10)))
	require.Equal(t, "12", formatWith(t, NewInt(), "o", core.Int(10)))
	require.Equal(t, "-a", formatWith(t, NewInt(), "x", core.Int(-10)))
}
