package specparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papilio-go/papilio/internal/core"
)

func noResolve(pc *core.ParseContext) (int64, error) {
	return 0, nil
}

// TestParseStandard exercises the full standard-spec grammar against a
// table of literal inputs, comparing the resulting struct field-by-
// field with go-cmp rather than reflect.DeepEqual so a mismatch names
// the differing field directly.
func TestParseStandard(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  StandardSpec
	}{
		{
			name:  "zero-fill sign width type",
			input: "+06d}",
			want:  StandardSpec{Sign: SignPlus, ZeroFill: true, Width: 6, HasWidth: true, Type: 'd'},
		},
		{
			name:  "alt hex",
			input: "#06x}",
			want:  StandardSpec{Alt: true, ZeroFill: true, Width: 6, HasWidth: true, Type: 'x'},
		},
		{
			name:  "fill align precision",
			input: "*>4.2f}",
			want: StandardSpec{
				Fill: '*', Align: AlignRight,
				Width: 4, HasWidth: true,
				Precision: 2, HasPrecision: true,
				Type: 'f',
			},
		},
		{
			name:  "center precision no type",
			input: "^8.5}",
			want: StandardSpec{
				Align:        AlignCenter,
				Width:        8,
				HasWidth:     true,
				Precision:    5,
				HasPrecision: true,
			},
		},
		{
			name:  "locale flag",
			input: "Ld}",
			want:  StandardSpec{Locale: true, Type: 'd'},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pc := core.NewParseContext(tc.input, core.NewArgStore(nil, nil))
			got, err := ParseStandard(pc, noResolve)
			if err != nil {
				t.Fatalf("ParseStandard(%q): %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseStandard(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
			if b, ok := pc.Peek(); !ok || b != '}' {
				t.Errorf("ParseStandard(%q) left cursor before the terminating '}'", tc.input)
			}
		})
	}
}

func TestParseSimple(t *testing.T) {
	pc := core.NewParseContext("*^10L}", core.NewArgStore(nil, nil))
	got, err := ParseSimple(pc, noResolve)
	if err != nil {
		t.Fatalf("ParseSimple: %v", err)
	}
	want := SimpleSpec{Fill: '*', Align: AlignCenter, Width: 10, HasWidth: true, Locale: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSimple mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDynamicWidth(t *testing.T) {
	resolve := func(pc *core.ParseContext) (int64, error) {
		if b, ok := pc.Peek(); !ok || b != '{' {
			t.Fatalf("resolver expected cursor at '{'")
		}
		pc.Advance(1)
		if b, ok := pc.Peek(); !ok || b != '}' {
			t.Fatalf("expected empty field-id")
		}
		pc.Advance(1)
		return 7, nil
	}
	pc := core.NewParseContext("{}}", core.NewArgStore([]core.Value{core.Int(7)}, nil))
	got, err := ParseStandard(pc, resolve)
	if err != nil {
		t.Fatalf("ParseStandard: %v", err)
	}
	want := StandardSpec{Width: 7, HasWidth: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseStandard dynamic width mismatch (-want +got):\n%s", diff)
	}
}
