package variable

import (
	"testing"

	"github.com/papilio-go/papilio/internal/core"
)

func TestFromValueCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   core.Value
		want Variable
	}{
		{"bool", core.Bool(true), Bool(true)},
		{"int", core.Int(-7), Int(-7)},
		{"float", core.Float(1.5), Float(1.5)},
		{"string", core.StringRef("hi"), Text("hi")},
		{"codepoint", core.Codepoint(0x41), Text("A")},
		{"small uint widens to int64", core.Uint(9), Int(9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromValue(tc.in)
			if err != nil {
				t.Fatalf("FromValue(%v): %v", tc.in, err)
			}
			if got.Kind() != tc.want.Kind() {
				t.Fatalf("Kind() = %v, want %v", got.Kind(), tc.want.Kind())
			}
			if !Equal(got, tc.want) {
				t.Errorf("FromValue(%v) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromValuePointerIsConversionError(t *testing.T) {
	_, err := FromValue(core.Pointer(0x1000))
	if err == nil {
		t.Fatal("expected an error converting a pointer value to a script variable")
	}
}

func TestCompareText(t *testing.T) {
	if Compare(Text("abc"), Text("abd")) != Less {
		t.Error("expected \"abc\" < \"abd\"")
	}
	if Compare(Text("z"), Text("a")) != Greater {
		t.Error("expected \"z\" > \"a\"")
	}
	if !Equal(Text("same"), Text("same")) {
		t.Error("expected equal texts to compare Equal")
	}
}

func TestCompareNumericCrossKind(t *testing.T) {
	if !Equal(Int(2), Float(2.0)) {
		t.Error("expected Int(2) == Float(2.0)")
	}
	if !LessThan(Int(1), Float(1.5)) {
		t.Error("expected Int(1) < Float(1.5)")
	}
	if !Equal(Bool(true), Int(1)) {
		t.Error("expected Bool(true) == Int(1), bool coerces to 0/1")
	}
	if !Equal(Bool(false), Int(0)) {
		t.Error("expected Bool(false) == Int(0)")
	}
}

func TestCompareUnorderedTextVsNumber(t *testing.T) {
	o := Compare(Text("5"), Int(5))
	if o != Unordered {
		t.Fatalf("Compare(text, int) = %v, want Unordered", o)
	}
	if LessThan(Text("5"), Int(5)) || GreaterThan(Text("5"), Int(5)) {
		t.Error("Unordered must compare neither less nor greater")
	}
	if !NotEqual(Text("5"), Int(5)) {
		t.Error("Unordered must compare not-equal (spec.md §9: \"!= as true\")")
	}
}

func TestLessEqualGreaterEqual(t *testing.T) {
	if !LessEqual(Int(3), Int(3)) {
		t.Error("LessEqual should hold on equal operands")
	}
	if !GreaterEqual(Float(4), Int(4)) {
		t.Error("GreaterEqual should hold on equal operands across kinds")
	}
	if LessEqual(Int(4), Int(3)) {
		t.Error("LessEqual(4, 3) should be false")
	}
}

func TestAsIntFromTextIsError(t *testing.T) {
	v := Text("nope")
	if _, err := v.AsInt64(); err == nil {
		t.Error("expected an error converting text to int64")
	}
	if _, err := v.AsFloat(); err == nil {
		t.Error("expected an error converting text to float64")
	}
}

func TestAsTextFromNumericIsError(t *testing.T) {
	if _, err := Int(1).AsText(); err == nil {
		t.Error("expected an error converting a numeric variable to text")
	}
}

func TestAsBoolCoercion(t *testing.T) {
	cases := []struct {
		name string
		v    Variable
		want bool
	}{
		{"zero int", Int(0), false},
		{"nonzero int", Int(5), true},
		{"zero float", Float(0), false},
		{"empty text", Text(""), false},
		{"nonempty text", Text("x"), true},
	}
	for _, tc := range cases {
		if got := tc.v.AsBool(); got != tc.want {
			t.Errorf("%s: AsBool() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
