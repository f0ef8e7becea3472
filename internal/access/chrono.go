package access

import "github.com/papilio-go/papilio/internal/core"

// BrokenDownTime is the Go reinterpretation of a broken-down calendar
// time (C's struct tm), supplementing spec.md per SPEC_FULL.md §D.5:
// the distilled spec scopes out chrono formatters themselves but the
// access language still needs a component-wise projection over a time
// value for the `{.year}`-style field chains the original supports.
// Fields follow civil-calendar convention: Month is 1-12, Day is 1-31.
type BrokenDownTime struct {
	Year, Month, Day          int
	Hour, Minute, Second      int
	Weekday                   int // 0 = Sunday
}

// ChronoAccessor exposes the calendar components as integer
// attributes: year, month, day (alias mday), hour, minute (alias min),
// second (alias sec) and weekday (alias wday). There is no yday or
// is_dst attribute. A dedicated chrono formatter (date/time layout strings)
// remains out of scope per spec.md's Non-goals; this accessor only
// covers field projection.
func ChronoAccessor() *core.Accessor {
	return &core.Accessor{
		Attribute: func(data any, name string) (core.Value, error) {
			t, ok := data.(BrokenDownTime)
			if !ok {
				return core.None, core.ErrAttributeUnavailable
			}
			switch name {
			case "year":
				return core.Int(int64(t.Year)), nil
			case "month":
				return core.Int(int64(t.Month)), nil
			case "day", "mday":
				return core.Int(int64(t.Day)), nil
			case "hour":
				return core.Int(int64(t.Hour)), nil
			case "minute", "min":
				return core.Int(int64(t.Minute)), nil
			case "second", "sec":
				return core.Int(int64(t.Second)), nil
			case "weekday", "wday":
				return core.Int(int64(t.Weekday)), nil
			default:
				return core.None, core.ErrAttributeUnavailable
			}
		},
	}
}
