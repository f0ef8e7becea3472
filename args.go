package papilio

import "github.com/papilio-go/papilio/internal/core"

// Arg wraps one format argument; ordinary values become positional
// arguments, while a value built with Named becomes a keyed argument
// (spec.md §3/§4.2's "positional list + named map").
type Arg struct {
	name  string
	value any
	named bool
}

// Named builds a keyed format argument: `papilio.Format("{greeting}",
// papilio.Named("greeting", "hi"))`.
func Named(name string, value any) Arg {
	return Arg{name: name, value: value, named: true}
}

// buildArgStore separates args into the positional/named argument
// store and any Option values mixed in (an Option configures the
// surface call itself, e.g. WithLocale, rather than binding an
// argument — spec.md §6 "with and without a locale handle").
func buildArgStore(args []any) (*core.ArgStore, []Option) {
	var positional []core.Value
	var opts []Option
	var named []core.NamedArg
	for _, a := range args {
		switch v := a.(type) {
		case Option:
			opts = append(opts, v)
		case Arg:
			if v.named {
				named = append(named, core.NamedArg{Name: v.name, Value: core.FromAny(v.value)})
				continue
			}
			positional = append(positional, core.FromAny(v.value))
		default:
			positional = append(positional, core.FromAny(a))
		}
	}
	return core.NewArgStore(positional, named), opts
}
