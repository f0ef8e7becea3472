package core

import (
	"fmt"

	"github.com/papilio-go/papilio/internal/orderedmap"
)

// ArgStore holds one format call's ordered positional arguments and
// keyed named arguments (spec.md §3/§4.2 "Argument store"). Named
// lookups use an insertion-ordered map (internal/orderedmap) so that,
// e.g., debug dumps of an ArgStore reproduce the caller's argument
// order.
type ArgStore struct {
	positional []Value
	named      *orderedmap.OrderedMap[string, Value]
}

// NamedArg is one name/value pair supplied to NewArgStore, in the
// order the caller listed it.
type NamedArg struct {
	Name  string
	Value Value
}

// NewArgStore builds a store from positional values and an ordered
// list of name/value pairs. Named keys must be unique (spec.md §3
// invariant); a duplicate key keeps its first position but takes the
// later value, matching orderedmap.Set's update-in-place semantics,
// and the caller is responsible for not relying on that. named is
// given as a slice rather than a map precisely so that this insertion
// order survives intact — a map parameter would have already discarded
// the caller's order before it reached here.
func NewArgStore(positional []Value, named []NamedArg) *ArgStore {
	s := &ArgStore{positional: positional, named: orderedmap.New[string, Value]()}
	for _, n := range named {
		s.named.Set(n.Name, n.Value)
	}
	return s
}

// Len returns the number of positional arguments.
func (s *ArgStore) Len() int { return len(s.positional) }

// Get looks up a positional argument by index.
func (s *ArgStore) Get(i int) (Value, error) {
	if i < 0 || i >= len(s.positional) {
		return None, fmt.Errorf("%w: positional index %d out of range [0,%d)", ErrInvalidIndex, i, len(s.positional))
	}
	return s.positional[i], nil
}

// GetNamed looks up a named argument.
func (s *ArgStore) GetNamed(name string) (Value, error) {
	if s.named == nil {
		return None, fmt.Errorf("%w: %q", ErrInvalidFieldName, name)
	}
	v, ok := s.named.Get(name)
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrInvalidFieldName, name)
	}
	return v, nil
}

// Contains reports whether positional index i is in range.
func (s *ArgStore) Contains(i int) bool { return i >= 0 && i < len(s.positional) }

// ContainsNamed reports whether name is a known named argument.
func (s *ArgStore) ContainsNamed(name string) bool {
	return s.named != nil && s.named.Has(name)
}

// GetIndexing dispatches on an IndexValue's discriminant: an int index
// looks up positionally, a text key looks up by name. Slices are not
// meaningful at the top level of argument lookup and return
// ErrInvalidIndex.
func (s *ArgStore) GetIndexing(idx IndexValue) (Value, error) {
	switch idx.Kind {
	case IndexKindInt:
		return s.Get(int(idx.Int))
	case IndexKindText:
		return s.GetNamed(idx.Text)
	default:
		return None, ErrInvalidIndex
	}
}
