package orderedmap

import (
	"reflect"
	"testing"
)

func TestSetAndGet(t *testing.T) {
	om := New[string, int]()
	om.Set("a", 1)
	om.Set("b", 2)

	if v, ok := om.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}
	if _, ok := om.Get("z"); ok {
		t.Error("Get on a missing key should report false")
	}
	if om.Len() != 2 {
		t.Errorf("Len() = %d, want 2", om.Len())
	}
}

func TestSetPreservesInsertionOrderOnUpdate(t *testing.T) {
	om := New[string, int]()
	om.Set("first", 1)
	om.Set("second", 2)
	om.Set("first", 100)

	if got := om.Keys(); !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("Keys() = %v, want [first second] (update must not move a key)", got)
	}
	v, _ := om.Get("first")
	if v != 100 {
		t.Errorf("Get(first) = %d, want 100 after update", v)
	}
}

func TestOldestAndNextIteration(t *testing.T) {
	om := New[string, int]()
	om.Set("x", 1)
	om.Set("y", 2)
	om.Set("z", 3)

	var order []string
	for p := om.Oldest(); p != nil; p = p.Next() {
		order = append(order, p.Key)
	}
	if !reflect.DeepEqual(order, []string{"x", "y", "z"}) {
		t.Errorf("iteration order = %v, want [x y z]", order)
	}
}

func TestHasAndEmptyOldest(t *testing.T) {
	om := New[string, int]()
	if om.Has("missing") {
		t.Error("empty map should not have any key")
	}
	if om.Oldest() != nil {
		t.Error("Oldest() on an empty map should be nil")
	}
}
