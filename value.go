package minijson

import (
	"iter"
	"maps"
	"slices"
)

// Value is a parsed document. It is one of Text, Number, Boolean, Object or
// Null; the set is closed.
type Value interface {
	String() string
	value()
}

// Text is a string value. Its contents are taken verbatim, with no escaping.
type Text string

// Number is a double-precision numeric value.
type Number float64

// Boolean is a true or false value.
type Boolean bool

// Null is the null value.
type Null struct{}

// Object is an immutable mapping from string keys to values. The zero value
// is an empty object.
type Object struct {
	entries map[string]Value
}

func (Text) value()    {}
func (Number) value()  {}
func (Boolean) value() {}
func (Null) value()    {}
func (Object) value()  {}

// NewObject returns an Object holding a copy of entries.
func NewObject(entries map[string]Value) Object {
	if len(entries) == 0 {
		return Object{}
	}
	return Object{entries: maps.Clone(entries)}
}

// Len reports the number of entries in o.
func (o Object) Len() int { return len(o.entries) }

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Keys returns the keys of o in ascending order.
func (o Object) Keys() []string {
	return slices.Sorted(maps.Keys(o.entries))
}

// All iterates over the entries of o in ascending key order.
func (o Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.Keys() {
			if !yield(k, o.entries[k]) {
				return
			}
		}
	}
}

// Equal reports whether a and b are structurally equal. Objects are equal when
// they hold the same keys mapped to equal values.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Text:
		b, ok := b.(Text)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case Null:
		_, ok := b.(Null)
		return ok
	case Object:
		b, ok := b.(Object)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for k, av := range a.entries {
			bv, ok := b.entries[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
