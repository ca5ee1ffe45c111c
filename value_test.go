package minijson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var o Object
		require.Equal(t, 0, o.Len())
		require.Empty(t, o.Keys())
		_, ok := o.Get("missing")
		require.False(t, ok)
	})

	t.Run("new object copies entries", func(t *testing.T) {
		src := map[string]Value{"a": Number(1)}
		o := NewObject(src)
		src["a"] = Number(2)
		src["b"] = Null{}

		require.Equal(t, 1, o.Len())
		v, ok := o.Get("a")
		require.True(t, ok)
		require.Equal(t, Number(1), v)
	})

	t.Run("keys are sorted", func(t *testing.T) {
		o := NewObject(map[string]Value{
			"key2": Null{},
			"key1": Null{},
			"key4": Null{},
			"key3": Null{},
		})
		require.Equal(t, []string{"key1", "key2", "key3", "key4"}, o.Keys())
	})

	t.Run("all iterates in key order", func(t *testing.T) {
		o := NewObject(map[string]Value{"b": Number(2), "a": Text("x"), "c": Boolean(true)})
		var keys []string
		var vals []Value
		for k, v := range o.All() {
			keys = append(keys, k)
			vals = append(vals, v)
		}
		require.Equal(t, []string{"a", "b", "c"}, keys)
		require.Equal(t, []Value{Text("x"), Number(2), Boolean(true)}, vals)
	})

	t.Run("all stops when yield returns false", func(t *testing.T) {
		o := NewObject(map[string]Value{"a": Null{}, "b": Null{}, "c": Null{}})
		n := 0
		for range o.All() {
			n++
			break
		}
		require.Equal(t, 1, n)
	})
}

func TestEqual(t *testing.T) {
	nested := func() Object {
		return NewObject(map[string]Value{
			"inner": NewObject(map[string]Value{"x": Number(1)}),
			"name":  Text("n"),
		})
	}

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same text", Text("a"), Text("a"), true},
		{"different text", Text("a"), Text("b"), false},
		{"same number", Number(1.5), Number(1.5), true},
		{"nan is not equal to itself", Number(math.NaN()), Number(math.NaN()), false},
		{"same boolean", Boolean(true), Boolean(true), true},
		{"different boolean", Boolean(true), Boolean(false), false},
		{"null", Null{}, Null{}, true},
		{"different variants", Text("1"), Number(1), false},
		{"null and empty object", Null{}, Object{}, false},
		{"empty objects", Object{}, NewObject(map[string]Value{}), true},
		{"nested objects", nested(), nested(), true},
		{"different key sets", NewObject(map[string]Value{"a": Null{}}), NewObject(map[string]Value{"b": Null{}}), false},
		{"different lengths", NewObject(map[string]Value{"a": Null{}}), Object{}, false},
		{"different nested value", nested(), NewObject(map[string]Value{
			"inner": NewObject(map[string]Value{"x": Number(2)}),
			"name":  Text("n"),
		}), false},
		{"both nil", nil, nil, true},
		{"nil and null", nil, Null{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Equal(tt.a, tt.b))
			require.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}
