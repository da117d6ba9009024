package encode

import (
	"maps"
	"slices"
)

// Func adapts a plain function to the Value interface.
type Func func(e *Encoder) error

func (f Func) EncodeJSON(e *Encoder) error {
	return f(e)
}

// Null returns a Value emitting JSON null.
func Null() Value {
	return Func((*Encoder).Null)
}

// Bool returns a Value emitting a JSON boolean.
func Bool(v bool) Value {
	return Func(func(e *Encoder) error { return e.Bool(v) })
}

// Int returns a Value emitting a JSON number from an integer.
func Int(v int64) Value {
	return Func(func(e *Encoder) error { return e.Int(v) })
}

// Uint returns a Value emitting a JSON number from an unsigned integer.
func Uint(v uint64) Value {
	return Func(func(e *Encoder) error { return e.Uint(v) })
}

// Float returns a Value emitting a JSON number from a float.
func Float(v float64) Value {
	return Func(func(e *Encoder) error { return e.Float(v) })
}

// String returns a Value emitting a JSON string.
func String(s string) Value {
	return Func(func(e *Encoder) error { return e.String(s) })
}

// Number returns a Value emitting pre-validated numeral text as-is.
func Number(text string) Value {
	return Func(func(e *Encoder) error { return e.Number(text) })
}

// OrNull maps a nil Value to JSON null, the output-side counterpart of an
// absent optional.
func OrNull(v Value) Value {
	if v == nil {
		return Null()
	}
	return v
}

// Array returns a Value emitting a JSON array of vs.
func Array(vs ...Value) Value {
	return Func(func(e *Encoder) error {
		a := e.Array()
		a.Values(vs...)
		return a.Finish()
	})
}

// Slice returns a Value emitting xs element-wise through f.
func Slice[T any](xs []T, f func(T) Value) Value {
	return Func(func(e *Encoder) error {
		a := e.Array()
		for _, x := range xs {
			a.Value(f(x))
		}
		return a.Finish()
	})
}

// Pair is one object member for Object.
type Pair struct {
	Key   string
	Value Value
}

// Object returns a Value emitting a JSON object with the given members in
// the given order.
func Object(pairs ...Pair) Value {
	return Func(func(e *Encoder) error {
		o := e.Object()
		for _, p := range pairs {
			o.Member(p.Key, p.Value)
		}
		return o.Finish()
	})
}

// Map returns a Value emitting m as a JSON object with keys in sorted
// order, so identical maps always render identically.
func Map[T any](m map[string]T, f func(T) Value) Value {
	return Func(func(e *Encoder) error {
		o := e.Object()
		for _, k := range slices.Sorted(maps.Keys(m)) {
			o.Member(k, f(m[k]))
		}
		return o.Finish()
	})
}
