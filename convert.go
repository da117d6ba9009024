package rawjson

import (
	"fmt"
	"strconv"

	"github.com/rawjson-format/go-rawjson/raw"
)

// FromRaw is the input half of the typed conversion bridge: a type that can
// populate itself from a raw JSON value, failing with a positioned error.
// Implementations validate shape through the raw.Value accessors and
// convert children recursively.
type FromRaw interface {
	DecodeRawJSON(v raw.Value) error
}

// Decode populates dst from v.
func Decode(v raw.Value, dst FromRaw) error {
	return dst.DecodeRawJSON(v)
}

// Parse parses a whole JSON text into a T. It is glue only: raw.Parse
// followed by DecodeRawJSON on a zero T.
func Parse[T any, P interface {
	*T
	FromRaw
}](text string) (T, error) {
	var dst T
	j, err := raw.Parse(text)
	if err != nil {
		return dst, err
	}
	if err := P(&dst).DecodeRawJSON(j.Root()); err != nil {
		return dst, err
	}
	return dst, nil
}

// Bool converts a raw boolean.
func Bool(v raw.Value) (bool, error) {
	return v.Bool()
}

// Int64 parses a raw number's numeral text as an int64. Text that does not
// fit, or that is not integral, fails with a range-or-format error at the
// number's span.
func Int64(v raw.Value) (int64, error) {
	text, err := v.NumberText()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, numErr(v, "int64", err)
	}
	return n, nil
}

// Int is Int64 narrowed to int.
func Int(v raw.Value) (int, error) {
	text, err := v.NumberText()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, strconv.IntSize)
	if err != nil {
		return 0, numErr(v, "int", err)
	}
	return int(n), nil
}

// Uint64 parses a raw number's numeral text as a uint64.
func Uint64(v raw.Value) (uint64, error) {
	text, err := v.NumberText()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, numErr(v, "uint64", err)
	}
	return n, nil
}

// Float64 parses a raw number's numeral text as a float64.
func Float64(v raw.Value) (float64, error) {
	text, err := v.NumberText()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, numErr(v, "float64", err)
	}
	return f, nil
}

func numErr(v raw.Value, typ string, cause error) *raw.Error {
	return &raw.Error{
		Kind:   raw.RangeOrFormat,
		Offset: v.Span().Start,
		Msg:    fmt.Sprintf("cannot convert number to %s", typ),
		Cause:  cause,
	}
}

// String converts a raw string, unescaping on demand.
func String(v raw.Value) (string, error) {
	return v.Text()
}

// Slice converts a raw array element-wise through conv. An element failure
// is threaded upward unchanged, keeping its own position.
func Slice[T any](v raw.Value, conv func(raw.Value) (T, error)) ([]T, error) {
	elems, err := v.Elems()
	if err != nil {
		return nil, err
	}
	res := make([]T, len(elems))
	for i, el := range elems {
		if res[i], err = conv(el); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Fixed converts a raw array of exactly n elements. A length mismatch fails
// at the array's span, stating expected and actual counts.
func Fixed[T any](v raw.Value, n int, conv func(raw.Value) (T, error)) ([]T, error) {
	elems, err := v.Elems()
	if err != nil {
		return nil, err
	}
	if len(elems) != n {
		return nil, &raw.Error{
			Kind:   raw.TypeMismatch,
			Offset: v.Span().Start,
			Msg:    fmt.Sprintf("expected an array with %d elements, but got %d elements", n, len(elems)),
		}
	}
	res := make([]T, n)
	for i, el := range elems {
		if res[i], err = conv(el); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Map converts a raw object into a key-unique map through conv. When the
// object repeats a key, the first occurrence in document order wins,
// matching raw.Value.Member lookup.
func Map[T any](v raw.Value, conv func(raw.Value) (T, error)) (map[string]T, error) {
	members, err := v.Members()
	if err != nil {
		return nil, err
	}
	res := make(map[string]T, len(members))
	for _, m := range members {
		key := m.Key()
		if _, dup := res[key]; dup {
			continue
		}
		t, err := conv(m.Value())
		if err != nil {
			return nil, err
		}
		res[key] = t
	}
	return res, nil
}

// Nullable converts a JSON null to nil and anything else through conv.
// Together with the ok=false return of raw.Value.Member it maps null and
// absent uniformly to absent.
func Nullable[T any](v raw.Value, conv func(raw.Value) (T, error)) (*T, error) {
	if v.Kind() == raw.Null {
		return nil, nil
	}
	t, err := conv(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
