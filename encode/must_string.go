package encode

import "strings"

// ToString renders v to a string with the given options.
func ToString(v Value, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	e := New(&b, opts...)
	if err := v.EncodeJSON(e); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustString is ToString for values that cannot fail against an in-memory
// sink; it panics otherwise.
func MustString(v Value, opts ...EncodeOption) string {
	s, err := ToString(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
