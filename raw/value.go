package raw

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/rawjson-format/go-rawjson/span"
)

// Value is a handle to one value inside a JSON: a reference to the owner
// plus a node index. Values are cheap to copy, comparable, and must not
// outlive the JSON they point into.
type Value struct {
	json  *JSON
	index int
}

// Kind returns the JSON shape of the value.
func (v Value) Kind() Kind {
	return v.node().kind
}

// Span returns the value's byte range in the original text.
func (v Value) Span() span.Span {
	return v.node().text
}

// Raw returns the value's text exactly as it appears in the source,
// including quotes and escapes for strings.
func (v Value) Raw() string {
	return v.node().text.Of(v.json.text)
}

// JSON returns the owning document.
func (v Value) JSON() *JSON {
	return v.json
}

func (v Value) node() *node {
	return &v.json.nodes[v.index]
}

func (v Value) expect(kind Kind) error {
	if v.Kind() == kind {
		return nil
	}
	return &Error{
		Kind:   TypeMismatch,
		Offset: v.Span().Start,
		Msg:    fmt.Sprintf("expected %s, but found %s", kind, v.Kind()),
	}
}

// Null fails with a TypeMismatch unless the value is a JSON null.
func (v Value) Null() error {
	return v.expect(Null)
}

// Bool returns the boolean value, or a TypeMismatch at this value's span.
func (v Value) Bool() (bool, error) {
	if err := v.expect(Bool); err != nil {
		return false, err
	}
	return v.Raw() == "true", nil
}

// NumberText returns the unparsed numeral text of a number value.
// Converting it to a concrete numeric type is the caller's business.
func (v Value) NumberText() (string, error) {
	if err := v.expect(Number); err != nil {
		return "", err
	}
	return v.Raw(), nil
}

// Text returns the decoded content of a string value. When the string
// contains no escapes the result is a slice of the original text.
func (v Value) Text() (string, error) {
	if err := v.expect(String); err != nil {
		return "", err
	}
	raw := v.Raw()
	content := raw[1 : len(raw)-1]
	if !v.node().escaped {
		return content, nil
	}
	return unescape(content), nil
}

// Elems returns the elements of an array value in document order.
func (v Value) Elems() ([]Value, error) {
	if err := v.expect(Array); err != nil {
		return nil, err
	}
	return v.children(), nil
}

func (v Value) children() []Value {
	n := v.node()
	switch n.kind {
	case Array:
		res := make([]Value, len(n.elems))
		for i, idx := range n.elems {
			res[i] = Value{json: v.json, index: idx}
		}
		return res
	case Object:
		res := make([]Value, len(n.members))
		for i, m := range n.members {
			res[i] = Value{json: v.json, index: m.value}
		}
		return res
	default:
		return nil
	}
}

// Member is one object member: its key span and its value.
type Member struct {
	json       *JSON
	key        span.Span
	keyEscaped bool
	val        int
}

// Key returns the member's decoded key.
func (m Member) Key() string {
	content := m.key.Of(m.json.text)
	content = content[1 : len(content)-1]
	if !m.keyEscaped {
		return content
	}
	return unescape(content)
}

// KeySpan returns the byte range of the key, quotes included.
func (m Member) KeySpan() span.Span {
	return m.key
}

// Value returns the member's value.
func (m Member) Value() Value {
	return Value{json: m.json, index: m.val}
}

// Members returns an object's members in document order. Duplicate keys are
// retained as parsed, never deduplicated.
func (v Value) Members() ([]Member, error) {
	if err := v.expect(Object); err != nil {
		return nil, err
	}
	n := v.node()
	res := make([]Member, len(n.members))
	for i, m := range n.members {
		res[i] = Member{json: v.json, key: m.key, keyEscaped: m.keyEscaped, val: m.value}
	}
	return res, nil
}

// Member returns the first member with the given key in document order, or
// ok=false when the object has no such member. Calling it on a non-object
// also reports ok=false.
func (v Value) Member(name string) (Value, bool) {
	n := v.node()
	if n.kind != Object {
		return Value{}, false
	}
	for _, m := range n.members {
		if (Member{json: v.json, key: m.key, keyEscaped: m.keyEscaped}).Key() == name {
			return Value{json: v.json, index: m.value}, true
		}
	}
	return Value{}, false
}

// RequiredMember returns the first member with the given key, or fails with
// a MissingField error anchored at the containing object's opening brace.
func (v Value) RequiredMember(name string) (Value, error) {
	if err := v.expect(Object); err != nil {
		return Value{}, err
	}
	if m, ok := v.Member(name); ok {
		return m, nil
	}
	return Value{}, &Error{
		Kind:   MissingField,
		Offset: v.Span().Start,
		Msg:    fmt.Sprintf("missing required object member %q", name),
	}
}

// Parent returns the value enclosing this one, or ok=false for the root.
func (v Value) Parent() (Value, bool) {
	if v.index == len(v.json.nodes)-1 {
		return Value{}, false
	}
	// Children are appended before parents, so the parent is the first
	// later composite that lists this index.
	for i := v.index + 1; i < len(v.json.nodes); i++ {
		n := &v.json.nodes[i]
		for _, idx := range n.elems {
			if idx == v.index {
				return Value{json: v.json, index: i}, true
			}
		}
		for _, m := range n.members {
			if m.value == v.index {
				return Value{json: v.json, index: i}, true
			}
		}
	}
	return Value{}, false
}

// Invalid wraps an application-level failure as a positioned error at this
// value's span. It is the validation channel: errors built here display the
// same way as syntax and shape errors.
func (v Value) Invalid(cause error) *Error {
	return &Error{
		Kind:   Validation,
		Offset: v.Span().Start,
		Msg:    fmt.Sprintf("invalid %s value", v.Kind()),
		Cause:  cause,
	}
}

// Invalidf is Invalid with a formatted message and no cause.
func (v Value) Invalidf(format string, args ...any) *Error {
	return &Error{
		Kind:   Validation,
		Offset: v.Span().Start,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// unescape decodes string content already validated by the parser.
func unescape(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	for i := 0; i < len(content); {
		c := content[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch content[i] {
		case '"', '\\', '/':
			b.WriteByte(content[i])
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'u':
			r := rune(hexVal(content[i+1:i+5]))
			i += 5
			if utf16.IsSurrogate(r) {
				// The parser guarantees a low surrogate escape follows.
				lo := rune(hexVal(content[i+2 : i+6]))
				i += 6
				r = utf16.DecodeRune(r, lo)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hexVal(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			v = v<<4 | uint32(c-'0')
		case 'a' <= c && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		default:
			v = v<<4 | uint32(c-'A'+10)
		}
	}
	return v
}
