// Package encode renders values as JSON text.
//
// An Encoder writes compact or indented JSON to an io.Writer through
// builder operations: scalar writes plus Array/Object sub-builders that
// handle separators and indentation. Any value type joins the output side
// of the conversion bridge by implementing Value.
//
// # Usage
//
//	var b strings.Builder
//	e := encode.New(&b, encode.Indent(2), encode.Spacing(true))
//	a := e.Array()
//	a.Value(encode.Int(1))
//	a.Value(encode.String("two"))
//	err := a.Finish()
package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNonFinite is wrapped by Float when the value is NaN or infinite;
// JSON has no representation for either.
var ErrNonFinite = errors.New("non-finite number")

// Value is the output half of the typed conversion bridge: a value that
// knows how to emit its own JSON shape through an Encoder. Built-in and
// user-defined types are symmetric participants.
type Value interface {
	EncodeJSON(e *Encoder) error
}

// Encoder writes JSON text to an output sink. Indent 0 means compact,
// single-line output; a positive indent breaks composites across lines.
// Spacing inserts a space after ':' and, in compact mode, after ','.
//
// The first write failure reported by the sink aborts emission: every
// later operation returns the same error unchanged.
type Encoder struct {
	w       io.Writer
	indent  int
	spacing bool
	depth   int
	err     error
}

// EncodeOption configures an Encoder.
type EncodeOption func(*Encoder)

// Indent sets the number of spaces per nesting level. Zero, the default,
// selects compact output with no interior line breaks. Negative values are
// treated as zero.
func Indent(n int) EncodeOption {
	return func(e *Encoder) { e.indent = max(n, 0) }
}

// Spacing toggles a space after ':' and, in compact mode, after ','.
func Spacing(v bool) EncodeOption {
	return func(e *Encoder) { e.spacing = v }
}

// New returns an Encoder writing to w.
func New(w io.Writer, opts ...EncodeOption) *Encoder {
	e := &Encoder{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Encoder) write(s string) error {
	if e.err != nil {
		return e.err
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
	}
	return e.err
}

// newline emits a line break followed by the current level's indentation.
// In compact mode it is a no-op.
func (e *Encoder) newline() error {
	if e.indent == 0 {
		return nil
	}
	return e.write("\n" + strings.Repeat(" ", e.depth*e.indent))
}

// Null writes a JSON null.
func (e *Encoder) Null() error {
	return e.write("null")
}

// Bool writes a JSON boolean.
func (e *Encoder) Bool(v bool) error {
	if v {
		return e.write("true")
	}
	return e.write("false")
}

// Int writes a JSON number from an integer.
func (e *Encoder) Int(v int64) error {
	return e.write(strconv.FormatInt(v, 10))
}

// Uint writes a JSON number from an unsigned integer.
func (e *Encoder) Uint(v uint64) error {
	return e.write(strconv.FormatUint(v, 10))
}

// Float writes a JSON number from a float in its shortest round-trippable
// form. NaN and infinities have no JSON form and fail.
func (e *Encoder) Float(v float64) error {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if s == "NaN" || strings.HasSuffix(s, "Inf") {
		if e.err == nil {
			e.err = fmt.Errorf("%w: %s", ErrNonFinite, s)
		}
		return e.err
	}
	return e.write(s)
}

// Number writes pre-validated JSON numeral text as-is. It is the re-emit
// path for numbers whose source form should be preserved.
func (e *Encoder) Number(text string) error {
	return e.write(text)
}

// Verbatim writes a pre-formed JSON fragment as-is. The caller vouches for
// its validity; parsed scalars re-emitted from their source text are the
// intended use.
func (e *Encoder) Verbatim(s string) error {
	return e.write(s)
}

// String writes a JSON string with full escaping: quotes, backslashes, the
// short control escapes, and \u00XX for remaining control characters.
func (e *Encoder) String(s string) error {
	if e.err != nil {
		return e.err
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return e.write(b.String())
}

// Err returns the sticky sink error, if any.
func (e *Encoder) Err() error {
	return e.err
}

// Array opens an array and returns its builder. The matching Finish writes
// the closing bracket; an empty array renders as [] with no interior
// whitespace regardless of configuration.
func (e *Encoder) Array() *ArrayEncoder {
	e.write("[")
	e.depth++
	return &ArrayEncoder{e: e}
}

// ArrayEncoder frames array elements with separator and indentation logic.
// Errors latch: after the first failure remaining writes are skipped and
// Finish reports it.
type ArrayEncoder struct {
	e *Encoder
	n int
}

func (a *ArrayEncoder) sep() {
	if a.n > 0 {
		a.e.write(",")
		if a.e.indent == 0 && a.e.spacing {
			a.e.write(" ")
		}
	}
	a.e.newline()
	a.n++
}

// Value writes one element.
func (a *ArrayEncoder) Value(v Value) *ArrayEncoder {
	return a.ValueFunc(v.EncodeJSON)
}

// ValueFunc writes one element through f.
func (a *ArrayEncoder) ValueFunc(f func(*Encoder) error) *ArrayEncoder {
	if a.e.err != nil {
		return a
	}
	a.sep()
	if err := f(a.e); err != nil && a.e.err == nil {
		a.e.err = err
	}
	return a
}

// Values writes each of vs in order.
func (a *ArrayEncoder) Values(vs ...Value) *ArrayEncoder {
	for _, v := range vs {
		a.Value(v)
	}
	return a
}

// Finish closes the array and returns the first error encountered.
func (a *ArrayEncoder) Finish() error {
	a.e.depth--
	if a.n > 0 {
		a.e.newline()
	}
	return a.e.write("]")
}

// Object opens an object and returns its builder, the object counterpart
// of Array.
func (e *Encoder) Object() *ObjectEncoder {
	e.write("{")
	e.depth++
	return &ObjectEncoder{e: e}
}

// ObjectEncoder frames object members: separator logic as for arrays, plus
// a key and a colon before each value.
type ObjectEncoder struct {
	e *Encoder
	n int
}

// Member writes one key/value member.
func (o *ObjectEncoder) Member(key string, v Value) *ObjectEncoder {
	return o.MemberFunc(key, v.EncodeJSON)
}

// MemberFunc writes one member whose value is emitted by f.
func (o *ObjectEncoder) MemberFunc(key string, f func(*Encoder) error) *ObjectEncoder {
	return o.member(func(e *Encoder) error { return e.String(key) }, f)
}

// VerbatimMember writes one member whose key is a pre-formed JSON string
// fragment emitted as-is, for re-emitting parsed keys in their source form.
func (o *ObjectEncoder) VerbatimMember(rawKey string, f func(*Encoder) error) *ObjectEncoder {
	return o.member(func(e *Encoder) error { return e.Verbatim(rawKey) }, f)
}

func (o *ObjectEncoder) member(key, f func(*Encoder) error) *ObjectEncoder {
	if o.e.err != nil {
		return o
	}
	if o.n > 0 {
		o.e.write(",")
		if o.e.indent == 0 && o.e.spacing {
			o.e.write(" ")
		}
	}
	o.e.newline()
	o.n++
	if err := key(o.e); err != nil && o.e.err == nil {
		o.e.err = err
	}
	o.e.write(":")
	if o.e.spacing {
		o.e.write(" ")
	}
	if err := f(o.e); err != nil && o.e.err == nil {
		o.e.err = err
	}
	return o
}

// Finish closes the object and returns the first error encountered.
func (o *ObjectEncoder) Finish() error {
	o.e.depth--
	if o.n > 0 {
		o.e.newline()
	}
	return o.e.write("}")
}
