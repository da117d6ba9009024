// Package raw parses JSON text into a zero-copy value representation.
//
// Parse validates the full text against a strict RFC 8259 grammar and builds
// a flat table of nodes, each holding a byte span into the original text.
// Scalars stay unparsed: numbers keep their numeral text, strings keep their
// quoted form plus a flag recording whether any escape was seen, so reading
// an escape-free string never copies.
//
// The table is built in post-order: a composite node is appended only after
// all of its children, so every child index is smaller than its parent's and
// the last node is the root. Nothing is mutated after a successful parse;
// a JSON and any Value handles into it may be read from many goroutines.
package raw

import "github.com/rawjson-format/go-rawjson/span"

// node is one entry in the parse table.
type node struct {
	kind    Kind
	text    span.Span
	escaped bool     // strings: at least one escape sequence present
	elems   []int    // arrays: child node indices in document order
	members []member // objects: members in document order, duplicates kept
}

// member is an object member: a key span plus the value's node index.
// Keys are not nodes; they exist only as spans.
type member struct {
	key        span.Span
	keyEscaped bool
	value      int
}

// JSON is parsed JSON text: the original text plus the completed node table.
// It is immutable after Parse and owns everything its Value handles refer to.
type JSON struct {
	text  string
	nodes []node
}

// Text returns the original JSON text.
func (j *JSON) Text() string {
	return j.text
}

// Root returns the top-level value, the entry point for traversal.
func (j *JSON) Root() Value {
	return Value{json: j, index: len(j.nodes) - 1}
}

// ValueAt finds the most specific value whose span contains the byte offset,
// or ok=false when the offset falls outside the document's span. Useful for
// recovering the context of a positioned error.
func (j *JSON) ValueAt(off int) (Value, bool) {
	v := j.Root()
	if !v.Span().Contains(off) {
		return Value{}, false
	}
descend:
	for {
		for _, c := range v.children() {
			if c.Span().Contains(off) {
				v = c
				continue descend
			}
		}
		return v, true
	}
}
