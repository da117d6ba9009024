// Package span provides byte ranges into JSON text and position recovery.
//
// A Span is a half-open byte interval [Start, End) into the original text.
// Spans are the only link between parsed values and the text they came
// from; the text itself is never copied.
package span

// Span is a half-open byte range [Start, End) into a source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the byte offset off falls within the span.
func (s Span) Contains(off int) bool {
	return s.Start <= off && off < s.End
}

// Of slices text to the span's range.
func (s Span) Of(text string) string {
	return text[s.Start:s.End]
}
