package rawjson_test

import (
	"errors"
	"testing"

	"github.com/rawjson-format/go-rawjson/raw"
	"github.com/rawjson-format/go-rawjson/span"
)

// A positioned error resolves against the caller's copy of the text: the
// error itself carries only the byte offset.
func TestErrorPositionResolution(t *testing.T) {
	text := "{\n  \"invalid\": 123e++\n}"
	_, err := raw.Parse(text)
	var perr *raw.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *raw.Error, got %v", err)
	}
	off := perr.Position()
	// the second '+' of the malformed exponent
	if text[off] != '+' || text[off-1] != '+' {
		t.Fatalf("offset %d does not point at the second '+'", off)
	}
	line, col := span.LineCol(text, off)
	if line != 2 || col != 19 {
		t.Errorf("LineCol: got %d:%d, want 2:19", line, col)
	}
	if got := span.Line(text, off); got != `  "invalid": 123e++` {
		t.Errorf("Line: got %q", got)
	}
}
