package rawjson

import (
	"io"
	"strings"

	"github.com/rawjson-format/go-rawjson/encode"
)

// Render renders v as JSON text. With no options the output is compact:
// single line, no interior whitespace beyond required separators.
func Render(v encode.Value, opts ...encode.EncodeOption) (string, error) {
	var b strings.Builder
	if err := RenderTo(&b, v, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo renders v as JSON text into w. A write failure reported by w
// aborts emission and is returned unchanged.
func RenderTo(w io.Writer, v encode.Value, opts ...encode.EncodeOption) error {
	return v.EncodeJSON(encode.New(w, opts...))
}
