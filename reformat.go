package rawjson

import (
	"github.com/rawjson-format/go-rawjson/encode"
	"github.com/rawjson-format/go-rawjson/raw"
)

// Reformat adapts a parsed value to the output bridge. Scalars are emitted
// verbatim from their source text, so numeral and escape forms survive a
// round trip; arrays and objects are re-framed by the encoder, which is
// what makes parse-then-render reindentation work.
func Reformat(v raw.Value) encode.Value {
	return encode.Func(func(e *encode.Encoder) error {
		return reformat(v, e, nil)
	})
}

// ColorValue is Reformat with each token wrapped in the palette entry for
// its kind. Only meaningful for terminal sinks.
func ColorValue(v raw.Value, colors *encode.Colors) encode.Value {
	return encode.Func(func(e *encode.Encoder) error {
		return reformat(v, e, colors)
	})
}

func reformat(v raw.Value, e *encode.Encoder, colors *encode.Colors) error {
	switch v.Kind() {
	case raw.Null:
		return e.Verbatim(colorize(colors, encode.NullColor, v.Raw()))
	case raw.Bool:
		return e.Verbatim(colorize(colors, encode.BoolColor, v.Raw()))
	case raw.Number:
		return e.Verbatim(colorize(colors, encode.NumberColor, v.Raw()))
	case raw.String:
		return e.Verbatim(colorize(colors, encode.StringColor, v.Raw()))
	case raw.Array:
		elems, err := v.Elems()
		if err != nil {
			return err
		}
		a := e.Array()
		for _, el := range elems {
			a.ValueFunc(func(e *encode.Encoder) error {
				return reformat(el, e, colors)
			})
		}
		return a.Finish()
	case raw.Object:
		members, err := v.Members()
		if err != nil {
			return err
		}
		o := e.Object()
		for _, m := range members {
			key := m.KeySpan().Of(v.JSON().Text())
			val := m.Value()
			o.VerbatimMember(colorize(colors, encode.FieldColor, key), func(e *encode.Encoder) error {
				return reformat(val, e, colors)
			})
		}
		return o.Finish()
	}
	return nil
}

func colorize(colors *encode.Colors, class encode.ColorClass, s string) string {
	if colors == nil {
		return s
	}
	return colors.Color(class, s)
}
