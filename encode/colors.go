package encode

import (
	"strings"

	"github.com/fatih/color"
)

// ColorClass selects the palette entry for a rendered token.
type ColorClass int

const (
	NullColor ColorClass = iota
	BoolColor
	NumberColor
	StringColor
	FieldColor
	SepColor
)

// Colors maps token classes to sprintf-style color functions for terminal
// viewing of JSON documents.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorClass]func(string, ...any) string
}

func colorDefault(s string, _ ...any) string {
	return s
}

// NewColors returns the default palette.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorClass]func(string, ...any) string{},
	}
	colors.Map[NullColor] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[BoolColor] = color.CyanString
	colors.Map[NumberColor] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[StringColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[FieldColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[SepColor] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// Color renders s in the palette entry for class.
func (c *Colors) Color(class ColorClass, s string) string {
	f := c.Map[class]
	if f == nil {
		f = c.Default
	}
	if f == nil {
		return s
	}
	return f(s)
}
