package raw

import (
	"unicode/utf16"

	"github.com/rawjson-format/go-rawjson/span"
)

// maxDepth bounds array/object nesting so hostile input turns into a syntax
// error instead of uncontrolled stack growth.
const maxDepth = 10000

// Parse consumes exactly one JSON value from text. Trailing bytes are
// accepted only if they are all whitespace; anything else is a syntax error
// at the offset of the first unexpected byte. On failure the returned error
// is a *Error carrying the exact byte offset of the fault.
func Parse(text string) (*JSON, error) {
	p := &parser{text: text}
	if _, err := p.parseValue(); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.text) {
		return nil, syntaxErr(p.pos, "unexpected character %q after top-level value", p.text[p.pos])
	}
	return &JSON{text: text, nodes: p.nodes}, nil
}

// parser is a single-pass recursive-descent reader. It appends finished
// nodes to a growing table; composites collect their children's indices
// first and are appended last, so no entry is ever revisited.
type parser struct {
	text  string
	pos   int
	depth int
	nodes []node
}

func (p *parser) skipSpace() {
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) push(n node) int {
	p.nodes = append(p.nodes, n)
	return len(p.nodes) - 1
}

// parseValue parses one value and returns the index of its node.
func (p *parser) parseValue() (int, error) {
	p.skipSpace()
	if p.pos >= len(p.text) {
		return 0, syntaxErr(p.pos, "unexpected end of input, expected a value")
	}
	switch c := p.text[p.pos]; {
	case c == 'n':
		return p.parseLiteral("null", Null)
	case c == 't':
		return p.parseLiteral("true", Bool)
	case c == 'f':
		return p.parseLiteral("false", Bool)
	case c == '"':
		return p.parseString()
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == '-' || ('0' <= c && c <= '9'):
		return p.parseNumber()
	default:
		return 0, syntaxErr(p.pos, "unexpected character %q, expected a value", c)
	}
}

// parseLiteral matches lit verbatim. A mismatch is reported at the first
// byte that deviates, not at the start of the literal.
func (p *parser) parseLiteral(lit string, kind Kind) (int, error) {
	start := p.pos
	for i := 0; i < len(lit); i++ {
		if start+i >= len(p.text) {
			return 0, syntaxErr(len(p.text), "unexpected end of input in %q", lit)
		}
		if p.text[start+i] != lit[i] {
			return 0, syntaxErr(start+i, "unexpected character %q in %q", p.text[start+i], lit)
		}
	}
	p.pos = start + len(lit)
	return p.push(node{kind: kind, text: span.Span{Start: start, End: p.pos}}), nil
}

// number = [ minus ] int [ frac ] [ exp ]
func (p *parser) parseNumber() (int, error) {
	start := p.pos
	if p.pos < len(p.text) && p.text[p.pos] == '-' {
		p.pos++
	}

	// int: no leading zero unless the integer part is exactly "0"
	switch {
	case p.pos < len(p.text) && p.text[p.pos] == '0':
		p.pos++
	default:
		if err := p.digits(); err != nil {
			return 0, err
		}
	}

	// [ frac ]
	if p.pos < len(p.text) && p.text[p.pos] == '.' {
		p.pos++
		if err := p.digits(); err != nil {
			return 0, err
		}
	}

	// [ exp ]
	if p.pos < len(p.text) && (p.text[p.pos] == 'e' || p.text[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.text) && (p.text[p.pos] == '+' || p.text[p.pos] == '-') {
			p.pos++
		}
		if err := p.digits(); err != nil {
			return 0, err
		}
	}

	return p.push(node{kind: Number, text: span.Span{Start: start, End: p.pos}}), nil
}

// digits consumes one or more ASCII digits, failing at the current offset
// when none is present.
func (p *parser) digits() error {
	if p.pos >= len(p.text) {
		return syntaxErr(p.pos, "unexpected end of input in number")
	}
	if c := p.text[p.pos]; c < '0' || c > '9' {
		return syntaxErr(p.pos, "unexpected character %q in number", c)
	}
	for p.pos < len(p.text) && '0' <= p.text[p.pos] && p.text[p.pos] <= '9' {
		p.pos++
	}
	return nil
}

// parseString validates a string without unescaping it. The span covers the
// surrounding quotes; escaped records whether any escape sequence was seen.
func (p *parser) parseString() (int, error) {
	sp, escaped, err := p.scanString()
	if err != nil {
		return 0, err
	}
	return p.push(node{kind: String, text: sp, escaped: escaped}), nil
}

// scanString consumes a quoted string starting at p.pos and returns its
// span. Used for both string values and object keys; keys are not nodes.
func (p *parser) scanString() (span.Span, bool, error) {
	start := p.pos
	p.pos++ // opening quote, checked by the caller
	escaped := false
	for {
		if p.pos >= len(p.text) {
			return span.Span{}, false, syntaxErr(p.pos, "unexpected end of input in string")
		}
		switch c := p.text[p.pos]; {
		case c == '"':
			p.pos++
			return span.Span{Start: start, End: p.pos}, escaped, nil
		case c == '\\':
			escaped = true
			if err := p.scanEscape(); err != nil {
				return span.Span{}, false, err
			}
		case c < 0x20:
			return span.Span{}, false, syntaxErr(p.pos, "raw control character 0x%02x in string", c)
		default:
			p.pos++
		}
	}
}

// scanEscape validates one escape sequence starting at the backslash.
// \uXXXX escapes encoding a high surrogate must be followed by a low
// surrogate escape; lone surrogates are rejected at the escape's offset.
func (p *parser) scanEscape() error {
	esc := p.pos
	p.pos++ // backslash
	if p.pos >= len(p.text) {
		return syntaxErr(p.pos, "unexpected end of input in string escape")
	}
	switch p.text[p.pos] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		p.pos++
		return nil
	case 'u':
		p.pos++
		hi, err := p.hex4()
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(rune(hi)) {
			if hi >= 0xDC00 {
				return syntaxErr(esc, "unpaired low surrogate \\u%04X", hi)
			}
			if p.pos+1 >= len(p.text) || p.text[p.pos] != '\\' || p.text[p.pos+1] != 'u' {
				return syntaxErr(esc, "unpaired high surrogate \\u%04X", hi)
			}
			p.pos += 2
			lo, err := p.hex4()
			if err != nil {
				return err
			}
			if lo < 0xDC00 || lo > 0xDFFF {
				return syntaxErr(esc, "invalid surrogate pair \\u%04X\\u%04X", hi, lo)
			}
		}
		return nil
	default:
		return syntaxErr(p.pos, "invalid escape character %q in string", p.text[p.pos])
	}
}

func (p *parser) hex4() (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		if p.pos >= len(p.text) {
			return 0, syntaxErr(p.pos, "unexpected end of input in \\u escape")
		}
		c := p.text[p.pos]
		switch {
		case '0' <= c && c <= '9':
			v = v<<4 | uint32(c-'0')
		case 'a' <= c && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		case 'A' <= c && c <= 'F':
			v = v<<4 | uint32(c-'A'+10)
		default:
			return 0, syntaxErr(p.pos, "invalid hex digit %q in \\u escape", c)
		}
		p.pos++
	}
	return v, nil
}

func (p *parser) parseArray() (int, error) {
	start := p.pos
	if p.depth >= maxDepth {
		return 0, syntaxErr(start, "exceeded maximum nesting depth of %d", maxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	p.pos++ // '['
	p.skipSpace()
	if p.pos < len(p.text) && p.text[p.pos] == ']' {
		p.pos++
		return p.push(node{kind: Array, text: span.Span{Start: start, End: p.pos}}), nil
	}

	var elems []int
	for {
		idx, err := p.parseValue()
		if err != nil {
			return 0, err
		}
		elems = append(elems, idx)

		p.skipSpace()
		if p.pos >= len(p.text) {
			return 0, syntaxErr(p.pos, "unexpected end of input in array")
		}
		switch p.text[p.pos] {
		case ']':
			p.pos++
			return p.push(node{kind: Array, text: span.Span{Start: start, End: p.pos}, elems: elems}), nil
		case ',':
			p.pos++
		default:
			return 0, syntaxErr(p.pos, "unexpected character %q in array, expected ',' or ']'", p.text[p.pos])
		}
	}
}

func (p *parser) parseObject() (int, error) {
	start := p.pos
	if p.depth >= maxDepth {
		return 0, syntaxErr(start, "exceeded maximum nesting depth of %d", maxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	p.pos++ // '{'
	p.skipSpace()
	if p.pos < len(p.text) && p.text[p.pos] == '}' {
		p.pos++
		return p.push(node{kind: Object, text: span.Span{Start: start, End: p.pos}}), nil
	}

	var members []member
	for {
		p.skipSpace()
		if p.pos >= len(p.text) {
			return 0, syntaxErr(p.pos, "unexpected end of input in object")
		}
		if p.text[p.pos] != '"' {
			return 0, syntaxErr(p.pos, "unexpected character %q in object, expected a string key", p.text[p.pos])
		}
		key, keyEscaped, err := p.scanString()
		if err != nil {
			return 0, err
		}

		p.skipSpace()
		if p.pos >= len(p.text) {
			return 0, syntaxErr(p.pos, "unexpected end of input in object, expected ':'")
		}
		if p.text[p.pos] != ':' {
			return 0, syntaxErr(p.pos, "unexpected character %q in object, expected ':'", p.text[p.pos])
		}
		p.pos++

		idx, err := p.parseValue()
		if err != nil {
			return 0, err
		}
		members = append(members, member{key: key, keyEscaped: keyEscaped, value: idx})

		p.skipSpace()
		if p.pos >= len(p.text) {
			return 0, syntaxErr(p.pos, "unexpected end of input in object")
		}
		switch p.text[p.pos] {
		case '}':
			p.pos++
			return p.push(node{kind: Object, text: span.Span{Start: start, End: p.pos}, members: members}), nil
		case ',':
			p.pos++
		default:
			return 0, syntaxErr(p.pos, "unexpected character %q in object, expected ',' or '}'", p.text[p.pos])
		}
	}
}
