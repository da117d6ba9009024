package span

import "strings"

// LineCol resolves a byte offset to a 1-based line and column by scanning
// text from the start. The column counts bytes from the last line break,
// not runes, so it points at the same position the offset does regardless
// of the encoding of earlier characters. Cost is proportional to off;
// errors are rare enough that no persistent line index is kept.
//
// Offsets past the end of text resolve as if at the end, so the position
// of an unexpected-end-of-input error lands after the last character.
func LineCol(text string, off int) (line, col int) {
	if off > len(text) {
		off = len(text)
	}
	line = 1
	last := 0
	for i := 0; i < off; i++ {
		if text[i] == '\n' {
			line++
			last = i + 1
		}
	}
	return line, off - last + 1
}

// Line returns the full source line containing the byte offset, with line
// terminator characters stripped.
func Line(text string, off int) string {
	if off > len(text) {
		off = len(text)
	}
	start := strings.LastIndexByte(text[:off], '\n') + 1
	end := strings.IndexByte(text[off:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += off
	}
	return strings.TrimRight(text[start:end], "\r")
}
