package raw

import (
	"errors"
	"strings"
	"testing"
)

func TestParseOK(t *testing.T) {
	ins := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-0`,
		`22`,
		`-17`,
		`3.14`,
		`0.5`,
		`1e14`,
		`1E14`,
		`1e+14`,
		`-1.5e-3`,
		`""`,
		`"hello"`,
		`"\"\\\/\b\f\n\r\t"`,
		`"\u0041"`,
		`"\uD83D\uDE00"`,
		`"日本語"`,
		`[]`,
		`[1]`,
		`[1,2,3]`,
		`[[]]`,
		`[1,[2,[3]]]`,
		`{}`,
		`{"a":1}`,
		`{"a":1,"b":2}`,
		`{"a":{"b":{"c":null}}}`,
		`{"x":1,"x":2}`,
		` [ 1 , 2 ] `,
		"\t{\n\"a\" : true\r}\n",
		`123 ` + "\t\r\n",
	}
	for _, in := range ins {
		if _, err := Parse(in); err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", in, err)
		}
	}
}

func TestParseErrOffset(t *testing.T) {
	tests := []struct {
		in  string
		off int
	}{
		{``, 0},
		{`   `, 3},
		{`nul`, 3},
		{`nule`, 3},
		{`tru`, 3},
		{`truth`, 3},
		{`falze`, 3},
		{`-`, 1},
		{`01`, 1},
		{`-01`, 2},
		{`1.`, 2},
		{`1.e5`, 2},
		{`1e`, 2},
		{`1e+`, 3},
		{`{"invalid": 123e++}`, 17},
		{`.5`, 0},
		{`+1`, 0},
		{`"abc`, 4},
		{`"ab` + "\x01" + `c"`, 3},
		{`"\q"`, 2},
		{`"\u00Gf"`, 5},
		{`"\uD800"`, 1},
		{`"\uDC00"`, 1},
		{`"\uD800\n"`, 1},
		{`"\uD800\uD801"`, 1},
		{`[`, 1},
		{`[1`, 2},
		{`[1;2]`, 2},
		{`[1,]`, 3},
		{`{`, 1},
		{`{1:2}`, 1},
		{`{"a" 1}`, 5},
		{`{"a":}`, 5},
		{`{"a":1]`, 6},
		{`{"a":1,}`, 7},
		{`12 34`, 3},
		{`null x`, 5},
		{`{} {}`, 3},
	}
	for _, tc := range tests {
		_, err := Parse(tc.in)
		if err == nil {
			t.Errorf("Parse(%q): expected error", tc.in)
			continue
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): error %v is not a *Error", tc.in, err)
			continue
		}
		if perr.Kind != SyntaxError {
			t.Errorf("Parse(%q): kind %v, want syntax error", tc.in, perr.Kind)
		}
		if got := perr.Position(); got != tc.off {
			t.Errorf("Parse(%q): error at offset %d, want %d: %v", tc.in, got, tc.off, err)
		}
	}
}

func TestParseDepthLimit(t *testing.T) {
	deep := strings.Repeat("[", maxDepth+1) + strings.Repeat("]", maxDepth+1)
	_, err := Parse(deep)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if perr.Kind != SyntaxError {
		t.Errorf("kind %v, want syntax error", perr.Kind)
	}
	if perr.Position() != maxDepth {
		t.Errorf("error at offset %d, want %d", perr.Position(), maxDepth)
	}

	ok := strings.Repeat("[", maxDepth) + strings.Repeat("]", maxDepth)
	if _, err := Parse(ok); err != nil {
		t.Errorf("nesting %d deep should parse: %v", maxDepth, err)
	}
}

func TestParsePostOrder(t *testing.T) {
	j, err := Parse(`{"a":[1,2],"b":"x"}`)
	if err != nil {
		t.Fatal(err)
	}
	// children precede parents, root is last
	for i, n := range j.nodes {
		for _, c := range n.elems {
			if c >= i {
				t.Errorf("node %d has child index %d", i, c)
			}
		}
		for _, m := range n.members {
			if m.value >= i {
				t.Errorf("node %d has member value index %d", i, m.value)
			}
		}
	}
	if root := j.Root(); root.Kind() != Object {
		t.Errorf("root kind %v, want object", root.Kind())
	}
}
