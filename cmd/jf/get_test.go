package main

import (
	"testing"

	"github.com/rawjson-format/go-rawjson/raw"
)

func TestLookup(t *testing.T) {
	in := `{"users": [{"name": "bob"}, {"name": "eve"}], "count": 2}`
	j, err := raw.Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	root := j.Root()

	tests := []struct {
		path string
		want string
	}{
		{"", in},
		{".", in},
		{"count", `2`},
		{"users", `[{"name": "bob"}, {"name": "eve"}]`},
		{"users.0", `{"name": "bob"}`},
		{"users.0.name", `"bob"`},
		{"users.1.name", `"eve"`},
	}
	for _, tc := range tests {
		v, err := lookup(root, tc.path)
		if err != nil {
			t.Errorf("lookup(%q): %v", tc.path, err)
			continue
		}
		if got := v.Raw(); got != tc.want {
			t.Errorf("lookup(%q): got %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestLookupErrors(t *testing.T) {
	j, err := raw.Parse(`{"users": [{"name": "bob"}]}`)
	if err != nil {
		t.Fatal(err)
	}
	root := j.Root()

	for _, path := range []string{
		"missing",
		"users.x",
		"users.1",
		"users.-1",
		"users.0.name.deeper",
	} {
		if _, err := lookup(root, path); err == nil {
			t.Errorf("lookup(%q): expected error", path)
		}
	}
}
