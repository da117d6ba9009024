package rawjson_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	rawjson "github.com/rawjson-format/go-rawjson"
	"github.com/rawjson-format/go-rawjson/raw"
)

type person struct {
	Name  string
	Age   int64
	Email *string
}

func (p *person) DecodeRawJSON(v raw.Value) error {
	name, err := v.RequiredMember("name")
	if err != nil {
		return err
	}
	if p.Name, err = rawjson.String(name); err != nil {
		return err
	}
	age, err := v.RequiredMember("age")
	if err != nil {
		return err
	}
	if p.Age, err = rawjson.Int64(age); err != nil {
		return err
	}
	if email, ok := v.Member("email"); ok {
		if p.Email, err = rawjson.Nullable(email, rawjson.String); err != nil {
			return err
		}
	}
	return nil
}

func TestParseStruct(t *testing.T) {
	p, err := rawjson.Parse[person](`{"name": "Alice", "age": 30}`)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Alice" || p.Age != 30 || p.Email != nil {
		t.Errorf("got %+v", p)
	}

	p, err = rawjson.Parse[person](`{"name": "Bob", "age": 7, "email": "bob@example.com"}`)
	if err != nil {
		t.Fatal(err)
	}
	if p.Email == nil || *p.Email != "bob@example.com" {
		t.Errorf("email: %v", p.Email)
	}

	// explicit null and absent member decode the same way
	p, err = rawjson.Parse[person](`{"name": "Cas", "age": 1, "email": null}`)
	if err != nil {
		t.Fatal(err)
	}
	if p.Email != nil {
		t.Errorf("email: %v", p.Email)
	}
}

func TestParseStructErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind raw.ErrorKind
		off  int
	}{
		{`{"name": "Alice"}`, raw.MissingField, 0},
		{`{"name": 1, "age": 30}`, raw.TypeMismatch, 9},
		{`{"name": "A", "age": "x"}`, raw.TypeMismatch, 21},
		{`{"name": "A", "age": 1e400}`, raw.RangeOrFormat, 21},
		{`{"name": "A", "age": 30`, raw.SyntaxError, 23},
	}
	for _, tc := range tests {
		_, err := rawjson.Parse[person](tc.in)
		var perr *raw.Error
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): %v is not a *raw.Error", tc.in, err)
			continue
		}
		if perr.Kind != tc.kind {
			t.Errorf("Parse(%q): kind %v, want %v", tc.in, perr.Kind, tc.kind)
		}
		if got := perr.Position(); got != tc.off {
			t.Errorf("Parse(%q): offset %d, want %d", tc.in, got, tc.off)
		}
	}
}

func TestNumericConversions(t *testing.T) {
	conv := func(t *testing.T, in string) raw.Value {
		t.Helper()
		j, err := raw.Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		return j.Root()
	}

	if n, err := rawjson.Int64(conv(t, `-9007199254740993`)); err != nil || n != -9007199254740993 {
		t.Errorf("Int64: %v, %v", n, err)
	}
	if n, err := rawjson.Int(conv(t, `42`)); err != nil || n != 42 {
		t.Errorf("Int: %v, %v", n, err)
	}
	if n, err := rawjson.Uint64(conv(t, `18446744073709551615`)); err != nil || n != 18446744073709551615 {
		t.Errorf("Uint64: %v, %v", n, err)
	}
	if f, err := rawjson.Float64(conv(t, `-1.5e3`)); err != nil || f != -1500 {
		t.Errorf("Float64: %v, %v", f, err)
	}
	// integral type applied to a fractional numeral
	if _, err := rawjson.Int64(conv(t, `1.5`)); err == nil {
		t.Error("Int64(1.5) should fail")
	}
	// overflow keeps the numeral's position
	_, err := rawjson.Uint64(conv(t, ` 99999999999999999999`))
	var perr *raw.Error
	if !errors.As(err, &perr) || perr.Kind != raw.RangeOrFormat || perr.Position() != 1 {
		t.Errorf("Uint64 overflow: %v", err)
	}
	// negative numeral for an unsigned type
	if _, err := rawjson.Uint64(conv(t, `-1`)); err == nil {
		t.Error("Uint64(-1) should fail")
	}
}

func TestSliceConversion(t *testing.T) {
	j, err := raw.Parse(`[1, 2, 3]`)
	if err != nil {
		t.Fatal(err)
	}
	ns, err := rawjson.Slice(j.Root(), rawjson.Int64)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int64{1, 2, 3}, ns); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// element failure keeps the element's position
	j, err = raw.Parse(`[1, "x", 3]`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = rawjson.Slice(j.Root(), rawjson.Int64)
	var perr *raw.Error
	if !errors.As(err, &perr) || perr.Position() != 4 {
		t.Errorf("element error: %v", err)
	}
}

func TestNullableSlice(t *testing.T) {
	j, err := raw.Parse(`[1, null, 2]`)
	if err != nil {
		t.Fatal(err)
	}
	ns, err := rawjson.Slice(j.Root(), func(v raw.Value) (*int64, error) {
		return rawjson.Nullable(v, rawjson.Int64)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(ns) != 3 || ns[0] == nil || ns[1] != nil || ns[2] == nil {
		t.Fatalf("got %v", ns)
	}
	if *ns[0] != 1 || *ns[2] != 2 {
		t.Errorf("got %v, %v", *ns[0], *ns[2])
	}
}

func TestFixedConversion(t *testing.T) {
	j, err := raw.Parse(`[1.0, 2.0]`)
	if err != nil {
		t.Fatal(err)
	}
	xy, err := rawjson.Fixed(j.Root(), 2, rawjson.Float64)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{1, 2}, xy); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	_, err = rawjson.Fixed(j.Root(), 3, rawjson.Float64)
	var perr *raw.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *raw.Error, got %v", err)
	}
	if perr.Kind != raw.TypeMismatch || perr.Position() != 0 {
		t.Errorf("got %v", perr)
	}
	if want := "expected an array with 3 elements, but got 2 elements"; perr.Msg != want {
		t.Errorf("msg %q, want %q", perr.Msg, want)
	}
}

func TestMapConversion(t *testing.T) {
	j, err := raw.Parse(`{"a": 1, "b": 2, "a": 9}`)
	if err != nil {
		t.Fatal(err)
	}
	m, err := rawjson.Map(j.Root(), rawjson.Int64)
	if err != nil {
		t.Fatal(err)
	}
	// first occurrence of a duplicate key wins
	if d := cmp.Diff(map[string]int64{"a": 1, "b": 2}, m); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
