package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	rawjson "github.com/rawjson-format/go-rawjson"
	"github.com/rawjson-format/go-rawjson/raw"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a member/index path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getArg(cfg, cc.Out, arg, path); err != nil {
			return err
		}
	}
	return nil
}

func getArg(cfg *GetConfig, w io.Writer, file, path string) error {
	text, err := readArg(file)
	if err != nil {
		return err
	}
	j, err := raw.Parse(text)
	if err != nil {
		return positionedErr(file, text, err)
	}
	v, err := lookup(j.Root(), path)
	if err != nil {
		return fmt.Errorf("error querying %s with %q: %w", file, path, err)
	}
	out := rawjson.Reformat(v)
	if colors := cfg.colors(); colors != nil {
		out = rawjson.ColorValue(v, colors)
	}
	if err := rawjson.RenderTo(w, out, cfg.encOpts()...); err != nil {
		return fmt.Errorf("error rendering %s: %w", file, err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// lookup walks a dotted path like "users.0.name": each segment names an
// object member, or an element index when the current value is an array.
func lookup(v raw.Value, path string) (raw.Value, error) {
	if path == "" || path == "." {
		return v, nil
	}
	for _, seg := range strings.Split(path, ".") {
		switch v.Kind() {
		case raw.Object:
			m, ok := v.Member(seg)
			if !ok {
				return v, fmt.Errorf("no member %q", seg)
			}
			v = m
		case raw.Array:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return v, fmt.Errorf("array index %q: %w", seg, err)
			}
			elems, err := v.Elems()
			if err != nil {
				return v, err
			}
			if i < 0 || i >= len(elems) {
				return v, fmt.Errorf("index %d out of range for array with %d elements", i, len(elems))
			}
			v = elems[i]
		default:
			return v, fmt.Errorf("cannot descend into %s value at %q", v.Kind(), seg)
		}
	}
	return v, nil
}
