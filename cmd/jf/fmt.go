package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	rawjson "github.com/rawjson-format/go-rawjson"
	"github.com/rawjson-format/go-rawjson/debug"
	"github.com/rawjson-format/go-rawjson/raw"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := fmtFile(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, w io.Writer, file string) error {
	text, err := readArg(file)
	if err != nil {
		return err
	}
	j, err := raw.Parse(text)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %s: %v\n", file, err)
		}
		return positionedErr(file, text, err)
	}
	v := rawjson.Reformat(j.Root())
	if colors := cfg.colors(); colors != nil {
		v = rawjson.ColorValue(j.Root(), colors)
	}
	if err := rawjson.RenderTo(w, v, cfg.encOpts()...); err != nil {
		if debug.Encode() {
			debug.Logf("render %s: %v\n", file, err)
		}
		return fmt.Errorf("error rendering %s: %w", file, err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func readArg(file string) (string, error) {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", file, err)
	}
	return string(d), nil
}
