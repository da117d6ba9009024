package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/rawjson-format/go-rawjson/raw"
	"github.com/rawjson-format/go-rawjson/span"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		text, err := readArg(arg)
		if err != nil {
			return err
		}
		if _, err := raw.Parse(text); err != nil {
			bad++
			fmt.Fprintln(cc.Out, positionedErr(arg, text, err))
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// positionedErr resolves a positioned error's offset against the input and
// renders a file:line:col report with the offending source line underneath.
func positionedErr(name, text string, err error) error {
	var perr *raw.Error
	if !errors.As(err, &perr) {
		return fmt.Errorf("%s: %w", name, err)
	}
	off := perr.Position()
	line, col := span.LineCol(text, off)
	src := span.Line(text, off)
	return fmt.Errorf("%s:%d:%d: %w\n%s\n%s^", name, line, col, err, src, strings.Repeat(" ", col-1))
}
