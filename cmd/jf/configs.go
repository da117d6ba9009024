package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/rawjson-format/go-rawjson/encode"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='compact single-line output'"`
	Spacing bool `cli:"name=s aliases=spacing desc='space after : and, when compact, after ,'"`
	Color   bool `cli:"name=color desc='force colorized output'"`

	Indent   int
	Out      string
	CloseOut func() error

	Main *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	indent := cfg.Indent
	if cfg.Compact {
		indent = 0
	}
	return []encode.EncodeOption{
		encode.Indent(indent),
		encode.Spacing(cfg.Spacing),
	}
}

// colors returns the palette when output goes to a terminal or -color was
// given, nil otherwise.
func (cfg *MainConfig) colors() *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return nil
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return encode.NewColors()
	}
	return nil
}
