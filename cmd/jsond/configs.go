package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsond/encode"
	"github.com/signadot/jsond/format"
	"github.com/signadot/jsond/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v desc='log failed operations'"`
	JWCC    bool `cli:"name=c aliases=jwcc desc='accept comments and trailing commas'"`
	Strict  bool `cli:"name=strict desc='accept only RFC 8259 numbers'"`
	Compact bool `cli:"name=compact desc='output without whitespace'"`
	Indent  int  `cli:"name=indent desc='spaces per level in pretty output'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// parseOpts reports errors with a source excerpt on stderr.
func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return append(cfg.syntaxOpts(),
		parse.Report(os.Stderr),
		parse.ReportColor(isTerminal(os.Stderr)))
}

func (cfg *MainConfig) syntaxOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.JWCC {
		res = append(res, parse.JWCC())
	}
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Pretty(!cfg.Compact),
		encode.Indent(cfg.Indent),
		encode.EncodeScalars(true),
	}
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Minify bool

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type EditConfig struct {
	*MainConfig
	Op string

	Edit *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='apply an RFC 7396 merge patch'"`
	Diff   bool `cli:"name=diff desc='apply the output of jsond diff'"`
	Create bool `cli:"name=create desc='print the merge patch from the first file to the second'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Select *cli.Command
}
