package main

import (
	"errors"
	"fmt"

	"github.com/signadot/jsond"
	"github.com/signadot/jsond/ir"
	"github.com/signadot/jsond/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachDoc(cc, args, func(_ string, doc *ir.Node) error {
		return cfg.writeDoc(cc.Out, doc)
	})
}

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		var out []byte
		if cfg.Minify {
			out, err = jsond.Minify(d, cfg.syntaxOpts()...)
		} else {
			out, err = jsond.Beautify(d, cfg.Indent, cfg.syntaxOpts()...)
		}
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(append(out, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var errs []error
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		opts := cfg.parseOpts()
		if cfg.Quiet {
			opts = cfg.syntaxOpts()
		}
		doc, err := parse.Parse(d, opts...)
		if err != nil {
			theLog.Debug("check failed", "file", arg, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", arg, err))
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok (%s, %d keys)\n", arg, doc.Type, doc.Len())
		}
		ir.Release(doc)
	}
	if len(errs) != 0 {
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%d of %d failed\n", len(errs), len(args))
		}
		theLog.Debug("check", "error", errors.Join(errs...))
		return cli.ExitCodeErr(1)
	}
	return nil
}
