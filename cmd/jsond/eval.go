package main

import (
	"fmt"

	"github.com/signadot/jsond/eval"
	"github.com/signadot/jsond/ir"

	"github.com/scott-cotton/cli"
)

func evalDocs(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	input := args[0]
	return cfg.eachDoc(cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := eval.Eval(input, doc)
		if err != nil {
			return err
		}
		return cfg.writeDoc(cc.Out, res)
	})
}

func selectDocs(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires a JSONPath query", cli.ErrUsage)
	}
	q := args[0]
	return cfg.eachDoc(cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := eval.Select(q, doc)
		if err != nil {
			return err
		}
		return cfg.writeDoc(cc.Out, res)
	})
}
