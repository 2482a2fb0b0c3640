package main

import (
	"fmt"

	"github.com/signadot/jsond/ir"
	"github.com/signadot/jsond/libdiff"
	"github.com/signadot/jsond/patch"

	"github.com/scott-cotton/cli"
)

func patchDocs(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Create {
		return createMerge(cfg, cc, args)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	if cfg.Merge && cfg.Diff {
		return fmt.Errorf("%w: at most one of -merge and -diff", cli.ErrUsage)
	}
	var apply func(doc *ir.Node) (*ir.Node, error)
	switch {
	case cfg.Merge:
		apply = func(doc *ir.Node) (*ir.Node, error) {
			return patch.Merge(doc, p)
		}
	case cfg.Diff:
		apply = func(doc *ir.Node) (*ir.Node, error) {
			return libdiff.Patch(doc, p)
		}
	default:
		ops, err := patch.Decode(p)
		if err != nil {
			return fmt.Errorf("error decoding patch %s: %w", args[0], err)
		}
		theLog.Debug("decoded json patch", "file", args[0], "ops", ops.Len())
		apply = ops.Apply
	}
	return cfg.eachDoc(cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := apply(doc)
		if err != nil {
			return err
		}
		return cfg.writeDoc(cc.Out, res)
	})
}

func createMerge(cfg *PatchConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: patch -create requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	mp, err := patch.CreateMerge(a, b)
	if err != nil {
		return err
	}
	return cfg.writeDoc(cc.Out, mp)
}
