package main

import (
	"fmt"

	"github.com/signadot/jsond"
	"github.com/signadot/jsond/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dot path", cli.ErrUsage)
	}
	path := args[0]
	return cfg.eachDoc(cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := jsond.Query(path, doc)
		if err != nil {
			return err
		}
		return cfg.writeDoc(cc.Out, res)
	})
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path := ""
	if len(args) != 0 {
		path, args = args[0], args[1:]
	}
	return cfg.eachDoc(cc, args, func(_ string, doc *ir.Node) error {
		at := doc
		if path != "" {
			at, err = jsond.Query(path, doc)
			if err != nil {
				return err
			}
		}
		if !at.IsContainer() {
			return fmt.Errorf("%w: %s is a %s", ir.ErrContainer, path, at.Type)
		}
		for k := jsond.Begin(at); k != nil; k = jsond.NextKey(k) {
			if _, err := fmt.Fprintln(cc.Out, jsond.KeyOf(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	nArgs := 2
	if cfg.Op == "del" {
		nArgs = 1
	}
	if len(args) < nArgs || len(args) > nArgs+1 {
		return fmt.Errorf("%w: %s expects %d arguments and an optional file, got %v", cli.ErrUsage, cfg.Op, nArgs, args)
	}
	path := args[0]
	var v *ir.Node
	if cfg.Op != "del" {
		v, err = cfg.parseValue(args[1])
		if err != nil {
			return err
		}
	}
	return cfg.eachDoc(cc, args[nArgs:], func(_ string, doc *ir.Node) error {
		var err error
		switch cfg.Op {
		case "set":
			err = jsond.Update(path, doc, v)
		case "add":
			err = jsond.Add(path, doc, v)
		case "del":
			err = jsond.Delete(path, doc)
		}
		if err != nil {
			return err
		}
		return cfg.writeDoc(cc.Out, doc)
	})
}
