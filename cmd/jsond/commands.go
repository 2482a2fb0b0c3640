package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jsond").
		WithSynopsis("jsond [opts] command [opts]").
		WithDescription("jsond reads, queries and edits JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsondMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg, false),
			FmtCommand(cfg, true),
			CheckCommand(cfg),
			GetCommand(cfg),
			KeysCommand(cfg),
			EditCommand(cfg, "set"),
			EditCommand(cfg, "add"),
			EditCommand(cfg, "del"),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg),
			SelectCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents, indented and in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig, minify bool) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg, Minify: minify}
	name, desc := "fmt", "rewrite documents indented, one member per line"
	if minify {
		name, desc = "min", "rewrite documents without whitespace"
	}
	return cli.NewCommandAt(&cfg.Fmt, name).
		WithSynopsis(name + " [files]").
		WithDescription(desc).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDocs(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-q] [files]").
		WithDescription("check that documents parse, reporting the first error in each").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a dot path such as a.b.0").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [path] [files]").
		WithDescription("list the keys of the container at a dot path, one per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

var editDescriptions = map[string]string{
	"set": "replace the existing value at a dot path",
	"add": "set the value at a dot path, creating missing keys",
	"del": "delete the key at a dot path",
}

func EditCommand(mainCfg *MainConfig, op string) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg, Op: op}
	synopsis := op + " <path> <json> [file]"
	if op == "del" {
		synopsis = op + " <path> [file]"
	}
	return cli.NewCommandAt(&cfg.Edit, op).
		WithSynopsis(synopsis).
		WithDescription(editDescriptions[op]).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-r] a b").
		WithOpts(opts...).
		WithDescription("print the structural difference of two documents, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-merge|-diff] <patchfile> [files] or patch -create a b").
		WithDescription("apply an RFC 6902 JSON Patch, an RFC 7396 merge patch or a jsond diff to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchDocs(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalDocs(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression against each document.

The document is bound to 'doc'.  query("a.b") returns the value at a dot
path and has("a.b") reports whether it exists.  See
https://expr-lang.org/docs/language-definition for the language.`

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s").
		WithSynopsis("select <jsonpath> [files]").
		WithDescription("select values with an RFC 9535 JSONPath query, printing an array of matches").
		WithRun(func(cc *cli.Context, args []string) error {
			return selectDocs(cfg, cc, args)
		})
}
