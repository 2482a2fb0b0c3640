package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsond/encode"
	"github.com/signadot/jsond/ir"
	"github.com/signadot/jsond/parse"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// eachDoc parses each file, or stdin when there are none, and calls f on
// the result.
func (cfg *MainConfig) eachDoc(cc *cli.Context, files []string, f func(file string, doc *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		ir.Release(doc)
	}
	return nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, n *ir.Node) error {
	opts := cfg.encOpts(w)
	if err := encode.Encode(n, w, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.Compact && encode.FormatFromOpts(opts...).IsJSON() {
		_, err := w.Write([]byte{'\n'})
		return err
	}
	return nil
}

// parseValue parses a JSON value of any type from the command line.
func (cfg *MainConfig) parseValue(arg string) (*ir.Node, error) {
	wrap, err := parse.Parse([]byte("["+arg+"]"), cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding value %q: %w", arg, err)
	}
	if wrap.Len() != 1 {
		return nil, fmt.Errorf("%w: %q is not a single value", cli.ErrUsage, arg)
	}
	return wrap.Values[0], nil
}
