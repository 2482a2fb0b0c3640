// Package parse provides JSON parsing into [ir.Node] trees.
package parse

import (
	"slices"
	"unicode/utf8"

	"github.com/signadot/jsond/debug"
	"github.com/signadot/jsond/ir"
	"github.com/signadot/jsond/token"

	"github.com/tailscale/hujson"
)

// Parse parses a document whose root is an object or an array.  On
// failure it returns nil and either a *token.TokenizeErr or an *Error;
// no partial tree is returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newOpts(opts)
	src := d
	if pOpts.jwcc {
		// Standardize blanks comments and trailing commas in place of
		// the original bytes, so offsets still match d.
		std, err := hujson.Standardize(slices.Clone(d))
		if err == nil {
			src = std
		} else {
			// Invalid input: blank the comments so the error is reported
			// at the offending token.
			if debug.Parse() {
				debug.Logf("parse: jwcc standardize: %v\n", err)
			}
			src = blankComments(d)
			pOpts.trailingCommas = true
		}
	}
	res, err := parse(src, pOpts)
	if err != nil && pOpts.report != nil {
		token.NewTracker(d).WithColor(pOpts.color).Report(pOpts.report, err)
	}
	return res, err
}

func parse(d []byte, opts *parseOpts) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d, opts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("token %s %q\n", toks[i].Info(), toks[i].Bytes)
		}
	}
	return parseTokens(toks, endPos(d), opts)
}

// ParseTokens parses an already tokenized document.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	end := token.Pos{Row: 1, Col: 1}
	if n := len(toks); n > 0 {
		last := toks[n-1]
		end = last.Pos
		end.Offset += len(last.Bytes)
		end.Col += utf8.RuneCount(last.Bytes)
	}
	return parseTokens(toks, end, newOpts(opts))
}

func parseTokens(toks []token.Token, end token.Pos, opts *parseOpts) (*ir.Node, error) {
	if len(toks) == 0 {
		return nil, newErr(ErrEmptyDoc, end, "")
	}
	switch toks[0].Type {
	case token.TLCurl, token.TLSquare:
	default:
		return nil, newErr(ErrRootType, toks[0].Pos, "got %s", toks[0].Type)
	}
	pi := 0
	res, err := parseValue(toks, &pi, 0, end, opts)
	if err != nil {
		return nil, err
	}
	if pi < len(toks) {
		ir.Release(res)
		return nil, newErr(ErrTrailing, toks[pi].Pos, "%q", toks[pi].Bytes)
	}
	if debug.Parse() {
		debug.Logf("parse: %d tokens into %s\n", len(toks), res.Type)
	}
	return res, nil
}

func parseValue(toks []token.Token, pi *int, depth int, end token.Pos, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, newErr(ErrPrematureEnd, end, "expected value")
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		if depth >= opts.maxDepth {
			return nil, newErr(ErrDepth, t.Pos, "limit %d", opts.maxDepth)
		}
		return parseObj(toks, pi, depth+1, end, opts)
	case token.TLSquare:
		if depth >= opts.maxDepth {
			return nil, newErr(ErrDepth, t.Pos, "limit %d", opts.maxDepth)
		}
		return parseArr(toks, pi, depth+1, end, opts)
	case token.TString:
		*pi++
		return ir.FromString(t.String()), nil
	case token.TNumber:
		*pi++
		return &ir.Node{Type: ir.NumberType, Text: string(t.Bytes)}, nil
	case token.TTrue:
		*pi++
		return ir.FromBool(true), nil
	case token.TFalse:
		*pi++
		return ir.FromBool(false), nil
	case token.TNull:
		*pi++
		return ir.Null(), nil
	default:
		return nil, newErr(ErrUnexpected, t.Pos, "%q where a value is expected", t.Bytes)
	}
}

func parseObj(toks []token.Token, pi *int, depth int, end token.Pos, opts *parseOpts) (*ir.Node, error) {
	open := toks[*pi].Pos
	*pi++
	obj := ir.NewObject()
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return obj, nil
	}
	for {
		if *pi >= len(toks) {
			return nil, newErr(ErrPrematureEnd, end, "object opened at line %d col %d", open.Row, open.Col)
		}
		kt := &toks[*pi]
		if kt.Type != token.TString {
			return nil, newErr(ErrKeyType, kt.Pos, "got %q", kt.Bytes)
		}
		*pi++
		if *pi >= len(toks) {
			return nil, newErr(ErrPrematureEnd, end, "expected ':' after key %s", kt.Bytes)
		}
		if toks[*pi].Type != token.TColon {
			return nil, newErr(ErrMissingColon, toks[*pi].Pos, "after key %s", kt.Bytes)
		}
		*pi++
		v, err := parseValue(toks, pi, depth, end, opts)
		if err != nil {
			return nil, err
		}
		obj.Set(kt.String(), v)
		if *pi >= len(toks) {
			return nil, newErr(ErrPrematureEnd, end, "object opened at line %d col %d", open.Row, open.Col)
		}
		sep := &toks[*pi]
		switch sep.Type {
		case token.TComma:
			*pi++
			if opts.trailingCommas && *pi < len(toks) && toks[*pi].Type == token.TRCurl {
				*pi++
				return obj, nil
			}
		case token.TRCurl:
			*pi++
			return obj, nil
		default:
			return nil, newErr(ErrMissingSep, sep.Pos, "expected ',' or '}', got %q", sep.Bytes)
		}
	}
}

func parseArr(toks []token.Token, pi *int, depth int, end token.Pos, opts *parseOpts) (*ir.Node, error) {
	open := toks[*pi].Pos
	*pi++
	arr := ir.NewArray()
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return arr, nil
	}
	for {
		v, err := parseValue(toks, pi, depth, end, opts)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
		if *pi >= len(toks) {
			return nil, newErr(ErrPrematureEnd, end, "array opened at line %d col %d", open.Row, open.Col)
		}
		sep := &toks[*pi]
		switch sep.Type {
		case token.TComma:
			*pi++
			if opts.trailingCommas && *pi < len(toks) && toks[*pi].Type == token.TRSquare {
				*pi++
				return arr, nil
			}
		case token.TRSquare:
			*pi++
			return arr, nil
		default:
			return nil, newErr(ErrMissingSep, sep.Pos, "expected ',' or ']', got %q", sep.Bytes)
		}
	}
}

func endPos(d []byte) token.Pos {
	p := token.Pos{Offset: len(d), Row: 1, Col: 1}
	for _, r := range string(d) {
		if r == '\n' {
			p.Row++
			p.Col = 1
			continue
		}
		p.Col++
	}
	return p
}
