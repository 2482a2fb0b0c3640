package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/jsond/debug"
	"github.com/signadot/jsond/ir"

	"github.com/expr-lang/expr"
)

var (
	ErrEval       = errors.New("eval error")
	ErrResultType = errors.New("unsupported result type")
)

// DocVar is the name the document is bound to in expressions.
const DocVar = "doc"

// Env returns the expression environment for doc.
func Env(doc *ir.Node) (map[string]any, error) {
	v, err := ToAny(doc)
	if err != nil {
		return nil, err
	}
	return map[string]any{DocVar: v}, nil
}

// Eval compiles and runs input against doc and converts the result back
// to a node.  The expression may call query(path) and has(path), which
// resolve dot paths from the root of doc.
func Eval(input string, doc *ir.Node) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("eval %q\n", input)
	}
	env, err := Env(doc)
	if err != nil {
		return nil, err
	}
	opts := append([]expr.Option{expr.Env(env)}, exprOpts(doc)...)
	prg, err := expr.Compile(input, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return FromAny(res)
}
