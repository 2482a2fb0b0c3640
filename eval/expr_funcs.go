package eval

import (
	"errors"

	"github.com/signadot/jsond/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("query", func(params ...any) (any, error) {
			res, err := doc.Root().Query(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(res)
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := doc.Root().Query(params[0].(string))
			switch {
			case err == nil:
				return true, nil
			case errors.Is(err, ir.ErrNotFound):
				return false, nil
			default:
				return nil, err
			}
		},
			new(func(string) bool)),
	}
}
