package eval

import (
	"fmt"

	"github.com/signadot/jsond/debug"
	"github.com/signadot/jsond/ir"

	"github.com/theory/jsonpath"
)

var ErrSelect = fmt.Errorf("%w: jsonpath", ErrEval)

// Select applies the JSONPath query q to doc and returns the matches as
// an array.  Matches under object wildcards come in no fixed order.
func Select(q string, doc *ir.Node) (*ir.Node, error) {
	p, err := jsonpath.Parse(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelect, err)
	}
	v, err := ToAny(doc)
	if err != nil {
		return nil, err
	}
	nodes := p.Select(v)
	if debug.Eval() {
		debug.Logf("select %q: %d matches\n", q, len(nodes))
	}
	res := ir.NewArray()
	for _, x := range nodes {
		n, err := FromAny(x)
		if err != nil {
			return nil, err
		}
		res.Append(n)
	}
	return res, nil
}
