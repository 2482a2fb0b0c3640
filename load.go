package jsond

import (
	"fmt"

	"github.com/signadot/jsond/ir"
)

// LoadObject builds an object from alternating key and value nodes.
// Keys must be strings.  A repeated key keeps its first position and
// takes the last value.
func LoadObject(kv ...*ir.Node) (*ir.Node, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of key/value arguments (%d)", ir.ErrMalformed, len(kv))
	}
	kvs := make([]ir.KeyVal, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, v := kv[i], kv[i+1]
		if k == nil || k.Type != ir.StringType {
			return nil, fmt.Errorf("%w: argument %d: key must be a string", ir.ErrMalformed, i)
		}
		if v == nil {
			return nil, fmt.Errorf("%w: argument %d: nil value", ir.ErrMalformed, i+1)
		}
		kvs = append(kvs, ir.KeyVal{Key: k.Text, Val: v})
	}
	return ir.FromKeyVals(kvs), nil
}

// LoadArray builds an array of vs in order.  nil elements are skipped.
func LoadArray(vs ...*ir.Node) *ir.Node {
	res := ir.NewArray()
	for _, v := range vs {
		if v != nil {
			res.Append(v)
		}
	}
	return res
}

func LoadString(s string) *ir.Node {
	return ir.FromString(s)
}

// LoadNumber returns a number node for v; NaN and infinities load as
// null.
func LoadNumber(v float64) *ir.Node {
	return ir.FromFloat(v)
}

func LoadInt(v int64) *ir.Node {
	return ir.FromInt(v)
}

func LoadTrue() *ir.Node {
	return ir.FromBool(true)
}

func LoadFalse() *ir.Node {
	return ir.FromBool(false)
}

func LoadNull() *ir.Node {
	return ir.Null()
}
