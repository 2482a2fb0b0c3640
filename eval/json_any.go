package eval

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jsond/ir"
)

// MarshalJSON renders node as strict JSON.  Number literals outside
// RFC 8259, such as hexadecimal or a leading '+', are rewritten in
// decimal; other literals are kept verbatim.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	v, err := toAny(node, jsonNumber)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// ToAny converts node to the value encoding/json would decode from its
// text.  Numbers become float64.
func ToAny(node *ir.Node) (any, error) {
	return toAny(node, floatNumber)
}

func floatNumber(n *ir.Node) (any, error) {
	return n.AsFloat64()
}

func jsonNumber(n *ir.Node) (any, error) {
	t := strings.TrimPrefix(n.Text, "+")
	if strings.ContainsAny(t, "xX") {
		i, err := n.AsInt64()
		if err != nil {
			return nil, err
		}
		t = strconv.FormatInt(i, 10)
	}
	return json.Number(t), nil
}

func toAny(node *ir.Node, num func(*ir.Node) (any, error)) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ir.ErrMalformed)
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Values))
		for i, v := range node.Values {
			x, err := toAny(v, num)
			if err != nil {
				return nil, err
			}
			res[node.Fields[i].Text] = x
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			x, err := toAny(v, num)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case ir.StringType:
		return node.Text, nil
	case ir.NumberType:
		return num(node)
	case ir.BoolType:
		return node.AsBool()
	case ir.NullType:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: type %s", ir.ErrMalformed, node.Type)
	}
}

// FromAny converts a decoded JSON value to a node.  Maps produce
// objects with sorted keys.  Values of other Go types go through
// encoding/json first.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return ir.FromFloat(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		return ir.FromNumberText(string(x))
	case []any:
		res := ir.NewArray()
		for _, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case []*ir.Node:
		return ir.FromSlice(x), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	case map[string]*ir.Node:
		return ir.FromMap(x), nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrResultType, v, err)
	}
	var y any
	if err := json.Unmarshal(d, &y); err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrResultType, v, err)
	}
	return FromAny(y)
}
