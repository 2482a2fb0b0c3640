package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/jsond/ir"

	"github.com/goccy/go-yaml"
)

// EncodeYAML writes node as a YAML document, keeping key order.
func EncodeYAML(node *ir.Node, w io.Writer) error {
	return encodeYAML(node, w)
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := yamlValue(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(node *ir.Node) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrMalformed)
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Values))
		for i, v := range node.Values {
			yv, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: node.Fields[i].Text, Value: yv})
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.StringType:
		return node.Text, nil
	case ir.BoolType:
		return node.Text == "true", nil
	case ir.NullType:
		return nil, nil
	case ir.NumberType:
		if strings.ContainsAny(node.Text, "xX") {
			i, err := node.AsInt64()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
			}
			return i, nil
		}
		if i, err := strconv.ParseInt(node.Text, 10, 64); err == nil {
			return i, nil
		}
		f, err := node.AsFloat64()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: unknown type %d", ErrMalformed, node.Type)
}
