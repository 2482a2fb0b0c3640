package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jsond/debug"
	"github.com/signadot/jsond/format"
	"github.com/signadot/jsond/ir"
	"github.com/signadot/jsond/token"
)

var (
	ErrEncoding  = errors.New("encoding error")
	ErrRootType  = fmt.Errorf("%w: root must be an object or array", ErrEncoding)
	ErrCapacity  = fmt.Errorf("%w: buffer too small", ErrEncoding)
	ErrMalformed = fmt.Errorf("%w: malformed document", ErrEncoding)
)

type EncState struct {
	depth, indent int
	pretty        bool
	scalars       bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w.  Pretty output ends with a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	d, err := appendDoc(nil, node, es)
	if err != nil {
		return err
	}
	if es.pretty {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// Append appends the JSON text of node to dst.
func Append(dst []byte, node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	return appendDoc(dst, node, newState(opts))
}

// ToJSON writes node into dst and returns the number of bytes written.
// It fails with ErrCapacity when dst is too small, leaving the contents
// of dst unspecified.
func ToJSON(node *ir.Node, dst []byte, opts ...EncodeOption) (int, error) {
	es := newState(opts)
	d, err := appendDoc(dst[:0:len(dst)], node, es)
	if err != nil {
		return 0, err
	}
	if len(d) > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrCapacity, len(d), len(dst))
	}
	return len(d), nil
}

func appendDoc(dst []byte, node *ir.Node, es *EncState) ([]byte, error) {
	if node == nil {
		return dst, fmt.Errorf("%w: nil node", ErrMalformed)
	}
	if !es.scalars && !node.IsContainer() {
		return dst, fmt.Errorf("%w: got %s", ErrRootType, node.Type)
	}
	if debug.Encode() {
		debug.Logf("encode %s pretty=%t indent=%d\n", node.Type, es.pretty, es.indent)
	}
	return appendNode(dst, node, es)
}

func appendNode(d []byte, node *ir.Node, es *EncState) ([]byte, error) {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		return appendContainer(d, node, es)
	case ir.StringType:
		if es.Color == nil {
			return token.AppendQuote(d, node.Text), nil
		}
		return append(d, es.Color(ir.StringType, ValueColor, token.Quote(node.Text))...), nil
	case ir.NumberType, ir.BoolType, ir.NullType:
		text := node.Text
		if text == "" {
			if node.Type != ir.NullType {
				return d, fmt.Errorf("%w: empty %s at %q", ErrMalformed, node.Type, node.Path())
			}
			text = "null"
		}
		if es.Color != nil {
			text = es.Color(node.Type, ValueColor, text)
		}
		return append(d, text...), nil
	default:
		return d, fmt.Errorf("%w: unknown type %d", ErrMalformed, node.Type)
	}
}

func appendContainer(d []byte, node *ir.Node, es *EncState) ([]byte, error) {
	lb, rb := byte('{'), byte('}')
	keyType := ir.StringType
	if node.Type == ir.ArrayType {
		lb, rb = '[', ']'
		keyType = ir.NumberType
	}
	if len(node.Fields) != len(node.Values) {
		return d, fmt.Errorf("%w: %d keys for %d values at %q", ErrMalformed, len(node.Fields), len(node.Values), node.Path())
	}
	d = appendSep(d, node.Type, lb, es)
	if len(node.Values) == 0 {
		return appendSep(d, node.Type, rb, es), nil
	}
	es.depth++
	var err error
	for i, v := range node.Values {
		k := node.Fields[i]
		if k.Type != keyType {
			return d, fmt.Errorf("%w: %s key %d is %s", ErrMalformed, node.Type, i, k.Type)
		}
		if i > 0 {
			d = appendSep(d, node.Type, ',', es)
		}
		d = appendNL(d, es)
		if node.Type == ir.ObjectType {
			if es.Color != nil {
				d = append(d, es.Color(ir.ObjectType, FieldColor, token.Quote(k.Text))...)
			} else {
				d = token.AppendQuote(d, k.Text)
			}
			d = appendSep(d, node.Type, ':', es)
			if es.pretty {
				d = append(d, ' ')
			}
		}
		d, err = appendNode(d, v, es)
		if err != nil {
			return d, err
		}
	}
	es.depth--
	d = appendNL(d, es)
	return appendSep(d, node.Type, rb, es), nil
}

func appendSep(d []byte, t ir.Type, c byte, es *EncState) []byte {
	if es.Color == nil {
		return append(d, c)
	}
	return append(d, es.Color(t, SepColor, string(c))...)
}

func appendNL(d []byte, es *EncState) []byte {
	if !es.pretty {
		return d
	}
	d = append(d, '\n')
	for range es.indent * es.depth {
		d = append(d, ' ')
	}
	return d
}
