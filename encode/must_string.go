package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/jsond/ir"
)

// MustString encodes node compactly, panicking on error.  Scalars are
// allowed.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append([]EncodeOption{EncodeScalars(true)}, opts...)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
