// Package patch applies RFC 6902 JSON Patch and RFC 7396 merge patch
// documents.
//
// Documents pass through strict JSON on the way in and are re-parsed on
// the way out, so object keys in the result are sorted and number
// literals are normalized.
package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/jsond/debug"
	"github.com/signadot/jsond/eval"
	"github.com/signadot/jsond/ir"
	"github.com/signadot/jsond/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch is a decoded list of RFC 6902 operations.
type Patch struct {
	ops jsonpatch.Patch
}

// Decode decodes the operations in p, which must be an array.
func Decode(p *ir.Node) (*Patch, error) {
	if p == nil || p.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: operations must be an array", ErrPatch)
	}
	d, err := eval.MarshalJSON(p)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(d)
}

func DecodeJSON(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply returns the result of applying p to doc.  doc is not modified.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json-patch: %d ops on %s\n", len(p.ops), doc.Path())
	}
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// Apply decodes ops and applies them to doc.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	p, err := Decode(ops)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

// Merge applies the RFC 7396 merge patch mp to doc.
func Merge(doc, mp *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge-patch on %s\n", doc.Path())
	}
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	m, err := eval.MarshalJSON(mp)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// CreateMerge returns a merge patch which turns from into to.
func CreateMerge(from, to *ir.Node) (*ir.Node, error) {
	f, err := eval.MarshalJSON(from)
	if err != nil {
		return nil, err
	}
	t, err := eval.MarshalJSON(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}
