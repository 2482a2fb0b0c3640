package libdiff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jsond/debug"
	"github.com/signadot/jsond/ir"
)

var ErrPatch = errors.New("diff does not apply")

// Patch applies a diff made by Diff to a copy of doc.  Old values
// recorded under "-" must match doc.  Object keys which the diff adds
// are appended.
func Patch(doc, diff *ir.Node) (*ir.Node, error) {
	if diff == nil {
		if doc == nil {
			return nil, nil
		}
		return doc.Clone(), nil
	}
	return patch(doc, diff)
}

func patch(doc, diff *ir.Node) (*ir.Node, error) {
	if IsLeafDiff(diff) {
		return patchLeaf(doc, diff)
	}
	if doc == nil || diff.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: diff at %q is not an object", ErrPatch, diff.Path())
	}
	switch doc.Type {
	case ir.ObjectType:
		return patchObject(doc, diff)
	case ir.ArrayType:
		return patchArray(doc, diff)
	}
	return nil, fmt.Errorf("%w: %s at %q has no keys", ErrPatch, doc.Type, doc.Path())
}

func patchLeaf(doc, diff *ir.Node) (*ir.Node, error) {
	from, to := diff.Get(FromKey), diff.Get(ToKey)
	if from != nil && Diff(doc, from) != nil {
		return nil, fmt.Errorf("%w: unexpected value at %q", ErrPatch, doc.Path())
	}
	if from == nil && doc != nil {
		return nil, fmt.Errorf("%w: insert over existing value at %q", ErrPatch, doc.Path())
	}
	if to == nil {
		return nil, nil
	}
	return to.Clone(), nil
}

func patchObject(doc, diff *ir.Node) (*ir.Node, error) {
	res := doc.Clone()
	for k := ir.Begin(diff); k != nil; k = k.NextKey() {
		key := k.Key()
		cur := res.Get(key)
		v, err := patch(cur, k.Value())
		if err != nil {
			return nil, err
		}
		if v == nil {
			res.RemoveAt(cur.ParentIndex)
			continue
		}
		res.Set(key, v)
	}
	return res, nil
}

func patchArray(doc, diff *ir.Node) (*ir.Node, error) {
	deleted := map[int]*ir.Node{}
	inserted := map[int]*ir.Node{}
	changed := map[int]*ir.Node{}
	for k := ir.Begin(diff); k != nil; k = k.NextKey() {
		key := k.Key()
		var (
			m    map[int]*ir.Node
			text string
		)
		switch {
		case strings.HasPrefix(key, "-"):
			m, text = deleted, key[1:]
		case strings.HasPrefix(key, "+"):
			m, text = inserted, key[1:]
		default:
			m, text = changed, key
		}
		i, err := strconv.Atoi(text)
		if err != nil || i < 0 || strings.HasPrefix(text, "+") {
			return nil, fmt.Errorf("%w: bad array diff key %q at %q", ErrPatch, key, doc.Path())
		}
		m[i] = k.Value()
	}
	if debug.Path() {
		debug.Logf("patch array %q: -%d +%d ~%d\n", doc.Path(), len(deleted), len(inserted), len(changed))
	}
	var kept []*ir.Node
	for i, v := range doc.Values {
		d, ok := deleted[i]
		if !ok {
			kept = append(kept, v)
			continue
		}
		if _, err := patchLeaf(v, d); err != nil {
			return nil, err
		}
	}
	for i := range deleted {
		if i >= len(doc.Values) {
			return nil, fmt.Errorf("%w: delete of missing element %d at %q", ErrPatch, i, doc.Path())
		}
	}
	n := len(kept) + len(inserted)
	res := ir.NewArray()
	ki := 0
	for ti := range n {
		if d, ok := inserted[ti]; ok {
			v, err := patchLeaf(nil, d)
			if err != nil || v == nil {
				return nil, fmt.Errorf("%w: bad insert at %d of %q", ErrPatch, ti, doc.Path())
			}
			res.Append(v)
			continue
		}
		if ki >= len(kept) {
			return nil, fmt.Errorf("%w: element %d of %q out of range", ErrPatch, ti, doc.Path())
		}
		v := kept[ki].Clone()
		ki++
		if d, ok := changed[ti]; ok {
			pv, err := patch(v, d)
			if err != nil {
				return nil, err
			}
			if pv == nil {
				return nil, fmt.Errorf("%w: change at %d of %q removes it", ErrPatch, ti, doc.Path())
			}
			v = pv
		}
		res.Append(v)
	}
	for i := range inserted {
		if i >= n {
			return nil, fmt.Errorf("%w: insert at %d past end of %q", ErrPatch, i, doc.Path())
		}
	}
	for i := range changed {
		if i >= n {
			return nil, fmt.Errorf("%w: change at %d past end of %q", ErrPatch, i, doc.Path())
		}
	}
	return res, nil
}
