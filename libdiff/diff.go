package libdiff

import (
	"github.com/signadot/jsond/ir"
)

const (
	FromKey = "-"
	ToKey   = "+"
)

type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff returns the difference from -> to, or nil if they are equal.
func Diff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil:
		return MakeDiff(from, to)
	case from.Type != to.Type:
		return MakeDiff(from, to)
	case from.Type == ir.ObjectType:
		return DiffObject(from, to, Diff)
	case from.Type == ir.ArrayType:
		return DiffArray(from, to, Diff)
	case from.Text == to.Text:
		return nil
	default:
		return MakeDiff(from, to)
	}
}

// MakeDiff returns the leaf diff {"-": from, "+": to}.  Nil sides are
// omitted.
func MakeDiff(from, to *ir.Node) *ir.Node {
	res := ir.NewObject()
	if from != nil {
		res.Set(FromKey, from.Clone())
	}
	if to != nil {
		res.Set(ToKey, to.Clone())
	}
	return res
}

// IsLeafDiff reports whether d was made by MakeDiff.
func IsLeafDiff(d *ir.Node) bool {
	if d == nil || d.Type != ir.ObjectType || d.Len() == 0 || d.Len() > 2 {
		return false
	}
	for k := ir.Begin(d); k != nil; k = k.NextKey() {
		if k.Key() != FromKey && k.Key() != ToKey {
			return false
		}
	}
	return true
}
