package libdiff

import (
	"github.com/signadot/jsond/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// runeBase keeps mapped runes clear of the surrogate range.
const runeBase = 0xE000

// DiffObject aligns the keys of from and to, recursing with df on keys
// present in both.  A key which moved is diffed as if it stayed.
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := ir.NewObject()
	deleted := map[string]*ir.Node{}
	inserted := map[string]*ir.Node{}
	var order []string
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range []rune(diff.Text) {
				f := runeMap[fromRunes[fi]]
				deleted[f] = from.Values[fi]
				order = append(order, f)
				fi++
			}
		case diffpatch.DiffEqual:
			for range []rune(diff.Text) {
				f := runeMap[fromRunes[fi]]
				if d := df(from.Values[fi], to.Values[ti]); d != nil {
					res.Set(f, d)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range []rune(diff.Text) {
				f := runeMap[toRunes[ti]]
				inserted[f] = to.Values[ti]
				order = append(order, f)
				ti++
			}
		}
	}
	for _, f := range order {
		if res.Get(f) != nil {
			continue
		}
		fromV, toV := deleted[f], inserted[f]
		var d *ir.Node
		if fromV != nil && toV != nil {
			d = df(fromV, toV)
		} else {
			d = MakeDiff(fromV, toV)
		}
		if d != nil {
			res.Set(f, d)
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].Text
		r, ok := m[f]
		if !ok {
			r = rune(runeBase + len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
