package libdiff

import (
	"strconv"

	"github.com/signadot/jsond/encode"
	"github.com/signadot/jsond/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray aligns the elements of from and to by their encoded value.
// A run of removals directly followed by a run of insertions is paired
// element by element and diffed with df.
func DiffArray(from, to *ir.Node, df DiffFunc) *ir.Node {
	m := map[string]rune{}
	fromRunes := mapValuesTo(m, from)
	toRunes := mapValuesTo(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	res := ir.NewObject()
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			fi += n
			ti += n
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			paired := min(n, ins)
			for range paired {
				if d := df(from.Values[fi], to.Values[ti]); d != nil {
					res.Set(strconv.Itoa(ti), d)
				}
				fi++
				ti++
			}
			for range n - paired {
				res.Set("-"+strconv.Itoa(fi), MakeDiff(from.Values[fi], nil))
				fi++
			}
			for range ins - paired {
				res.Set("+"+strconv.Itoa(ti), MakeDiff(nil, to.Values[ti]))
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res.Set("+"+strconv.Itoa(ti), MakeDiff(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

func mapValuesTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		s := encode.MustString(v)
		r, ok := m[s]
		if !ok {
			r = rune(runeBase + len(m))
			m[s] = r
		}
		rs[i] = r
	}
	return rs
}
