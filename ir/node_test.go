package ir

import (
	"math"
	"testing"
)

func keys(n *Node) []string {
	var res []string
	for k := Begin(n); k != nil; k = k.NextKey() {
		res = append(res, k.Key())
	}
	return res
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDuplicateKeysCollapse(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{"a", FromInt(1)},
		{"b", FromInt(2)},
		{"a", FromInt(3)},
	})
	if got := keys(obj); !sameStrings(got, []string{"a", "b"}) {
		t.Fatalf("keys %v", got)
	}
	if got := obj.Get("a").Text; got != "3" {
		t.Errorf("a = %s", got)
	}
	if obj.Values[0].ParentIndex != 0 || obj.Values[0].Parent != obj {
		t.Errorf("replacement not linked in place")
	}
}

func TestArrayReindex(t *testing.T) {
	arr := FromSlice([]*Node{FromString("x"), FromString("y"), FromString("z"), FromString("w")})
	removed, err := arr.RemoveAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if removed.Text != "y" || removed.Parent != nil {
		t.Errorf("removed %+v", removed)
	}
	if got := keys(arr); !sameStrings(got, []string{"0", "1", "2"}) {
		t.Errorf("keys %v", got)
	}
	for i, v := range arr.Values {
		if v.ParentIndex != i || arr.Fields[i].ParentIndex != i {
			t.Errorf("index %d: value %d key %d", i, v.ParentIndex, arr.Fields[i].ParentIndex)
		}
	}
	if arr.Get("1").Text != "z" {
		t.Errorf("1 = %s", arr.Get("1").Text)
	}
}

func TestObjectRemoveKeepsIndex(t *testing.T) {
	obj := FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", FromInt(2)}, {"c", FromInt(3)}})
	if _, err := obj.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if obj.Get("a") != nil {
		t.Errorf("a still present")
	}
	if obj.Get("c").Text != "3" || obj.Get("c").ParentIndex != 1 {
		t.Errorf("c misplaced")
	}
	if err := obj.Set("a", FromInt(4)); err != nil {
		t.Fatal(err)
	}
	if got := keys(obj); !sameStrings(got, []string{"b", "c", "a"}) {
		t.Errorf("keys %v", got)
	}
}

func TestAdoptClones(t *testing.T) {
	a := FromSlice([]*Node{FromString("x")})
	b := NewArray()
	v := a.Values[0]
	if err := b.Append(v); err != nil {
		t.Fatal(err)
	}
	if b.Values[0] == v {
		t.Errorf("owned node was not cloned")
	}
	if a.Values[0] != v || v.Parent != a {
		t.Errorf("source tree changed")
	}
	// attaching a node into its own subtree
	obj := FromKeyVals([]KeyVal{{"inner", NewObject()}})
	if err := obj.Get("inner").Set("self", obj); err != nil {
		t.Fatal(err)
	}
	if obj.Get("inner").Get("self") == obj {
		t.Errorf("cycle created")
	}
}

func TestSetAppendTypeErrors(t *testing.T) {
	if err := NewArray().Set("a", Null()); err == nil {
		t.Errorf("expected error setting on array")
	}
	if err := NewObject().Append(Null()); err == nil {
		t.Errorf("expected error appending to object")
	}
}

func TestRelease(t *testing.T) {
	Release(nil)
	inner := FromSlice([]*Node{FromInt(1)})
	obj := FromKeyVals([]KeyVal{{"a", inner}, {"b", FromInt(2)}})
	a := obj.Get("a")
	Release(a)
	if got := keys(obj); !sameStrings(got, []string{"b"}) {
		t.Errorf("keys %v", got)
	}
	if a.Parent != nil || a.Values != nil {
		t.Errorf("released node not cleared")
	}
	Release(obj)
	if obj.Values != nil || obj.Fields != nil {
		t.Errorf("root not cleared")
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want *Node
	}{
		{2, FromInt(2)},
		{-0.5, &Node{Type: NumberType, Text: "-0.5"}},
		{1e21, &Node{Type: NumberType, Text: "1e+21"}},
		{math.NaN(), Null()},
		{math.Inf(1), Null()},
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in); !Equal(got, tt.want) {
			t.Errorf("FromFloat(%v) = %s %q", tt.in, got.Type, got.Text)
		}
	}
}

func TestFromNumberText(t *testing.T) {
	if n, err := FromNumberText("-1.5e3"); err != nil || n.Text != "-1.5e3" {
		t.Errorf("got %v %v", n, err)
	}
	for _, bad := range []string{"", "01", "1 2", "abc", `"1"`} {
		if _, err := FromNumberText(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestCloneEqual(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{"a", FromSlice([]*Node{FromBool(true), Null()})},
		{"b", FromString("s")},
	})
	c := obj.Clone()
	if !Equal(obj, c) {
		t.Fatal("clone differs")
	}
	if c.Values[0].Parent != c || c.Fields[1].Parent != c {
		t.Errorf("clone parents not rewired")
	}
	c.Get("a").Values[0].Text = "false"
	if Equal(obj, c) {
		t.Errorf("clone shares nodes")
	}
	if err := obj.Validate(); err != nil {
		t.Error(err)
	}
}

func TestPathOfNode(t *testing.T) {
	obj := FromKeyVals([]KeyVal{{"a", FromSlice([]*Node{NewObject(), FromKeyVals([]KeyVal{{"z", Null()}})})}})
	z := obj.Get("a").Get("1").Get("z")
	if got := z.Path(); got != "a.1.z" {
		t.Errorf("path %q", got)
	}
	if z.Root() != obj {
		t.Errorf("root mismatch")
	}
	if got := obj.Path(); got != "" {
		t.Errorf("root path %q", got)
	}
	var nilNode *Node
	if got := nilNode.Path(); got != "" {
		t.Errorf("nil path %q", got)
	}
}

func TestValidate(t *testing.T) {
	bad := &Node{Type: ObjectType, Fields: []*Node{{Type: NumberType, Role: KeyRole, Text: "0"}}, Values: []*Node{Null()}}
	if err := bad.Validate(); err == nil {
		t.Errorf("expected malformed error")
	}
	short := &Node{Type: ArrayType, Values: []*Node{Null()}}
	if err := short.Validate(); err == nil {
		t.Errorf("expected malformed error")
	}
}
