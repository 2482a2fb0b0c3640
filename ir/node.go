package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/signadot/jsond/token"
)

// Node is an element of a document tree.
//
// Containers hold parallel Fields and Values: Fields[i] is the key node
// for Values[i].  Object keys are StringType and array keys are
// NumberType holding the decimal position.  Fields and Values are
// exported for reading; mutate through the methods so that key positions
// and the key index stay consistent.
type Node struct {
	Type        Type
	Role        Role
	Parent      *Node
	ParentIndex int
	Fields      []*Node
	Values      []*Node

	// Text is the decoded string, the number literal, "true", "false"
	// or "null".  Empty for containers.
	Text string

	index map[string]int
}

func FromString(v string) *Node {
	return &Node{Type: StringType, Text: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Text: strconv.FormatInt(v, 10)}
}

// FromFloat returns a number node for f.  Integral values are written
// without a fraction and non-finite values, which JSON cannot represent,
// become null.
func FromFloat(f float64) *Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return FromInt(int64(f))
	}
	return &Node{Type: NumberType, Text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// FromNumberText returns a number node holding the literal v verbatim.
func FromNumberText(v string) (*Node, error) {
	toks, err := token.Tokenize(nil, []byte(v))
	if err != nil {
		return nil, err
	}
	if len(toks) != 1 || toks[0].Type != token.TNumber {
		return nil, fmt.Errorf("%w: %q is not a number", ErrConversion, v)
	}
	return &Node{Type: NumberType, Text: string(toks[0].Bytes)}, nil
}

func FromBool(v bool) *Node {
	if v {
		return &Node{Type: BoolType, Text: "true"}
	}
	return &Node{Type: BoolType, Text: "false"}
}

func Null() *Node {
	return &Node{Type: NullType, Text: "null"}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object in the order of kvs.  A repeated key
// replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with the keys of m in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.set(k, m[k])
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := NewArray()
	for _, v := range vs {
		res.push(v)
	}
	return res
}

func (n *Node) IsContainer() bool {
	return n.Type == ObjectType || n.Type == ArrayType
}

func (n *Node) Len() int {
	return len(n.Values)
}

// Get returns the value for key in an object, or for the decimal
// position key in an array.  It returns nil when there is no such key.
func (n *Node) Get(key string) *Node {
	switch n.Type {
	case ObjectType:
		i, ok := n.keyIndex()[key]
		if !ok {
			return nil
		}
		return n.Values[i]
	case ArrayType:
		i, ok := arrayIndex(key)
		if !ok || i >= len(n.Values) {
			return nil
		}
		return n.Values[i]
	}
	return nil
}

func (n *Node) Index(i int) *Node {
	if i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.Values[i]
}

// Set associates key with v in object n.  If key is present its value is
// replaced in place, otherwise key is appended.  A v which already
// belongs to a tree is cloned.
func (n *Node) Set(key string, v *Node) error {
	if n.Type != ObjectType {
		return fmt.Errorf("%w: set %q on %s", ErrContainer, key, n.Type)
	}
	n.set(key, v)
	return nil
}

// Append adds v at the end of array n.
func (n *Node) Append(v *Node) error {
	if n.Type != ArrayType {
		return fmt.Errorf("%w: append to %s", ErrContainer, n.Type)
	}
	n.push(v)
	return nil
}

// Replace puts v in place of the value at position i of n.
func (n *Node) Replace(i int, v *Node) error {
	if !n.IsContainer() {
		return fmt.Errorf("%w: replace in %s", ErrContainer, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return fmt.Errorf("%w: index %d of %d", ErrRange, i, len(n.Values))
	}
	v = n.adopt(v)
	old := n.Values[i]
	old.Parent = nil
	old.ParentIndex = 0
	v.Parent = n
	v.ParentIndex = i
	n.Values[i] = v
	return nil
}

// RemoveAt unlinks the key and value at position i and returns the
// detached value.  Array keys following i are renumbered.
func (n *Node) RemoveAt(i int) (*Node, error) {
	if !n.IsContainer() {
		return nil, fmt.Errorf("%w: remove from %s", ErrContainer, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrRange, i, len(n.Values))
	}
	k, v := n.Fields[i], n.Values[i]
	n.Fields = slices.Delete(n.Fields, i, i+1)
	n.Values = slices.Delete(n.Values, i, i+1)
	if n.Type == ObjectType && n.index != nil {
		delete(n.index, k.Text)
	}
	for j := i; j < len(n.Values); j++ {
		n.Fields[j].ParentIndex = j
		n.Values[j].ParentIndex = j
		switch n.Type {
		case ArrayType:
			n.Fields[j].Text = strconv.Itoa(j)
		case ObjectType:
			if n.index != nil {
				n.index[n.Fields[j].Text] = j
			}
		}
	}
	k.Parent = nil
	v.Parent = nil
	v.ParentIndex = 0
	return v, nil
}

func (n *Node) set(key string, v *Node) {
	v = n.adopt(v)
	if i, ok := n.keyIndex()[key]; ok {
		old := n.Values[i]
		old.Parent = nil
		v.Parent = n
		v.ParentIndex = i
		n.Values[i] = v
		return
	}
	i := len(n.Fields)
	k := &Node{Type: StringType, Role: KeyRole, Text: key, Parent: n, ParentIndex: i}
	v.Parent = n
	v.ParentIndex = i
	n.Fields = append(n.Fields, k)
	n.Values = append(n.Values, v)
	n.index[key] = i
}

func (n *Node) push(v *Node) {
	v = n.adopt(v)
	i := len(n.Fields)
	k := &Node{Type: NumberType, Role: KeyRole, Text: strconv.Itoa(i), Parent: n, ParentIndex: i}
	v.Parent = n
	v.ParentIndex = i
	n.Fields = append(n.Fields, k)
	n.Values = append(n.Values, v)
}

// adopt returns v, or a clone of it if v is already owned by a tree or
// would close a cycle through n.
func (n *Node) adopt(v *Node) *Node {
	if v == nil {
		return Null()
	}
	if v.Parent != nil || v.Role == KeyRole || v.isAncestorOf(n) {
		v = v.Clone()
	}
	return v
}

func (n *Node) isAncestorOf(m *Node) bool {
	for p := m; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) keyIndex() map[string]int {
	if n.index != nil && len(n.index) == len(n.Fields) {
		return n.index
	}
	n.index = make(map[string]int, len(n.Fields))
	for i, f := range n.Fields {
		n.index[f.Text] = i
	}
	return n.index
}

func arrayIndex(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// Clone returns a detached deep copy of n.  Cloning a key node yields a
// string or number value with the key text.
func (n *Node) Clone() *Node {
	res := &Node{Type: n.Type, Text: n.Text}
	if !n.IsContainer() {
		return res
	}
	res.Fields = make([]*Node, len(n.Fields))
	res.Values = make([]*Node, len(n.Values))
	for i, f := range n.Fields {
		res.Fields[i] = &Node{Type: f.Type, Role: KeyRole, Text: f.Text, Parent: res, ParentIndex: i}
	}
	for i, v := range n.Values {
		c := v.Clone()
		c.Parent = res
		c.ParentIndex = i
		res.Values[i] = c
	}
	return res
}

// Release tears down the subtree rooted at n, detaching it from its
// parent first.  Releasing nil is a no-op.
func Release(n *Node) {
	if n == nil {
		return
	}
	if p := n.Parent; p != nil && n.Role == ValueRole &&
		n.ParentIndex < len(p.Values) && p.Values[n.ParentIndex] == n {
		p.RemoveAt(n.ParentIndex)
	}
	release(n)
}

func release(n *Node) {
	for _, v := range n.Values {
		release(v)
	}
	for _, f := range n.Fields {
		f.Parent = nil
	}
	n.Fields = nil
	n.Values = nil
	n.index = nil
	n.Parent = nil
}

// Equal reports whether a and b have the same types, payloads and keys
// in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Text != b.Text || len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if a.Fields[i].Text != b.Fields[i].Text {
			return false
		}
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	descend, err := f(n, false)
	if err != nil {
		return err
	}
	if !descend {
		return nil
	}
	for _, v := range n.Values {
		if err := v.Visit(f); err != nil {
			return err
		}
	}
	_, err = f(n, true)
	return err
}

func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Path returns the dot path from the root to n, "" for a root or nil
// node.
func (n *Node) Path() string {
	if n == nil || n.Parent == nil {
		return ""
	}
	key := n.Parent.Fields[n.ParentIndex].Text
	prefix := n.Parent.Path()
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Validate checks the structural invariants of the tree rooted at n.
func (n *Node) Validate() error {
	return n.Visit(func(x *Node, isPost bool) (bool, error) {
		if isPost || !x.IsContainer() {
			return true, nil
		}
		if len(x.Fields) != len(x.Values) {
			return false, fmt.Errorf("%w: %d keys for %d values at %q", ErrMalformed, len(x.Fields), len(x.Values), x.Path())
		}
		for i, f := range x.Fields {
			switch {
			case x.Type == ObjectType && f.Type != StringType:
				return false, fmt.Errorf("%w: object key %d is %s at %q", ErrMalformed, i, f.Type, x.Path())
			case x.Type == ArrayType && f.Type != NumberType:
				return false, fmt.Errorf("%w: array key %d is %s at %q", ErrMalformed, i, f.Type, x.Path())
			}
		}
		return true, nil
	})
}
