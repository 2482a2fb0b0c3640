package ir

import (
	"fmt"

	"github.com/signadot/jsond/debug"
	"github.com/signadot/jsond/ir/dotpath"
)

// Query returns the node addressed by the path command cmd.  The result
// is part of n's tree, not a copy.
func (n *Node) Query(cmd string) (*Node, error) {
	p, err := dotpath.Compile(cmd)
	if err != nil {
		return nil, err
	}
	return n.QueryPath(p)
}

func (n *Node) QueryPath(p *dotpath.Path) (*Node, error) {
	cur := n
	for x := p; x != nil; x = x.Next {
		next := cur.Get(x.Seg)
		if next == nil {
			if debug.Path() {
				debug.Logf("query %q: no %q under %s\n", p, x.Seg, cur.Type)
			}
			return nil, &LookupError{Op: "query", Path: p.String(), Segment: x.Seg}
		}
		cur = next
	}
	return cur, nil
}

// Update replaces the value at cmd with v.  The key must exist.
func (n *Node) Update(cmd string, v *Node) error {
	p, err := dotpath.Compile(cmd)
	if err != nil {
		return err
	}
	return n.UpdatePath(p, v)
}

func (n *Node) UpdatePath(p *dotpath.Path, v *Node) error {
	parent, i, err := n.locate("update", p)
	if err != nil {
		return err
	}
	return parent.Replace(i, v)
}

// Add sets the value at cmd to v, creating the final key and any
// missing intermediate keys, which get empty objects.  New keys go at
// the end of their container.  In an array a missing position must be
// the array length.
func (n *Node) Add(cmd string, v *Node) error {
	p, err := dotpath.Compile(cmd)
	if err != nil {
		return err
	}
	return n.AddPath(p, v)
}

func (n *Node) AddPath(p *dotpath.Path, v *Node) error {
	if !n.IsContainer() {
		return &LookupError{Op: "add", Path: p.String(), Segment: p.Seg, Err: ErrContainer}
	}
	cur := n
	x := p
	for ; x.Next != nil; x = x.Next {
		next := cur.Get(x.Seg)
		if next == nil {
			break
		}
		if !next.IsContainer() {
			return &LookupError{Op: "add", Path: p.String(), Segment: x.Seg, Err: ErrContainer}
		}
		cur = next
	}
	if cur.Type == ArrayType {
		i, ok := arrayIndex(x.Seg)
		if !ok || i > len(cur.Values) {
			return &LookupError{Op: "add", Path: p.String(), Segment: x.Seg, Err: ErrRange}
		}
	}
	for ; x.Next != nil; x = x.Next {
		obj := NewObject()
		cur.insert(x.Seg, obj)
		cur = obj
	}
	if debug.Path() {
		debug.Logf("add %q: %q under %s\n", p, x.Seg, cur.Type)
	}
	cur.insert(x.Seg, v)
	return nil
}

// insert sets seg in an object, or replaces or appends in an array.  The
// caller has checked array positions.
func (n *Node) insert(seg string, v *Node) {
	if n.Type == ObjectType {
		n.set(seg, v)
		return
	}
	i, _ := arrayIndex(seg)
	if i < len(n.Values) {
		n.Replace(i, v)
		return
	}
	n.push(v)
}

// Delete unlinks the key at cmd and releases its value.  Array keys
// after it are renumbered.
func (n *Node) Delete(cmd string) error {
	p, err := dotpath.Compile(cmd)
	if err != nil {
		return err
	}
	return n.DeletePath(p)
}

func (n *Node) DeletePath(p *dotpath.Path) error {
	parent, i, err := n.locate("delete", p)
	if err != nil {
		return err
	}
	v, err := parent.RemoveAt(i)
	if err != nil {
		return err
	}
	release(v)
	return nil
}

// locate returns the container holding the final key of p and the
// key's position.
func (n *Node) locate(op string, p *dotpath.Path) (*Node, int, error) {
	cur := n
	x := p
	for ; x.Next != nil; x = x.Next {
		next := cur.Get(x.Seg)
		if next == nil {
			return nil, 0, &LookupError{Op: op, Path: p.String(), Segment: x.Seg}
		}
		cur = next
	}
	switch cur.Type {
	case ObjectType:
		if i, ok := cur.keyIndex()[x.Seg]; ok {
			return cur, i, nil
		}
	case ArrayType:
		if i, ok := arrayIndex(x.Seg); ok && i < len(cur.Values) {
			return cur, i, nil
		}
	}
	if debug.Path() {
		debug.Logf("%s %q: no %q under %s\n", op, p, x.Seg, cur.Type)
	}
	return nil, 0, &LookupError{Op: op, Path: p.String(), Segment: x.Seg}
}

// MustQuery is like Query but panics on error.
func (n *Node) MustQuery(cmd string) *Node {
	res, err := n.Query(cmd)
	if err != nil {
		panic(fmt.Sprintf("query %q: %v", cmd, err))
	}
	return res
}
