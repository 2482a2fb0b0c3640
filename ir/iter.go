package ir

// Begin returns the first key of container n, or nil when n is empty or
// not a container.
func Begin(n *Node) *Node {
	if n == nil || !n.IsContainer() || len(n.Fields) == 0 {
		return nil
	}
	return n.Fields[0]
}

// NextKey returns the key following k in its container, or nil.
func (k *Node) NextKey() *Node {
	if k == nil || k.Role != KeyRole || k.Parent == nil {
		return nil
	}
	i := k.ParentIndex + 1
	if i >= len(k.Parent.Fields) {
		return nil
	}
	return k.Parent.Fields[i]
}

// Key returns the text of key node k, or "" if k is not a key.
func (k *Node) Key() string {
	if k == nil || k.Role != KeyRole {
		return ""
	}
	return k.Text
}

// Value returns the value held by key node k.  A value node returns
// itself.
func (k *Node) Value() *Node {
	if k == nil {
		return nil
	}
	if k.Role != KeyRole {
		return k
	}
	if k.Parent == nil || k.ParentIndex >= len(k.Parent.Values) {
		return nil
	}
	return k.Parent.Values[k.ParentIndex]
}

// Iterable reports whether n is a container with at least one key.
func Iterable(n *Node) bool {
	return Begin(n) != nil
}
