package jsond

import "github.com/signadot/jsond/ir"

// Begin returns the first key of container n, or nil.
func Begin(n *ir.Node) *ir.Node {
	return ir.Begin(n)
}

// NextKey returns the key after k, or nil at the end.
func NextKey(k *ir.Node) *ir.Node {
	return k.NextKey()
}

// KeyOf returns the text of key k: the field name in an object or the
// decimal position in an array.
func KeyOf(k *ir.Node) string {
	return k.Key()
}

func ValueOf(k *ir.Node) *ir.Node {
	return k.Value()
}

// Iterable reports whether n is a non-empty container.
func Iterable(n *ir.Node) bool {
	return ir.Iterable(n)
}
