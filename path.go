package jsond

import (
	"fmt"
	"log/slog"

	"github.com/signadot/jsond/ir"
)

// Query returns the node at path under root.  The result belongs to
// root's tree.
func Query(path string, root *ir.Node) (*ir.Node, error) {
	if root == nil {
		return nil, nilRoot("query", path)
	}
	res, err := root.Query(path)
	if err != nil {
		return nil, failed("query", path, err)
	}
	return res, nil
}

// Update replaces the existing value at path with v.
func Update(path string, root, v *ir.Node) error {
	if root == nil {
		return nilRoot("update", path)
	}
	return failed("update", path, root.Update(path, v))
}

// Add sets the value at path to v, creating missing keys.  New object
// keys are appended; a new array element must be at the array length.
func Add(path string, root, v *ir.Node) error {
	if root == nil {
		return nilRoot("add", path)
	}
	return failed("add", path, root.Add(path, v))
}

// Delete removes the key at path with its value.
func Delete(path string, root *ir.Node) error {
	if root == nil {
		return nilRoot("delete", path)
	}
	return failed("delete", path, root.Delete(path))
}

func nilRoot(op, path string) error {
	return failed(op, path, fmt.Errorf("%w: nil root", ir.ErrNotFound))
}

func failed(op, path string, err error) error {
	if err != nil {
		log().Debug(op+" failed", slog.String("path", path), slog.Any("error", err))
	}
	return err
}
