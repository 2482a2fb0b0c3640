package jsond

import (
	"log/slog"

	"github.com/signadot/jsond/encode"
	"github.com/signadot/jsond/ir"
	"github.com/signadot/jsond/parse"
)

// FromJSON parses text.  On failure it writes a diagnostic with a
// source excerpt to the error output and returns nil with the error, a
// *token.TokenizeErr or a *parse.Error.
func FromJSON(text []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	opts = append([]parse.ParseOption{parse.Report(errorOutput())}, opts...)
	n, err := parse.Parse(text, opts...)
	if err != nil {
		log().Debug("parse failed", slog.Int("size", len(text)), slog.Any("error", err))
		return nil, err
	}
	return n, nil
}

// Release tears down the tree rooted at root.  Releasing a node which
// is part of a larger tree removes it from its container.
func Release(root *ir.Node) {
	ir.Release(root)
}

// ToJSON writes the compact text of root into buf and returns the
// number of bytes written, or -1 if root is not an object or array or
// the text does not fit.
func ToJSON(root *ir.Node, buf []byte) int {
	return toJSON(root, buf)
}

// ToJSONPretty is like ToJSON with one member per line, indent spaces
// per level.  indent <= 0 means 2.
func ToJSONPretty(root *ir.Node, buf []byte, indent int) int {
	return toJSON(root, buf, encode.Pretty(true), encode.Indent(indent))
}

func toJSON(root *ir.Node, buf []byte, opts ...encode.EncodeOption) int {
	n, err := encode.ToJSON(root, buf, opts...)
	if err != nil {
		log().Debug("build failed", slog.Int("capacity", len(buf)), slog.Any("error", err))
		return -1
	}
	return n
}
