package jsond

import (
	"github.com/signadot/jsond/encode"
	"github.com/signadot/jsond/parse"
)

// DefaultIndent is the Beautify indent used when none is given.
const DefaultIndent = 2

// Beautify re-encodes the document in src one member per line with
// indent spaces per level.  indent <= 0 means DefaultIndent.
func Beautify(src []byte, indent int, opts ...parse.ParseOption) ([]byte, error) {
	if indent <= 0 {
		indent = DefaultIndent
	}
	n, err := FromJSON(src, opts...)
	if err != nil {
		return nil, err
	}
	defer Release(n)
	return encode.Append(nil, n, encode.Pretty(true), encode.Indent(indent))
}

// Minify re-encodes the document in src without whitespace.
func Minify(src []byte, opts ...parse.ParseOption) ([]byte, error) {
	n, err := FromJSON(src, opts...)
	if err != nil {
		return nil, err
	}
	defer Release(n)
	return encode.Append(nil, n)
}
