package parse

import (
	"io"

	"github.com/signadot/jsond/token"
)

// DefaultMaxDepth bounds container nesting.
const DefaultMaxDepth = 1000

type parseOpts struct {
	maxDepth int
	report   io.Writer
	color    bool
	jwcc     bool
	strict   bool

	trailingCommas bool
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.strict {
		return []token.TokenOpt{token.TokenStrict()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// MaxDepth sets the deepest container nesting accepted.  n <= 0 restores
// the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// Report writes any error with a source excerpt to w.
func Report(w io.Writer) ParseOption {
	return func(o *parseOpts) { o.report = w }
}

func ReportColor(v bool) ParseOption {
	return func(o *parseOpts) { o.color = v }
}

// JWCC accepts comments and trailing commas.
func JWCC() ParseOption {
	return func(o *parseOpts) { o.jwcc = true }
}

// Strict restricts numbers to RFC 8259.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}
