package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jsond/token"
)

// ErrParse is matched by every syntax error reported after tokenizing.
var ErrParse = errors.New("parse error")

var (
	ErrEmptyDoc     = errors.New("empty document")
	ErrRootType     = errors.New("document must be an object or array")
	ErrKeyType      = errors.New("key must be a string")
	ErrMissingColon = errors.New("missing ':'")
	ErrMissingSep   = errors.New("missing separator")
	ErrPrematureEnd = errors.New("premature end")
	ErrTrailing     = errors.New("content after terminator")
	ErrDepth        = errors.New("nesting too deep")
	ErrUnexpected   = errors.New("unexpected token")
)

// Error is a syntax error at a token position.
type Error struct {
	Pos token.Pos
	Err error
	Msg string
}

func newErr(e error, pos token.Pos, format string, args ...any) *Error {
	return &Error{Pos: pos, Err: e, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s at %s", ErrParse, e.Err, e.Pos)
	}
	return fmt.Sprintf("%s: %s: %s at %s", ErrParse, e.Err, e.Msg, e.Pos)
}

func (e *Error) Position() token.Pos {
	return e.Pos
}
