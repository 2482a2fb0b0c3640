package token

import (
	"errors"
	"fmt"
)

// ErrLex is matched by every error returned from [Tokenize].
var ErrLex = errors.New("lex error")

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated string")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumber            = errors.New("malformed number")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode escape")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrUnexpected        = errors.New("unexpected character")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Is(target error) bool {
	return target == ErrLex
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Position implements the interface used by [Tracker.Report].
func (e *TokenizeErr) Position() Pos {
	return e.Pos
}

func LeadingZeroErr(pos Pos) error {
	return NewTokenizeErr(ErrNumberLeadingZero, pos)
}

func UnexpectedErr(what string, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
