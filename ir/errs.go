package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConversion = errors.New("conversion error")
	ErrRange      = errors.New("out of range")
	ErrContainer  = errors.New("not a container")
	ErrMalformed  = errors.New("malformed node")
)

// LookupError reports a path segment that could not be resolved.
type LookupError struct {
	Op      string
	Path    string
	Segment string
	Err     error
}

func (e *LookupError) Unwrap() error {
	if e.Err == nil {
		return ErrNotFound
	}
	return e.Err
}

func (e *LookupError) Error() string {
	err := e.Err
	if err == nil {
		err = ErrNotFound
	}
	return fmt.Sprintf("%s %q: key %q: %s", e.Op, e.Path, e.Segment, err)
}

// ConversionError reports a scalar accessor applied to the wrong kind of
// node.
type ConversionError struct {
	From Type
	To   string
	Err  error
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("can not convert %s to %s: %s", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("can not convert %s to %s", e.From, e.To)
}
