package ir

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// AsInt64 converts a number node to an int64.  Hexadecimal literals are
// accepted and fractional values truncate toward zero.
func (n *Node) AsInt64() (int64, error) {
	if n == nil || n.Type != NumberType {
		return 0, convErr(n, "Number", nil)
	}
	if v, ok, err := hexLiteral(n.Text); ok {
		return v, err
	}
	v, err := strconv.ParseInt(strings.TrimPrefix(n.Text, "+"), 10, 64)
	if err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return 0, convErr(n, "Number", rangeOr(err))
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, convErr(n, "Number", ErrRange)
	}
	return int64(f), nil
}

// AsFloat64 converts a number node to a float64.
func (n *Node) AsFloat64() (float64, error) {
	if n == nil || n.Type != NumberType {
		return 0, convErr(n, "Number", nil)
	}
	if v, ok, err := hexLiteral(n.Text); ok {
		return float64(v), err
	}
	f, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return f, convErr(n, "Number", rangeOr(err))
	}
	return f, nil
}

func (n *Node) AsBool() (bool, error) {
	if n == nil || n.Type != BoolType {
		return false, convErr(n, "Boolean", nil)
	}
	return n.Text == "true", nil
}

// AsString returns the payload of a scalar node: the decoded text of a
// string or the literal of any other scalar.
func (n *Node) AsString() (string, error) {
	if n == nil || n.IsContainer() {
		return "", convErr(n, "String", nil)
	}
	return n.Text, nil
}

func (n *Node) IsNull() (bool, error) {
	if n == nil || n.Type != NullType {
		return false, convErr(n, "Null", nil)
	}
	return true, nil
}

func hexLiteral(s string) (int64, bool, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0, false, nil
	}
	u, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil || u > math.MaxInt64+1 || (!neg && u > math.MaxInt64) {
		return 0, true, &ConversionError{From: NumberType, To: "Number", Err: ErrRange}
	}
	if neg {
		return int64(-u), true, nil
	}
	return int64(u), true, nil
}

func rangeOr(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}
	return err
}

func convErr(n *Node, to string, err error) error {
	from := NullType
	if n != nil {
		from = n.Type
	}
	return &ConversionError{From: from, To: to, Err: err}
}
