package token

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

type tokenOpts struct {
	strict bool
}

type TokenOpt func(*tokenOpts)

// TokenStrict restricts numbers to RFC 8259: no leading '+' and no
// hexadecimal literals.
func TokenStrict() TokenOpt {
	return func(o *tokenOpts) { o.strict = true }
}

type tkState struct {
	row, col int
}

func (ts *tkState) pos(off int) Pos {
	return Pos{Offset: off, Row: ts.row, Col: ts.col}
}

// posIn is the position of d[k] where d starts at off on the current
// line.  Tokens never span lines.
func (ts *tkState) posIn(d []byte, off, k int) Pos {
	k = min(k, len(d))
	return Pos{Offset: off + k, Row: ts.row, Col: ts.col + utf8.RuneCount(d[:k])}
}

func (ts *tkState) advance(d []byte) {
	ts.col += utf8.RuneCount(d)
}

var (
	litTrue  = []byte("true")
	litFalse = []byte("false")
	litNull  = []byte("null")
)

// Tokenize appends the tokens of src to dst.  On error no tokens are
// returned and the error is a *TokenizeErr.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, f := range opts {
		f(o)
	}
	ts := &tkState{row: 1, col: 1}
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++
			ts.col++
			continue
		case '\n':
			i++
			ts.row++
			ts.col = 1
			continue
		case '{', '}', '[', ']', ':', ',':
			dst = append(dst, Token{Type: punct(c), Pos: ts.pos(i), Bytes: src[i : i+1]})
			i++
			ts.col++
			continue
		case '"':
			sz, err := scanQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, ts.posIn(src[i:], i, sz))
			}
			dst = append(dst, Token{Type: TString, Pos: ts.pos(i), Bytes: src[i : i+sz]})
			ts.advance(src[i : i+sz])
			i += sz
			continue
		case 't', 'f', 'n':
			tt, lit := literal(src[i:])
			if lit == nil {
				return nil, NewTokenizeErr(ErrLiteral, ts.pos(i))
			}
			dst = append(dst, Token{Type: tt, Pos: ts.pos(i), Bytes: src[i : i+len(lit)]})
			i += len(lit)
			ts.col += len(lit)
			continue
		}
		if c == '-' || (c == '+' && !o.strict) || asciiDigit(c) {
			sz, err := number(src[i:], o.strict)
			if err != nil {
				return nil, NewTokenizeErr(err, ts.posIn(src[i:], i, sz))
			}
			dst = append(dst, Token{Type: TNumber, Pos: ts.pos(i), Bytes: src[i : i+sz]})
			i += sz
			ts.col += sz
			continue
		}
		r, _ := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError {
			return nil, NewTokenizeErr(ErrBadUTF8, ts.pos(i))
		}
		return nil, UnexpectedErr(strconv.QuoteRune(r), ts.pos(i))
	}
	return dst, nil
}

func punct(c byte) TokenType {
	switch c {
	case '{':
		return TLCurl
	case '}':
		return TRCurl
	case '[':
		return TLSquare
	case ']':
		return TRSquare
	case ':':
		return TColon
	default:
		return TComma
	}
}

func literal(d []byte) (TokenType, []byte) {
	switch {
	case bytes.HasPrefix(d, litTrue):
		return TTrue, litTrue
	case bytes.HasPrefix(d, litFalse):
		return TFalse, litFalse
	case bytes.HasPrefix(d, litNull):
		return TNull, litNull
	}
	return 0, nil
}
