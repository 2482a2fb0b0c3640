package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigitChars = "0123456789abcdef"

// Quote returns v as a JSON string literal.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends the JSON string literal for v to d.  Control
// characters without a short escape are written as \u00XX.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	start := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		var esc byte
		switch c {
		case '"':
			esc = '"'
		case '\\':
			esc = '\\'
		case '\b':
			esc = 'b'
		case '\f':
			esc = 'f'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		default:
			if c >= 0x20 {
				continue
			}
		}
		d = append(d, v[start:i]...)
		if esc != 0 {
			d = append(d, '\\', esc)
		} else {
			d = append(d, '\\', 'u', '0', '0', hexDigitChars[c>>4], hexDigitChars[c&0xf])
		}
		start = i + 1
	}
	d = append(d, v[start:]...)
	return append(d, '"')
}

// Unquote decodes the JSON string literal v.
func Unquote(v string) (string, error) {
	b := []byte(v)
	if len(b) == 0 || b[0] != '"' {
		return "", ErrUnterminated
	}
	n, err := scanQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(b) {
		return "", ErrUnterminated
	}
	return QuotedToString(b), nil
}

// scanQuoted validates the string literal starting at d[0] == '"' and
// returns its length including both quotes.  On error the returned int
// is the offset of the offending byte.
func scanQuoted(d []byte) (int, error) {
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			if i+1 >= n {
				return 0, ErrUnterminated
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > n || !allHex(d[i+2:i+6]) {
					return i, ErrBadUnicode
				}
				i += 6
			default:
				return i, ErrBadEscape
			}
		case c < 0x20:
			return i, ErrUnicodeControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return i, ErrBadUTF8
			}
			i += sz
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if !isHex(c) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func hexVal(c byte) rune {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0')
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10
	default:
		return rune(c-'A') + 10
	}
}

// QuotedToString decodes a string literal previously validated by the
// tokenizer, quotes included.  Surrogate pairs are combined and lone
// surrogates become U+FFFD.
func QuotedToString(d []byte) string {
	n := len(d) - 1
	b := &strings.Builder{}
	b.Grow(n)
	i := 1
	for i < n {
		if d[i] != '\\' {
			j := i + 1
			for j < n && d[j] != '\\' {
				j++
			}
			b.Write(d[i:j])
			i = j
			continue
		}
		if i+1 >= n {
			break
		}
		switch d[i+1] {
		case 'u':
			r, sz := decodeU(d[i:n])
			b.WriteRune(r)
			i += sz
			continue
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(d[i+1])
		}
		i += 2
	}
	return b.String()
}

// decodeU decodes a \uXXXX escape, or a pair of them forming a
// surrogate pair, at the start of d.
func decodeU(d []byte) (rune, int) {
	r, ok := u4(d)
	if !ok {
		return utf8.RuneError, min(len(d), 2)
	}
	if !utf16.IsSurrogate(r) {
		return r, 6
	}
	if r >= 0xdc00 {
		return utf8.RuneError, 6
	}
	r2, ok := u4(d[6:])
	if !ok {
		return utf8.RuneError, 6
	}
	dec := utf16.DecodeRune(r, r2)
	if dec == utf8.RuneError {
		return dec, 6
	}
	return dec, 12
}

func u4(d []byte) (rune, bool) {
	if len(d) < 6 || d[0] != '\\' || d[1] != 'u' || !allHex(d[2:6]) {
		return 0, false
	}
	return hexVal(d[2])<<12 | hexVal(d[3])<<8 | hexVal(d[4])<<4 | hexVal(d[5]), true
}
