package parse

// blankComments returns a copy of d with // and /* */ comments outside
// of strings replaced by spaces.  Newlines are kept so rows match d.  An
// unterminated block comment is left in place for the tokenizer to
// reject.
func blankComments(d []byte) []byte {
	res := make([]byte, len(d))
	copy(res, d)
	inStr := false
	for i := 0; i < len(res); i++ {
		c := res[i]
		if inStr {
			switch c {
			case '\\':
				i++
			case '"':
				inStr = false
			}
			continue
		}
		switch {
		case c == '"':
			inStr = true
		case c == '/' && i+1 < len(res) && res[i+1] == '/':
			for i < len(res) && res[i] != '\n' {
				res[i] = ' '
				i++
			}
		case c == '/' && i+1 < len(res) && res[i+1] == '*':
			j := i + 2
			for j+1 < len(res) && !(res[j] == '*' && res[j+1] == '/') {
				j++
			}
			if j+1 >= len(res) {
				return res
			}
			blank(res[i : j+2])
			i = j + 1
		}
	}
	return res
}

func blank(d []byte) {
	for i := range d {
		if d[i] != '\n' {
			d[i] = ' '
		}
	}
}
