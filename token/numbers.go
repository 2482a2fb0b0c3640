package token

// number returns the length of the number literal at the start of d.
// On error it returns the offset where the malformed part starts.
func number(d []byte, strict bool) (int, error) {
	i := 0
	if len(d) > 0 {
		switch d[0] {
		case '-':
			i++
		case '+':
			if strict {
				return 0, ErrNumber
			}
			i++
		}
	}
	if !strict && len(d) > i+1 && d[i] == '0' && (d[i+1] == 'x' || d[i+1] == 'X') {
		n := hexDigits(d[i+2:])
		if n == 0 {
			return i + 2, ErrNumber
		}
		return i + 2 + n, nil
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i, ErrNumberLeadingZero
	}
	i += digits
	f, err := fract(d[i:])
	if err != nil {
		return i + f, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return i + e, err
	}
	return i + e, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func hexDigits(d []byte) int {
	i := 0
	for i < len(d) && isHex(d[i]) {
		i++
	}
	return i
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) {
		switch d[i] {
		case '+', '-':
			i++
		}
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0, ErrNumber
	}
	return n + i, nil
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 8259
		return 0, ErrNumber
	}
	return n + 1, nil
}
