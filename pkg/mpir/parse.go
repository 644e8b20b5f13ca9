package mpir

// digitValue returns the value of c in the MPIR digit alphabet for the given
// base, or -1 if c is not a digit of that base. Through base 36 letter case
// is ignored; for 37-62 upper-case letters mean 10-35 and lower-case 36-61.
func digitValue(c byte, base int) int {
	var v int
	switch {
	case '0' <= c && c <= '9':
		v = int(c - '0')
	case 'A' <= c && c <= 'Z':
		v = int(c-'A') + 10
	case 'a' <= c && c <= 'z':
		if base <= 36 {
			v = int(c-'a') + 10
		} else {
			v = int(c-'a') + 36
		}
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return v
}

// checkString validates s for FromString before anything crosses the foreign
// call boundary. The native parser skips whitespace; this API rejects it, so
// validation cannot be delegated.
func checkString(s string, base int) *ParseError {
	if base < 2 || base > 62 {
		return &ParseError{Input: s, Base: base, Err: ErrInvalidBase}
	}
	body := s
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if len(body) == 0 {
		return &ParseError{Input: s, Base: base, Err: ErrEmptyInput}
	}
	for i := 0; i < len(body); i++ {
		if digitValue(body[i], base) < 0 {
			return &ParseError{Input: s, Base: base, Err: ErrInvalidDigit}
		}
	}
	return nil
}
