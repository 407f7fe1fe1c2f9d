package grammar

import "bytes"

const UpperHex = "0123456789ABCDEF"

// IsHex checks HEXDIG rule.
func IsHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// Unhex returns the value of the hex digit c, or 0 when c is not a hex digit.
func Unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsPctEncoded reports whether s starts with a "%" HEXDIG HEXDIG triplet.
func IsPctEncoded[T ~string | ~[]byte](s T) bool {
	return len(s) >= 3 && s[0] == '%' && IsHex(s[1]) && IsHex(s[2])
}

// IsAlpha checks ALPHA rule.
func IsAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigit checks DIGIT rule.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlphanum checks ALPHA / DIGIT.
func IsAlphanum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsUnreserved checks unreserved rule.
func IsUnreserved(c byte) bool {
	return IsAlphanum(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

var subDelims = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// IsSubDelim checks sub-delims rule.
func IsSubDelim(c byte) bool { return subDelims[c] }

// IsGenDelim checks gen-delims rule.
func IsGenDelim(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@':
		return true
	}
	return false
}

// IsSchemeChar checks the characters allowed after the first letter of a scheme.
func IsSchemeChar(c byte) bool {
	return IsAlphanum(c) || c == '+' || c == '-' || c == '.'
}

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed sequences are copied as is.
func Unescape[T ~string | ~[]byte](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && IsHex(s[i+1]) && IsHex(s[i+2]) {
			b.WriteByte(Unhex(s[i+1])<<4 | Unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}
