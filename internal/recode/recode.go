// Package recode implements the table-driven percent-encoding recoder used for every URL component.
//
// The recoder canonicalizes a component: each printable ASCII character is decoded, left as is
// or encoded according to an action table, "%XX" triplets are emitted with upper-case hex digits,
// encoded UTF-8 sequences are decoded to characters when they form valid UTF-8,
// and control characters are always encoded.
package recode

import (
	"strings"
	"unicode/utf8"

	"github.com/ghettovoice/gourl/internal/grammar"
)

// Options controls the recoder. The bit values match the component formatting options of the uri package.
type Options uint32

const (
	EncodeSpaces     Options = 0x100000
	EncodeUnicode    Options = 0x200000
	EncodeDelimiters Options = 0x400000 | 0x800000
	EncodeReserved   Options = 0x1000000
	DecodeReserved   Options = 0x2000000
	FullyEncoded             = EncodeSpaces | EncodeUnicode | EncodeDelimiters | EncodeReserved
	FullyDecoded             = FullyEncoded | DecodeReserved | 0x4000000
)

// Action is what the recoder does with a printable ASCII character.
type Action uint8

const (
	Decode Action = iota
	Leave
	Encode
)

// Modification overrides the table action for one character.
type Modification struct {
	Char   byte
	Action Action
}

func DecodeChar(c byte) Modification { return Modification{c, Decode} }

func LeaveChar(c byte) Modification { return Modification{c, Leave} }

func EncodeChar(c byte) Modification { return Modification{c, Encode} }

// table covers the characters 0x20 through 0x7F.
type table [0x60]Action

var defaultTable = func() table {
	var t table
	for c := 0x20; c < 0x80; c++ {
		b := byte(c)
		switch {
		case grammar.IsUnreserved(b):
			t[c-0x20] = Decode
		case grammar.IsGenDelim(b), grammar.IsSubDelim(b):
			t[c-0x20] = Leave
		default:
			t[c-0x20] = Encode
		}
	}
	return t
}()

// unsafeChars are the printable characters that are neither reserved nor unreserved,
// except space and '%'.
const unsafeChars = "\"<>\\^`{|}"

func makeTable(opts Options, mods []Modification) table {
	t := defaultTable
	if opts&DecodeReserved != 0 {
		for i := range len(unsafeChars) {
			t[unsafeChars[i]-0x20] = Decode
		}
	}
	if opts&EncodeSpaces == 0 {
		t[0] = Decode
	}
	for _, m := range mods {
		if m.Char >= 0x20 && m.Char < 0x80 {
			t[m.Char-0x20] = m.Action
		}
	}
	if opts&EncodeReserved != 0 && opts&DecodeReserved == 0 {
		for i := range len(unsafeChars) {
			t[unsafeChars[i]-0x20] = Encode
		}
	}
	return t
}

// NeedsPercentFix reports whether s holds a '%' that does not start a "%" HEXDIG HEXDIG triplet.
// Such text is recoded with every '%' taken literally.
func NeedsPercentFix(s string) bool {
	for i := strings.IndexByte(s, '%'); i >= 0; {
		if !grammar.IsPctEncoded(s[i:]) {
			return true
		}
		j := strings.IndexByte(s[i+1:], '%')
		if j < 0 {
			break
		}
		i += j + 1
	}
	return false
}

// Recode appends the recoded src to dst and reports whether the result differs from src.
//
// With [FullyDecoded] every valid triplet is decoded, see [DecodeFull].
// Otherwise mods override the action table for single characters after opts are applied,
// except that [EncodeReserved] forces the unsafe characters to be encoded.
func Recode(dst []byte, src string, opts Options, mods []Modification) ([]byte, bool) {
	if opts&FullyDecoded == FullyDecoded {
		n := len(dst)
		dst = DecodeFull(dst, src)
		return dst, string(dst[n:]) != src
	}

	t := makeTable(opts, mods)
	in := prepare(src)
	changed := in != src
	for i := 0; i < len(in); {
		c := in[i]
		switch {
		case c == '%':
			var ok bool
			dst, i, ok = recodeTriplet(dst, in, i, &t, opts)
			changed = changed || ok
		case c < 0x20:
			dst = appendEncoded(dst, c)
			changed = true
			i++
		case c >= 0x80:
			// in is valid UTF-8 here
			_, size := utf8.DecodeRuneInString(in[i:])
			if opts&EncodeUnicode != 0 {
				for j := range size {
					dst = appendEncoded(dst, in[i+j])
				}
				changed = true
			} else {
				dst = append(dst, in[i:i+size]...)
			}
			i += size
		default:
			if t[c-0x20] == Encode {
				dst = appendEncoded(dst, c)
				changed = true
			} else {
				dst = append(dst, c)
			}
			i++
		}
	}
	return dst, changed
}

// prepare returns src with every invalid UTF-8 byte spelled as a triplet and, when src holds
// a '%' that does not start a triplet, every '%' spelled as "%25".
func prepare(src string) string {
	fix := NeedsPercentFix(src)
	if !fix && utf8.ValidString(src) {
		return src
	}

	dst := make([]byte, 0, len(src)+8)
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '%' && fix:
			dst = append(dst, "%25"...)
			i++
		case c >= 0x80:
			if r, size := utf8.DecodeRuneInString(src[i:]); r != utf8.RuneError || size > 1 {
				dst = append(dst, src[i:i+size]...)
				i += size
				continue
			}
			dst = appendEncoded(dst, c)
			i++
		default:
			dst = append(dst, c)
			i++
		}
	}
	return string(dst)
}

// recodeTriplet handles the valid triplet at src[i:] and returns the new position
// and whether the output differs from the input.
func recodeTriplet(dst []byte, src string, i int, t *table, opts Options) ([]byte, int, bool) {
	d := grammar.Unhex(src[i+1])<<4 | grammar.Unhex(src[i+2])
	switch {
	case d >= 0x80:
		if opts&EncodeUnicode == 0 {
			if b, n := decodeUTF8Triplets(src[i:]); n > 0 {
				return append(dst, b...), i + n, true
			}
		}
	case d >= 0x20:
		if t[d-0x20] == Decode {
			return append(dst, d), i + 3, true
		}
	}
	dst = append(dst, '%', upperHex(src[i+1]), upperHex(src[i+2]))
	return dst, i + 3, dst[len(dst)-2] != src[i+1] || dst[len(dst)-1] != src[i+2]
}

// decodeUTF8Triplets decodes the UTF-8 sequence spelled by the triplets at the start of s.
// It returns the decoded bytes and the number of source bytes consumed, or 0 when the triplets
// are not a valid UTF-8 encoding of a single character.
func decodeUTF8Triplets(s string) ([]byte, int) {
	var buf [utf8.UTFMax]byte
	lead := grammar.Unhex(s[1])<<4 | grammar.Unhex(s[2])
	var n int
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		n = 2
	case lead >= 0xE0 && lead <= 0xEF:
		n = 3
	case lead >= 0xF0 && lead <= 0xF4:
		n = 4
	default:
		return nil, 0
	}
	if len(s) < 3*n {
		return nil, 0
	}
	buf[0] = lead
	for k := 1; k < n; k++ {
		t := s[3*k:]
		if !grammar.IsPctEncoded(t) {
			return nil, 0
		}
		buf[k] = grammar.Unhex(t[1])<<4 | grammar.Unhex(t[2])
	}
	// DecodeRune rejects overlong forms, surrogates and code points above U+10FFFF.
	if r, size := utf8.DecodeRune(buf[:n]); r == utf8.RuneError || size != n {
		return nil, 0
	}
	return buf[:n:n], 3 * n
}

func appendEncoded(dst []byte, c byte) []byte {
	return append(dst, '%', grammar.UpperHex[c>>4], grammar.UpperHex[c&15])
}

func upperHex(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}

// DecodeFull appends src to dst with every valid triplet decoded.
// Invalid UTF-8 in the result is replaced by U+FFFD, so decoding is lossy and one-directional.
func DecodeFull(dst []byte, src string) []byte {
	dec := grammar.Unescape(src)
	if !utf8.ValidString(dec) {
		dec = strings.ToValidUTF8(dec, "\uFFFD")
	}
	return append(dst, dec...)
}

// String is a convenience wrapper of [Recode] returning src itself when nothing changes.
func String(src string, opts Options, mods []Modification) string {
	out, changed := Recode(make([]byte, 0, len(src)+8), src, opts, mods)
	if !changed {
		return src
	}
	return string(out)
}

// EncodeAll percent-encodes every byte of s except unreserved characters and bytes listed in exclude.
// Bytes listed in include are encoded even when unreserved. Unlike [Recode] a literal '%' is always encoded.
func EncodeAll(s, exclude, include string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		keep := (grammar.IsUnreserved(c) || strings.IndexByte(exclude, c) >= 0) &&
			strings.IndexByte(include, c) < 0
		if keep {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(grammar.UpperHex[c>>4])
		b.WriteByte(grammar.UpperHex[c&15])
	}
	return b.String()
}

// DecodeAll decodes every valid triplet of s into the raw byte, leaving malformed sequences untouched.
// The result may be invalid UTF-8.
func DecodeAll(s string) string { return grammar.Unescape(s) }
