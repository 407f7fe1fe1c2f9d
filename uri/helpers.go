package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/recode"
)

// PercentEncode encodes every byte of s except the unreserved characters and the bytes in exclude.
// Bytes in include are encoded even when unreserved.
func PercentEncode(s, exclude, include string) string {
	return recode.EncodeAll(s, exclude, include)
}

// PercentDecode decodes every valid percent-encoded triplet of s.
// The result may be invalid UTF-8.
func PercentDecode(s string) string {
	return recode.DecodeAll(s)
}

// ToACE converts a host name to its ASCII Compatible Encoding.
func ToACE(name string) (string, error) {
	norm, err := hostEncoder.Normalize(name)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(hostEncoder.ToASCII(norm))
}

// FromACE converts a host name in ASCII Compatible Encoding to its Unicode form.
func FromACE(name string) (string, error) {
	return errtrace.Wrap2(hostEncoder.Normalize(name))
}

// IsReference reports whether s matches the URI-reference rule of RFC 3986 exactly,
// without any of the repairs done in [TolerantMode].
func IsReference[T ~string | ~[]byte](s T) bool {
	return grammar.IsReference(s)
}

// IsAbsolute reports whether s matches the absolute URI rule of RFC 3986.
func IsAbsolute[T ~string | ~[]byte](s T) bool {
	return grammar.IsAbsolute(s)
}
