// Package grammar provides RFC 3986 character classes and an ABNF recognizer
// of the generic URI syntax.
package grammar

import (
	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

func match(op abnf.Operator, s []byte) bool {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsReference checks URI-reference rule. The empty string is a valid relative reference.
func IsReference[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return true
	}
	return match(uriReference, []byte(s))
}

// IsAbsolute checks URI rule, that is a reference with a scheme.
func IsAbsolute[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	return match(uri, []byte(s))
}

// IsScheme checks scheme rule.
func IsScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	return match(scheme, []byte(s))
}

// IsIPv6Address checks IPv6address rule.
func IsIPv6Address[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	return match(ipv6Address, []byte(s))
}

// IsRegName checks reg-name rule.
func IsRegName[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return true
	}
	return match(regName, []byte(s))
}
