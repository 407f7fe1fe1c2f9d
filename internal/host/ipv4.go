package host

import (
	"strconv"
	"strings"

	"github.com/ghettovoice/gourl/internal/grammar"
)

// ParseIPv4 parses a dotted-decimal IPv4 address.
//
// Unless strict is set the legacy shorthand forms with one to three parts are accepted:
// the last part fills all the remaining low-order bytes, so "127.1" is 127.0.0.1
// and "3232235777" is 192.168.1.1. Parts are always decimal, leading zeros do not select octal.
func ParseIPv4(s string, strict bool) ([4]byte, bool) {
	var addr [4]byte
	if s == "" {
		return addr, false
	}

	var parts [4]uint64
	n := 0
	for part := range strings.SplitSeq(s, ".") {
		if n == 4 || part == "" || len(part) > 10 {
			return addr, false
		}
		for i := 0; i < len(part); i++ {
			if !grammar.IsDigit(part[i]) {
				return addr, false
			}
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return addr, false
		}
		parts[n] = v
		n++
	}
	if strict && n != 4 {
		return addr, false
	}

	for i := range n - 1 {
		if parts[i] > 0xFF {
			return addr, false
		}
		addr[i] = byte(parts[i])
	}
	last := parts[n-1]
	if last >= 1<<(8*(5-n)) {
		return addr, false
	}
	for i := 3; i >= n-1; i-- {
		addr[i] = byte(last)
		last >>= 8
	}
	return addr, true
}

// parseDecOctets parses exactly four dec-octet parts without leading zeros,
// the only form allowed inside an IPv6 address.
func parseDecOctets(s string) ([4]byte, bool) {
	var addr [4]byte
	n := 0
	for part := range strings.SplitSeq(s, ".") {
		if n == 4 || part == "" || len(part) > 3 || len(part) > 1 && part[0] == '0' {
			return addr, false
		}
		v := 0
		for i := 0; i < len(part); i++ {
			if !grammar.IsDigit(part[i]) {
				return addr, false
			}
			v = v*10 + int(part[i]-'0')
		}
		if v > 0xFF {
			return addr, false
		}
		addr[n] = byte(v)
		n++
	}
	return addr, n == 4
}

// FormatIPv4 returns the dotted-quad text of addr.
func FormatIPv4(addr [4]byte) string {
	b := make([]byte, 0, 15)
	for i, o := range addr {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(o), 10)
	}
	return string(b)
}
