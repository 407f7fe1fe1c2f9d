package host

import (
	"strconv"
	"strings"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/recode"
	"github.com/ghettovoice/gourl/internal/util"
)

// zoneSep separates an IPv6 address from its zone identifier (RFC 6874).
const zoneSep = "%25"

// classifyIPv6 handles a bracketed text that is not IPvFuture.
func classifyIPv6(text string, mode Mode) (Result, *Failure) {
	inner := text[1 : len(text)-1]
	addrText, zone := inner, ""
	if i := strings.Index(inner, zoneSep); i >= 0 {
		addrText, zone = inner[:i], inner[i+len(zoneSep):]
		if zone == "" || strings.Contains(zone, zoneSep) {
			return Result{}, &Failure{InvalidIPv6Address, text, 0}
		}
	}

	addr, bad := ParseIPv6(addrText)
	if bad < 0 {
		if zone != "" {
			zone = zoneSep + recode.String(zone, 0, nil)
		}
		return Result{IPv6, "[" + FormatIPv6(addr) + zone + "]"}, nil
	}

	if mode.Tolerant {
		dec := recode.String(inner, 0, []recode.Modification{recode.DecodeChar(':')})
		if dec != inner {
			mode.Tolerant = false
			if res, f := classifyIPv6("["+dec+"]", mode); f == nil {
				return res, nil
			}
			return Result{}, &Failure{InvalidIPv6Address, text, 0}
		}
	}

	if bad >= len(addrText) {
		return Result{}, &Failure{InvalidIPv6Address, text, 0}
	}
	return Result{}, &Failure{InvalidIPv6Character, text, 1 + bad}
}

// ParseIPv6 parses the RFC 4291 text form of an IPv6 address.
// On failure it returns the index of the offending character,
// or len(s) when the address is malformed as a whole. On success the index is -1.
func ParseIPv6(s string) ([16]byte, int) {
	var addr [16]byte
	for i := 0; i < len(s); i++ {
		if c := s[i]; !grammar.IsHex(c) && c != ':' && c != '.' {
			return addr, i
		}
	}

	ellipsis := -1
	i, n := 0, 0
	if strings.HasPrefix(s, "::") {
		ellipsis = 0
		i = 2
	}
	for i < len(s) {
		if n == 16 {
			return addr, len(s)
		}

		j := i
		v := 0
		for j < len(s) && grammar.IsHex(s[j]) {
			if j-i == 4 {
				return addr, j
			}
			v = v<<4 | int(grammar.Unhex(s[j]))
			j++
		}
		if j == i {
			return addr, i
		}

		if j < len(s) && s[j] == '.' {
			if n > 12 || ellipsis < 0 && n != 12 {
				return addr, len(s)
			}
			ip4, ok := parseDecOctets(s[i:])
			if !ok {
				return addr, i
			}
			copy(addr[n:], ip4[:])
			n += 4
			i = len(s)
			break
		}

		addr[n], addr[n+1] = byte(v>>8), byte(v)
		n += 2
		i = j
		if i == len(s) {
			break
		}

		// s[i] is ':' here, the '.' case is handled above.
		i++
		if i == len(s) {
			return addr, len(s)
		}
		if s[i] == ':' {
			if ellipsis >= 0 {
				return addr, i
			}
			ellipsis = n
			i++
		}
	}

	switch {
	case ellipsis < 0 && n != 16:
		return addr, len(s)
	case ellipsis >= 0 && n == 16:
		return addr, len(s)
	case ellipsis >= 0:
		tail := n - ellipsis
		copy(addr[16-tail:], addr[ellipsis:n])
		clear(addr[ellipsis : 16-tail])
	}
	return addr, -1
}

// FormatIPv6 returns the canonical RFC 5952 text of addr: lower-case hex digits,
// the longest run of zero groups compressed to "::", and IPv4-mapped or
// IPv4-compatible addresses printed with a dotted quad.
func FormatIPv6(addr [16]byte) string {
	var ip4 [4]byte
	copy(ip4[:], addr[12:])

	prefixZero := true
	for _, b := range addr[:10] {
		if b != 0 {
			prefixZero = false
			break
		}
	}
	if prefixZero {
		switch {
		case addr[10] == 0xFF && addr[11] == 0xFF:
			return "::ffff:" + FormatIPv4(ip4)
		case addr[10] == 0 && addr[11] == 0 && addr[12]|addr[13]|addr[14] != 0:
			return "::" + FormatIPv4(ip4)
		}
	}

	var groups [8]uint16
	for i := range groups {
		groups[i] = uint16(addr[2*i])<<8 | uint16(addr[2*i+1])
	}

	bestStart, bestLen := -1, 1
	for i := 0; i < 8; {
		if groups[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && groups[j] == 0 {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}

	b := make([]byte, 0, 39)
	for i := 0; i < 8; i++ {
		if i == bestStart {
			b = append(b, "::"...)
			i += bestLen - 1
			continue
		}
		if i > 0 && i != bestStart+bestLen {
			b = append(b, ':')
		}
		b = strconv.AppendUint(b, uint64(groups[i]), 16)
	}
	return string(b)
}

// classifyIPvFuture handles "[v" HEXDIG+ "." ( unreserved / sub-delims / ":" )+ "]".
func classifyIPvFuture(text string) (Result, *Failure) {
	inner := text[1 : len(text)-1]
	i := 1
	for i < len(inner) && grammar.IsHex(inner[i]) {
		i++
	}
	if i == 1 || i == len(inner) || inner[i] != '.' {
		return Result{}, &Failure{InvalidIPvFuture, text, 1 + i}
	}

	body := inner[i+1:]
	if body == "" {
		return Result{}, &Failure{InvalidIPvFuture, text, len(text) - 1}
	}
	for j := 0; j < len(body); j++ {
		if c := body[j]; !grammar.IsUnreserved(c) && !grammar.IsSubDelim(c) && c != ':' {
			return Result{}, &Failure{InvalidIPvFuture, text, 1 + i + 1 + j}
		}
	}
	return Result{IPvFuture, "[v" + util.UCaseASCII(inner[1:i]) + "." + body + "]"}, nil
}
