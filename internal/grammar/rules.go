package grammar

import (
	"fmt"
	"strconv"

	"github.com/ghettovoice/abnf"
)

// RFC 3986 Appendix A.

func lit(s string) abnf.Operator { return abnf.Literal(strconv.Quote(s), []byte(s)) }

func rng(lo, hi byte) abnf.Operator {
	return abnf.Range(fmt.Sprintf("%%x%02X-%02X", lo, hi), []byte{lo}, []byte{hi})
}

func chr(c byte) abnf.Operator { return rng(c, c) }

// upTo builds *n( op ); every repetition count is kept as an alternative.
func upTo(key string, n uint, op abnf.Operator) abnf.Operator {
	return abnf.Repeat(key, 0, n, op)
}

// times builds n( op ).
func times(key string, n uint, op abnf.Operator) abnf.Operator {
	return abnf.RepeatN(key, n, op)
}

var (
	alpha  = abnf.AltFirst("ALPHA", rng(0x41, 0x5A), rng(0x61, 0x7A))
	digit  = abnf.Range("DIGIT", []byte{'0'}, []byte{'9'})
	hexdig = abnf.AltFirst("HEXDIG", digit, rng('A', 'F'), rng('a', 'f'))

	unreserved = abnf.AltFirst("unreserved", alpha, digit, chr('-'), chr('.'), chr('_'), chr('~'))
	subDelimsR = abnf.AltFirst("sub-delims",
		chr('!'), chr('$'), chr('&'), chr('\''), chr('('), chr(')'),
		chr('*'), chr('+'), chr(','), chr(';'), chr('='),
	)
	pctEncoded = abnf.Concat("pct-encoded", chr('%'), hexdig, hexdig)
	pchar      = abnf.AltFirst("pchar", unreserved, pctEncoded, subDelimsR, chr(':'), chr('@'))

	scheme = abnf.Concat("scheme",
		alpha,
		abnf.Repeat0Inf("scheme-chars", abnf.AltFirst("scheme-char", alpha, digit, chr('+'), chr('-'), chr('.'))),
	)

	userinfo = abnf.Repeat0Inf("userinfo", abnf.AltFirst("userinfo-char", unreserved, pctEncoded, subDelimsR, chr(':')))

	decOctet = abnf.Alt("dec-octet",
		abnf.Concat("dec-octet-250", lit("25"), rng('0', '5')),
		abnf.Concat("dec-octet-200", chr('2'), rng('0', '4'), digit),
		abnf.Concat("dec-octet-100", chr('1'), digit, digit),
		abnf.Concat("dec-octet-10", rng('1', '9'), digit),
		digit,
	)
	ipv4Address = abnf.Concat("IPv4address",
		decOctet, chr('.'), decOctet, chr('.'), decOctet, chr('.'), decOctet,
	)

	h16 = abnf.Repeat("h16", 1, 4, hexdig)
	h16c      = abnf.ConcatAll("h16-colon", h16, chr(':'))
	ls32      = abnf.Alt("ls32", abnf.ConcatAll("ls32-h16", h16, chr(':'), h16), ipv4Address)
	dcolon    = lit("::")
	h16prefix = func(n uint) abnf.Operator {
		if n == 0 {
			return abnf.Optional("ipv6-prefix", h16)
		}
		return abnf.Optional("ipv6-prefix", abnf.ConcatAll("ipv6-prefix", upTo("ipv6-prefix-h16", n, h16c), h16))
	}

	// ConcatAll keeps every prefix length, "::" and ls32 select the one that fits.
	ipv6Address = abnf.Alt("IPv6address",
		abnf.ConcatAll("ipv6-full", times("ipv6-h16c", 6, h16c), ls32),
		abnf.ConcatAll("ipv6-0", dcolon, times("ipv6-h16c", 5, h16c), ls32),
		abnf.ConcatAll("ipv6-1", h16prefix(0), dcolon, times("ipv6-h16c", 4, h16c), ls32),
		abnf.ConcatAll("ipv6-2", h16prefix(1), dcolon, times("ipv6-h16c", 3, h16c), ls32),
		abnf.ConcatAll("ipv6-3", h16prefix(2), dcolon, times("ipv6-h16c", 2, h16c), ls32),
		abnf.ConcatAll("ipv6-4", h16prefix(3), dcolon, h16c, ls32),
		abnf.ConcatAll("ipv6-5", h16prefix(4), dcolon, ls32),
		abnf.ConcatAll("ipv6-6", h16prefix(5), dcolon, h16),
		abnf.ConcatAll("ipv6-7", h16prefix(6), dcolon),
	)

	ipvFuture = abnf.Concat("IPvFuture",
		abnf.AltFirst("v", chr('v'), chr('V')),
		abnf.Repeat1Inf("ipvfuture-version", hexdig),
		chr('.'),
		abnf.Repeat1Inf("ipvfuture-body", abnf.AltFirst("ipvfuture-char", unreserved, subDelimsR, chr(':'))),
	)
	ipLiteral = abnf.Concat("IP-literal", chr('['), abnf.Alt("ip-literal-addr", ipv6Address, ipvFuture), chr(']'))

	regName = abnf.Repeat0Inf("reg-name", abnf.AltFirst("reg-name-char", unreserved, pctEncoded, subDelimsR))
	host    = abnf.Alt("host", ipLiteral, ipv4Address, regName)
	port    = abnf.Repeat0Inf("port", digit)

	authority = abnf.Concat("authority",
		abnf.Optional("authority-userinfo", abnf.Concat("userinfo-at", userinfo, chr('@'))),
		host,
		abnf.Optional("authority-port", abnf.Concat("colon-port", chr(':'), port)),
	)

	segment      = abnf.Repeat0Inf("segment", pchar)
	segmentNz    = abnf.Repeat1Inf("segment-nz", pchar)
	segmentNzNc  = abnf.Repeat1Inf("segment-nz-nc", abnf.AltFirst("segment-nz-nc-char", unreserved, pctEncoded, subDelimsR, chr('@')))
	pathAbempty  = abnf.Repeat0Inf("path-abempty", abnf.Concat("slash-segment", chr('/'), segment))
	pathAbsolute = abnf.Concat("path-absolute", chr('/'), abnf.Optional("path-absolute-rest", abnf.Concat("path-rootless", segmentNz, pathAbempty)))
	pathNoscheme = abnf.Concat("path-noscheme", segmentNzNc, pathAbempty)
	pathRootless = abnf.Concat("path-rootless", segmentNz, pathAbempty)

	netPath = abnf.Concat("net-path", lit("//"), authority, pathAbempty)

	// path-empty is expressed by making the part optional.
	hierPart     = abnf.Optional("hier-part", abnf.Alt("hier-part", netPath, pathAbsolute, pathRootless))
	relativePart = abnf.Optional("relative-part", abnf.Alt("relative-part", netPath, pathAbsolute, pathNoscheme))

	queryChar = abnf.AltFirst("query-char", pchar, chr('/'), chr('?'))
	query     = abnf.Optional("query-part", abnf.Concat("query-part", chr('?'), abnf.Repeat0Inf("query", queryChar)))
	fragment  = abnf.Optional("fragment-part", abnf.Concat("fragment-part", chr('#'), abnf.Repeat0Inf("fragment", queryChar)))

	uri          = abnf.Concat("URI", scheme, chr(':'), hierPart, query, fragment)
	relativeRef  = abnf.Concat("relative-ref", relativePart, query, fragment)
	uriReference = abnf.Alt("URI-reference", uri, relativeRef)
)
