// Package host classifies and normalizes the host part of a URL authority.
//
// A host is either an IP literal in brackets (IPv6 or IPvFuture), an IPv4 address
// or a registered name. Registered names are normalized through an [ACE] implementation.
package host

//go:generate go tool mockgen -destination=../testutil/acemock/acemock.go -package=acemock . ACE

import (
	"strings"
	"unicode/utf8"

	"github.com/ghettovoice/gourl/internal/recode"
)

// Kind is the syntactic class of a host.
type Kind uint8

const (
	RegName Kind = iota
	IPv4
	IPv6
	IPvFuture
)

func (k Kind) String() string {
	switch k {
	case RegName:
		return "reg-name"
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	case IPvFuture:
		return "IPvFuture"
	default:
		return "unknown"
	}
}

// Reason tells why a host was rejected.
type Reason uint8

const (
	InvalidRegName Reason = iota + 1
	InvalidIPv4Address
	InvalidIPv6Address
	InvalidIPv6Character
	InvalidIPvFuture
	MissingEndBracket
)

// Failure describes a rejected host. Pos indexes Source, or is -1 when the failure has no position.
type Failure struct {
	Reason Reason
	Source string
	Pos    int
}

// Result is a classified host. Text is the canonical form, IP literals keep their brackets.
type Result struct {
	Kind Kind
	Text string
}

// ACE converts registered names to and from the ASCII Compatible Encoding.
type ACE interface {
	// Normalize validates name and returns its canonical display form.
	Normalize(name string) (string, error)
	// ToASCII returns the ACE form of a normalized name.
	ToASCII(name string) (string, error)
}

// Mode configures the classifier.
type Mode struct {
	// Tolerant decodes percent-encoded hosts before validation.
	Tolerant bool
	// StrictIPv4 rejects the legacy shorthand forms of IPv4 addresses like "127.1"
	// and any other all-numeric host that is not a dotted quad.
	StrictIPv4 bool
}

// Classify determines the kind of text and returns its canonical form.
// An empty text is an empty registered name.
func Classify(text string, mode Mode, ace ACE) (Result, *Failure) {
	if text == "" {
		return Result{Kind: RegName}, nil
	}

	if text[0] == '[' {
		if len(text) < 2 || text[len(text)-1] != ']' {
			return Result{}, &Failure{MissingEndBracket, text, 0}
		}
		inner := text[1 : len(text)-1]
		if len(inner) > 0 && (inner[0] == 'v' || inner[0] == 'V') {
			return classifyIPvFuture(text)
		}
		return classifyIPv6(text, mode)
	}

	if addr, ok := ParseIPv4(text, mode.StrictIPv4); ok {
		return Result{IPv4, FormatIPv4(addr)}, nil
	}
	if mode.StrictIPv4 && isNumeric(text) {
		return Result{}, &Failure{InvalidIPv4Address, text, -1}
	}

	if mode.Tolerant && strings.IndexByte(text, '%') >= 0 {
		dec := recode.String(text, 0, nil)
		if i := strings.IndexByte(dec, '%'); i >= 0 {
			return Result{}, &Failure{InvalidRegName, dec, i}
		}
		mode.Tolerant = false
		return Classify(dec, mode, ace)
	}

	if i := invalidUTF8(text); i >= 0 {
		return Result{}, &Failure{InvalidRegName, text, i}
	}
	name, err := ace.Normalize(text)
	if err != nil || name == "" {
		return Result{}, &Failure{InvalidRegName, text, -1}
	}
	if addr, ok := ParseIPv4(name, mode.StrictIPv4); ok {
		return Result{IPv4, FormatIPv4(addr)}, nil
	}
	if mode.StrictIPv4 && isNumeric(name) {
		return Result{}, &Failure{InvalidIPv4Address, text, -1}
	}
	return Result{RegName, name}, nil
}

// invalidUTF8 returns the index of the first byte of s that is not part of a valid UTF-8 sequence, or -1.
func invalidUTF8(s string) int {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return -1
}

// isNumeric reports whether s is made of decimal digits and dots and ends with a digit,
// the shape every IPv4 form shares.
func isNumeric(s string) bool {
	if s == "" || s[len(s)-1] == '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			return false
		}
	}
	return true
}

// Render returns the text of a canonical host for output.
// Registered names are converted to ACE when encodeUnicode is set.
func Render(text string, encodeUnicode bool, ace ACE) string {
	if !encodeUnicode || text == "" || text[0] == '[' || isASCII(text) {
		return text
	}
	if a, err := ace.ToASCII(text); err == nil {
		return a
	}
	return text
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
