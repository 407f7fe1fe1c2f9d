package uri

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/ghettovoice/gourl/internal/log"
	"github.com/ghettovoice/gourl/internal/util"
)

// Section names the part of a URL an [Error] refers to.
type Section uint8

const (
	SectionScheme Section = iota + 1
	SectionUserName
	SectionPassword
	SectionHost
	SectionPort
	SectionPath
	SectionQuery
	SectionFragment
	// SectionURL marks errors found by the structural check of the whole value.
	SectionURL
)

func (s Section) String() string {
	switch s {
	case SectionScheme:
		return "scheme"
	case SectionUserName:
		return "user name"
	case SectionPassword:
		return "password"
	case SectionHost:
		return "hostname"
	case SectionPort:
		return "port"
	case SectionPath:
		return "path"
	case SectionQuery:
		return "query"
	case SectionFragment:
		return "fragment"
	case SectionURL:
		return "URL"
	default:
		return "unknown section"
	}
}

// Reason is the kind of an [Error]. Reasons are sentinel errors matched with [errors.Is].
type Reason string

func (r Reason) Error() string { return string(r) }

const (
	ErrInvalidCharacter     Reason = "character not permitted"
	ErrInvalidRegName       Reason = "invalid hostname"
	ErrInvalidIPv4Address   Reason = "invalid IPv4 address"
	ErrInvalidIPv6Address   Reason = "invalid IPv6 address"
	ErrInvalidIPv6Character Reason = "invalid character in IPv6 address"
	ErrInvalidIPvFuture     Reason = "invalid IPvFuture address"
	ErrMissingEndBracket    Reason = "expected ']' to match '[' in hostname"
	ErrInvalidPort          Reason = "invalid port or port number out of range"
	ErrEmptyPort            Reason = "port field was empty"

	ErrRelativePathWithAuthority   Reason = "path component is relative and authority is present"
	ErrDoubleSlashWithoutAuthority Reason = "path component starts with '//' and authority is absent"
	ErrColonBeforeSlash            Reason = "relative URL's path component contains ':' before any '/'"
)

// Error describes why a URL is invalid. Source is the text being processed when the error
// was found: the whole input of a parse, the argument of a setter or the offending component.
// Pos indexes Source, it is -1 when the error has no position.
type Error struct {
	Section Section
	Reason  Reason
	Source  string
	Pos     int
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	r, ok := e.char()
	switch e.Reason {
	case ErrInvalidCharacter:
		if ok {
			return fmt.Sprintf("invalid %s (character %s not permitted)", e.Section, strconv.QuoteRune(r))
		}
		return "invalid " + e.Section.String()
	case ErrInvalidRegName:
		if ok {
			return fmt.Sprintf("invalid hostname (character %s not permitted)", strconv.QuoteRune(r))
		}
		return "invalid hostname (contains invalid characters)"
	case ErrInvalidIPv6Character:
		if ok {
			return fmt.Sprintf("invalid IPv6 address (character %s not permitted)", strconv.QuoteRune(r))
		}
		return string(ErrInvalidIPv6Address)
	case ErrInvalidIPvFuture:
		if ok {
			return fmt.Sprintf("invalid IPvFuture address (character %s not permitted)", strconv.QuoteRune(r))
		}
		return string(e.Reason)
	default:
		return string(e.Reason)
	}
}

// Unwrap returns the error [Reason].
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Reason
}

func (e *Error) char() (rune, bool) {
	if e.Pos < 0 || e.Pos >= len(e.Source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(e.Source[e.Pos:])
	return r, true
}

// setError fills the error slot unless it already holds an error.
func (u *URI) setError(sec Section, reason Reason, src string, pos int) {
	if u.err != nil {
		return
	}
	u.err = &Error{sec, reason, src, pos}
	logger().Debug("URL error recorded",
		"section", sec.String(),
		"reason", string(reason),
		"source", log.ShortValue(src, 256),
		"position", pos,
	)
}

func (u *URI) clearError() { u.err = nil }

// Err returns the reason u is invalid, or nil when it is valid or empty.
// The returned error is always an [*Error].
func (u *URI) Err() error {
	if u == nil {
		return nil
	}
	if err := u.validityError(); err != nil {
		return err
	}
	return nil
}

// ErrorString returns a human readable explanation of why u is invalid
// followed by the source of the error and the components found so far.
// It returns an empty string for a valid value.
func (u *URI) ErrorString() string {
	if u == nil {
		return ""
	}
	err := u.validityError()
	if err == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(err.Error())
	sb.WriteString("; source was ")
	sb.WriteString(strconv.Quote(err.Source))

	sep := "; "
	component := func(present bool, name, val string) {
		if !present {
			return
		}
		sb.WriteString(sep)
		sb.WriteString(name)
		sb.WriteString(" = ")
		sb.WriteString(strconv.Quote(val))
		sep = ", "
	}
	component(u.present&hasScheme != 0, "scheme", u.scheme)
	component(u.present&hasUserInfo != 0, "userinfo", u.UserInfo(PrettyDecoded))
	component(u.present&hasHost != 0, "host", u.host)
	component(u.present&hasPort != 0, "port", strconv.Itoa(int(u.port)))
	component(u.path != "", "path", u.path)
	component(u.present&hasQuery != 0, "query", u.query)
	component(u.present&hasFragment != 0, "fragment", u.fragment)
	return sb.String()
}
