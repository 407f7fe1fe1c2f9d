package uri

import (
	"strings"

	"github.com/ghettovoice/gourl/internal/grammar"
)

// sectionUserInfo validates the user name and the password at once,
// it is never stored in an [Error].
const sectionUserInfo = SectionURL + 1

const (
	forbiddenChars    = "\"<>\\^`{|}\x7F"
	forbiddenUserInfo = ":/?#[]@"
)

// validateComponent checks s[from:end] for characters not permitted in sec in strict mode
// and records an error at the first one.
func (u *URI) validateComponent(sec Section, s string, from, end int) bool {
	for i := from; i < end; i++ {
		c := s[i]
		if c >= 0x80 {
			continue
		}

		bad := c <= 0x20 || strings.IndexByte(forbiddenChars, c) >= 0 ||
			c == '%' && !grammar.IsPctEncoded(s[i:end])
		if !bad {
			switch sec {
			case sectionUserInfo:
				bad = strings.IndexByte(forbiddenUserInfo[1:], c) >= 0
			case SectionUserName, SectionPassword:
				bad = strings.IndexByte(forbiddenUserInfo, c) >= 0
			}
		}
		if !bad {
			continue
		}

		reason := ErrInvalidCharacter
		switch sec {
		case sectionUserInfo:
			sec = SectionUserName
			if strings.IndexByte(s[from:i], ':') >= 0 {
				sec = SectionPassword
			}
		case SectionHost:
			reason = ErrInvalidRegName
		}
		u.setError(sec, reason, s, i)
		return false
	}
	return true
}

// validityError returns the error in the slot or the result of the structural check:
// text rendered from a value failing it would not parse back to the same value.
func (u *URI) validityError() *Error {
	if u == nil {
		return nil
	}
	if u.err != nil {
		return u.err
	}

	p := u.path
	if p == "" {
		return nil
	}
	if p[0] == '/' {
		if u.present&hasAuthority != 0 || len(p) == 1 || p[1] != '/' {
			return nil
		}
		return &Error{SectionURL, ErrDoubleSlashWithoutAuthority, p, 0}
	}
	if u.present&hasAuthority != 0 {
		return &Error{SectionURL, ErrRelativePathWithAuthority, p, 0}
	}
	if u.present&hasScheme != 0 {
		return nil
	}
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '/':
			return nil
		case ':':
			return &Error{SectionURL, ErrColonBeforeSlash, p, i}
		}
	}
	return nil
}
