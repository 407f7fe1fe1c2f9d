package uri

import (
	"strings"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/host"
	"github.com/ghettovoice/gourl/internal/util"
)

// parse splits s into components. Errors are recorded in the error slot while the
// remaining components are still filled.
//
// The scheme parser is always strict and the authority parser runs in the requested mode.
// In strict mode the path, query and fragment are validated afterwards, up to the first error.
func (u *URI) parse(s string, mode ParsingMode) {
	u.Clear()
	if s == "" {
		return
	}

	colon, question, hash := -1, -1, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '#' {
			hash = i
			break
		}
		if question < 0 {
			switch {
			case c == ':' && colon < 0:
				colon = i
			case c == '?':
				question = i
			}
		}
	}

	hierStart := 0
	if colon > 0 && u.setScheme(s, colon, false) {
		hierStart = colon + 1
	} else {
		u.scheme = ""
		u.present = 0
	}

	hierEnd := len(s)
	if question >= 0 {
		hierEnd = question
	} else if hash >= 0 {
		hierEnd = hash
	}

	pathStart := hierStart
	if strings.HasPrefix(s[hierStart:hierEnd], "//") {
		authEnd := hierEnd
		if i := strings.IndexByte(s[hierStart+2:hierEnd], '/'); i >= 0 {
			authEnd = hierStart + 2 + i
		}
		u.setAuthority(s, hierStart+2, authEnd, mode)
		pathStart = authEnd
	}
	u.setPath(s[pathStart:hierEnd])

	queryEnd := len(s)
	if hash >= 0 {
		queryEnd = hash
	}
	if question >= 0 {
		u.setQuery(s[question+1 : queryEnd])
	}
	if hash >= 0 {
		u.setFragment(s[hash+1:])
	}

	if u.err != nil || mode != StrictMode {
		return
	}

	if !u.validateComponent(SectionPath, s, pathStart, hierEnd) {
		return
	}
	if question >= 0 && !u.validateComponent(SectionQuery, s, question+1, queryEnd) {
		return
	}
	if hash >= 0 {
		u.validateComponent(SectionFragment, s, hash+1, len(s))
	}
}

// setScheme sets the scheme from s[:end]. On failure an error is recorded only when setErr is set,
// a full parse falls back to a value without scheme instead.
func (u *URI) setScheme(s string, end int, setErr bool) bool {
	for i := 0; i < end; i++ {
		c := s[i]
		if grammar.IsAlpha(c) || i > 0 && grammar.IsSchemeChar(c) {
			continue
		}
		if setErr {
			u.setError(SectionScheme, ErrInvalidCharacter, s, i)
		}
		return false
	}
	if end == 0 {
		if setErr {
			u.setError(SectionScheme, ErrInvalidCharacter, s, 0)
		}
		return false
	}
	u.scheme = util.LCaseASCII(s[:end])
	u.present |= hasScheme
	return true
}

// setAuthority parses s[from:end]. The user info ends at the last '@',
// the port starts after the last ':' that is not part of an IP literal.
// In strict mode the first error clears the whole authority.
func (u *URI) setAuthority(s string, from, end int, mode ParsingMode) {
	u.present &^= hasAuthority
	u.present |= hasHost
	u.userName, u.password, u.host, u.port = "", "", "", 0

	if u.parseAuthority(s, from, end, mode) {
		return
	}
	u.present &^= hasAuthority
	u.userName, u.password, u.host, u.port = "", "", "", 0
}

func (u *URI) parseAuthority(s string, from, end int, mode ParsingMode) bool {
	if from == end {
		return true
	}

	if at := strings.LastIndexByte(s[from:end], '@'); at >= 0 {
		at += from
		u.setUserInfo(s, from, at)
		if mode == StrictMode && !u.validateComponent(sectionUserInfo, s, from, at) {
			return false
		}
		from = at + 1
	}

	colon := strings.LastIndexByte(s[from:end], ':')
	if colon >= 0 {
		colon += from
		if s[from] == '[' {
			if bracket := strings.IndexByte(s[from:end], ']'); bracket < 0 || from+bracket > colon {
				colon = -1
			}
		}
	}

	hostEnd := end
	if colon >= 0 {
		hostEnd = colon
	}
	ok := u.setHost(s, from, hostEnd, mode)
	if mode == StrictMode && (!ok || !u.validateComponent(SectionHost, s, from, hostEnd)) {
		return false
	}
	if colon < 0 {
		return true
	}

	if colon == end-1 {
		if mode == StrictMode {
			u.setError(SectionPort, ErrEmptyPort, s, colon)
			return false
		}
		return true
	}
	port, ok := parsePort(s[colon+1 : end])
	if !ok {
		u.setError(SectionPort, ErrInvalidPort, s, colon+1)
		return mode != StrictMode
	}
	u.port = port
	u.present |= hasPort
	return true
}

func parsePort(s string) (uint16, bool) {
	var x int
	for i := 0; i < len(s); i++ {
		if !grammar.IsDigit(s[i]) {
			return 0, false
		}
		x = x*10 + int(s[i]-'0')
		if x > 0xFFFF {
			return 0, false
		}
	}
	return uint16(x), true
}

// setUserInfo splits s[from:end] at the first ':' into the user name and the password.
func (u *URI) setUserInfo(s string, from, end int) {
	ui := s[from:end]
	if i := strings.IndexByte(ui, ':'); i >= 0 {
		u.setUserName(ui[:i])
		u.setPassword(ui[i+1:])
		return
	}
	u.setUserName(ui)
	u.password = ""
	u.present &^= hasPassword
}

func (u *URI) setUserName(s string) {
	u.userName = recodeFromUser(s, userNameInIsolation)
	u.present |= hasUserName
}

func (u *URI) setPassword(s string) {
	u.password = recodeFromUser(s, passwordInIsolation)
	u.present |= hasPassword
}

// setHost classifies s[from:end] and stores its canonical form.
// A rejected host is removed. Failure positions are reported relative to s.
func (u *URI) setHost(s string, from, end int, mode ParsingMode) bool {
	u.host = ""
	u.present |= hasHost

	text := s[from:end]
	res, fail := host.Classify(text, u.hostMode(mode), hostEncoder)
	if fail != nil {
		src, pos := fail.Source, fail.Pos
		if src == text {
			src = s
			if pos >= 0 {
				pos += from
			}
		}
		u.setError(SectionHost, hostReason(fail.Reason), src, pos)
		u.present &^= hasHost
		return false
	}
	u.host = res.Text
	return true
}

func hostReason(r host.Reason) Reason {
	switch r {
	case host.InvalidIPv4Address:
		return ErrInvalidIPv4Address
	case host.InvalidIPv6Address:
		return ErrInvalidIPv6Address
	case host.InvalidIPv6Character:
		return ErrInvalidIPv6Character
	case host.InvalidIPvFuture:
		return ErrInvalidIPvFuture
	case host.MissingEndBracket:
		return ErrMissingEndBracket
	default:
		return ErrInvalidRegName
	}
}

func (u *URI) setPath(s string) {
	u.path = recodeFromUser(s, pathInIsolation)
}

func (u *URI) setQuery(s string) {
	u.query = recodeFromUser(s, queryInIsolation)
	u.present |= hasQuery
}

func (u *URI) setFragment(s string) {
	u.fragment = recodeFromUser(s, fragmentInIsolation)
	u.present |= hasFragment
}
