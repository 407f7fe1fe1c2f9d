package uri

import (
	"strconv"
	"strings"
)

// Every setter clears the error slot before it runs,
// the error of a failed setter call is reported by [URI.Err].

// parseDecoded turns fully decoded text into the tolerant input form.
func parseDecoded(s string) string {
	return strings.ReplaceAll(s, "%", "%25")
}

// SetScheme sets the scheme. An empty scheme removes it.
// An invalid scheme records an error and leaves u without scheme.
func (u *URI) SetScheme(scheme string) {
	u.clearError()
	u.scheme = ""
	u.present &^= hasScheme
	if scheme == "" {
		return
	}
	u.setScheme(scheme, len(scheme), true)
}

// SetUserInfo sets the user name and the password from "name[:password]".
// An empty string removes both. [DecodedMode] is not permitted, the call is ignored.
func (u *URI) SetUserInfo(userInfo string, mode ParsingMode) {
	u.clearError()
	if mode == DecodedMode {
		logger().Warn("DecodedMode is not permitted for the user info")
		return
	}

	userInfo = strings.TrimSpace(userInfo)
	if userInfo == "" {
		u.userName, u.password = "", ""
		u.present &^= hasUserInfo
		return
	}
	u.setUserInfo(userInfo, 0, len(userInfo))
	if mode == StrictMode && !u.validateComponent(sectionUserInfo, userInfo, 0, len(userInfo)) {
		u.userName, u.password = "", ""
		u.present &^= hasUserInfo
	}
}

// SetUserName sets the user name. An empty string removes it.
func (u *URI) SetUserName(userName string, mode ParsingMode) {
	u.clearError()
	if userName == "" {
		u.userName = ""
		u.present &^= hasUserName
		return
	}

	data := userName
	if mode == DecodedMode {
		data = parseDecoded(data)
	}
	u.setUserName(data)
	if mode == StrictMode && !u.validateComponent(SectionUserName, userName, 0, len(userName)) {
		u.userName = ""
		u.present &^= hasUserName
	}
}

// SetPassword sets the password. An empty string removes it.
func (u *URI) SetPassword(password string, mode ParsingMode) {
	u.clearError()
	if password == "" {
		u.password = ""
		u.present &^= hasPassword
		return
	}

	data := password
	if mode == DecodedMode {
		data = parseDecoded(data)
	}
	u.setPassword(data)
	if mode == StrictMode && !u.validateComponent(SectionPassword, password, 0, len(password)) {
		u.password = ""
		u.present &^= hasPassword
	}
}

// SetHost sets the host. An empty string removes it.
// IPv6 and IPvFuture addresses may be given with or without brackets.
func (u *URI) SetHost(h string, mode ParsingMode) {
	u.clearError()
	if h == "" {
		u.host = ""
		u.present &^= hasHost
		return
	}

	data := h
	if mode == DecodedMode {
		data = parseDecoded(data)
		mode = TolerantMode
	}
	if u.setHost(data, 0, len(data), mode) {
		return
	}
	if strings.HasPrefix(data, "[") {
		u.present &^= hasHost
		return
	}

	// might be an IP literal without brackets
	first := u.err
	u.err = nil
	bracketed := "[" + data + "]"
	if u.setHost(bracketed, 0, len(bracketed), mode) {
		u.err = nil
		return
	}
	u.err = first
	if strings.IndexByte(data, ':') >= 0 {
		u.err = &Error{SectionHost, ErrInvalidIPv6Address, h, -1}
	}
	u.present &^= hasHost
}

// SetPort sets the port, -1 removes it. A port out of range records an error and removes the port.
func (u *URI) SetPort(port int) {
	u.clearError()
	if port < -1 || port > 0xFFFF {
		u.setError(SectionPort, ErrInvalidPort, strconv.Itoa(port), 0)
		port = -1
	}
	if port == -1 {
		u.port = 0
		u.present &^= hasPort
		return
	}
	u.port = uint16(port)
	u.present |= hasPort
}

// SetAuthority replaces the user info, the host and the port with the result of parsing authority.
// An empty string removes the authority, [DecodedMode] is not permitted, the call is ignored.
func (u *URI) SetAuthority(authority string, mode ParsingMode) {
	u.clearError()
	if mode == DecodedMode {
		logger().Warn("DecodedMode is not permitted for the authority")
		return
	}
	u.setAuthority(authority, 0, len(authority), mode)
	if authority == "" {
		u.present &^= hasAuthority
	}
}

// SetPath sets the path.
func (u *URI) SetPath(p string, mode ParsingMode) {
	u.clearError()
	data := p
	if mode == DecodedMode {
		data = parseDecoded(data)
	}
	u.setPath(data)
	if mode == StrictMode && !u.validateComponent(SectionPath, p, 0, len(p)) {
		u.path = ""
	}
}

// SetQuery sets the query. An empty string sets an empty query, use [URI.RemoveQuery] to remove it.
func (u *URI) SetQuery(q string, mode ParsingMode) {
	u.clearError()
	data := q
	if mode == DecodedMode {
		data = parseDecoded(data)
	}
	u.setQuery(data)
	if mode == StrictMode && !u.validateComponent(SectionQuery, q, 0, len(q)) {
		u.query = ""
	}
}

// SetQueryItems sets the query from the encoded form of q. An empty q removes the query.
func (u *URI) SetQueryItems(q *Query) {
	if q.IsEmpty() {
		u.RemoveQuery()
		return
	}
	u.SetQuery(q.Encode(PrettyDecoded), TolerantMode)
}

// RemoveQuery removes the query.
func (u *URI) RemoveQuery() {
	u.clearError()
	u.query = ""
	u.present &^= hasQuery
}

// SetFragment sets the fragment. An empty string sets an empty fragment, use [URI.RemoveFragment] to remove it.
func (u *URI) SetFragment(f string, mode ParsingMode) {
	u.clearError()
	data := f
	if mode == DecodedMode {
		data = parseDecoded(data)
	}
	u.setFragment(data)
	if mode == StrictMode && !u.validateComponent(SectionFragment, f, 0, len(f)) {
		u.fragment = ""
	}
}

// RemoveFragment removes the fragment.
func (u *URI) RemoveFragment() {
	u.clearError()
	u.fragment = ""
	u.present &^= hasFragment
}
