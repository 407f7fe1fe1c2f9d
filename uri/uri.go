package uri

//go:generate go tool errtrace -w .

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/ace"
	"github.com/ghettovoice/gourl/internal/host"
	"github.com/ghettovoice/gourl/internal/pathutil"
	"github.com/ghettovoice/gourl/internal/recode"
	"github.com/ghettovoice/gourl/internal/util"
)

// hostEncoder converts registered names to and from ACE.
var hostEncoder host.ACE = ace.Default

// URI is a parsed URL or relative reference.
//
// Components are stored in the pretty decoded form and rendered on demand with
// [FormattingOptions]. The zero value is an empty URI ready to use.
// A URI must not be mutated concurrently, concurrent reads are safe.
type URI struct {
	scheme   string
	userName string
	password string
	host     string // canonical; IP literals keep their brackets
	path     string
	query    string
	fragment string
	port     uint16
	present  presence
	err      *Error

	strictIPv4 bool
}

// presence records which components are present, an empty component may still be present
// ("http://@host/?#" has an empty user name, query and fragment).
type presence uint8

const (
	hasScheme presence = 1 << iota
	hasUserName
	hasPassword
	hasHost
	hasPort
	hasQuery
	hasFragment

	hasUserInfo  = hasUserName | hasPassword
	hasAuthority = hasUserInfo | hasHost | hasPort
)

// New parses s and returns the result. Parsing never fails: an invalid input yields
// an invalid value with every component filled best effort, see [URI.Err].
func New[T ~string | ~[]byte](s T, mode ParsingMode) *URI {
	u := new(URI)
	u.SetURL(string(s), mode)
	return u
}

// NewWithOptions is like [New] with extra parse options.
// The options stay with the value and apply to the following setter calls.
func NewWithOptions[T ~string | ~[]byte](s T, opts ParseOptions) *URI {
	u := &URI{strictIPv4: opts.StrictIPv4}
	u.SetURL(string(s), opts.Mode)
	return u
}

// Parse parses s and returns the result along with its validity error.
// The returned value is never nil, on error it holds the components parsed so far.
// An empty input gives an empty value and no error.
func Parse[T ~string | ~[]byte](s T, mode ParsingMode) (*URI, error) {
	u := New(s, mode)
	if err := u.Err(); err != nil {
		return u, errtrace.Wrap(err)
	}
	return u, nil
}

// MustParse is like [Parse] in [TolerantMode] but panics if the result is invalid.
func MustParse[T ~string | ~[]byte](s T) *URI {
	return util.Must2(Parse(s, TolerantMode))
}

// SetURL replaces u with the result of parsing s.
// [DecodedMode] is not permitted for a full URL, it is reported to the logger and
// [TolerantMode] is used instead.
func (u *URI) SetURL(s string, mode ParsingMode) {
	if mode == DecodedMode {
		logger().Warn("DecodedMode is not permitted when parsing a full URL, falling back to TolerantMode")
		mode = TolerantMode
	}
	u.parse(s, mode)
}

// Clear resets u to the empty value. Parse options are kept.
func (u *URI) Clear() {
	*u = URI{strictIPv4: u.strictIPv4}
}

// Clone returns a deep copy of u.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	if u.err != nil {
		e := *u.err
		u2.err = &e
	}
	return &u2
}

func (u *URI) hostMode(mode ParsingMode) host.Mode {
	return host.Mode{Tolerant: mode != StrictMode, StrictIPv4: u.strictIPv4}
}

// IsEmpty reports whether u holds no data at all.
func (u *URI) IsEmpty() bool {
	return u == nil || u.present == 0 && u.path == ""
}

// IsValid reports whether u is non-empty and free of errors.
func (u *URI) IsValid() bool {
	return !u.IsEmpty() && u.validityError() == nil
}

// IsRelative reports whether u has no scheme.
func (u *URI) IsRelative() bool {
	return u == nil || u.present&hasScheme == 0
}

// IsLocalFile reports whether u uses the "file" scheme.
func (u *URI) IsLocalFile() bool {
	return u != nil && u.scheme == "file"
}

// Scheme returns the lower-cased scheme or an empty string.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// UserName returns the user name. [FullyDecoded] is permitted.
func (u *URI) UserName(opts ComponentFormattingOptions) string {
	if u == nil {
		return ""
	}
	mods := userNameInIsolation
	if opts&EncodeDelimiters != 0 {
		mods = userNameInURL
	}
	return recodeStored(u.userName, opts, mods)
}

// Password returns the password. [FullyDecoded] is permitted.
func (u *URI) Password(opts ComponentFormattingOptions) string {
	if u == nil {
		return ""
	}
	mods := passwordInIsolation
	if opts&EncodeDelimiters != 0 {
		mods = passwordInURL
	}
	return recodeStored(u.password, opts, mods)
}

// UserInfo returns the user name and the password joined with ':'.
// [FullyDecoded] is not permitted since the result would be ambiguous, an empty string is returned.
func (u *URI) UserInfo(opts ComponentFormattingOptions) string {
	if u == nil {
		return ""
	}
	if opts.Has(FullyDecoded) {
		logger().Warn("FullyDecoded is not permitted for the user info")
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.appendUserInfo(sb, opts, targetUserInfo)
	return sb.String()
}

func (u *URI) appendUserInfo(sb *strings.Builder, opts FormattingOptions, to target) {
	if u.present&hasUserInfo == 0 {
		return
	}
	userMods, passMods := userInfoTables(opts, to)
	ro := opts.recode()
	sb.WriteString(recode.String(u.userName, ro, userMods))
	if opts&RemovePassword != 0 || u.present&hasPassword == 0 {
		return
	}
	sb.WriteByte(':')
	sb.WriteString(recode.String(u.password, ro, passMods))
}

// Host returns the host without the brackets of IP literals.
// Only [EncodeUnicode] changes the result: registered names are converted to ACE.
func (u *URI) Host(opts ComponentFormattingOptions) string {
	if u == nil {
		return ""
	}
	h := u.renderHost(opts)
	if len(h) > 1 && h[0] == '[' {
		h = h[1 : len(h)-1]
	}
	return h
}

func (u *URI) renderHost(opts FormattingOptions) string {
	if u.host == "" {
		return ""
	}
	if opts.Has(FullyDecoded) {
		opts = 0
	} else {
		opts &= EncodeUnicode
	}
	if u.host[0] == '[' {
		if opts != 0 {
			return recode.String(u.host, opts.recode(), nil)
		}
		return u.host
	}
	return host.Render(u.host, opts != 0, hostEncoder)
}

// Port returns the port or def when u has no port.
func (u *URI) Port(def int) int {
	if u == nil || u.present&hasPort == 0 {
		return def
	}
	return int(u.port)
}

// HasAuthority reports whether u has an authority component, possibly an empty one.
func (u *URI) HasAuthority() bool {
	return u != nil && u.present&hasAuthority != 0
}

// Authority returns the user info, the host and the port.
// [FullyDecoded] is not permitted since the result would be ambiguous, an empty string is returned.
func (u *URI) Authority(opts ComponentFormattingOptions) string {
	if u == nil {
		return ""
	}
	if opts.Has(FullyDecoded) {
		logger().Warn("FullyDecoded is not permitted for the authority")
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.appendAuthority(sb, opts, targetAuthority)
	return sb.String()
}

func (u *URI) appendAuthority(sb *strings.Builder, opts FormattingOptions, to target) {
	if !opts.Has(RemoveUserInfo) {
		u.appendUserInfo(sb, opts, to)
		if u.present&hasUserName != 0 || u.present&hasPassword != 0 && opts&RemovePassword == 0 {
			sb.WriteByte('@')
		}
	}
	sb.WriteString(u.renderHost(opts))
	if opts&RemovePort == 0 && u.present&hasPort != 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(int(u.port)))
	}
}

// Path returns the path. Besides the component options
// [NormalizePathSegments], [RemoveFilename] and [StripTrailingSlash] apply.
func (u *URI) Path(opts FormattingOptions) string {
	if u == nil {
		return ""
	}
	return u.renderPath(opts, targetComponent)
}

func (u *URI) renderPath(opts FormattingOptions, to target) string {
	p := u.path
	if opts&NormalizePathSegments != 0 {
		p = pathutil.RemoveDotSegments(p)
	}
	if opts&RemoveFilename != 0 {
		p = pathutil.Dir(p)
	}
	if opts&StripTrailingSlash != 0 {
		p = pathutil.TrimTrailingSlashes(p)
	}
	mods := pathInIsolation
	if to == targetURL || opts&EncodeDelimiters != 0 {
		mods = pathInURL
	}
	return recodeStored(p, opts, mods)
}

// FileName returns the last segment of the path.
func (u *URI) FileName(opts FormattingOptions) string {
	p := u.Path(opts)
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// HasQuery reports whether u has a query, possibly an empty one.
func (u *URI) HasQuery() bool {
	return u != nil && u.present&hasQuery != 0
}

// Query returns the query.
func (u *URI) Query(opts ComponentFormattingOptions) string {
	if u == nil {
		return ""
	}
	return u.renderQuery(opts, targetComponent)
}

func (u *URI) renderQuery(opts FormattingOptions, to target) string {
	mods := queryInIsolation
	if to == targetURL || opts&EncodeDelimiters != 0 {
		mods = queryInURL
	}
	return recodeStored(u.query, opts, mods)
}

// HasFragment reports whether u has a fragment, possibly an empty one.
func (u *URI) HasFragment() bool {
	return u != nil && u.present&hasFragment != 0
}

// Fragment returns the fragment.
func (u *URI) Fragment(opts ComponentFormattingOptions) string {
	if u == nil {
		return ""
	}
	return u.renderFragment(opts, targetComponent)
}

func (u *URI) renderFragment(opts FormattingOptions, to target) string {
	mods := fragmentInIsolation
	switch {
	case opts&EncodeDelimiters != 0:
		mods = fragmentInURL
	case to == targetURL:
		mods = nil
	}
	return recodeStored(u.fragment, opts, mods)
}

// Equal reports whether u and val hold the same components.
// Errors are not compared. val may be a URI or *URI.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == nil || other == nil {
		return u.IsEmpty() && other.IsEmpty()
	}

	mask := ^presence(0)
	if u.IsLocalFile() {
		mask &^= hasHost
	}
	return u.present&mask == other.present&mask &&
		u.scheme == other.scheme &&
		u.userName == other.userName &&
		u.password == other.password &&
		u.host == other.host &&
		u.port == other.port &&
		u.path == other.path &&
		u.query == other.query &&
		u.fragment == other.fragment
}

// Matches reports whether u and other are equal after the parts named by the
// URL options of opts are removed and the path options applied.
func (u *URI) Matches(other *URI, opts FormattingOptions) bool {
	if u == nil || other == nil {
		return u.IsEmpty() && other.IsEmpty()
	}

	mask := ^presence(0)
	if u.IsLocalFile() {
		mask &^= hasHost
	}

	if opts.Has(RemoveScheme) {
		mask &^= hasScheme
	} else if u.scheme != other.scheme {
		return false
	}
	if opts.Has(RemovePassword) {
		mask &^= hasPassword
	} else if u.password != other.password {
		return false
	}
	if opts.Has(RemoveUserInfo) {
		mask &^= hasUserName
	} else if u.userName != other.userName {
		return false
	}
	if opts.Has(RemovePort) {
		mask &^= hasPort
	} else if u.port != other.port {
		return false
	}
	if opts.Has(RemoveAuthority) {
		mask &^= hasHost
	} else if u.host != other.host {
		return false
	}
	if opts.Has(RemoveQuery) {
		mask &^= hasQuery
	} else if u.query != other.query {
		return false
	}
	if opts.Has(RemoveFragment) {
		mask &^= hasFragment
	} else if u.fragment != other.fragment {
		return false
	}
	if u.present&mask != other.present&mask {
		return false
	}
	if opts.Has(RemovePath) {
		return true
	}
	return u.renderPath(opts, targetComponent) == other.renderPath(opts, targetComponent)
}

// IsParentOf reports whether child is located under u: it has the same scheme and authority
// (or none) and its path extends the path of u by at least one segment.
func (u *URI) IsParentOf(child *URI) bool {
	if child == nil {
		return false
	}
	childPath := child.Path(PrettyDecoded)
	if u.IsEmpty() {
		return child.Scheme() == "" && child.Authority(PrettyDecoded) == "" &&
			strings.HasPrefix(childPath, "/")
	}

	ourPath := u.Path(PrettyDecoded)
	if child.Scheme() != "" && child.Scheme() != u.scheme {
		return false
	}
	if ca := child.Authority(PrettyDecoded); ca != "" && ca != u.Authority(PrettyDecoded) {
		return false
	}
	if !strings.HasPrefix(childPath, ourPath) || len(childPath) <= len(ourPath) {
		return false
	}
	return strings.HasSuffix(ourPath, "/") || childPath[len(ourPath)] == '/'
}
