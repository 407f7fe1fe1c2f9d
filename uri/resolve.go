package uri

import (
	"strings"

	"github.com/ghettovoice/gourl/internal/pathutil"
)

// Resolved returns the target of ref resolved against u as the base,
// following RFC 3986 section 5.2. A ref with the same scheme as the base is treated
// as a relative reference for compatibility with non-strict parsers.
// Neither u nor ref is modified.
func (u *URI) Resolved(ref *URI) *URI {
	if u == nil {
		return ref.Clone()
	}
	if ref == nil {
		return u.Clone()
	}

	var t *URI
	if ref.present&hasScheme != 0 && ref.scheme != u.scheme {
		t = ref.Clone()
	} else {
		if ref.present&hasAuthority != 0 {
			t = ref.Clone()
		} else {
			t = &URI{
				userName:   u.userName,
				password:   u.password,
				host:       u.host,
				port:       u.port,
				present:    u.present & hasAuthority,
				strictIPv4: u.strictIPv4,
			}
			switch {
			case ref.path == "":
				t.path = u.path
				switch {
				case ref.present&hasQuery != 0:
					t.query = ref.query
					t.present |= hasQuery
				case u.present&hasQuery != 0:
					t.query = u.query
					t.present |= hasQuery
				}
			default:
				if strings.HasPrefix(ref.path, "/") {
					t.path = ref.path
				} else {
					t.path = pathutil.Merge(u.path, u.present&hasAuthority != 0, ref.path)
				}
				if ref.present&hasQuery != 0 {
					t.query = ref.query
					t.present |= hasQuery
				}
			}
		}
		t.scheme = u.scheme
		if u.present&hasScheme != 0 {
			t.present |= hasScheme
		} else {
			t.present &^= hasScheme
		}
	}

	t.fragment = ref.fragment
	if ref.present&hasFragment != 0 {
		t.present |= hasFragment
	} else {
		t.present &^= hasFragment
	}

	t.path = pathutil.RemoveDotSegments(t.path)
	if t.present&hasAuthority == 0 {
		if t.IsLocalFile() && strings.HasPrefix(t.path, "/") {
			t.present |= hasHost
		} else {
			t.path = pathutil.StripNonAuthorityDoubleSlash(t.path)
		}
	}
	return t
}

// Adjusted returns a copy of u with the parts named by the URL options of opts removed
// and the path options applied. An invalid value gives an empty result.
func (u *URI) Adjusted(opts FormattingOptions) *URI {
	if !u.IsValid() {
		return &URI{}
	}

	t := u.Clone()
	if opts&RemoveScheme != 0 {
		t.SetScheme("")
	}
	if opts.Has(RemoveAuthority) {
		t.SetAuthority("", TolerantMode)
	} else {
		if opts.Has(RemoveUserInfo) {
			t.SetUserInfo("", TolerantMode)
		} else if opts&RemovePassword != 0 {
			t.SetPassword("", TolerantMode)
		}
		if opts&RemovePort != 0 {
			t.SetPort(-1)
		}
	}
	if opts&RemoveQuery != 0 {
		t.RemoveQuery()
	}
	if opts&RemoveFragment != 0 {
		t.RemoveFragment()
	}
	if opts&RemovePath != 0 {
		t.SetPath("", TolerantMode)
	} else if opts&(StripTrailingSlash|RemoveFilename|NormalizePathSegments) != 0 {
		t.setPath(u.renderPath(opts|FullyEncoded, targetComponent))
	}
	return t
}
