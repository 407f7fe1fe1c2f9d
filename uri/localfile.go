package uri

import (
	"path/filepath"
	"strings"
)

const fileScheme = "file"

// FromLocalFile returns a "file" URL for the local path p.
// A UNC path "//server/share" puts the server into the host when it is a valid host name.
// An empty p gives an empty value.
func FromLocalFile(p string) *URI {
	u := new(URI)
	if p == "" {
		return u
	}

	p = filepath.ToSlash(p)
	switch {
	case len(p) > 1 && p[1] == ':' && p[0] != '/':
		// drive letter
		p = "/" + p
	case strings.HasPrefix(p, "//"):
		end := strings.IndexByte(p[2:], '/')
		hostSpec := p[2:]
		if end >= 0 {
			hostSpec = p[2 : 2+end]
		}
		if u.setHost(hostSpec, 0, len(hostSpec), StrictMode) {
			if end >= 0 {
				p = p[2+end:]
			} else {
				p = ""
			}
		} else if u.err.Reason != ErrInvalidRegName {
			return u
		}
	}

	u.SetScheme(fileScheme)
	u.SetPath(p, DecodedMode)
	return u
}

// ToLocalFile returns the local file system path of a "file" URL,
// or an empty string when u is not a local file.
func (u *URI) ToLocalFile() string {
	if !u.IsLocalFile() {
		return ""
	}
	return u.toLocalFile(FullyDecoded)
}

func (u *URI) toLocalFile(opts FormattingOptions) string {
	p := u.renderPath(opts, targetComponent)
	if u.host != "" {
		s := "//" + u.host
		if p != "" && !strings.HasPrefix(p, "/") {
			s += "/"
		}
		return filepath.FromSlash(s + p)
	}
	if filepath.Separator == '\\' && len(p) > 2 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p)
}
