// Package pathutil implements the RFC 3986 path algorithms: dot-segment removal and reference merging.
package pathutil

import (
	"strings"
)

// RemoveDotSegments removes "." and ".." segments following RFC 3986 section 5.2.4.
// A ".." never climbs above the root, so "/../g" yields "/g".
// Percent-encoded dots are ordinary characters here.
func RemoveDotSegments(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}

	in := path
	out := make([]byte, 0, len(path))
	for len(in) > 0 {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			out = dropLastSegment(out)
		case in == "/..":
			in = "/"
			out = dropLastSegment(out)
		case in == "." || in == "..":
			in = ""
		default:
			end := len(in)
			if i := strings.IndexByte(in[1:], '/'); i >= 0 {
				end = i + 1
			}
			out = append(out, in[:end]...)
			in = in[end:]
		}
	}
	return string(out)
}

func dropLastSegment(out []byte) []byte {
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == '/' {
			return out[:i]
		}
	}
	return out[:0]
}

// Merge merges a relative-path reference with the base path following RFC 3986 section 5.2.3.
func Merge(basePath string, baseHasAuthority bool, ref string) string {
	if baseHasAuthority && basePath == "" {
		return "/" + ref
	}
	i := strings.LastIndexByte(basePath, '/')
	if i < 0 {
		return ref
	}
	return basePath[:i+1] + ref
}

// StripNonAuthorityDoubleSlash collapses the leading slashes of path to one.
// A value without authority cannot keep a path starting with "//",
// otherwise its text would be read back with an authority.
func StripNonAuthorityDoubleSlash(path string) string {
	if !strings.HasPrefix(path, "//") {
		return path
	}
	return "/" + strings.TrimLeft(path, "/")
}

// Dir returns path with everything after the last '/' removed.
func Dir(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i+1]
}

// TrimTrailingSlashes removes the trailing slashes of path but keeps a lone root "/".
func TrimTrailingSlashes(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}
