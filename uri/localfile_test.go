package uri_test

import (
	"path/filepath"
	"testing"

	"github.com/ghettovoice/gourl/uri"
)

func TestFromLocalFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		path     string
		wantURL  string
		wantHost string
		wantBack string
	}{
		{"absolute", "/tmp/a b.txt", "file:///tmp/a%20b.txt", "", "/tmp/a b.txt"},
		{"percent sign", "/tmp/100%.txt", "file:///tmp/100%25.txt", "", "/tmp/100%.txt"},
		{"reserved characters", "/tmp/a#b?c", "file:///tmp/a%23b%3Fc", "", "/tmp/a#b?c"},
		{"unc", "//server/share/x", "file://server/share/x", "server", "//server/share/x"},
		{"relative", "a/b", "file:a/b", "", "a/b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.FromLocalFile(filepath.FromSlash(c.path))
			if !u.IsLocalFile() {
				t.Errorf("uri.FromLocalFile(%q).IsLocalFile() = false, want true", c.path)
			}
			if got := string(u.ToEncoded(uri.PrettyDecoded)); got != c.wantURL {
				t.Errorf("uri.FromLocalFile(%q) = %q, want %q", c.path, got, c.wantURL)
			}
			if got := u.Host(uri.PrettyDecoded); got != c.wantHost {
				t.Errorf("uri.FromLocalFile(%q).Host() = %q, want %q", c.path, got, c.wantHost)
			}
			if got := u.ToLocalFile(); got != filepath.FromSlash(c.wantBack) {
				t.Errorf("uri.FromLocalFile(%q).ToLocalFile() = %q, want %q", c.path, got, filepath.FromSlash(c.wantBack))
			}
		})
	}

	if u := uri.FromLocalFile(""); !u.IsEmpty() {
		t.Errorf("uri.FromLocalFile(\"\") = %v, want empty", u)
	}
}

func TestURI_ToLocalFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"file:///etc/hosts", "/etc/hosts"},
		{"file:/etc/hosts", "/etc/hosts"},
		{"FILE:///a%20b", "/a b"},
		{"file://server/share", "//server/share"},
		{"http://h/etc/hosts", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := uri.New(c.in, uri.TolerantMode).ToLocalFile(); got != filepath.FromSlash(c.want) {
			t.Errorf("uri.New(%q).ToLocalFile() = %q, want %q", c.in, got, filepath.FromSlash(c.want))
		}
	}
}
