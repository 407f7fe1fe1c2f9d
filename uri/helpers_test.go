package uri_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/gourl/uri"
)

func TestPercentEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, exclude, include string
		want                 string
	}{
		{"a b/c", "", "", "a%20b%2Fc"},
		{"a b/c", "/", "", "a%20b/c"},
		{"abc", "", "b", "a%62c"},
		{"100%", "", "", "100%25"},
		{"ü", "", "", "%C3%BC"},
	}
	for _, c := range cases {
		if got := uri.PercentEncode(c.in, c.exclude, c.include); got != c.want {
			t.Errorf("uri.PercentEncode(%q, %q, %q) = %q, want %q", c.in, c.exclude, c.include, got, c.want)
		}
	}
}

func TestPercentDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"a%20b%2fc", "a b/c"},
		{"%C3%BC", "ü"},
		{"100%", "100%"},
		{"%zz%2", "%zz%2"},
	}
	for _, c := range cases {
		if got := uri.PercentDecode(c.in); got != c.want {
			t.Errorf("uri.PercentDecode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestACE(t *testing.T) {
	t.Parallel()

	a, err := uri.ToACE("Bücher.Example")
	if err != nil {
		t.Fatalf("uri.ToACE() error = %v, want nil", err)
	}
	if want := "xn--bcher-kva.example"; a != want {
		t.Errorf("uri.ToACE() = %q, want %q", a, want)
	}

	u, err := uri.FromACE(a)
	if err != nil {
		t.Fatalf("uri.FromACE() error = %v, want nil", err)
	}
	if want := "bücher.example"; u != want {
		t.Errorf("uri.FromACE() = %q, want %q", u, want)
	}

	if _, err := uri.ToACE("a b"); err == nil {
		t.Error("uri.ToACE(\"a b\") error = nil, want error")
	}
}

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"http://a/b": true,
		"urn:x":      true,
		"//a/b":      false,
		"a/b":        false,
		"":           false,
	}
	for s, want := range cases {
		if got := uri.IsAbsolute(s); got != want {
			t.Errorf("uri.IsAbsolute(%q) = %v, want %v", s, got, want)
		}
	}
	if !uri.IsAbsolute([]byte("http://a")) {
		t.Error("uri.IsAbsolute([]byte) = false, want true")
	}
}

func TestSetLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer
	uri.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer uri.SetLogger(nil)

	uri.New("http://h/", uri.TolerantMode).UserInfo(uri.FullyDecoded)
	if !strings.Contains(buf.String(), "FullyDecoded is not permitted") {
		t.Errorf("log = %q, want misuse warning", buf.String())
	}

	buf.Reset()
	uri.New("http://host:99999/", uri.TolerantMode)
	if !strings.Contains(buf.String(), "URL error recorded") {
		t.Errorf("log = %q, want recorded error", buf.String())
	}

	uri.SetLogger(nil)
	buf.Reset()
	uri.New("http://host:99999/", uri.TolerantMode)
	if buf.Len() != 0 {
		t.Errorf("log = %q after SetLogger(nil), want empty", buf.String())
	}
}
