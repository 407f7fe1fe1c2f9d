package uri_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/uri"
)

func TestNewQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []uri.QueryItem
	}{
		{"empty", "", nil},
		{"single", "a=1", []uri.QueryItem{{Key: "a", Value: "1"}}},
		{
			"mixed",
			"a=1&b=&c&a=2",
			[]uri.QueryItem{
				{Key: "a", Value: "1"},
				{Key: "b"},
				{Key: "c", NoValue: true},
				{Key: "a", Value: "2"},
			},
		},
		{"empty pairs kept", "a&&b", []uri.QueryItem{{Key: "a", NoValue: true}, {NoValue: true}, {Key: "b", NoValue: true}}},
		{"value with delimiter", "k=a=b", []uri.QueryItem{{Key: "k", Value: "a=b"}}},
		{"encoded delimiters decoded", "k=x%26y%3Dz", []uri.QueryItem{{Key: "k", Value: "x&y=z"}}},
		{"plus kept", "a=1+1", []uri.QueryItem{{Key: "a", Value: "1+1"}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			q := uri.NewQuery(c.in)
			if diff := cmp.Diff(q.Items(uri.PrettyDecoded), c.want); diff != "" {
				t.Errorf("uri.NewQuery(%q).Items() mismatch: diff (-got +want):\n%v", c.in, diff)
			}
		})
	}
}

func TestQuery_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		items []uri.QueryItem
		opts  uri.FormattingOptions
		want  string
	}{
		{"empty", nil, uri.PrettyDecoded, ""},
		{"pairs", []uri.QueryItem{{Key: "a", Value: "1"}, {Key: "b"}, {Key: "c", NoValue: true}}, uri.PrettyDecoded, "a=1&b=&c"},
		{"delimiters encoded", []uri.QueryItem{{Key: "a&b", Value: "x=y"}}, uri.PrettyDecoded, "a%26b=x%3Dy"},
		{"plus left", []uri.QueryItem{{Key: "a", Value: "1+1"}}, uri.FullyEncoded, "a=1+1"},
		{"hash pretty", []uri.QueryItem{{Key: "h", Value: "a#b"}}, uri.PrettyDecoded, "h=a#b"},
		{"hash encoded", []uri.QueryItem{{Key: "h", Value: "a#b"}}, uri.EncodeDelimiters, "h=a%23b"},
		{"space encoded", []uri.QueryItem{{Key: "s", Value: "a b"}}, uri.FullyEncoded, "s=a%20b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			q := new(uri.Query)
			q.SetItems(c.items)
			if got := q.Encode(c.opts); got != c.want {
				t.Errorf("q.Encode(%#x) = %q, want %q", c.opts, got, c.want)
			}
		})
	}

	var nilQuery *uri.Query
	if got := nilQuery.Encode(uri.PrettyDecoded); got != "" {
		t.Errorf("nil query Encode() = %q, want empty", got)
	}
}

func TestQuery_RoundTrip(t *testing.T) {
	t.Parallel()

	q := new(uri.Query)
	q.Add("k", "x&y=z")
	q.Add("h", "a#b")
	q.Add("s", "100%25")

	u := uri.New("http://h/", uri.TolerantMode)
	u.SetQueryItems(q)
	u2 := uri.New(string(u.ToEncoded(uri.PrettyDecoded)), uri.TolerantMode)

	got := uri.ParseQuery(u2)
	if !got.Equal(q) {
		t.Errorf("uri.ParseQuery() = %q, want %q", got.String(), q.String())
	}
	if v, _ := got.Value("s", uri.FullyDecoded); v != "100%" {
		t.Errorf("got.Value(s, FullyDecoded) = %q, want %q", v, "100%")
	}
}

func TestQuery_Delimiters(t *testing.T) {
	t.Parallel()

	q := new(uri.Query)
	if v, p := q.Delimiters(); v != '=' || p != '&' {
		t.Errorf("q.Delimiters() = %q, %q, want '=', '&'", v, p)
	}

	if err := q.SetDelimiters(':', ';'); !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("q.SetDelimiters(':', ';') error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
	if err := q.SetDelimiters(';', ';'); !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("q.SetDelimiters(';', ';') error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
	if err := q.SetDelimiters('=', ';'); err != nil {
		t.Fatalf("q.SetDelimiters('=', ';') error = %v, want nil", err)
	}

	q.SetQuery("a=1;b=x&y")
	want := []uri.QueryItem{{Key: "a", Value: "1"}, {Key: "b", Value: "x&y"}}
	if diff := cmp.Diff(q.Items(uri.PrettyDecoded), want); diff != "" {
		t.Errorf("q.Items() mismatch: diff (-got +want):\n%v", diff)
	}
	if got, want := q.Encode(uri.PrettyDecoded), "a=1;b=x&y"; got != want {
		t.Errorf("q.Encode() = %q, want %q", got, want)
	}

	q.Add("c", "1;2")
	if got, want := q.Encode(uri.PrettyDecoded), "a=1;b=x&y;c=1%3B2"; got != want {
		t.Errorf("q.Encode() = %q, want %q", got, want)
	}
}

func TestQuery_Lookup(t *testing.T) {
	t.Parallel()

	q := uri.NewQuery("a=1&b=100%25&a=2&c")

	if !q.Has("a") || !q.Has("c") || q.Has("x") {
		t.Error("q.Has() reports wrong keys")
	}
	if v, ok := q.Value("a", uri.PrettyDecoded); !ok || v != "1" {
		t.Errorf("q.Value(a) = %q, %v, want %q, true", v, ok, "1")
	}
	if v, ok := q.Value("c", uri.PrettyDecoded); !ok || v != "" {
		t.Errorf("q.Value(c) = %q, %v, want empty, true", v, ok)
	}
	if _, ok := q.Value("x", uri.PrettyDecoded); ok {
		t.Error("q.Value(x) found a missing key")
	}
	if v, _ := q.Value("b", uri.PrettyDecoded); v != "100%25" {
		t.Errorf("q.Value(b) = %q, want %q", v, "100%25")
	}
	if v, _ := q.Value("b", uri.FullyDecoded); v != "100%" {
		t.Errorf("q.Value(b, FullyDecoded) = %q, want %q", v, "100%")
	}
	if diff := cmp.Diff(q.AllValues("a", uri.PrettyDecoded), []string{"1", "2"}); diff != "" {
		t.Errorf("q.AllValues(a) mismatch: diff (-got +want):\n%v", diff)
	}
	if q.Len() != 4 {
		t.Errorf("q.Len() = %d, want 4", q.Len())
	}

	q.Remove("a")
	if got, want := q.String(), "b=100%25&a=2&c"; got != want {
		t.Errorf("after Remove(a) q = %q, want %q", got, want)
	}
	q.Add("a", "3")
	q.RemoveAll("a")
	if got, want := q.String(), "b=100%25&c"; got != want {
		t.Errorf("after RemoveAll(a) q = %q, want %q", got, want)
	}

	c := q.Clone()
	q.Clear()
	if !q.IsEmpty() || c.IsEmpty() {
		t.Error("q.Clear() must not affect the clone")
	}
}

func TestQuery_Equal(t *testing.T) {
	t.Parallel()

	a := uri.NewQuery("a=1&b")
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"same", uri.NewQuery("a=1&b"), true},
		{"value", *uri.NewQuery("a=1&b"), true},
		{"no value differs from empty value", uri.NewQuery("a=1&b="), false},
		{"order matters", uri.NewQuery("b&a=1"), false},
		{"other type", "a=1&b", false},
	}
	for _, c := range cases {
		if got := a.Equal(c.val); got != c.want {
			t.Errorf("%s: a.Equal() = %v, want %v", c.name, got, c.want)
		}
	}

	other := uri.NewQuery("")
	if err := other.SetDelimiters(':', '&'); err == nil {
		t.Fatal("':' must be rejected as a delimiter")
	}
	if err := other.SetDelimiters('=', ';'); err != nil {
		t.Fatalf("other.SetDelimiters() error = %v", err)
	}
	other.SetQuery("a=1;b")
	if a.Equal(other) {
		t.Error("queries with different delimiters must not be equal")
	}

	var nilQuery *uri.Query
	if !nilQuery.Equal(new(uri.Query)) {
		t.Error("nil query must equal empty query")
	}
}
