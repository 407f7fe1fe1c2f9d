package recode_test

import (
	"testing"

	"github.com/ghettovoice/gourl/internal/recode"
)

func TestRecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		opts    recode.Options
		mods    []recode.Modification
		want    string
		changed bool
	}{
		{"empty", "", 0, nil, "", false},
		{"plain", "abc", 0, nil, "abc", false},
		{"decode unreserved", "%41%42", 0, nil, "AB", true},
		{"uppercase reserved", "%2f", 0, nil, "%2F", true},
		{"keep reserved", "%2F", 0, nil, "%2F", false},
		{"literal space", "a b", 0, nil, "a b", false},
		{"encode space", "a b", recode.EncodeSpaces, nil, "a%20b", true},
		{"decode space", "a%20b", 0, nil, "a b", true},
		{"stray percent at end", "100%", 0, nil, "100%25", true},
		{"stray percent fixes all", "%zz%41", 0, nil, "%25zz%2541", true},
		{"decode utf-8", "%E4%B8%96", 0, nil, "世", true},
		{"keep utf-8 triplets", "%E4%B8%96", recode.EncodeUnicode, nil, "%E4%B8%96", false},
		{"uppercase utf-8 triplets", "%e4%b8%96", recode.EncodeUnicode, nil, "%E4%B8%96", true},
		{"literal unicode", "世", 0, nil, "世", false},
		{"encode unicode", "世", recode.EncodeUnicode, nil, "%E4%B8%96", true},
		{"overlong", "%C0%AF", 0, nil, "%C0%AF", false},
		{"surrogate", "%ED%A0%80", 0, nil, "%ED%A0%80", false},
		{"truncated sequence", "%E4%B8", 0, nil, "%E4%B8", false},
		{"control", "a\x01b", 0, nil, "a%01b", true},
		{"encoded control", "%01", 0, nil, "%01", false},
		{"invalid utf-8 byte", "a\xffb", 0, nil, "a%FFb", true},
		{"invalid byte before triplet", "z%C4\xa9)z", 0, nil, "z\u0129)z", true},
		{"invalid byte after literal", "b3z|\xc3%A1z.a", 0, nil, "b3z%7C\u00e1z.a", true},
		{"invalid byte kept encoded", "z%C4\xa9)z", recode.EncodeUnicode, nil, "z%C4%A9)z", true},
		{"del", "\x7f", 0, nil, "%7F", true},
		{"encoded del", "%7F", 0, nil, "%7F", false},
		{"unsafe", `a"b`, 0, nil, "a%22b", true},
		{"unsafe decode reserved", `a"b`, recode.DecodeReserved, nil, `a"b`, false},
		{"unsafe decoded", "a%22b", recode.DecodeReserved, nil, `a"b`, true},
		{"mod decode", "a%3Ab", 0, []recode.Modification{recode.DecodeChar(':')}, "a:b", true},
		{"mod encode", "a:b", 0, []recode.Modification{recode.EncodeChar(':')}, "a%3Ab", true},
		{"mod leave", "a%3ab", 0, []recode.Modification{recode.LeaveChar(':')}, "a%3Ab", true},
		{
			"encode reserved wins over mods",
			`a"b`,
			recode.EncodeReserved,
			[]recode.Modification{recode.DecodeChar('"')},
			"a%22b",
			true,
		},
		{"fully decoded", "%41%2F%20%25zz", recode.FullyDecoded, nil, "A/ %zz", true},
		{"fully decoded invalid utf-8", "a%FF", recode.FullyDecoded, nil, "a�", true},
		{"fully decoded unchanged", "abc", recode.FullyDecoded, nil, "abc", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, changed := recode.Recode(nil, c.in, c.opts, c.mods)
			if string(got) != c.want || changed != c.changed {
				t.Errorf("recode.Recode(nil, %q, %#x, %v) = (%q, %v), want (%q, %v)",
					c.in, c.opts, c.mods, got, changed, c.want, c.changed)
			}
		})
	}
}

func TestRecode_AppendsToDst(t *testing.T) {
	t.Parallel()

	got, changed := recode.Recode([]byte("x="), "a%2fb", 0, nil)
	if string(got) != "x=a%2Fb" || !changed {
		t.Errorf("recode.Recode(\"x=\", \"a%%2fb\") = (%q, %v), want (\"x=a%%2Fb\", true)", got, changed)
	}
}

func TestRecode_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "abc", "%zz", "100%", "a b", "%e4%B8%96", "世", "%C0%AF", "\x01", `<"x">`, "%2f%3a%41", "a\xffb",
		"z%C4\xa9)z", "b3z|\xc3%A1z.a", "\xe4%B8%96", "%\xff",
	}
	opts := []recode.Options{
		0,
		recode.EncodeSpaces,
		recode.EncodeUnicode,
		recode.DecodeReserved,
		recode.FullyEncoded,
	}
	for _, in := range inputs {
		for _, o := range opts {
			once := recode.String(in, o, nil)
			if twice := recode.String(once, o, nil); twice != once {
				t.Errorf("recode twice %q with %#x = %q, once = %q", in, o, twice, once)
			}
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := recode.String("abc", 0, nil); got != "abc" {
		t.Errorf("recode.String(\"abc\") = %q, want \"abc\"", got)
	}
	if got := recode.String("%7e", 0, nil); got != "~" {
		t.Errorf("recode.String(\"%%7e\") = %q, want \"~\"", got)
	}
}

func TestNeedsPercentFix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"abc", false},
		{"%41", false},
		{"%41%42", false},
		{"%4", true},
		{"a%", true},
		{"%41%g1", true},
		{"%%41", true},
	}
	for _, c := range cases {
		if got := recode.NeedsPercentFix(c.in); got != c.want {
			t.Errorf("recode.NeedsPercentFix(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEncodeAll(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		in               string
		exclude, include string
		want             string
	}{
		{"defaults", "a b/c~%", "", "", "a%20b%2Fc~%25"},
		{"exclude", "a b/c~%", "/", "", "a%20b/c~%25"},
		{"include", "a b/c~%", "", "~", "a%20b%2Fc%7E%25"},
		{"utf-8", "ü", "", "", "%C3%BC"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := recode.EncodeAll(c.in, c.exclude, c.include); got != c.want {
				t.Errorf("recode.EncodeAll(%q, %q, %q) = %q, want %q", c.in, c.exclude, c.include, got, c.want)
			}
			if got := recode.DecodeAll(c.want); got != c.in {
				t.Errorf("recode.DecodeAll(%q) = %q, want %q", c.want, got, c.in)
			}
		})
	}
}

func TestDecodeFull(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a%20b%2F%E4%B8%96", "a b/世"},
		{"%FFx", "�x"},
	}
	for _, c := range cases {
		if got := string(recode.DecodeFull([]byte("p:"), c.in)); got != "p:"+c.want {
			t.Errorf("recode.DecodeFull(%q) = %q, want %q", c.in, got, "p:"+c.want)
		}
	}
}
