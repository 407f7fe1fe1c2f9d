package host_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gourl/internal/ace"
	"github.com/ghettovoice/gourl/internal/host"
	"github.com/ghettovoice/gourl/internal/testutil/acemock"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tolerant := host.Mode{Tolerant: true}
	strict := host.Mode{}

	cases := []struct {
		name     string
		text     string
		mode     host.Mode
		want     host.Result
		wantFail *host.Failure
	}{
		{"empty", "", tolerant, host.Result{Kind: host.RegName}, nil},
		{"reg-name", "Example.COM", tolerant, host.Result{host.RegName, "example.com"}, nil},
		{"idn", "BÜCHER.de", tolerant, host.Result{host.RegName, "bücher.de"}, nil},
		{"pct-encoded reg-name", "ex%41mple.com", tolerant, host.Result{host.RegName, "example.com"}, nil},
		{"pct-encoded reg-name strict", "ex%41mple.com", strict, host.Result{}, &host.Failure{host.InvalidRegName, "ex%41mple.com", -1}},
		{"encoded delimiter", "a%2Fb", tolerant, host.Result{}, &host.Failure{host.InvalidRegName, "a%2Fb", 1}},
		{"space", "exa mple.com", tolerant, host.Result{}, &host.Failure{host.InvalidRegName, "exa mple.com", -1}},
		{"invalid utf-8", "h\xc3a", tolerant, host.Result{}, &host.Failure{host.InvalidRegName, "h\xc3a", 1}},
		{"invalid utf-8 strict", "ex\xffample", strict, host.Result{}, &host.Failure{host.InvalidRegName, "ex\xffample", 2}},
		{"ipv4", "192.168.0.1", tolerant, host.Result{host.IPv4, "192.168.0.1"}, nil},
		{"ipv4 shorthand", "127.1", tolerant, host.Result{host.IPv4, "127.0.0.1"}, nil},
		{"ipv4 shorthand strict", "127.1", host.Mode{Tolerant: true, StrictIPv4: true}, host.Result{}, &host.Failure{host.InvalidIPv4Address, "127.1", -1}},
		{"ipv4 out of range", "256.1.1.1", tolerant, host.Result{host.RegName, "256.1.1.1"}, nil},
		{"ipv4 out of range strict", "256.1.1.1", host.Mode{StrictIPv4: true}, host.Result{}, &host.Failure{host.InvalidIPv4Address, "256.1.1.1", -1}},
		{"ipv4 leading zeros", "010.001.000.001", tolerant, host.Result{host.IPv4, "10.1.0.1"}, nil},
		{"ipv4 encoded", "127.0.0.%31", tolerant, host.Result{host.IPv4, "127.0.0.1"}, nil},
		{"ipv6", "[2001:DB8:0:0:0:0:0:1]", tolerant, host.Result{host.IPv6, "[2001:db8::1]"}, nil},
		{"ipv6 loopback", "[::1]", strict, host.Result{host.IPv6, "[::1]"}, nil},
		{"ipv6 unspecified", "[::]", strict, host.Result{host.IPv6, "[::]"}, nil},
		{"ipv6 mapped", "[::FFFF:c000:0201]", strict, host.Result{host.IPv6, "[::ffff:192.0.2.1]"}, nil},
		{"ipv6 embedded ipv4", "[::192.0.2.1]", strict, host.Result{host.IPv6, "[::192.0.2.1]"}, nil},
		{"ipv6 zone", "[fe80::1%25eth0]", strict, host.Result{host.IPv6, "[fe80::1%25eth0]"}, nil},
		{"ipv6 raw zone", "[fe80::1%eth0]", tolerant, host.Result{host.IPv6, "[fe80::1%25eth0]"}, nil},
		{"ipv6 encoded colon", "[::%31]", tolerant, host.Result{host.IPv6, "[::1]"}, nil},
		{"ipv6 encoded colon strict", "[::%31]", strict, host.Result{}, &host.Failure{host.InvalidIPv6Character, "[::%31]", 3}},
		{"ipv6 bad char", "[::g]", tolerant, host.Result{}, &host.Failure{host.InvalidIPv6Character, "[::g]", 3}},
		{"ipv6 long group", "[12345::]", strict, host.Result{}, &host.Failure{host.InvalidIPv6Character, "[12345::]", 5}},
		{"ipv6 too long", "[1:2:3:4:5:6:7:8:9]", strict, host.Result{}, &host.Failure{host.InvalidIPv6Address, "[1:2:3:4:5:6:7:8:9]", 0}},
		{"ipv6 short", "[1:2]", strict, host.Result{}, &host.Failure{host.InvalidIPv6Address, "[1:2]", 0}},
		{"missing bracket", "[::1", tolerant, host.Result{}, &host.Failure{host.MissingEndBracket, "[::1", 0}},
		{"ipvfuture", "[v1.abc]", strict, host.Result{host.IPvFuture, "[v1.abc]"}, nil},
		{"ipvfuture version case", "[VfE.x:y]", strict, host.Result{host.IPvFuture, "[vFE.x:y]"}, nil},
		{"ipvfuture no dot", "[v1abc]", strict, host.Result{}, &host.Failure{host.InvalidIPvFuture, "[v1abc]", 6}},
		{"ipvfuture no version", "[v.abc]", strict, host.Result{}, &host.Failure{host.InvalidIPvFuture, "[v.abc]", 2}},
		{"ipvfuture pct", "[v1.a%20]", tolerant, host.Result{}, &host.Failure{host.InvalidIPvFuture, "[v1.a%20]", 5}},
		{"ipvfuture empty body", "[v1.]", strict, host.Result{}, &host.Failure{host.InvalidIPvFuture, "[v1.]", 4}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, fail := host.Classify(c.text, c.mode, ace.Default)
			if diff := cmp.Diff(fail, c.wantFail); diff != "" {
				t.Fatalf("host.Classify(%q) failure = %+v, want %+v\ndiff (-got +want):\n%v", c.text, fail, c.wantFail, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("host.Classify(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.text, got, c.want, diff)
			}
		})
	}
}

func TestClassify_ACE(t *testing.T) {
	t.Parallel()

	t.Run("normalized name", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		enc := acemock.NewMockACE(ctrl)
		enc.EXPECT().
			Normalize("printer").
			Return("printer.local", nil).
			Times(1)

		got, fail := host.Classify("printer", host.Mode{Tolerant: true}, enc)
		if fail != nil {
			t.Fatalf("host.Classify(\"printer\") failure = %+v, want nil", fail)
		}
		if want := (host.Result{host.RegName, "printer.local"}); got != want {
			t.Errorf("host.Classify(\"printer\") = %+v, want %+v", got, want)
		}
	})

	t.Run("normalized to ipv4", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		enc := acemock.NewMockACE(ctrl)
		enc.EXPECT().
			Normalize("１２７.０.０.１").
			Return("127.0.0.1", nil).
			Times(1)

		got, fail := host.Classify("１２７.０.０.１", host.Mode{}, enc)
		if fail != nil {
			t.Fatalf("host.Classify() failure = %+v, want nil", fail)
		}
		if got.Kind != host.IPv4 || got.Text != "127.0.0.1" {
			t.Errorf("host.Classify() = %+v, want IPv4 127.0.0.1", got)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		enc := acemock.NewMockACE(ctrl)
		enc.EXPECT().
			Normalize(gomock.Any()).
			Return("", errors.New("bad name")).
			Times(1)

		_, fail := host.Classify("bad", host.Mode{}, enc)
		if want := (&host.Failure{host.InvalidRegName, "bad", -1}); !cmp.Equal(fail, want) {
			t.Errorf("host.Classify(\"bad\") failure = %+v, want %+v", fail, want)
		}
	})

	t.Run("literals skip ace", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		enc := acemock.NewMockACE(ctrl)

		for _, s := range []string{"[::1]", "10.0.0.1", "[v7.x]"} {
			if _, fail := host.Classify(s, host.Mode{}, enc); fail != nil {
				t.Errorf("host.Classify(%q) failure = %+v, want nil", s, fail)
			}
		}
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	enc := acemock.NewMockACE(ctrl)
	enc.EXPECT().
		ToASCII("bücher.de").
		Return("xn--bcher-kva.de", nil).
		Times(1)

	cases := []struct {
		text          string
		encodeUnicode bool
		want          string
	}{
		{"bücher.de", false, "bücher.de"},
		{"bücher.de", true, "xn--bcher-kva.de"},
		{"example.com", true, "example.com"},
		{"[::1]", true, "[::1]"},
		{"", true, ""},
	}
	for _, c := range cases {
		if got := host.Render(c.text, c.encodeUnicode, enc); got != c.want {
			t.Errorf("host.Render(%q, %v) = %q, want %q", c.text, c.encodeUnicode, got, c.want)
		}
	}
}
