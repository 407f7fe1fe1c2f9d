package uri

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/ioutil"
	"github.com/ghettovoice/gourl/internal/util"
)

// RenderTo writes the text of u to w. Nothing is written for an invalid or empty value.
//
// Reserved characters that are neither delimiters nor unreserved are encoded unless
// [DecodeReserved] is set. [FullyDecoded] is not permitted for a whole value,
// the misuse is reported to the logger and the decoding flags are dropped.
func (u *URI) RenderTo(w io.Writer, opts FormattingOptions) (num int, err error) {
	if !u.IsValid() {
		return 0, nil
	}
	if opts.Has(FullyDecoded) {
		logger().Warn("FullyDecoded is not permitted when rendering a full URL")
		opts &^= FullyDecoded
	}

	if opts&PreferLocalFile != 0 && opts&RemovePath == 0 &&
		(!u.HasQuery() || opts&RemoveQuery != 0) &&
		(!u.HasFragment() || opts&RemoveFragment != 0) &&
		u.IsLocalFile() {
		return errtrace.Wrap2(io.WriteString(w, u.toLocalFile(opts|FullyDecoded)))
	}

	if opts&DecodeReserved != 0 {
		opts &^= EncodeReserved
	} else {
		opts |= EncodeReserved
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if opts&RemoveScheme == 0 && u.present&hasScheme != 0 {
		cw.WriteString(u.scheme) //nolint:errcheck
		cw.WriteByte(':')        //nolint:errcheck
	}
	if !opts.Has(RemoveAuthority) && u.HasAuthority() {
		cw.WriteString("//") //nolint:errcheck
		cw.Call(func(w io.Writer) (int, error) {
			sb := util.GetStringBuilder()
			defer util.FreeStringBuilder(sb)
			u.appendAuthority(sb, opts, targetURL)
			return errtrace.Wrap2(io.WriteString(w, sb.String()))
		})
	} else if u.IsLocalFile() && strings.HasPrefix(u.path, "/") {
		// file URLs without authority are written with an empty one
		cw.WriteString("//") //nolint:errcheck
	}
	if opts&RemovePath == 0 {
		cw.WriteString(u.renderPath(opts, targetURL)) //nolint:errcheck
	}
	if opts&RemoveQuery == 0 && u.HasQuery() {
		cw.WriteByte('?')                              //nolint:errcheck
		cw.WriteString(u.renderQuery(opts, targetURL)) //nolint:errcheck
	}
	if opts&RemoveFragment == 0 && u.HasFragment() {
		cw.WriteByte('#')                                 //nolint:errcheck
		cw.WriteString(u.renderFragment(opts, targetURL)) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// ToString returns the text of u rendered with opts, or an empty string for an invalid value.
func (u *URI) ToString(opts FormattingOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// ToDisplayString is like [URI.ToString] but never shows the password.
func (u *URI) ToDisplayString(opts FormattingOptions) string {
	return u.ToString(opts | RemovePassword)
}

// ToEncoded returns the RFC 3986 text of u: every component fully encoded,
// registered names converted to ACE.
func (u *URI) ToEncoded(opts FormattingOptions) []byte {
	return []byte(u.ToString(opts | FullyEncoded))
}

// String returns the pretty decoded text of u.
func (u *URI) String() string {
	return u.ToString(PrettyDecoded)
}

// Format implements [fmt.Formatter].
// The "%s" verb prints the pretty decoded text, "%+s" prints the fully encoded text.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, FullyEncoded) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler]. An invalid value is not marshaled.
func (u *URI) MarshalText() ([]byte, error) {
	if u.IsEmpty() {
		return []byte{}, nil
	}
	if err := u.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u.ToEncoded(PrettyDecoded), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. The text is parsed in [TolerantMode].
func (u *URI) UnmarshalText(text []byte) error {
	u2, err := Parse(text, TolerantMode)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u2
	return nil
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u.IsEmpty() {
		return slog.StringValue("")
	}
	if !u.IsValid() {
		return slog.GroupValue(slog.String("error", u.ErrorString()))
	}
	return slog.StringValue(u.ToDisplayString(PrettyDecoded))
}
