package main

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/uri"
)

type parseReport struct {
	Input     string  `json:"input" yaml:"input"`
	Valid     bool    `json:"valid" yaml:"valid"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
	URL       string  `json:"url,omitempty" yaml:"url,omitempty"`
	Encoded   string  `json:"encoded,omitempty" yaml:"encoded,omitempty"`
	Scheme    string  `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	UserName  string  `json:"user_name,omitempty" yaml:"user_name,omitempty"`
	Password  string  `json:"password,omitempty" yaml:"password,omitempty"`
	Host      string  `json:"host,omitempty" yaml:"host,omitempty"`
	Port      *int    `json:"port,omitempty" yaml:"port,omitempty"`
	Path      string  `json:"path,omitempty" yaml:"path,omitempty"`
	Query     *string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment  *string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Relative  bool    `json:"relative" yaml:"relative"`
	LocalFile string  `json:"local_file,omitempty" yaml:"local_file,omitempty"`
}

func newParseReport(in string, u *uri.URI) *parseReport {
	r := &parseReport{
		Input: in,
		Valid: u.IsValid(),
	}
	if !r.Valid {
		r.Error = u.ErrorString()
		return r
	}

	r.URL = u.String()
	r.Encoded = string(u.ToEncoded(uri.PrettyDecoded))
	r.Scheme = u.Scheme()
	r.UserName = u.UserName(uri.PrettyDecoded)
	r.Password = u.Password(uri.PrettyDecoded)
	r.Host = u.Host(uri.PrettyDecoded)
	if p := u.Port(-1); p >= 0 {
		r.Port = &p
	}
	r.Path = u.Path(uri.PrettyDecoded)
	if u.HasQuery() {
		q := u.Query(uri.PrettyDecoded)
		r.Query = &q
	}
	if u.HasFragment() {
		f := u.Fragment(uri.PrettyDecoded)
		r.Fragment = &f
	}
	r.Relative = u.IsRelative()
	if u.IsLocalFile() {
		r.LocalFile = u.ToLocalFile()
	}
	return r
}

func (r *parseReport) writeText(w io.Writer) error {
	lines := []struct {
		key, val string
		ok       bool
	}{
		{"input", r.Input, true},
		{"valid", fmt.Sprint(r.Valid), true},
		{"error", r.Error, r.Error != ""},
		{"url", r.URL, r.Valid},
		{"encoded", r.Encoded, r.Valid},
		{"scheme", r.Scheme, r.Scheme != ""},
		{"user name", r.UserName, r.UserName != ""},
		{"password", r.Password, r.Password != ""},
		{"host", r.Host, r.Host != ""},
		{"port", portText(r.Port), r.Port != nil},
		{"path", r.Path, r.Path != ""},
		{"query", deref(r.Query), r.Query != nil},
		{"fragment", deref(r.Fragment), r.Fragment != nil},
		{"relative", fmt.Sprint(r.Relative), r.Valid},
		{"local file", r.LocalFile, r.LocalFile != ""},
	}
	for _, l := range lines {
		if !l.ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-11s %s\n", l.key+":", l.val); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

type parseReports []*parseReport

func (rs parseReports) writeText(w io.Writer) error {
	for i, r := range rs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return errtrace.Wrap(err)
			}
		}
		if err := r.writeText(w); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func portText(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func newParseCommand(g *globalOptions) *cobra.Command {
	var (
		strict     bool
		strictIPv4 bool
	)

	cmd := &cobra.Command{
		Use:   "parse URL...",
		Short: "Print the components of each URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := uri.ParseOptions{Mode: parsingMode(strict), StrictIPv4: strictIPv4}

			reports := make(parseReports, 0, len(args))
			var errs []error
			for _, arg := range args {
				u := uri.NewWithOptions(arg, opts)
				reports = append(reports, newParseReport(arg, u))
				if err := u.Err(); err != nil {
					errs = append(errs, fmt.Errorf("%q: %w", arg, err))
				}
			}

			if err := writeResult(cmd.OutOrStdout(), g.output, reports); err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(errorutil.JoinPrefix("invalid URLs:", errs...))
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject every character not permitted by RFC 3986")
	cmd.Flags().BoolVar(&strictIPv4, "strict-ipv4", false, "Reject IPv4 shorthand hosts such as 127.1")
	return cmd
}
