package main

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/uri"
)

type normalizeOptions struct {
	strict             bool
	encoded            bool
	stripTrailingSlash bool
	normalizePath      bool
}

func (o *normalizeOptions) formatting() uri.FormattingOptions {
	var opts uri.FormattingOptions
	if o.encoded {
		opts |= uri.FullyEncoded
	}
	if o.stripTrailingSlash {
		opts |= uri.StripTrailingSlash
	}
	if o.normalizePath {
		opts |= uri.NormalizePathSegments
	}
	return opts
}

type resultLine struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

type resultLines []resultLine

func (ls resultLines) writeText(w io.Writer) error {
	for _, l := range ls {
		if l.Error != "" {
			continue
		}
		if _, err := fmt.Fprintln(w, l.Output); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func newNormalizeCommand(g *globalOptions) *cobra.Command {
	opts := &normalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize URL...",
		Short: "Print the normalized form of each URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmtOpts := opts.formatting()

			lines := make(resultLines, 0, len(args))
			var errs []error
			for _, arg := range args {
				u := uri.New(arg, parsingMode(opts.strict))
				if err := u.Err(); err != nil {
					lines = append(lines, resultLine{Input: arg, Error: err.Error()})
					errs = append(errs, fmt.Errorf("%q: %w", arg, err))
					continue
				}
				lines = append(lines, resultLine{Input: arg, Output: u.ToString(fmtOpts)})
			}

			if err := writeResult(cmd.OutOrStdout(), g.output, lines); err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(errorutil.JoinPrefix("invalid URLs:", errs...))
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.strict, "strict", false, "Reject every character not permitted by RFC 3986")
	flags.BoolVar(&opts.encoded, "encoded", false, "Print the fully encoded form")
	flags.BoolVar(&opts.stripTrailingSlash, "strip-trailing-slash", false, "Remove the trailing slash of the path")
	flags.BoolVar(&opts.normalizePath, "normalize-path", false, "Remove dot segments from the path")
	return cmd
}
