package main

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/uri"
)

func newResolveCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve BASE REF...",
		Short: "Resolve each reference against the base URL",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := uri.New(args[0], uri.TolerantMode)
			if err := base.Err(); err != nil {
				return errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("base %q: %w", args[0], err)))
			}
			if base.IsRelative() {
				return errtrace.Wrap(errorutil.NewInvalidArgumentError("base %q is not absolute", args[0]))
			}

			lines := make(resultLines, 0, len(args)-1)
			var errs []error
			for _, arg := range args[1:] {
				ref := uri.New(arg, uri.TolerantMode)
				if err := ref.Err(); err != nil {
					lines = append(lines, resultLine{Input: arg, Error: err.Error()})
					errs = append(errs, fmt.Errorf("%q: %w", arg, err))
					continue
				}
				lines = append(lines, resultLine{Input: arg, Output: base.Resolved(ref).String()})
			}

			if err := writeResult(cmd.OutOrStdout(), g.output, lines); err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(errorutil.JoinPrefix("invalid references:", errs...))
		},
	}
}
