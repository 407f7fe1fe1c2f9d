package main

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/uri"
)

type queryItem struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type queryItems []queryItem

func (items queryItems) writeText(w io.Writer) error {
	for _, it := range items {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", it.Key, it.Value); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func newQueryCommand(g *globalOptions) *cobra.Command {
	var (
		pairDelim  = delimiter('&')
		valueDelim = delimiter('=')
	)

	cmd := &cobra.Command{
		Use:   "query URL",
		Short: "Print the decoded query items of the URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := uri.New(args[0], uri.TolerantMode)
			if err := u.Err(); err != nil {
				return errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("%q: %w", args[0], err)))
			}

			q := uri.NewQuery("")
			if err := q.SetDelimiters(byte(valueDelim), byte(pairDelim)); err != nil {
				return errtrace.Wrap(err)
			}
			q.SetQuery(u.Query(uri.PrettyDecoded))

			stored := q.Items(uri.FullyDecoded)
			items := make(queryItems, 0, len(stored))
			for _, it := range stored {
				items = append(items, queryItem{Key: it.Key, Value: it.Value})
			}
			return errtrace.Wrap(writeResult(cmd.OutOrStdout(), g.output, items))
		},
	}
	cmd.Flags().Var(&pairDelim, "pair-delim", "Character separating query pairs")
	cmd.Flags().Var(&valueDelim, "value-delim", "Character separating a key from its value")
	return cmd
}
