package main

//go:generate go tool errtrace -w .

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/gourl/internal/log"
	"github.com/ghettovoice/gourl/uri"
)

type globalOptions struct {
	debug  bool
	output outputFormat
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{output: formatText}

	cmd := &cobra.Command{
		Use:           "urlnorm",
		Short:         "Parse, normalize and resolve URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.debug {
				uri.SetLogger(log.Developer(stderr, slog.LevelDebug))
			} else {
				uri.SetLogger(log.Console(stderr, slog.LevelWarn))
			}
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "Enable verbose diagnostics")
	flags.VarP(&opts.output, "output", "o", "Output format: text, json or yaml")

	cmd.AddCommand(
		newParseCommand(opts),
		newNormalizeCommand(opts),
		newResolveCommand(opts),
		newQueryCommand(opts),
	)
	return cmd
}

func parsingMode(strict bool) uri.ParsingMode {
	if strict {
		return uri.StrictMode
	}
	return uri.TolerantMode
}
