// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/gourl/internal/util"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(b []byte) slog.Value {
		return slog.StringValue(string(b))
	}),
)

// Console returns a logger printing human-readable records to w.
func Console(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Developer returns a logger printing verbose, colored records to w.
func Developer(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a default logger, it reports warnings to stderr.
var Def = Console(os.Stderr, slog.LevelWarn)

// Dev is a developer logger.
var Dev = Developer(os.Stderr, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type stringValue[T util.Byteseq] struct {
	v      T
	maxLen int
}

func (v stringValue[T]) LogValue() slog.Value {
	if v.maxLen > 0 {
		return slog.StringValue(util.Ellipsis(string(v.v), v.maxLen))
	}
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T util.Byteseq](v T) slog.LogValuer { return stringValue[T]{v: v} }

// ShortValue is like [StringValue] but cuts the text to maxLen runes.
func ShortValue[T util.Byteseq](v T, maxLen int) slog.LogValuer {
	return stringValue[T]{v: v, maxLen: maxLen}
}
