package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/gourl/internal/errorutil"
)

// outputFormat is the --output flag value.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatText, formatJSON, formatYAML:
		*f = v
		return nil
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown output format %q, want text, json or yaml", s))
	}
}

func (*outputFormat) Type() string { return "format" }

// delimiter is a single character flag value.
type delimiter byte

var _ pflag.Value = (*delimiter)(nil)

func (d *delimiter) String() string { return string(rune(*d)) }

func (d *delimiter) Set(s string) error {
	if len(s) != 1 {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("delimiter must be a single character, got %q", s))
	}
	*d = delimiter(s[0])
	return nil
}

func (*delimiter) Type() string { return "char" }

// textWriter is implemented by results with a human readable form.
type textWriter interface {
	writeText(w io.Writer) error
}

func writeResult(w io.Writer, format outputFormat, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errtrace.Wrap(enc.Encode(v))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(enc.Close())
	default:
		if tw, ok := v.(textWriter); ok {
			return errtrace.Wrap(tw.writeText(w))
		}
		_, err := fmt.Fprintln(w, v)
		return errtrace.Wrap(err)
	}
}
