// Package ioutil provides writer helpers used by the RenderTo implementations.
package ioutil

//go:generate errtrace -w .

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer and tracks the total number of bytes written.
// The first write error is kept and every following write becomes a no-op,
// so a chain of writes can be checked once with [CountingWriter.Result].
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping the given writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer and tracks bytes written.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := cw.w.Write(p)
	return n, errtrace.Wrap(cw.done(n, err))
}

// WriteString writes a string and tracks bytes written.
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := io.WriteString(cw.w, s)
	return n, errtrace.Wrap(cw.done(n, err))
}

// WriteByte writes a single delimiter byte.
func (cw *CountingWriter) WriteByte(c byte) error {
	if cw.err != nil {
		return errtrace.Wrap(cw.err)
	}
	if bw, ok := cw.w.(io.ByteWriter); ok {
		err := bw.WriteByte(c)
		if err == nil {
			cw.num++
		}
		return errtrace.Wrap(cw.done(0, err))
	}
	n, err := cw.w.Write([]byte{c})
	return errtrace.Wrap(cw.done(n, err))
}

// Call executes a RenderTo-style function and tracks bytes written.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	n, err := fn(cw.w)
	cw.done(n, err) //nolint:errcheck
	return cw
}

func (cw *CountingWriter) done(n int, err error) error {
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return cw.err
}

// Result returns the total number of bytes written and any error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int {
	return cw.num
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
