package uri

import (
	"log/slog"
	"sync/atomic"

	"github.com/ghettovoice/gourl/internal/log"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(log.Noop)
}

// SetLogger sets the logger used to report API misuse and recorded errors.
// Passing nil disables logging, which is the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = log.Noop
	}
	pkgLogger.Store(l)
}

func logger() *slog.Logger { return pkgLogger.Load() }
