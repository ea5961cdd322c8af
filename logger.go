package ink

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every log record; Enabled always returns false so
// callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package-wide logger. ink is silent by default;
// call SetLogger to enable diagnostics. Pass nil to restore silence.
//
// ink emits a single diagnostic: a [slog.LevelWarn] record when
// Canvas.Restore is called on an empty transform stack. Draw calls,
// skipped degenerate geometry, and a shader that fails to establish its
// context are not logged.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package-wide logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
