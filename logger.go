package stage

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/stage/internal/bitmap"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for stage and its internal packages.
// By default, stage produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by stage:
//   - [slog.LevelDebug]: color database search, rect-set cache hits
//   - [slog.LevelWarn]: skipped color database lines, out-of-range pixel writes
//   - [slog.LevelError]: the color database could not be opened (fatal)
//
// Example:
//
//	stage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// internal/bitmap cannot import this package, so push the logger down.
	bitmap.SetLogger(l)
}

// Logger returns the current logger used by stage.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
