package rt

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled
// log calls in the encoder cost only the level check.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by rt, internal/projectile and the
// projectile command.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used by rt and its sub-packages.
// rt is silent until SetLogger is called; passing nil silences it again.
// SetLogger may be called while other goroutines are logging.
//
// Records emitted:
//   - [slog.LevelDebug] "ppm encoded" with width, height and lines after
//     every PPM encoding
//   - [slog.LevelDebug] "trajectory computed" with the tick count when a
//     projectile lands
//   - [slog.LevelInfo] "canvas saved" with path and format after Save or
//     SavePPM writes a file
//
// Example:
//
//	rt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
