package pixbuf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false so callers never
// format the attributes of a disabled message.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes the diagnostics of pixbuf and its sub-packages to l.
// Nothing is logged until SetLogger is called; nil silences logging again.
// It may be called while other goroutines are logging.
//
// Levels:
//   - [slog.LevelDebug]: which path an operation took (tiled transpose,
//     blur radii, resize filter, decoded format, terminal protocol)
//   - [slog.LevelWarn]: degraded output (unknown terminal size, glyphs
//     that failed to rasterise)
//
// To see everything on stderr:
//
//	pixbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by [SetLogger].
func Logger() *slog.Logger {
	return current.Load()
}
