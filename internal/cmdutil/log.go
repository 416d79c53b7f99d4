// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log/slog"
)

// NewLogger returns the run logger: text records on dst at WARN, ERROR when
// quiet, DEBUG when verbose. quiet wins over verbose.
func NewLogger(dst io.Writer, quiet, verbose bool) *slog.Logger {
	lvl := slog.LevelWarn
	switch {
	case quiet:
		lvl = slog.LevelError
	case verbose:
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: lvl}))
}
