package jsond

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	logger atomic.Pointer[slog.Logger]
	errOut atomic.Pointer[io.Writer]
)

func init() {
	SetLogger(nil)
	SetErrorOutput(nil)
}

// SetLogger sets the logger used to record failed operations.  nil
// restores the default, slog.Default() tagged with component=jsond.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default().With("component", "jsond")
	}
	logger.Store(l)
}

func log() *slog.Logger {
	return logger.Load()
}

// SetErrorOutput sets where FromJSON writes parse diagnostics.  nil
// restores os.Stderr; io.Discard silences them.
func SetErrorOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	errOut.Store(&w)
}

func errorOutput() io.Writer {
	return *errOut.Load()
}
