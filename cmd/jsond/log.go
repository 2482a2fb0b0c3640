package main

import (
	"log/slog"
	"os"
)

var (
	logLevel = new(slog.LevelVar)

	theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
)

// initLog sets the level from JSOND_LOG_LEVEL, then lowers it to debug
// if verbose.
func initLog(verbose bool) {
	if v := os.Getenv("JSOND_LOG_LEVEL"); v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			theLog.Warn("ignoring JSOND_LOG_LEVEL", "value", v, "error", err)
		}
	}
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}
}
