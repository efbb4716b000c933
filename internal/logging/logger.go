// Package logging builds the application loggers. Log output always goes to
// stderr so it never interleaves with the conversation on stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger at the given level. Error values are
// normalized under the "err" key.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything. Components take it as
// their default so logging stays optional.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
