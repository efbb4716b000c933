// Package transcript persists a session's exchanged messages to an
// append-only flat file, one CSV record per message.
package transcript

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/moringa-school/karibu/internal/logging"
	"github.com/moringa-school/karibu/pkg/dialog"
)

// TimeFormat is the fixed timestamp format of transcript records. All
// timestamps are UTC.
const TimeFormat = time.RFC3339

// Filename derives the deterministic transcript name from the session start.
// Two sessions started in the same minute share a file; records only ever
// append, so that is safe.
func Filename(start time.Time) string {
	return "chat-" + start.UTC().Format("20060102-1504") + ".log"
}

// Logger writes one session's transcript. The backing file is created at
// session start if absent, never truncated, and flushed on every append.
// A write failure warns once and disables the logger for the session
// remainder; the conversation itself continues.
type Logger struct {
	path     string
	file     *os.File
	w        *csv.Writer
	log      *slog.Logger
	now      func() time.Time
	disabled bool
}

// Option configures the Logger.
type Option func(*Logger)

// WithLogger sets the slog logger used for I/O warnings.
func WithLogger(log *slog.Logger) Option {
	return func(l *Logger) {
		l.log = log
	}
}

// WithClock overrides the record timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New opens the transcript for a session started at the given time, creating
// the directory and file as needed.
func New(dir string, start time.Time, opts ...Option) (*Logger, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	path := filepath.Join(dir, Filename(start))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		path: path,
		file: f,
		w:    csv.NewWriter(f),
		log:  logging.NewNop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Path returns the transcript file path.
func (l *Logger) Path() string {
	return l.path
}

// Disabled reports whether logging was shut off after a write failure.
func (l *Logger) Disabled() bool {
	return l.disabled
}

// Append writes one timestamp, speaker, text record and flushes it before
// returning. Durability wins over throughput here; conversation volume is
// small.
func (l *Logger) Append(speaker dialog.Speaker, text string) {
	if l.disabled {
		return
	}

	rec := []string{l.now().UTC().Format(TimeFormat), string(speaker), text}
	if err := l.w.Write(rec); err != nil {
		l.disable(err)
		return
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.disable(err)
	}
}

func (l *Logger) disable(err error) {
	l.disabled = true
	l.log.Warn("transcript logging disabled for the rest of the session", "path", l.path, "err", err)
}

// Close flushes pending records and closes the file.
func (l *Logger) Close() error {
	l.w.Flush()
	err := l.w.Error()
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	return err
}
