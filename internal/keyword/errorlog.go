package keyword

import (
	"encoding/csv"
	"log/slog"
	"os"
	"time"

	"github.com/moringa-school/karibu/internal/csvcheck"
	"github.com/moringa-school/karibu/internal/logging"
)

// DefaultErrorLogPath is where unknown queries are recorded.
const DefaultErrorLogPath = "errors_log.csv"

// errorLogHeader is written once when the file is created.
var errorLogHeader = []string{"timestamp", "previous_bot_message", "user_message"}

// ErrorLogSchema describes a well-formed error log for the CSV checker.
// The previous bot message is legitimately empty on a session's first query.
func ErrorLogSchema() csvcheck.Schema {
	return csvcheck.Schema{
		"timestamp":            {Type: csvcheck.TypeTime, Required: true},
		"previous_bot_message": {Type: csvcheck.TypeString},
		"user_message":         {Type: csvcheck.TypeString, Required: true},
	}
}

// ErrorLog appends unrecognized queries to a CSV file so the response table
// can be grown from real usage. Failures are reported as warnings; the chat
// session never aborts over its error log.
type ErrorLog struct {
	path string
	log  *slog.Logger
	now  func() time.Time
}

// ErrorLogOption configures the ErrorLog.
type ErrorLogOption func(*ErrorLog)

// WithErrorLogger sets the structured logger for write warnings.
func WithErrorLogger(logger *slog.Logger) ErrorLogOption {
	return func(l *ErrorLog) {
		l.log = logger
	}
}

// WithErrorClock overrides the timestamp source.
func WithErrorClock(now func() time.Time) ErrorLogOption {
	return func(l *ErrorLog) {
		l.now = now
	}
}

// NewErrorLog creates an error log writing to path. The file itself is
// created lazily on first record.
func NewErrorLog(path string, opts ...ErrorLogOption) *ErrorLog {
	if path == "" {
		path = DefaultErrorLogPath
	}
	l := &ErrorLog{
		path: path,
		log:  logging.NewNop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the CSV file location.
func (l *ErrorLog) Path() string {
	return l.path
}

// Record appends one unknown query with the bot message that preceded it.
// The header row is written only when the file is new or empty.
func (l *ErrorLog) Record(userMessage, previousBotMessage string) {
	needsHeader := false
	if info, err := os.Stat(l.path); err != nil || info.Size() == 0 {
		needsHeader = true
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l.log.Warn("failed to open error log", "path", l.path, "err", err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(errorLogHeader); err != nil {
			l.log.Warn("failed to write error log header", "path", l.path, "err", err)
			return
		}
	}

	timestamp := l.now().UTC().Format("2006-01-02T15:04:05Z")
	if err := w.Write([]string{timestamp, previousBotMessage, userMessage}); err != nil {
		l.log.Warn("failed to write error log entry", "path", l.path, "err", err)
		return
	}

	w.Flush()
	if err := w.Error(); err != nil {
		l.log.Warn("failed to flush error log", "path", l.path, "err", err)
	}
}
