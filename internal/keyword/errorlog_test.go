package keyword

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLog_Record(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors_log.csv")
	clock := time.Date(2025, 6, 1, 14, 30, 45, 0, time.UTC)
	errlog := NewErrorLog(path, WithErrorClock(func() time.Time { return clock }))

	// Lazy creation: nothing on disk until the first record.
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	errlog.Record("what is quantum computing", "")
	errlog.Record("do you teach cooking", "I'm still learning!")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two entries")

	assert.Equal(t, []string{"timestamp", "previous_bot_message", "user_message"}, rows[0])
	assert.Equal(t, []string{"2025-06-01T14:30:45Z", "", "what is quantum computing"}, rows[1])
	assert.Equal(t, []string{"2025-06-01T14:30:45Z", "I'm still learning!", "do you teach cooking"}, rows[2])
}

func TestErrorLog_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors_log.csv")

	// Two independent instances against the same file, as across process
	// restarts.
	NewErrorLog(path).Record("first", "")
	NewErrorLog(path).Record("second", "")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "timestamp", rows[0][0])
	assert.Equal(t, "first", rows[1][2])
	assert.Equal(t, "second", rows[2][2])
}

func TestErrorLog_UnwritablePathDoesNotPanic(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes every open fail.
	path := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(path, 0o755))

	errlog := NewErrorLog(path)
	assert.NotPanics(t, func() {
		errlog.Record("query", "previous")
	})
}
