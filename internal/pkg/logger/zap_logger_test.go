package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileLogger(t *testing.T) *ZapLogger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true)
	// Sync on a stdout tee can fail on some platforms; file writes are
	// synchronous, so the error is irrelevant here.
	t.Cleanup(func() { _ = l.Sync() })
	return l
}

func TestGetLogsNewestFirstWithLevelFilter(t *testing.T) {
	l := newFileLogger(t)
	l.Info("pipeline", "first", nil)
	l.Warn("pipeline", "second", map[string]interface{}{"fileId": "f-1"})
	l.Error("scheduler", "third", map[string]interface{}{"error": "boom"})

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "third", logs[0].Message)
	assert.Equal(t, "first", logs[2].Message)
	assert.Equal(t, "scheduler", logs[0].Module)

	errors, err := l.GetLogs("ERROR", 10, 0)
	require.NoError(t, err)
	require.Len(t, errors, 1)
	assert.Equal(t, "third", errors[0].Message)
}

func TestGetLogsPagination(t *testing.T) {
	l := newFileLogger(t)
	for i := 0; i < 5; i++ {
		l.Info("pipeline", "entry", map[string]interface{}{"n": i})
	}

	page, err := l.GetLogs("", 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	tail, err := l.GetLogs("", 10, 4)
	require.NoError(t, err)
	assert.Len(t, tail, 1)

	past, err := l.GetLogs("", 10, 99)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestGetLogByIdRoundTrip(t *testing.T) {
	l := newFileLogger(t)
	l.Info("pipeline", "findable", nil)

	logs, err := l.GetLogs("", 1, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.NotEmpty(t, logs[0].Id)

	entry, err := l.GetLogById(logs[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "findable", entry.Message)

	_, err = l.GetLogById("does-not-exist")
	require.Error(t, err)
}

func TestGetLogsMissingFileIsEmpty(t *testing.T) {
	l := &ZapLogger{filePath: filepath.Join(t.TempDir(), "never-written.log")}

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
