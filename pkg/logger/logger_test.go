package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestOpenSink(t *testing.T) {
	t.Parallel()
	t.Run("stdout when empty", func(t *testing.T) {
		t.Parallel()
		sink, err := openSink("")
		require.NoError(t, err)
		require.NotNil(t, sink)
	})
	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := openSink(filepath.Join(t.TempDir(), "missing", "app.log"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "open log sink")
	})
}

func TestNewLogger_FileSink(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "app.log")

	log := NewLogger(Log{LogLevel: zapcore.InfoLevel, Sink: path}, "test")
	log.Info("book added")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "book added")
	require.Contains(t, string(data), `"logger":"test"`)
}

func TestNewLogger_BadSinkFallsBack(t *testing.T) {
	t.Parallel()
	log := NewLogger(Log{LogLevel: zapcore.InfoLevel, Sink: filepath.Join(t.TempDir(), "missing", "app.log")}, "test")
	require.NotNil(t, log)
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
