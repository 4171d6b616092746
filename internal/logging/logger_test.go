package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vgrid/internal/logging"
)

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vgrid.log")

	result := logging.NewLoggerWithPath(logging.Config{
		Level:  "debug",
		Output: logging.OutputFile,
		File:   path,
	})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Debug().Str("probe", "value").Msg("hello")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"probe":"value"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNewLoggerWithPath_FallsBackWithoutPath(t *testing.T) {
	result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPath_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "WARN", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "nonsense", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := logging.NewLogger(logging.Config{Level: tt.level, Format: logging.FormatJSON})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.ComponentLogger(zerolog.New(&buf), "grid")
	logger.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"grid"`)
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logging.TraceIDFromContext(ctx))

	generated := logging.GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26, "ULID string length")

	ctx = logging.ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, logging.GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	l := logging.FromContext(ctx)
	l.Info().Msg("from ctx")
	assert.True(t, strings.Contains(buf.String(), "from ctx"))
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	logging.PrintLogPathMessage(&buf, "/tmp/x.log")
	logging.PrintFallbackWarning(&buf, "denied")
	assert.Contains(t, buf.String(), "/tmp/x.log")
	assert.Contains(t, buf.String(), "denied")
}
