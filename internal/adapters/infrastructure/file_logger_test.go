package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

var fixedNow = func() time.Time { return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC) }

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line should be valid JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestNewFileLoggerAdapter(t *testing.T) {
	tests := []struct {
		name        string
		params      FileLoggerParams
		expectError bool
		errorMsg    string
	}{
		{name: "ValidPath", params: FileLoggerParams{Path: "weather.log"}},
		{name: "NestedPath", params: FileLoggerParams{Path: filepath.Join("deep", "nested", "weather.log")}},
		{name: "WithLevel", params: FileLoggerParams{Path: "weather.log", MinLevel: "WARN"}},
		{name: "EmptyPath", params: FileLoggerParams{}, expectError: true, errorMsg: "log file path cannot be empty"},
		{name: "UnknownLevel", params: FileLoggerParams{Path: "weather.log", MinLevel: "TRACE"}, expectError: true, errorMsg: `unknown log level "TRACE"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.params.Path != "" {
				tt.params.Path = filepath.Join(t.TempDir(), tt.params.Path)
			}

			logger, err := NewFileLoggerAdapter(tt.params)

			if tt.expectError {
				assert.True(t, errors.IsConfigurationError(err))
				assert.Nil(t, logger)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
			assert.DirExists(t, filepath.Dir(tt.params.Path))
		})
	}
}

func TestFileLoggerAdapter_StructuredEntry(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "providers.log")
	logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: logPath, Clock: fixedNow})
	require.NoError(t, err)

	logger.Info("Weather API request completed",
		ports.F("provider", "Open-Meteo"),
		ports.F("location", "Montréal"),
		ports.F("event", "response"),
		ports.F("duration_ms", 412),
		ports.F("temperature", 18),
		ports.F("condition", "partly-cloudy"))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Weather API request completed", entry["message"])
	assert.Equal(t, "2024-06-01T09:30:00Z", entry["timestamp"])
	assert.Equal(t, "Open-Meteo", entry["provider"])
	assert.Equal(t, "Montréal", entry["location"])
	assert.Equal(t, float64(412), entry["duration_ms"])
	assert.Equal(t, "partly-cloudy", entry["condition"])
}

func TestFileLoggerAdapter_LevelsAndAppend(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "levels.log")
	logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: logPath, MinLevel: "INFO", Clock: fixedNow})
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("first")
	logger.Warn("second")
	logger.Error("third", ports.F("message", "field cannot overwrite"))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, "WARN", entries[1]["level"])
	assert.Equal(t, "ERROR", entries[2]["level"])
	assert.Equal(t, "third", entries[2]["message"])
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "concurrent.log")
	logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: logPath})
	require.NoError(t, err)

	numGoroutines := 10
	messagesPerGoroutine := 5

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				logger.Info(fmt.Sprintf("Message from goroutine %d", goroutineID),
					ports.F("goroutine_id", goroutineID),
					ports.F("message_id", j))
			}
		}(i)
	}
	wg.Wait()

	entries := readLogLines(t, logPath)
	assert.Len(t, entries, numGoroutines*messagesPerGoroutine)
	for _, entry := range entries {
		assert.Contains(t, entry, "goroutine_id")
		assert.Contains(t, entry, "message_id")
	}
}

func TestFileLoggerAdapter_UnmarshalableField(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "invalid.log")
	logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: logPath})
	require.NoError(t, err)

	logger.Info("Test message", ports.F("channel", make(chan int)))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Contains(t, entries[0]["message"], "failed to marshal log entry")
}

func TestMultiLogger(t *testing.T) {
	first := filepath.Join(t.TempDir(), "a.log")
	second := filepath.Join(t.TempDir(), "b.log")
	a, err := NewFileLoggerAdapter(FileLoggerParams{Path: first})
	require.NoError(t, err)
	b, err := NewFileLoggerAdapter(FileLoggerParams{Path: second, MinLevel: "ERROR"})
	require.NoError(t, err)

	logger := MultiLogger{a, b}
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	assert.Len(t, readLogLines(t, first), 4)
	assert.Len(t, readLogLines(t, second), 1)
}

func BenchmarkFileLoggerAdapter_Info(b *testing.B) {
	logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: filepath.Join(b.TempDir(), "benchmark.log")})
	require.NoError(b, err)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Info("Benchmark message",
				ports.F("provider", "Open-Meteo"),
				ports.F("location", "Montréal"),
				ports.F("temperature", 18))
		}
	})
}
