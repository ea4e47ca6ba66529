package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

var fileLogLevels = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

// FileLoggerAdapter appends one JSON object per line to a log file
type FileLoggerAdapter struct {
	filePath string
	minLevel int
	now      func() time.Time
	mutex    sync.Mutex
}

// FileLoggerParams configures a file logger. MinLevel is one of DEBUG, INFO,
// WARN or ERROR and defaults to DEBUG.
type FileLoggerParams struct {
	Path     string
	MinLevel string
	Clock    func() time.Time
}

// NewFileLoggerAdapter creates the log directory and returns the logger
func NewFileLoggerAdapter(params FileLoggerParams) (*FileLoggerAdapter, error) {
	if params.Path == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	minLevel := 0
	if params.MinLevel != "" {
		level, ok := fileLogLevels[params.MinLevel]
		if !ok {
			return nil, errors.NewConfigurationError(fmt.Sprintf("unknown log level %q", params.MinLevel), nil)
		}
		minLevel = level
	}

	if err := os.MkdirAll(filepath.Dir(params.Path), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	now := params.Clock
	if now == nil {
		now = time.Now
	}

	return &FileLoggerAdapter{
		filePath: params.Path,
		minLevel: minLevel,
		now:      now,
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields...)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields...)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields...)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields...)
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields ...ports.Field) {
	if fileLogLevels[level] < f.minLevel {
		return
	}

	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		entry[field.Key] = field.Value
	}
	// reserved keys win over fields of the same name
	entry["timestamp"] = f.now().Format(time.RFC3339)
	entry["level"] = level
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line, _ = json.Marshal(map[string]string{
			"timestamp": entry["timestamp"].(string),
			"level":     "ERROR",
			"message":   "failed to marshal log entry: " + err.Error(),
		})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.appendLine(line)
}

func (f *FileLoggerAdapter) appendLine(line []byte) {
	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
