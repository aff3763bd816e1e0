package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultMaxLogFiles is the default number of rotated log files to keep
const DefaultMaxLogFiles = 10

// maxLogSizeMB is the size at which the active log file is rotated
const maxLogSizeMB = 10

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger based on the debug flag and configuration.
// It returns the path of the log file in use, or "" when logging is disabled.
func Initialize(debug bool, debugFile string, logDir string, maxLogFiles int) (string, error) {
	// Check environment variables for inherited debug settings
	if os.Getenv("STUDYFLOW_DEBUG") == "1" {
		debug = true
	}
	if envDebugFile := os.Getenv("STUDYFLOW_DEBUG_FILE"); envDebugFile != "" && debugFile == "" {
		debugFile = envDebugFile
	}
	if envMaxLogFiles := os.Getenv("STUDYFLOW_MAX_LOG_FILES"); envMaxLogFiles != "" && maxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(envMaxLogFiles); err == nil {
			maxLogFiles = parsed
		}
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logFilePath := debugFile
	if logFilePath == "" {
		logFilePath = filepath.Join(logDir, "studyflow.log")
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	// A custom debug file is never rotated
	var out io.Writer
	if debugFile != "" {
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return "", fmt.Errorf("failed to create log file: %w", err)
		}
		out = f
	} else {
		out = &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogFiles,
		}
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	Logger = slog.New(slog.NewJSONHandler(out, opts))

	// Only announce when debug was explicitly enabled (not inherited from env)
	if os.Getenv("STUDYFLOW_DEBUG") == "" {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)
	}

	return logFilePath, nil
}
