package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar

	onceMu   sync.Mutex
	onceSeen map[string]struct{}
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before the first logger
// use to take effect.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			multiWriter = os.Stdout
			return
		}

		dir := filepath.Dir(logPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			multiWriter = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			multiWriter = os.Stdout
			return
		}

		multiWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// GetInternalLogger returns the logger the framework itself writes to.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		})
		internalLogger = slog.New(handler)
	})
	return internalLogger
}

// SetLogLevel sets the minimum level for the application logger.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// SetInternalLogLevel sets the minimum level for the framework logger.
func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ErrorOnce logs an error at most once per key for the process lifetime.
// Used for per-icon parse failures so a broken icon does not spam the log
// every frame.
func ErrorOnce(key, msg string, args ...any) {
	onceMu.Lock()
	if onceSeen == nil {
		onceSeen = make(map[string]struct{})
	}
	_, seen := onceSeen[key]
	if !seen {
		onceSeen[key] = struct{}{}
	}
	onceMu.Unlock()

	if !seen {
		GetInternalLogger().Error(msg, args...)
	}
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
