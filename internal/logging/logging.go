package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/thenoetrevino/taskflow/internal/user"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

var logFile *lumberjack.Logger

// DefaultPath returns ~/.taskflow/logs/taskflow.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskflow", "logs", "taskflow.log"), nil
}

// Init initializes the logging system, writing logs to ~/.taskflow/logs/taskflow.log
// Uses text format for human readability.
func Init(level string) error {
	logPath, err := DefaultPath()
	if err != nil {
		return err
	}
	return InitFile(logPath, level)
}

// InitFile initializes logging to a rotating file at logPath
func InitFile(logPath, level string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs only ever go to the file
	logFile = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	Logger = slog.New(handler).With("user", user.GetCurrentUsername())
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags)

	return nil
}

// Close flushes and closes the log file
func Close() error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// ParseLevel maps a level name to a slog level. Unknown names mean debug.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
