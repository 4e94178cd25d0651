// Package logger provides the driver's debug logging. It is silent until
// Init is called, so the driver's own stdout/stderr contract is unaffected
// by default.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	defaultLogger *slog.Logger
	logFile       *os.File
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel  = "LLD_STANDALONE_LOG"
	EnvFormat = "LLD_STANDALONE_LOG_FORMAT"
	EnvFile   = "LLD_STANDALONE_LOG_FILE"
)

// Config holds logger configuration
type Config struct {
	Level     LogLevel
	Format    string // "text" or "json"
	Output    io.Writer
	AddSource bool
	LogFile   string
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// ConfigFromEnv builds a configuration from the LLD_STANDALONE_LOG*
// variables. ok is false when logging was not requested.
func ConfigFromEnv(getenv func(string) string) (cfg Config, ok bool) {
	level := getenv(EnvLevel)
	if level == "" {
		return Config{}, false
	}
	cfg = DefaultConfig()
	cfg.Level = ParseLevel(level)
	if f := getenv(EnvFormat); f != "" {
		cfg.Format = f
	}
	cfg.LogFile = getenv(EnvFile)
	return cfg, true
}

// ParseLevel maps a level name to a LogLevel, defaulting to LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug", "1", "true":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Init initializes the global logger with the given configuration,
// replacing and closing any previous one.
func Init(cfg Config) error {
	var handler slog.Handler

	output := cfg.Output
	var file *os.File
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		file, output = f, f
	}
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     toSlogLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	Reset()
	defaultLogger = slog.New(handler)
	logFile = file
	return nil
}

// Reset disables logging again and closes the log file, if any.
func Reset() {
	defaultLogger = nil
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Info(msg, args...)
	}
}

// Driver-specific logging helpers

// LogTargetResolved logs the resolved target and where it came from.
func LogTargetResolved(triple, source string) {
	Debug("Target resolved", "triple", triple, "source", source)
}

// LogDelegateFound logs the located linker.
func LogDelegateFound(name, path string) {
	Debug("Delegate located", "name", name, "path", path)
}

// LogInvocation logs the full argument vector handed to the delegate.
func LogInvocation(argv []string) {
	Info("Invoking delegate", "argv", argv)
}

// LogDelegateExit logs how the delegate finished.
func LogDelegateExit(path string, code int) {
	Info("Delegate exited", "path", path, "code", code)
}
