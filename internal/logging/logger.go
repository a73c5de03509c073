package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "LANGFORM_LOG_LEVEL"

// LogFileEnvVar is the environment variable naming a file to log to.
// The full-screen form owns stdout, so interactive sessions should log to a file.
const LogFileEnvVar = "LANGFORM_LOG_FILE"

// Initialize creates a new logger with the specified level, writing to stdout.
// If level is empty, it checks LANGFORM_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithOutput(level, "")
}

// InitializeWithOutput creates a new logger with the specified level and
// output path. An empty path falls back to LANGFORM_LOG_FILE, then stdout.
func InitializeWithOutput(level string, path string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		path = "stdout"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Color codes only make sense on a terminal
	if path == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the LANGFORM_LOG_LEVEL
// and LANGFORM_LOG_FILE environment variables.
func InitializeFromEnv() error {
	return InitializeWithOutput("", "")
}

// SetLogger replaces the global logger. Intended for tests (zaptest/observer).
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogScreenTransition logs a move between screens
func LogScreenTransition(from, to string) {
	Info("Screen transition",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogFieldChange logs that a field was edited. Values are personal data, so
// only their length is recorded.
func LogFieldChange(field string, length int) {
	Debug("Field changed",
		zap.String("field", field),
		zap.Int("length", length),
	)
}

// LogSuggestions logs the result of recomputing language suggestions
func LogSuggestions(fragment string, count int) {
	Debug("Suggestions updated",
		zap.String("fragment", fragment),
		zap.Int("count", count),
	)
}

// LogTagAccepted logs a suggestion acceptance
func LogTagAccepted(tag string, added bool, total int) {
	Info("Language accepted",
		zap.String("tag", tag),
		zap.Bool("added", added),
		zap.Int("total", total),
	)
}

// LogSubmission logs a submit attempt and the fields that failed validation
func LogSubmission(success bool, failedFields []string) {
	if success {
		Info("Form submitted")
		return
	}
	Info("Form validation failed",
		zap.Strings("fields", failedFields),
		zap.Int("error_count", len(failedFields)),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
