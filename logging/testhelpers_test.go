package logging

import (
	"log/slog"
	"testing"

	"github.com/saludarte/saludarte-api/config"
)

// ResetForTest swaps the global logging service for one writing to logDir and
// restores the previous service when the test finishes.
func ResetForTest(t *testing.T, logDir string, env config.Environment, logLevel string, retentionWeeks int, maxFileSize int64) {
	t.Helper()

	prev := DefaultLoggingService

	consoleLevel := GetConsoleLogLevel(env, logLevel, testing.Verbose())
	logger, rotating := setupLoggerWithLevels(logDir, consoleLevel, GetFileLogLevel(), retentionWeeks, maxFileSize)

	DefaultLoggingService = &LoggingService{
		Logger:   logger,
		rotating: rotating,
	}
	slog.SetDefault(logger)

	t.Cleanup(func() {
		if err := DefaultLoggingService.Close(); err != nil {
			t.Logf("Failed to close test logger: %v", err)
		}
		DefaultLoggingService = prev
	})
}
