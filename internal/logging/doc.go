// Package logging provides structured logging for langform.
//
// This package wraps a zap logger with convenience functions for common logging
// patterns, plus form-specific helpers for screen changes, field edits,
// suggestion updates and submit attempts.
//
// # Log Levels
//
//   - Debug: Per-keystroke detail (field edits, suggestion recomputation)
//   - Info: User-visible events (screen changes, accepted languages, submits)
//   - Warn: Non-fatal issues (config fallbacks)
//   - Error: Failures surfaced to the user
//
// # Silent By Default
//
// Logging is off unless a level is given explicitly or LANGFORM_LOG_LEVEL is
// set. The full-screen form draws on stdout, so when logging a TUI session
// point LANGFORM_LOG_FILE (or --log-file) at a file:
//
//	if err := logging.InitializeWithOutput("debug", "/tmp/langform.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Privacy
//
// Field values are never logged; LogFieldChange records only the field name
// and value length. Accepted language tags come from a fixed vocabulary and
// are logged verbatim.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
