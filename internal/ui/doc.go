// Package ui renders styled, non-interactive command output for langform.
//
// The interactive form lives in internal/wizard/tui; this package covers the
// "print once and exit" commands (validate, vocab, config) with lipgloss
// boxes sized to the terminal:
//
//   - Header: command banner with ordered parameters
//   - Result: success, failure or warning box with details and hints
//   - Printer: writes the above to any io.Writer, plus a y/N confirmation
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintFailure("Form validation failed", nil,
//	    "Email: Invalid email address",
//	    "Gender: Gender is required",
//	)
//
// Output written through a Printer does not depend on logging; set
// LANGFORM_LOG_LEVEL to see zap output alongside it.
package ui
