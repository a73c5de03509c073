// Package form holds the registration form's state and its submit-time rules.
//
// A Controller owns the field values (State), the per-field error messages
// (Errors) and the welcome-screen gate. Field handlers store values without
// validating them; ValidateAndSubmit checks all five fields at once:
//
//	username   Username is required
//	email      Invalid email address
//	image      Image is required
//	languages  At least one language is required
//	gender     Please select a gender
//
// The error set is recomputed from scratch on every attempt. A failed attempt
// leaves the form untouched so the user can correct it; a successful one
// returns a Submission snapshot and resets everything, including the gate.
//
// Errors are *FieldError values categorized by ErrorType, in the same shape
// the rest of the codebase uses for typed errors.
package form
