package prompt

import "errors"

var (
	// ErrAborted signals the user interrupted a prompt (ctrl+c).
	ErrAborted = errors.New("prompt: aborted")
	// ErrDeclined signals the user chose not to open the form.
	ErrDeclined = errors.New("prompt: form declined")
)
