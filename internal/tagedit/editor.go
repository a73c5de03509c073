package tagedit

import "time"

// DefaultBlurDelay is how long a blurred suggestion list stays open so that a
// selection made in the same gesture is processed before the list disappears.
const DefaultBlurDelay = 100 * time.Millisecond

// ListState is the visibility state of the suggestion list.
type ListState int

const (
	// ListClosed means no suggestions are shown
	ListClosed ListState = iota
	// ListOpen means suggestions are shown and selectable
	ListOpen
	// ListPendingClose means the input lost focus; the list is still
	// selectable until the blur timer expires
	ListPendingClose
)

// String returns a human-readable name for the list state
func (s ListState) String() string {
	switch s {
	case ListClosed:
		return "closed"
	case ListOpen:
		return "open"
	case ListPendingClose:
		return "pending-close"
	default:
		return "unknown"
	}
}

// Editor manages the comma-delimited tag buffer, its suggestion list, and the
// ordered set of committed tags.
//
// The buffer is free text while the user types. Once a suggestion is accepted
// the buffer is rebuilt from the committed tags, so after every acceptance the
// first N-1 pieces of the buffer are exactly the committed tags and the last
// piece is an empty fragment.
//
// Editor is not safe for concurrent use; it is driven from a single UI event loop.
type Editor struct {
	buffer      string
	suggestions []string
	committed   []string
	state       ListState

	// token identifies the most recent blur; timers carrying an older token
	// are ignored.
	token uint64
}

// NewEditor creates an empty editor
func NewEditor() *Editor {
	return &Editor{}
}

// Buffer returns the raw tag text
func (e *Editor) Buffer() string {
	return e.buffer
}

// Suggestions returns a copy of the current suggestion list.
// The list is empty whenever the list state is closed.
func (e *Editor) Suggestions() []string {
	if len(e.suggestions) == 0 {
		return nil
	}
	out := make([]string, len(e.suggestions))
	copy(out, e.suggestions)
	return out
}

// Committed returns a copy of the committed tags in insertion order
func (e *Editor) Committed() []string {
	if len(e.committed) == 0 {
		return nil
	}
	out := make([]string, len(e.committed))
	copy(out, e.committed)
	return out
}

// State returns the suggestion list state
func (e *Editor) State() ListState {
	return e.state
}

// OnTextChange replaces the buffer with raw and recomputes suggestions from
// the in-progress fragment. Committed tags are not touched.
func (e *Editor) OnTextChange(raw string) []string {
	e.buffer = raw
	e.suggestions = Suggest(Fragment(raw))

	// Typing implies focus, so any pending dismissal is void.
	e.token++
	if len(e.suggestions) == 0 {
		e.state = ListClosed
	} else {
		e.state = ListOpen
	}

	return e.Suggestions()
}

// Accept commits tag if it is not already committed (exact, case-sensitive
// match), rebuilds the buffer and closes the suggestion list. The list is
// closed even when tag was a duplicate: the selection is still consumed.
// Returns the committed tags and whether tag was newly added.
func (e *Editor) Accept(tag string) ([]string, bool) {
	added := false
	if !e.contains(tag) {
		e.committed = append(e.committed, tag)
		added = true
	}

	e.buffer = JoinBuffer(e.committed)
	e.close()

	return e.Committed(), added
}

// Preview returns the buffer that accepting tag would produce, without
// changing the editor.
func (e *Editor) Preview(tag string) string {
	if e.contains(tag) {
		return JoinBuffer(e.committed)
	}
	next := make([]string, 0, len(e.committed)+1)
	next = append(next, e.committed...)
	next = append(next, tag)
	return JoinBuffer(next)
}

// Blur starts the two-phase dismissal. If the list is open it moves to
// pending-close and the returned token must be handed back to ExpireBlur once
// the blur delay has elapsed. pending is false when there is nothing to dismiss.
func (e *Editor) Blur() (token uint64, pending bool) {
	if e.state != ListOpen {
		return e.token, false
	}
	e.token++
	e.state = ListPendingClose
	return e.token, true
}

// Focus cancels a pending dismissal and reopens the list
func (e *Editor) Focus() {
	if e.state != ListPendingClose {
		return
	}
	e.token++
	e.state = ListOpen
}

// ExpireBlur finalizes a dismissal started by Blur. It only clears the list if
// the editor is still pending-close for the same token; a selection or refocus
// in between makes the token stale. Reports whether the list was cleared.
func (e *Editor) ExpireBlur(token uint64) bool {
	if e.state != ListPendingClose || token != e.token {
		return false
	}
	e.close()
	return true
}

// Reset returns the editor to its initial empty state
func (e *Editor) Reset() {
	e.buffer = ""
	e.committed = nil
	e.close()
}

func (e *Editor) close() {
	e.suggestions = nil
	e.state = ListClosed
	e.token++
}

func (e *Editor) contains(tag string) bool {
	for _, t := range e.committed {
		if t == tag {
			return true
		}
	}
	return false
}
