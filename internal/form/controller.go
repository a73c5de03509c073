package form

import (
	"go.uber.org/zap"

	"github.com/muurk/langform/internal/logging"
	"github.com/muurk/langform/internal/tagedit"
)

// Result is the outcome of a submit attempt
type Result struct {
	Errors     Errors      // Complete error set for this attempt (empty on success)
	Submitted  bool        // True when every field passed
	Submission *Submission // Snapshot of the submitted values (success only)
}

// Controller owns the form state, the per-field error state and the welcome
// gate. The language field is delegated to a tagedit.Editor whose committed
// tags are copied into State.Tags on every acceptance.
//
// Controller is not safe for concurrent use.
type Controller struct {
	state    State
	errors   Errors
	editor   *tagedit.Editor
	showForm bool
}

// NewController creates a controller with an empty form, showing the welcome screen
func NewController() *Controller {
	return &Controller{
		errors: make(Errors),
		editor: tagedit.NewEditor(),
	}
}

// State returns a copy of the current field values
func (c *Controller) State() State {
	return c.state.clone()
}

// Errors returns a copy of the error state from the last submit attempt
func (c *Controller) Errors() Errors {
	out := make(Errors, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// ShowForm reports whether the form (rather than the welcome screen) is active
func (c *Controller) ShowForm() bool {
	return c.showForm
}

// Proceed leaves the welcome screen. Only a successful submit returns to it.
func (c *Controller) Proceed() {
	if c.showForm {
		return
	}
	c.showForm = true
	logging.LogScreenTransition("welcome", "form")
}

// SetField stores a raw value for a text or enum field. No validation is
// performed beyond parsing: an unknown gender or field name is rejected and
// nothing is stored. For the language field the value is treated as a change
// of the tag text; for the image field it is a path to select (empty clears).
func (c *Controller) SetField(field Field, value string) error {
	switch field {
	case FieldUsername:
		c.state.Username = value
	case FieldEmail:
		c.state.Email = value
	case FieldGender:
		g, err := ParseGender(value)
		if err != nil {
			return err
		}
		c.state.Gender = g
	case FieldLanguages:
		c.OnTagTextChange(value)
		return nil
	case FieldImage:
		if value == "" {
			c.SetImage(nil)
			return nil
		}
		h, err := OpenFileHandle(value)
		if err != nil {
			return err
		}
		c.SetImage(h)
		return nil
	default:
		return NewFieldError(field, "unknown field")
	}

	logging.LogFieldChange(string(field), len(value))
	return nil
}

// SetImage stores the selected file handle; nil clears the selection
func (c *Controller) SetImage(h *FileHandle) {
	c.state.Image = h
	size := 0
	if h != nil {
		size = int(h.Size)
	}
	logging.LogFieldChange(string(FieldImage), size)
}

// TagBuffer returns the raw language text
func (c *Controller) TagBuffer() string {
	return c.editor.Buffer()
}

// Suggestions returns the current language suggestions
func (c *Controller) Suggestions() []string {
	return c.editor.Suggestions()
}

// SuggestionState returns the visibility state of the suggestion list
func (c *Controller) SuggestionState() tagedit.ListState {
	return c.editor.State()
}

// PreviewTag returns the language text that accepting tag would produce
func (c *Controller) PreviewTag(tag string) string {
	return c.editor.Preview(tag)
}

// OnTagTextChange replaces the language text and recomputes suggestions
func (c *Controller) OnTagTextChange(raw string) []string {
	suggestions := c.editor.OnTextChange(raw)
	logging.LogSuggestions(tagedit.Fragment(raw), len(suggestions))
	return suggestions
}

// AcceptSuggestion commits tag and copies the committed tags into the form
// state. Reports whether the tag was new; duplicates are silently ignored.
func (c *Controller) AcceptSuggestion(tag string) bool {
	tags, added := c.editor.Accept(tag)
	c.state.Tags = tags
	logging.LogTagAccepted(tag, added, len(tags))
	return added
}

// BlurTags starts dismissing the suggestion list. See tagedit.Editor.Blur.
func (c *Controller) BlurTags() (uint64, bool) {
	return c.editor.Blur()
}

// FocusTags cancels a pending dismissal. See tagedit.Editor.Focus.
func (c *Controller) FocusTags() {
	c.editor.Focus()
}

// ExpireTagBlur finalizes a dismissal. See tagedit.Editor.ExpireBlur.
func (c *Controller) ExpireTagBlur(token uint64) bool {
	return c.editor.ExpireBlur(token)
}

// ValidateAndSubmit recomputes the error state for every field. On failure
// the errors are kept and the form is left exactly as it was. On success the
// errors are cleared, a snapshot is returned for the acknowledgment, and the
// form, tag text, suggestions and welcome gate are all reset.
func (c *Controller) ValidateAndSubmit() Result {
	errs := Validate(c.state)

	if errs.Any() {
		c.errors = errs
		failed := make([]string, 0, len(errs))
		for _, f := range errs.Fields() {
			failed = append(failed, string(f))
		}
		logging.LogSubmission(false, failed)
		return Result{Errors: c.Errors()}
	}

	submission := &Submission{State: c.state.clone()}
	logging.LogSubmission(true, nil)

	c.Reset()
	if c.showForm {
		c.showForm = false
		logging.LogScreenTransition("form", "welcome")
	}

	return Result{
		Errors:     c.Errors(),
		Submitted:  true,
		Submission: submission,
	}
}

// Reset clears all field values, errors, tag text and suggestions.
// The welcome gate is not changed.
func (c *Controller) Reset() {
	c.state = State{}
	c.errors = make(Errors)
	c.editor.Reset()
	logging.Debug("Form reset", zap.Bool("show_form", c.showForm))
}
