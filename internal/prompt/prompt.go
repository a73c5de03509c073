package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/langform/internal/form"
	"github.com/muurk/langform/internal/logging"
	"github.com/muurk/langform/internal/tagedit"
)

const (
	welcomeTitle   = "Welcome to Our Awesome Form!"
	welcomeMessage = "We're excited to have you here."
	proceedMessage = "Proceed to Form?"
	successTitle   = "Form successfully submitted!"
)

// Run walks c through the registration form with d. Every field is asked
// once; after a failed submit only the failing fields are asked again, until
// a submit passes or ctx is cancelled. It returns the submitted snapshot.
func Run(ctx context.Context, d Driver, c *form.Controller) (*form.Submission, error) {
	if err := d.Info(ctx, welcomeTitle+"\n"+welcomeMessage); err != nil {
		return nil, err
	}
	ok, err := d.Confirm(ctx, ConfirmConfig{Message: proceedMessage, Default: true})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDeclined
	}
	c.Proceed()

	fields := form.Fields
	for attempt := 1; ; attempt++ {
		for _, f := range fields {
			if err := askField(ctx, d, c, f); err != nil {
				return nil, err
			}
		}

		res := c.ValidateAndSubmit()
		if res.Submitted {
			if err := d.Info(ctx, formatSummary(res.Submission)); err != nil {
				return nil, err
			}
			return res.Submission, nil
		}

		fields = res.Errors.Fields()
		logging.Debug("Re-asking failed fields",
			zap.Int("attempt", attempt),
			zap.Int("fields", len(fields)),
		)
		if err := d.Info(ctx, form.FormatErrors(res.Errors)); err != nil {
			return nil, err
		}
	}
}

func askField(ctx context.Context, d Driver, c *form.Controller, f form.Field) error {
	switch f {
	case form.FieldUsername, form.FieldEmail:
		return askText(ctx, d, c, f)
	case form.FieldGender:
		return askGender(ctx, d, c)
	case form.FieldLanguages:
		return askLanguages(ctx, d, c)
	case form.FieldImage:
		return askImage(ctx, d, c)
	default:
		return fmt.Errorf("no prompt for field %q", f)
	}
}

func askText(ctx context.Context, d Driver, c *form.Controller, f form.Field) error {
	current := c.State().Username
	if f == form.FieldEmail {
		current = c.State().Email
	}

	answer, err := d.Input(ctx, InputConfig{Message: f.Label() + ":", Default: current})
	if err != nil {
		return err
	}
	return c.SetField(f, answer)
}

func askGender(ctx context.Context, d Driver, c *form.Controller) error {
	options := make([]string, len(form.GenderOptions))
	def := 0
	current := c.State().Gender
	for i, g := range form.GenderOptions {
		options[i] = g.Label()
		if g == current {
			def = i
		}
	}

	for {
		idx, err := d.Select(ctx, SelectConfig{
			Message:      form.FieldGender.Label() + ":",
			Options:      options,
			DefaultIndex: def,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(form.GenderOptions) {
			return c.SetField(form.FieldGender, string(form.GenderOptions[idx]))
		}
		if err := d.Info(ctx, "Invalid gender selection"); err != nil {
			return err
		}
	}
}

// askLanguages adds languages one at a time until an empty answer. Each answer
// goes through the same text-change and accept path as the full-screen form,
// so only vocabulary entries can be committed.
func askLanguages(ctx context.Context, d Driver, c *form.Controller) error {
	for {
		msg := "Add a language (empty to finish):"
		if tags := c.State().Tags; len(tags) > 0 {
			msg = fmt.Sprintf("Add a language [%s] (empty to finish):", strings.Join(tags, ", "))
		}

		answer, err := d.Input(ctx, InputConfig{
			Message: msg,
			Help:    "Tab completes from the known languages",
			Suggest: tagedit.Suggest,
		})
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			// Drop any rejected fragment left in the text
			c.OnTagTextChange(tagedit.JoinBuffer(c.State().Tags))
			return nil
		}

		tag, suggestions, ok := resolveTag(c, answer)
		if !ok {
			msg := fmt.Sprintf("Unknown language %q", answer)
			if len(suggestions) > 1 {
				msg = fmt.Sprintf("%q matches %s", answer, strings.Join(suggestions, ", "))
			}
			if err := d.Info(ctx, msg); err != nil {
				return err
			}
			continue
		}
		if !c.AcceptSuggestion(tag) {
			if err := d.Info(ctx, fmt.Sprintf("%s already added", tag)); err != nil {
				return err
			}
		}
	}
}

// resolveTag feeds answer to the controller as the next fragment and picks the
// suggestion it names. An exact entry wins; otherwise a case-insensitive match
// or a single remaining suggestion is taken.
func resolveTag(c *form.Controller, answer string) (string, []string, bool) {
	suggestions := c.OnTagTextChange(tagedit.JoinBuffer(c.State().Tags) + answer)
	if tag, ok := tagedit.Canonical(answer); ok {
		return tag, suggestions, true
	}
	if len(suggestions) == 1 {
		return suggestions[0], suggestions, true
	}
	return "", suggestions, false
}

func askImage(ctx context.Context, d Driver, c *form.Controller) error {
	current := ""
	if img := c.State().Image; img != nil {
		current = img.Path
	}

	for {
		answer, err := d.Input(ctx, InputConfig{
			Message: form.FieldImage.Label() + " (path):",
			Default: current,
		})
		if err != nil {
			return err
		}
		err = c.SetField(form.FieldImage, strings.TrimSpace(answer))
		var fe *form.FieldError
		if err == nil {
			return nil
		}
		if !errors.As(err, &fe) || fe.Type != form.ErrTypeFile {
			return err
		}
		if err := d.Info(ctx, fe.Message+": "+answer); err != nil {
			return err
		}
	}
}

func formatSummary(s *form.Submission) string {
	var sb strings.Builder
	sb.WriteString("✓ " + successTitle + "\n")
	for _, row := range s.Summary() {
		sb.WriteString(fmt.Sprintf("  %-10s %s\n", row[0]+":", row[1]))
	}
	return sb.String()
}
