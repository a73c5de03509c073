package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/langform/internal/config"
	"github.com/muurk/langform/internal/form"
	"github.com/muurk/langform/internal/logging"
	"github.com/muurk/langform/internal/prompt"
	"github.com/muurk/langform/internal/tagedit"
	"github.com/muurk/langform/internal/ui"
	"github.com/muurk/langform/internal/urls"
	"github.com/muurk/langform/internal/version"
	"github.com/muurk/langform/internal/wizard/tui"
)

// errValidationFailed is returned after a failure box has already been printed
var errValidationFailed = errors.New("form validation failed")

func runForm(cmd *cobra.Command, opts *rootOptions) error {
	prefs := opts.prefs
	app := tui.NewAppModel(form.NewController(), tui.FormOptions{
		BlurDelay: prefs.BlurDelay(),
		ImageDir:  prefs.ImageDir,
		HideHelp:  !prefs.ShowHelp,
	})

	programOpts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if prefs.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	logging.Info("Starting form", zap.Duration("blur_delay", prefs.BlurDelay()), zap.Bool("alt_screen", prefs.AltScreen))
	if _, err := tea.NewProgram(app, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("failed to run form: %w", err)
	}
	return nil
}

// newPromptCmd answers the form one question at a time
func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the form with line-by-line prompts",
		Long: `Fill in the registration form one question at a time.

Each field is asked in turn. Languages are added one per answer; press Tab
to complete from the known languages and submit an empty answer to finish.
If the submit fails, only the fields with errors are asked again.`,
		Example: `  langform prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			printer := ui.NewPrinter(cmd.OutOrStdout())
			driver := prompt.NewSurveyDriver(cmd.OutOrStdout())

			_, err := prompt.Run(ctx, driver, form.NewController())
			switch {
			case err == nil:
				return nil
			case errors.Is(err, prompt.ErrDeclined):
				printer.Println(ui.HintStyle.Render("Maybe next time."))
				return nil
			case errors.Is(err, prompt.ErrAborted), errors.Is(err, context.Canceled):
				printer.Println(ui.HintStyle.Render("Form abandoned."))
				return nil
			default:
				printer.PrintFailure("Prompt failed", err, "Report problems at "+urls.Issues)
				return fmt.Errorf("prompt failed: %w", err)
			}
		},
	}
}

type validateOptions struct {
	username  string
	email     string
	gender    string
	languages []string
	image     string
}

// newValidateCmd checks a set of field values without a terminal UI
func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate field values without the interactive form",
		Long: `Run a set of field values through the same submit checks the form uses.

Every field is checked and every failure is reported. Languages must be
entries of the known vocabulary (see 'langform vocab'); case is ignored.
The command exits non-zero when validation fails.`,
		Example: `  # A valid submission
  langform validate --username ada --email ada@example.com \
    --gender female --language Python --language Docker --image ./ada.png

  # Report every missing field
  langform validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runValidate(ui.NewPrinter(cmd.OutOrStdout()), opts)
		},
	}

	cmd.Flags().StringVar(&opts.username, "username", "", "User name")
	cmd.Flags().StringVar(&opts.email, "email", "", "Email address")
	cmd.Flags().StringVar(&opts.gender, "gender", "", "Gender (male, female, other)")
	cmd.Flags().StringArrayVar(&opts.languages, "language", nil, "Known language (repeatable)")
	cmd.Flags().StringVar(&opts.image, "image", "", "Path to the profile image")

	return cmd
}

func runValidate(printer *ui.Printer, opts *validateOptions) error {
	c := form.NewController()
	c.Proceed()

	params := []ui.Detail{
		{Key: "Username", Value: opts.username},
		{Key: "Email", Value: opts.email},
	}
	printer.PrintHeader("Validate Registration", "langform validate", params...)

	fields := []struct {
		field form.Field
		value string
	}{
		{form.FieldUsername, opts.username},
		{form.FieldEmail, opts.email},
		{form.FieldGender, opts.gender},
		{form.FieldImage, opts.image},
	}
	for _, f := range fields {
		if err := c.SetField(f.field, f.value); err != nil {
			var fe *form.FieldError
			hint := "Check the --" + string(f.field) + " value"
			if errors.As(err, &fe) && fe.Path != "" {
				hint = "Path: " + fe.Path
			}
			printer.PrintFailure("Invalid "+f.field.Label(), err, hint)
			return errValidationFailed
		}
	}

	for _, lang := range opts.languages {
		c.OnTagTextChange(tagedit.JoinBuffer(c.State().Tags) + lang)
		tag, ok := tagedit.Canonical(lang)
		if !ok {
			hints := []string{"Run 'langform vocab' to list the known languages"}
			if s := tagedit.Suggest(lang); len(s) > 0 {
				hints = append([]string{fmt.Sprintf("Did you mean: %v", s)}, hints...)
			}
			printer.PrintFailure("Unknown language", fmt.Errorf("%q is not a known language", lang), hints...)
			return errValidationFailed
		}
		c.AcceptSuggestion(tag)
	}

	res := c.ValidateAndSubmit()
	if !res.Submitted {
		failed := res.Errors.Fields()
		hints := make([]string, 0, len(failed))
		for _, f := range failed {
			hints = append(hints, f.Label()+": "+res.Errors.Get(f))
		}
		printer.PrintFailure("Form validation failed", fmt.Errorf("%d of %d fields invalid", len(failed), len(form.Fields)), hints...)
		return errValidationFailed
	}

	details := make([]ui.Detail, 0, len(form.Fields))
	for _, row := range res.Submission.Summary() {
		details = append(details, ui.Detail{Key: row[0], Value: row[1]})
	}
	printer.PrintSuccess("Form is valid", details...)
	return nil
}

// newVocabCmd lists the known languages or the suggestions for a prefix
func newVocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab [prefix]",
		Short: "List known languages",
		Long: `List the languages the form recognizes, in suggestion order.

With a prefix, only the suggestions the form would offer for it are shown.
Matching ignores case.`,
		Example: `  langform vocab
  langform vocab ja`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := ui.NewPrinter(cmd.OutOrStdout())
			if len(args) == 0 {
				printer.PrintMatches(tagedit.Vocabulary, "")
				return nil
			}

			prefix := args[0]
			matches := tagedit.Suggest(prefix)
			if len(matches) == 0 {
				printer.Println(ui.HintStyle.Render(fmt.Sprintf("No languages start with %q", prefix)))
				return nil
			}
			printer.PrintMatches(matches, prefix)
			return nil
		},
	}
}

// newConfigCmd manages the preferences file
func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the preferences file",
		// The file may be broken; don't load it before these commands run
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initLogging()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the preferences file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := config.ReloadRegistry()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(registry)
			if err != nil {
				return fmt.Errorf("failed to marshal preferences: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a preferences file with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			printer := ui.NewPrinter(cmd.OutOrStdout())

			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				ok := printer.Confirm(cmd.InOrStdin(), "Preferences file exists",
					[]string{path, "Current preferences will be replaced with defaults"},
					"Overwrite it?")
				if !ok {
					return nil
				}
			}

			path, err = config.CreateDefaultConfig(true)
			if err != nil {
				printer.PrintFailure("Could not write preferences", err)
				return err
			}
			printer.PrintSuccess("Preferences written", ui.Detail{Key: "Path", Value: path})
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file without asking")
	cmd.AddCommand(initCmd)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "langform %s\n%s\n", version.Full(), version.Platform())
		},
	}
}
