// Langform is a terminal registration form.
//
// It collects a username, an email address, a gender, the programming
// languages the user knows and a profile image, and validates them on submit.
// Languages are picked from a fixed vocabulary with prefix suggestions.
//
// Usage:
//
//	langform [command] [flags]
//
// Running without arguments opens the full-screen form.
// See 'langform --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/langform/internal/config"
	"github.com/muurk/langform/internal/logging"
	"github.com/muurk/langform/internal/version"
)

func main() {
	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every command. Flags that are set
// explicitly take precedence over the stored preferences.
type rootOptions struct {
	logLevel  string
	logFile   string
	altScreen bool
	blurDelay time.Duration
	imageDir  string
	noHelp    bool

	prefs *config.Preferences
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "langform",
		Short: "Terminal registration form",
		Long: `A terminal registration form with language autocomplete.

Collects a username, email, gender, known programming languages and a
profile image. Every field is checked when the form is submitted; a
successful submit resets the form and returns to the welcome screen.

If no command is specified, the full-screen form launches automatically.`,
		Version: version.Version,
		Example: `  # Open the full-screen form
  langform

  # Answer the same questions line by line
  langform prompt

  # Check a set of values without a terminal UI
  langform validate --username ada --email ada@example.com \
    --gender female --language Python --image ./ada.png`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: open the form when no subcommand provided
			return runForm(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); empty is silent")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stdout")
	rootCmd.Flags().BoolVar(&opts.altScreen, "alt-screen", true, "Run the form in the terminal's alternate screen")
	rootCmd.Flags().DurationVar(&opts.blurDelay, "blur-delay", 0, "Delay before the suggestion list closes after leaving the languages field (e.g. 100ms)")
	rootCmd.Flags().StringVar(&opts.imageDir, "image-dir", "", "Starting directory for the image picker")
	rootCmd.Flags().BoolVar(&opts.noHelp, "no-help", false, "Hide the key binding footer")

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVocabCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads preferences, applies explicit flags on top and starts logging.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	prefs, err := config.LoadPreferences()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		prefs = config.DefaultPreferences()
	}
	merged := *prefs

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		merged.LogLevel = o.logLevel
	}
	if flags.Changed("log-file") {
		merged.LogFile = o.logFile
	}
	if flags.Changed("alt-screen") {
		merged.AltScreen = o.altScreen
	}
	if flags.Changed("blur-delay") {
		merged.BlurDelayMS = int(o.blurDelay / time.Millisecond)
	}
	if flags.Changed("image-dir") {
		merged.ImageDir = o.imageDir
	}
	if flags.Changed("no-help") {
		merged.ShowHelp = !o.noHelp
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	o.prefs = &merged

	return o.initLogging()
}

func (o *rootOptions) initLogging() error {
	level, file := o.logLevel, o.logFile
	if o.prefs != nil {
		level, file = o.prefs.LogLevel, o.prefs.LogFile
	}
	if err := logging.InitializeWithOutput(level, file); err != nil {
		return err
	}
	logging.Debug("Logging initialized")
	return nil
}
