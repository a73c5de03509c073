package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/muurk/langform/internal/tagedit"
)

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
// Command-line flags take precedence over these values.
type Preferences struct {
	BlurDelayMS int    `yaml:"blur_delay_ms"`       // Suggestion list dismissal delay after the languages field loses focus
	AltScreen   bool   `yaml:"alt_screen"`          // Run the form in the terminal's alternate screen
	LogLevel    string `yaml:"log_level,omitempty"` // debug, info, warn, error; empty is silent
	LogFile     string `yaml:"log_file,omitempty"`  // Log destination for interactive sessions
	ImageDir    string `yaml:"image_dir,omitempty"` // Starting directory for the image picker
	ShowHelp    bool   `yaml:"show_help"`           // Show the key binding footer
}

// DefaultBlurDelayMS mirrors tagedit.DefaultBlurDelay in milliseconds.
var DefaultBlurDelayMS = int(tagedit.DefaultBlurDelay / time.Millisecond)

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Preferences: DefaultPreferences(),
	}
}

// DefaultPreferences returns the preferences used when none are stored.
func DefaultPreferences() *Preferences {
	return &Preferences{
		BlurDelayMS: DefaultBlurDelayMS,
		AltScreen:   true,
		ShowHelp:    true,
	}
}

// BlurDelay returns the dismissal delay as a duration.
// Non-positive values fall back to the default.
func (p *Preferences) BlurDelay() time.Duration {
	if p == nil || p.BlurDelayMS <= 0 {
		return tagedit.DefaultBlurDelay
	}
	return time.Duration(p.BlurDelayMS) * time.Millisecond
}

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks preference values that would otherwise fail later at startup.
func (p *Preferences) Validate() error {
	if p.BlurDelayMS < 0 {
		return fmt.Errorf("blur_delay_ms must not be negative (got %d)", p.BlurDelayMS)
	}
	if p.LogLevel != "" && !slices.Contains(LogLevels, p.LogLevel) {
		return fmt.Errorf("unknown log_level %q (expected one of %v)", p.LogLevel, LogLevels)
	}
	if p.ImageDir != "" {
		info, err := os.Stat(p.ImageDir)
		if err != nil {
			return fmt.Errorf("image_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("image_dir %s is not a directory", p.ImageDir)
		}
	}
	return nil
}
