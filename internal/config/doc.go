// Package config provides user preference management for langform.
//
// Preferences live in a YAML file at the platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/langform/config.yaml or $HOME/.config/langform/config.yaml
//   - macOS: $HOME/.config/langform/config.yaml
//   - Windows: %LOCALAPPDATA%\langform\config.yaml
//
// A missing file is not an error; defaults are used. Keys absent from the
// file keep their default values.
//
// # Usage Example
//
//	prefs, err := config.LoadPreferences()
//	if err != nil {
//	    return err
//	}
//	delay := prefs.BlurDelay()
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File writes are serialized by a mutex and performed atomically.
package config
