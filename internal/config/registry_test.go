package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if filepath.Base(configDir) != "langform" {
		t.Errorf("GetConfigDir() = %v, should end in 'langform'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	default:
		if configDir != filepath.Join("/tmp/xdg", "langform") {
			t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME/langform", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.BlurDelayMS != 100 {
		t.Errorf("BlurDelayMS = %v, want 100", reg.Preferences.BlurDelayMS)
	}
	if !reg.Preferences.AltScreen || !reg.Preferences.ShowHelp {
		t.Errorf("AltScreen and ShowHelp should default to true: %+v", reg.Preferences)
	}
}

func TestPreferencesBlurDelay(t *testing.T) {
	tests := []struct {
		name  string
		prefs *Preferences
		want  time.Duration
	}{
		{"nil", nil, 100 * time.Millisecond},
		{"zero", &Preferences{}, 100 * time.Millisecond},
		{"negative", &Preferences{BlurDelayMS: -5}, 100 * time.Millisecond},
		{"custom", &Preferences{BlurDelayMS: 250}, 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prefs.BlurDelay(); got != tt.want {
				t.Errorf("BlurDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreferencesValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, nil, 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name    string
		prefs   Preferences
		wantErr bool
	}{
		{"defaults", *DefaultPreferences(), false},
		{"debug level", Preferences{LogLevel: "debug"}, false},
		{"image dir", Preferences{ImageDir: dir}, false},
		{"negative delay", Preferences{BlurDelayMS: -1}, true},
		{"bad level", Preferences{LogLevel: "trace"}, true},
		{"missing image dir", Preferences{ImageDir: filepath.Join(dir, "nope")}, true},
		{"image dir is file", Preferences{ImageDir: file}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prefs.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.Preferences.BlurDelayMS = 300
	reg.Preferences.AltScreen = false
	reg.Preferences.LogLevel = "info"
	reg.Preferences.LogFile = "/tmp/langform.log"

	if err := reg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# langform Configuration File") {
		t.Errorf("saved file missing header:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after save")
	}

	loaded, err := loadRegistryFromFile(path)
	if err != nil {
		t.Fatalf("loadRegistryFromFile() error = %v", err)
	}
	if diff := cmp.Diff(reg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoadRegistryFromFile(t *testing.T) {
	dir := t.TempDir()

	write := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(dir, t.Name()+".yaml")
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("missing file gives defaults", func(t *testing.T) {
		reg, err := loadRegistryFromFile(filepath.Join(dir, "absent.yaml"))
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if diff := cmp.Diff(NewRegistry(), reg); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("partial preferences keep defaults", func(t *testing.T) {
		path := write(t, "version: 1\npreferences:\n  blur_delay_ms: 40\n")
		reg, err := loadRegistryFromFile(path)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if reg.Preferences.BlurDelayMS != 40 {
			t.Errorf("BlurDelayMS = %d, want 40", reg.Preferences.BlurDelayMS)
		}
		if !reg.Preferences.ShowHelp {
			t.Error("ShowHelp lost its default")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := write(t, "version: 2\n")
		if _, err := loadRegistryFromFile(path); err == nil {
			t.Error("expected version error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := write(t, "version: [1\n")
		if _, err := loadRegistryFromFile(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid preference", func(t *testing.T) {
		path := write(t, "version: 1\npreferences:\n  log_level: loud\n")
		if _, err := loadRegistryFromFile(path); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestCreateDefaultConfig(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := CreateDefaultConfig(false); err == nil {
		t.Error("second CreateDefaultConfig(false) should refuse to overwrite")
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("CreateDefaultConfig(true) error = %v", err)
	}

	reg, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
	if diff := cmp.Diff(NewRegistry(), reg); diff != "" {
		t.Errorf("reloaded registry mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
