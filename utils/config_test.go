package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Width <= 0 || config.Height <= 0 {
		t.Errorf("default dimensions must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.RandomDensity < 0 || config.RandomDensity > 1 {
		t.Errorf("default density out of range: %v", config.RandomDensity)
	}
	if config.StagnationThreshold <= 0 {
		t.Errorf("default stagnation threshold must be positive, got %d", config.StagnationThreshold)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 12, "height": 8}`), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Width != 12 || config.Height != 8 {
		t.Errorf("expected 12x8, got %dx%d", config.Width, config.Height)
	}
	// Fields absent from the file keep their defaults
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Error("missing fields should keep defaults")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
	if config.Width != DefaultConfig().Width {
		t.Error("expected defaults back on error")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}
