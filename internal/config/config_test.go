package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Search.MaxDepth <= 0 {
		t.Error("expected a positive MaxDepth")
	}
	if cfg.Search.MinDepth != 6 {
		t.Errorf("MinDepth = %d, want 6", cfg.Search.MinDepth)
	}
	if cfg.Search.MaxTimeSeconds != 5 {
		t.Errorf("MaxTimeSeconds = %d, want 5", cfg.Search.MaxTimeSeconds)
	}
	if !cfg.Search.UseOpeningBook || !cfg.Search.UseTablebase {
		t.Error("expected book and tablebase enabled by default")
	}
	if cfg.Search.MaxTime().Seconds() != 5 {
		t.Errorf("MaxTime() = %v, want 5s", cfg.Search.MaxTime())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if cfg != Default() {
		t.Error("expected defaults when the config file does not exist")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg := Load("")
	if cfg != Default() {
		t.Error("expected defaults when no path is given")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[search]
max_depth = 12
use_opening_book = false
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg := Load(path)
	if cfg.Search.MaxDepth != 12 {
		t.Errorf("MaxDepth = %d, want 12", cfg.Search.MaxDepth)
	}
	if cfg.Search.UseOpeningBook {
		t.Error("expected use_opening_book to be overridden to false")
	}
	if cfg.Search.MinDepth != Default().Search.MinDepth {
		t.Errorf("MinDepth should keep its default when not set in file, got %d", cfg.Search.MinDepth)
	}
}
