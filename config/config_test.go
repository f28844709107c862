package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultMatchesEngineParams(t *testing.T) {
	cfg := Default()
	p := cfg.Params()
	if err := p.Validate(); err != nil {
		t.Fatalf("default config yields invalid params: %v", err)
	}
	if p.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", p.Interval)
	}
	if p.WindowLen != 24 || p.AlertEvery != 8 || p.MaxAlerts != 15 {
		t.Errorf("window/cadence/cap = %d/%d/%d, want 24/8/15", p.WindowLen, p.AlertEvery, p.MaxAlerts)
	}
	if cfg.Section != "overview" {
		t.Errorf("Section = %q, want overview", cfg.Section)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.IntervalSec = 5
	cfg.Section = "alerts"
	cfg.Seed = 42
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load()
	if got.IntervalSec != 5 || got.Section != "alerts" || got.Seed != 42 {
		t.Errorf("Load = %+v, want saved values back", got)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	got := Load()
	if got != Default() {
		t.Errorf("Load with no file = %+v, want defaults", got)
	}
}

func TestLoadMalformedFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "structguard", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	got := Load()
	if got.WindowLen != Default().WindowLen {
		t.Errorf("malformed config changed WindowLen to %d", got.WindowLen)
	}
}

func TestPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgtest")
	want := filepath.Join("/tmp/xdgtest", "structguard", "config.json")
	if got := Path(); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}
