package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/structureguard/structguard/engine"
)

// Config holds user-configurable defaults for the dashboard and the
// simulation coefficients.
type Config struct {
	IntervalSec int    `json:"interval_sec"`
	Section     string `json:"default_section"`
	Seed        int64  `json:"seed"`

	WindowLen  int    `json:"window_len"`
	AlertEvery uint64 `json:"alert_every"`
	MaxAlerts  int    `json:"max_alerts"`

	NoiseCenter        float64 `json:"noise_center"`
	JitterSpan         float64 `json:"jitter_span"`
	VolatilityNormal   float64 `json:"volatility_normal"`
	VolatilityWarning  float64 `json:"volatility_warning"`
	VolatilityCritical float64 `json:"volatility_critical"`
	DriftWarning       float64 `json:"drift_warning"`
	DriftCritical      float64 `json:"drift_critical"`
}

// Default returns a config mirroring the reference simulation behavior.
func Default() Config {
	p := engine.DefaultParams()
	return Config{
		IntervalSec:        int(p.Interval / time.Second),
		Section:            "overview",
		WindowLen:          p.WindowLen,
		AlertEvery:         p.AlertEvery,
		MaxAlerts:          p.MaxAlerts,
		NoiseCenter:        p.NoiseCenter,
		JitterSpan:         p.JitterSpan,
		VolatilityNormal:   p.VolatilityNormal,
		VolatilityWarning:  p.VolatilityWarning,
		VolatilityCritical: p.VolatilityCritical,
		DriftWarning:       p.DriftWarning,
		DriftCritical:      p.DriftCritical,
	}
}

// Params converts the config into engine parameters.
func (c Config) Params() engine.Params {
	return engine.Params{
		Interval:           time.Duration(c.IntervalSec) * time.Second,
		WindowLen:          c.WindowLen,
		AlertEvery:         c.AlertEvery,
		MaxAlerts:          c.MaxAlerts,
		NoiseCenter:        c.NoiseCenter,
		JitterSpan:         c.JitterSpan,
		VolatilityNormal:   c.VolatilityNormal,
		VolatilityWarning:  c.VolatilityWarning,
		VolatilityCritical: c.VolatilityCritical,
		DriftWarning:       c.DriftWarning,
		DriftCritical:      c.DriftCritical,
	}
}

// Path returns ~/.config/structguard/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "structguard", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("structguard: warning: config parse error: %v", err)
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
