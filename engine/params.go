package engine

import (
	"fmt"
	"time"

	"github.com/structureguard/structguard/model"
)

// Params holds every tunable coefficient of the simulation. The zero value is
// not usable; start from DefaultParams.
type Params struct {
	// Interval between ticks.
	Interval time.Duration

	// WindowLen caps each sensor's rolling history.
	WindowLen int

	// AlertEvery is the tick cadence of the alert generator.
	AlertEvery uint64

	// MaxAlerts caps the alert list; oldest entries are evicted.
	MaxAlerts int

	// NoiseCenter shifts the uniform noise term off 0.5 so that degraded
	// sensors trend worse over time.
	NoiseCenter float64

	// JitterSpan is the width of the health-score jitter band.
	JitterSpan float64

	// Volatility of the random walk, as a fraction of threshold, per status.
	VolatilityNormal   float64
	VolatilityWarning  float64
	VolatilityCritical float64

	// Constant upward drift, as a fraction of threshold, per status.
	DriftWarning  float64
	DriftCritical float64
}

// DefaultParams returns the reference simulation coefficients.
func DefaultParams() Params {
	return Params{
		Interval:           2 * time.Second,
		WindowLen:          24,
		AlertEvery:         8,
		MaxAlerts:          15,
		NoiseCenter:        0.48,
		JitterSpan:         5,
		VolatilityNormal:   0.01,
		VolatilityWarning:  0.02,
		VolatilityCritical: 0.03,
		DriftWarning:       0.001,
		DriftCritical:      0.002,
	}
}

// Validate rejects parameter sets the pipeline cannot run with.
func (p Params) Validate() error {
	if p.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", p.Interval)
	}
	if p.WindowLen < 1 {
		return fmt.Errorf("window length must be at least 1, got %d", p.WindowLen)
	}
	if p.AlertEvery == 0 {
		return fmt.Errorf("alert cadence must be at least 1 tick")
	}
	if p.MaxAlerts < 1 {
		return fmt.Errorf("alert cap must be at least 1, got %d", p.MaxAlerts)
	}
	return nil
}

// volatility returns the walk volatility coefficient for a status tier.
func (p Params) volatility(status model.SensorStatus) float64 {
	switch status {
	case model.StatusCritical:
		return p.VolatilityCritical
	case model.StatusWarning:
		return p.VolatilityWarning
	default:
		return p.VolatilityNormal
	}
}

// drift returns the upward drift coefficient for a status tier.
func (p Params) drift(status model.SensorStatus) float64 {
	switch status {
	case model.StatusCritical:
		return p.DriftCritical
	case model.StatusWarning:
		return p.DriftWarning
	default:
		return 0
	}
}
