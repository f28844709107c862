package engine

import (
	"math"
	"math/rand"

	"github.com/structureguard/structguard/model"
)

// Threshold-usage boundaries of the status tiers.
const (
	criticalUsage = 0.9
	warningUsage  = 0.7
)

// classifyStatus maps a reading/threshold ratio to a status tier. Offline is
// a seed-only state; the classifier never produces it.
func classifyStatus(value, threshold float64) model.SensorStatus {
	usage := value / threshold
	switch {
	case usage > criticalUsage:
		return model.StatusCritical
	case usage > warningUsage:
		return model.StatusWarning
	default:
		return model.StatusNormal
	}
}

// healthScore derives a 0-100 wellness indicator from threshold usage, with
// a small jitter band so adjacent ticks don't render identically.
func healthScore(rng *rand.Rand, usage float64, p Params) int {
	base := (1 - usage) * 100
	jitter := (rng.Float64() - 0.5) * p.JitterSpan
	return clampInt(int(math.Round(base+jitter)), 0, 100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
