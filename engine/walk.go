package engine

import (
	"math"
	"math/rand"

	"github.com/structureguard/structguard/model"
)

// round2 rounds to two decimal places, matching the display precision of
// every sensor unit in the fixture set.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// nextValue advances one sensor reading by a biased random walk. Volatility
// and drift scale with the threshold and sharpen as the status degrades, so a
// critical sensor wanders more and climbs faster than a healthy one.
func nextValue(rng *rand.Rand, current, threshold float64, status model.SensorStatus, p Params) float64 {
	noise := (rng.Float64() - p.NoiseCenter) * threshold * p.volatility(status)
	drift := p.drift(status) * threshold
	return round2(current + noise + drift)
}
