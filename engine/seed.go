package engine

import (
	"math/rand"
	"time"

	"github.com/structureguard/structguard/model"
)

// sensorSeed describes one fixture sensor plus its synthetic-history shape.
type sensorSeed struct {
	sensor   model.Sensor
	base     float64 // history base value
	variance float64 // history noise amplitude
	trend    float64 // linear rise across the window
}

func sensorSeeds() []sensorSeed {
	return []sensorSeed{
		{model.Sensor{ID: "S-001", Name: "Main Span Strain Gauge A", Type: model.TypeStrain, Location: "Span 1 - Midpoint", Status: model.StatusNormal, Value: 245, Unit: "μϵ", Threshold: 400, HealthScore: 92}, 245, 30, 0},
		{model.Sensor{ID: "S-002", Name: "Main Span Strain Gauge B", Type: model.TypeStrain, Location: "Span 1 - Quarter", Status: model.StatusNormal, Value: 198, Unit: "μϵ", Threshold: 400, HealthScore: 96}, 198, 20, 0},
		{model.Sensor{ID: "S-003", Name: "Pier 2 Accelerometer", Type: model.TypeVibration, Location: "Pier 2 - Base", Status: model.StatusWarning, Value: 3.8, Unit: "mm/s²", Threshold: 5.0, HealthScore: 68}, 3.2, 0.8, 1.2},
		{model.Sensor{ID: "S-004", Name: "Deck Temperature Sensor", Type: model.TypeTemperature, Location: "Deck - Center", Status: model.StatusNormal, Value: 28.3, Unit: "°C", Threshold: 55, HealthScore: 98}, 27, 3, 0},
		{model.Sensor{ID: "S-005", Name: "Cable Stay Tension #4", Type: model.TypeStress, Location: "Cable 4 - Anchor", Status: model.StatusCritical, Value: 385, Unit: "MPa", Threshold: 420, HealthScore: 34}, 340, 20, 50},
		{model.Sensor{ID: "S-006", Name: "Foundation Tilt Sensor", Type: model.TypeDisplacement, Location: "Foundation N", Status: model.StatusNormal, Value: 0.02, Unit: "°", Threshold: 0.5, HealthScore: 95}, 0.02, 0.005, 0},
		{model.Sensor{ID: "S-007", Name: "Bearing Displacement X", Type: model.TypeDisplacement, Location: "Bearing 1 - East", Status: model.StatusWarning, Value: 12.4, Unit: "mm", Threshold: 18, HealthScore: 55}, 10, 2, 4},
		{model.Sensor{ID: "S-008", Name: "Pier 1 Crack Gauge", Type: model.TypeStrain, Location: "Pier 1 - South Face", Status: model.StatusNormal, Value: 0.12, Unit: "mm", Threshold: 1.0, HealthScore: 88}, 0.11, 0.02, 0},
	}
}

// synthHistory generates a window of hourly readings ending at now: base
// value plus uniform noise plus an optional linear trend across the window.
func synthHistory(rng *rand.Rand, now time.Time, points int, base, variance, trend float64) []model.TimeSeriesPoint {
	if points < 1 {
		points = 1
	}
	out := make([]model.TimeSeriesPoint, 0, points)
	for i := points - 1; i >= 0; i-- {
		noise := (rng.Float64() - 0.5) * variance
		progress := float64(points-1-i) / float64(max(points-1, 1))
		out = append(out, model.TimeSeriesPoint{
			Timestamp: now.Add(-time.Duration(i) * time.Hour),
			Value:     round2(base + noise + trend*progress),
		})
	}
	return out
}

// seedSensors builds the fixture sensor set with pre-populated histories.
func seedSensors(rng *rand.Rand, now time.Time, windowLen int) []model.Sensor {
	seeds := sensorSeeds()
	sensors := make([]model.Sensor, 0, len(seeds))
	for _, s := range seeds {
		sensor := s.sensor
		sensor.Data = synthHistory(rng, now, windowLen, s.base, s.variance, s.trend)
		sensors = append(sensors, sensor)
	}
	return sensors
}

// seedAlerts builds the fixture alert backlog, newest first.
func seedAlerts(now time.Time) []model.Alert {
	return []model.Alert{
		{ID: "A-001", SensorID: "S-005", Severity: model.SeverityCritical, Message: "Cable Stay #4 tension approaching yield threshold — 91.7% of limit", Timestamp: now.Add(-5 * time.Minute)},
		{ID: "A-002", SensorID: "S-003", Severity: model.SeverityWarning, Message: "Pier 2 vibration amplitude trending upward over 6h", Timestamp: now.Add(-30 * time.Minute)},
		{ID: "A-003", SensorID: "S-007", Severity: model.SeverityWarning, Message: "Bearing displacement exceeding normal range — inspect recommended", Timestamp: now.Add(-time.Hour), Acknowledged: true},
		{ID: "A-004", SensorID: "S-001", Severity: model.SeverityInfo, Message: "Routine calibration check completed for Main Span Gauge A", Timestamp: now.Add(-2 * time.Hour), Acknowledged: true},
		{ID: "A-005", SensorID: "S-005", Severity: model.SeverityCritical, Message: "Rate of tension increase exceeds safe threshold — immediate review required", Timestamp: now.Add(-15 * time.Minute)},
	}
}

// seedAsset returns the monitored structure's static identity. Derived
// summary fields are filled by the first rollup.
func seedAsset() model.InfrastructureAsset {
	return model.InfrastructureAsset{
		ID:             "BR-2024-001",
		Name:           "Riverside Highway Bridge",
		Type:           "Suspension Bridge",
		Location:       "Highway 101, Riverside County",
		BuiltYear:      1998,
		LastInspection: "2024-11-15",
	}
}
