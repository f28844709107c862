package model

import "time"

// SensorType identifies the physical quantity a sensor measures.
type SensorType string

const (
	TypeStrain       SensorType = "strain"
	TypeStress       SensorType = "stress"
	TypeVibration    SensorType = "vibration"
	TypeTemperature  SensorType = "temperature"
	TypeDisplacement SensorType = "displacement"
)

// SensorStatus is the discrete classification of a reading against its threshold.
type SensorStatus string

const (
	StatusNormal   SensorStatus = "normal"
	StatusWarning  SensorStatus = "warning"
	StatusCritical SensorStatus = "critical"
	StatusOffline  SensorStatus = "offline"
)

func (s SensorStatus) String() string {
	return string(s)
}

// TimeSeriesPoint is one historical reading.
type TimeSeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Sensor is a monitored structural measurement point.
// Value, Status, HealthScore, and Data are rewritten every simulation tick;
// the remaining fields are fixed seed metadata.
type Sensor struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        SensorType        `json:"type"`
	Location    string            `json:"location"`
	Status      SensorStatus      `json:"status"`
	Value       float64           `json:"value"`
	Unit        string            `json:"unit"`
	Threshold   float64           `json:"threshold"`
	HealthScore int               `json:"health_score"`
	Data        []TimeSeriesPoint `json:"data"`
}

// Usage returns the reading as a fraction of the safety threshold.
func (s Sensor) Usage() float64 {
	if s.Threshold == 0 {
		return 0
	}
	return s.Value / s.Threshold
}

// Clone returns a deep copy (the history slice is the only reference field).
func (s Sensor) Clone() Sensor {
	c := s
	c.Data = make([]TimeSeriesPoint, len(s.Data))
	copy(c.Data, s.Data)
	return c
}
