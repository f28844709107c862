package model

import "time"

// AlertSeverity ranks an alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

func (s AlertSeverity) String() string {
	return string(s)
}

// Alert is a synthetic notification tied to a sensor. SensorID is not
// enforced as a foreign key: an alert may outlive the sensor it references.
// Acknowledged flips to true exactly once; there is no unacknowledge.
type Alert struct {
	ID           string        `json:"id"`
	SensorID     string        `json:"sensor_id"`
	Severity     AlertSeverity `json:"severity"`
	Message      string        `json:"message"`
	Timestamp    time.Time     `json:"timestamp"`
	Acknowledged bool          `json:"acknowledged"`
}
