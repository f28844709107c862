package model

// FatigueEntry is one sensor's estimated fatigue accumulation (0-100).
type FatigueEntry struct {
	SensorID string       `json:"sensor_id"`
	Pct      int          `json:"pct"`
	Status   SensorStatus `json:"status"`
}

// LifeEstimate is a remaining-useful-life projection for a degraded sensor.
type LifeEstimate struct {
	SensorID      string `json:"sensor_id"`
	Name          string `json:"name"`
	RemainingDays int    `json:"remaining_days"`
}

// Recommendation is a suggested maintenance action.
type Recommendation struct {
	Priority AlertSeverity `json:"priority"`
	Action   string        `json:"action"`
	Deadline string        `json:"deadline"`
}

// Analysis is the predictive output computed alongside each snapshot.
type Analysis struct {
	FailureRisk     int              `json:"failure_risk"`
	Fatigue         []FatigueEntry   `json:"fatigue"`
	RemainingLife   []LifeEstimate   `json:"remaining_life"`
	Recommendations []Recommendation `json:"recommendations"`
}
