package model

// InfrastructureAsset is the monitored structure plus its rolled-up summary.
// ID through LastInspection are fixed seed data; OverallHealth, SensorCount,
// ActiveSensors, and CriticalAlerts are recomputed from the current sensor
// and alert sets after every observable state change, never stored
// authoritatively.
type InfrastructureAsset struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Location       string `json:"location"`
	BuiltYear      int    `json:"built_year"`
	LastInspection string `json:"last_inspection"`
	OverallHealth  int    `json:"overall_health"`
	SensorCount    int    `json:"sensor_count"`
	ActiveSensors  int    `json:"active_sensors"`
	CriticalAlerts int    `json:"critical_alerts"`
}
