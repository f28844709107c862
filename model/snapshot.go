package model

import "time"

// Snapshot is the immutable point-in-time state handed to consumers after a
// tick. Slices are deep copies; presentation code may hold a snapshot across
// ticks without observing later mutation.
type Snapshot struct {
	Timestamp time.Time           `json:"timestamp"`
	Tick      uint64              `json:"tick"`
	Sensors   []Sensor            `json:"sensors"`
	Alerts    []Alert             `json:"alerts"`
	Asset     InfrastructureAsset `json:"asset"`
}

// SensorByID returns the sensor with the given id, or nil.
func (s *Snapshot) SensorByID(id string) *Sensor {
	for i := range s.Sensors {
		if s.Sensors[i].ID == id {
			return &s.Sensors[i]
		}
	}
	return nil
}

// CountByStatus tallies sensors per status tier.
func (s *Snapshot) CountByStatus() map[SensorStatus]int {
	counts := make(map[SensorStatus]int, 4)
	for _, sn := range s.Sensors {
		counts[sn.Status]++
	}
	return counts
}
