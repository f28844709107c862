package model

import (
	"testing"
	"time"
)

func TestSensorUsage(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		threshold float64
		want      float64
	}{
		{"mid range", 200, 400, 0.5},
		{"at threshold", 420, 420, 1},
		{"zero threshold guards division", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sensor{Value: tt.value, Threshold: tt.threshold}
			if got := s.Usage(); got != tt.want {
				t.Errorf("Usage() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestSensorCloneIsDeep(t *testing.T) {
	src := Sensor{
		ID:   "S-001",
		Data: []TimeSeriesPoint{{Timestamp: time.Now(), Value: 245}},
	}
	c := src.Clone()
	c.Data[0].Value = -1
	if src.Data[0].Value == -1 {
		t.Error("Clone shares history storage with the source")
	}
}

func TestSnapshotSensorByID(t *testing.T) {
	snap := &Snapshot{Sensors: []Sensor{{ID: "S-001"}, {ID: "S-002"}}}
	if got := snap.SensorByID("S-002"); got == nil || got.ID != "S-002" {
		t.Errorf("SensorByID(S-002) = %v", got)
	}
	if got := snap.SensorByID("S-404"); got != nil {
		t.Errorf("SensorByID(S-404) = %v, want nil", got)
	}
}

func TestSnapshotCountByStatus(t *testing.T) {
	snap := &Snapshot{Sensors: []Sensor{
		{Status: StatusNormal}, {Status: StatusNormal},
		{Status: StatusWarning}, {Status: StatusCritical},
	}}
	counts := snap.CountByStatus()
	if counts[StatusNormal] != 2 || counts[StatusWarning] != 1 || counts[StatusCritical] != 1 {
		t.Errorf("CountByStatus = %v", counts)
	}
	if counts[StatusOffline] != 0 {
		t.Errorf("offline count = %d, want 0", counts[StatusOffline])
	}
}
