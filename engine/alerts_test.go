package engine

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/structureguard/structguard/model"
)

func TestCriticalAlertMessage(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sensor := model.Sensor{
		ID:        "S-005",
		Name:      "Cable Stay Tension #4",
		Value:     385,
		Threshold: 420,
		Status:    model.StatusCritical,
	}

	got := criticalAlert("A-123", sensor, now)

	if got.ID != "A-123" || got.SensorID != "S-005" {
		t.Errorf("identity fields wrong: %+v", got)
	}
	if got.Severity != model.SeverityCritical {
		t.Errorf("severity = %s, want critical", got.Severity)
	}
	if got.Acknowledged {
		t.Errorf("new alert must start unacknowledged")
	}
	// 385/420 = 91.67% rounds to 92
	if !strings.Contains(got.Message, "Cable Stay Tension #4 reading at 92%") {
		t.Errorf("message = %q, want 92%% of threshold", got.Message)
	}
	if !got.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, now)
	}
}

func TestPrependAlert(t *testing.T) {
	now := time.Now()
	var alerts []model.Alert
	for i := 0; i < 20; i++ {
		alerts = prependAlert(alerts, model.Alert{ID: alertIDForTest(i), Timestamp: now}, 15)
	}

	if len(alerts) != 15 {
		t.Fatalf("len = %d, want capped at 15", len(alerts))
	}
	if alerts[0].ID != alertIDForTest(19) {
		t.Errorf("head = %s, want newest alert at the head", alerts[0].ID)
	}
	if alerts[14].ID != alertIDForTest(5) {
		t.Errorf("tail = %s, want oldest surviving alert", alerts[14].ID)
	}
}

func alertIDForTest(i int) string {
	return fmt.Sprintf("A-%03d", i)
}

func TestFirstCritical(t *testing.T) {
	tests := []struct {
		name     string
		statuses []model.SensorStatus
		wantIdx  int // -1 = nil
	}{
		{"no critical", []model.SensorStatus{model.StatusNormal, model.StatusWarning}, -1},
		{"single critical", []model.SensorStatus{model.StatusNormal, model.StatusCritical}, 1},
		{"first of several wins", []model.SensorStatus{model.StatusCritical, model.StatusCritical}, 0},
		{"empty set", nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sensors := make([]model.Sensor, len(tt.statuses))
			for i, st := range tt.statuses {
				sensors[i] = model.Sensor{ID: strconv.Itoa(i), Status: st}
			}
			got := firstCritical(sensors)
			if tt.wantIdx < 0 {
				if got != nil {
					t.Errorf("got sensor %s, want nil", got.ID)
				}
				return
			}
			if got == nil || got.ID != strconv.Itoa(tt.wantIdx) {
				t.Errorf("got %v, want sensor at index %d", got, tt.wantIdx)
			}
		})
	}
}

func TestAcknowledge(t *testing.T) {
	base := []model.Alert{
		{ID: "A-001", Severity: model.SeverityCritical},
		{ID: "A-002", Severity: model.SeverityWarning},
	}

	t.Run("flips matching alert only", func(t *testing.T) {
		alerts := append([]model.Alert(nil), base...)
		got := acknowledge(alerts, "A-001")
		if !got[0].Acknowledged {
			t.Errorf("A-001 not acknowledged")
		}
		if got[1].Acknowledged {
			t.Errorf("A-002 flipped unexpectedly")
		}
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		alerts := append([]model.Alert(nil), base...)
		got := acknowledge(alerts, "A-999")
		if !reflect.DeepEqual(got, base) {
			t.Errorf("list changed on unknown id")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		alerts := append([]model.Alert(nil), base...)
		once := acknowledge(alerts, "A-002")
		twice := acknowledge(once, "A-002")
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("second acknowledge changed the list")
		}
	})
}
