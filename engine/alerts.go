package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/structureguard/structguard/model"
)

// criticalAlert synthesizes the alert raised for a sensor in critical state.
func criticalAlert(id string, sensor model.Sensor, now time.Time) model.Alert {
	pct := int(math.Round(sensor.Value / sensor.Threshold * 100))
	return model.Alert{
		ID:       id,
		SensorID: sensor.ID,
		Severity: model.SeverityCritical,
		Message: fmt.Sprintf("%s reading at %d%% of safety threshold — immediate attention required",
			sensor.Name, pct),
		Timestamp: now,
	}
}

// prependAlert inserts newest-first and evicts the oldest past max.
func prependAlert(alerts []model.Alert, alert model.Alert, max int) []model.Alert {
	out := make([]model.Alert, 0, len(alerts)+1)
	out = append(out, alert)
	out = append(out, alerts...)
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// firstCritical returns the first sensor in iteration order currently in
// critical state, or nil. There is deliberately no rotation or per-sensor
// cooldown: a sensor that stays critical keeps alerting.
func firstCritical(sensors []model.Sensor) *model.Sensor {
	for i := range sensors {
		if sensors[i].Status == model.StatusCritical {
			return &sensors[i]
		}
	}
	return nil
}

// acknowledge flips the matching alert to acknowledged. Unknown ids are a
// no-op; the flip is one-way and idempotent.
func acknowledge(alerts []model.Alert, id string) []model.Alert {
	for i := range alerts {
		if alerts[i].ID == id {
			alerts[i].Acknowledged = true
			break
		}
	}
	return alerts
}
