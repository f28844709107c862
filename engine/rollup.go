package engine

import (
	"math"

	"github.com/structureguard/structguard/model"
)

// rollupAsset recomputes the infrastructure summary from the current sensor
// and alert sets. Pure: static fields are copied from the seed asset and the
// derived fields depend only on the inputs. An empty sensor set yields an
// overall health of 0.
func rollupAsset(seed model.InfrastructureAsset, sensors []model.Sensor, alerts []model.Alert) model.InfrastructureAsset {
	asset := seed

	asset.SensorCount = len(sensors)

	if len(sensors) > 0 {
		sum := 0
		for _, s := range sensors {
			sum += s.HealthScore
		}
		asset.OverallHealth = int(math.Round(float64(sum) / float64(len(sensors))))
	} else {
		asset.OverallHealth = 0
	}

	active := 0
	for _, s := range sensors {
		if s.Status != model.StatusOffline {
			active++
		}
	}
	asset.ActiveSensors = active

	crit := 0
	for _, a := range alerts {
		if a.Severity == model.SeverityCritical && !a.Acknowledged {
			crit++
		}
	}
	asset.CriticalAlerts = crit

	return asset
}
