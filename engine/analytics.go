package engine

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/structureguard/structguard/model"
)

// analyze derives the predictive view of the current sensor set: fatigue
// accumulation per sensor, an aggregate failure-risk score, remaining-life
// projections for degraded sensors, and maintenance recommendations. The
// projections are synthetic (bounded noise over the usage ratio), like the
// rest of the simulation.
func analyze(rng *rand.Rand, sensors []model.Sensor) *model.Analysis {
	an := &model.Analysis{}

	var criticalNames, warningNames []string
	for _, s := range sensors {
		usage := s.Usage()
		fatigue := int(math.Round(usage * 100 * (1 + rng.Float64()*0.2)))
		if fatigue > 100 {
			fatigue = 100
		}
		an.Fatigue = append(an.Fatigue, model.FatigueEntry{
			SensorID: s.ID,
			Pct:      fatigue,
			Status:   s.Status,
		})

		switch s.Status {
		case model.StatusCritical:
			criticalNames = append(criticalNames, s.Name)
		case model.StatusWarning:
			warningNames = append(warningNames, s.Name)
		}

		if s.Status != model.StatusNormal && s.Status != model.StatusOffline {
			days := int(math.Round((1 - usage) * 365 * (0.8 + rng.Float64()*0.4)))
			if days < 1 {
				days = 1
			}
			an.RemainingLife = append(an.RemainingLife, model.LifeEstimate{
				SensorID:      s.ID,
				Name:          s.Name,
				RemainingDays: days,
			})
		}
	}

	sort.Slice(an.RemainingLife, func(i, j int) bool {
		return an.RemainingLife[i].RemainingDays < an.RemainingLife[j].RemainingDays
	})

	risk := float64(len(criticalNames))*25 + float64(len(warningNames))*10 + rng.Float64()*5
	an.FailureRisk = int(math.Min(math.Round(risk), 100))

	if len(criticalNames) > 0 {
		an.Recommendations = append(an.Recommendations, model.Recommendation{
			Priority: model.SeverityCritical,
			Action:   "Immediate inspection of " + strings.Join(criticalNames, ", "),
			Deadline: "Within 24 hours",
		})
	}
	if len(warningNames) > 0 {
		an.Recommendations = append(an.Recommendations, model.Recommendation{
			Priority: model.SeverityWarning,
			Action:   "Schedule maintenance for " + strings.Join(warningNames, ", "),
			Deadline: "Within 7 days",
		})
	}
	an.Recommendations = append(an.Recommendations,
		model.Recommendation{Priority: model.SeverityInfo, Action: "Full structural assessment recommended", Deadline: "Within 30 days"},
		model.Recommendation{Priority: model.SeverityInfo, Action: "Sensor calibration check for all strain gauges", Deadline: "Within 14 days"},
	)

	return an
}
