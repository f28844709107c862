package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/structureguard/structguard/model"
)

// Engine owns the whole simulation state: the sensor set, the alert list,
// the static asset identity, and the tick counter. All mutation funnels
// through Tick and Acknowledge under one mutex, and every value leaving the
// engine is a deep-copied snapshot, so consumers never observe a partially
// applied tick.
type Engine struct {
	params Params
	rng    *rand.Rand
	now    func() time.Time

	mu         sync.Mutex
	sensors    []model.Sensor
	alerts     []model.Alert
	assetSeed  model.InfrastructureAsset
	tick       uint64
	lastUpdate time.Time

	lastAlertID string
	alertDup    int
}

// New creates an engine seeded with the bridge fixtures. A zero rngSeed
// derives one from the clock; any other value makes the run deterministic.
func New(params Params, rngSeed int64) (*Engine, error) {
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))
	now := time.Now()
	return NewWithState(params, rng, seedSensors(rng, now, params.WindowLen), seedAlerts(now), seedAsset())
}

// NewWithState creates an engine over caller-supplied fixtures. Thresholds
// are validated here: a zero or negative threshold would poison every
// derived ratio downstream, so it is rejected as a configuration error.
func NewWithState(params Params, rng *rand.Rand, sensors []model.Sensor, alerts []model.Alert, asset model.InfrastructureAsset) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	for _, s := range sensors {
		if s.Threshold <= 0 {
			return nil, fmt.Errorf("sensor %s: threshold must be positive, got %g", s.ID, s.Threshold)
		}
	}

	e := &Engine{
		params:    params,
		rng:       rng,
		now:       time.Now,
		sensors:   make([]model.Sensor, 0, len(sensors)),
		alerts:    make([]model.Alert, len(alerts)),
		assetSeed: asset,
	}
	for _, s := range sensors {
		e.sensors = append(e.sensors, s.Clone())
	}
	copy(e.alerts, alerts)
	e.lastUpdate = e.now()
	return e, nil
}

// Params returns the engine's simulation coefficients.
func (e *Engine) Params() Params {
	return e.params
}

// Tick advances the simulation one step: every sensor gets a new value,
// status, health score, and history point; every AlertEvery-th tick the
// alert generator inspects the post-update set; the asset rollup is
// recomputed last. Returns the resulting snapshot and analysis.
func (e *Engine) Tick() (*model.Snapshot, *model.Analysis) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tick++
	now := e.now()

	for i := range e.sensors {
		s := &e.sensors[i]
		value := nextValue(e.rng, s.Value, s.Threshold, s.Status, e.params)
		s.Value = value
		s.Status = classifyStatus(value, s.Threshold)
		s.HealthScore = healthScore(e.rng, value/s.Threshold, e.params)
		s.Data = appendPoint(s.Data, model.TimeSeriesPoint{Timestamp: now, Value: value}, e.params.WindowLen)
	}

	if e.tick%e.params.AlertEvery == 0 {
		if crit := firstCritical(e.sensors); crit != nil {
			alert := criticalAlert(e.nextAlertID(now), *crit, now)
			e.alerts = prependAlert(e.alerts, alert, e.params.MaxAlerts)
		}
	}

	e.lastUpdate = now
	return e.snapshotLocked(), analyze(e.rng, e.sensors)
}

// Acknowledge flips one alert to acknowledged and returns the refreshed
// snapshot. Unknown ids leave the state untouched.
func (e *Engine) Acknowledge(alertID string) *model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.alerts = acknowledge(e.alerts, alertID)
	return e.snapshotLocked()
}

// Snapshot returns the current state without advancing the simulation.
func (e *Engine) Snapshot() *model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// LastUpdate reports when the most recent tick completed.
func (e *Engine) LastUpdate() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastUpdate
}

// Base returns itself for the default engine ticker.
func (e *Engine) Base() *Engine {
	return e
}

// nextAlertID derives a unique time-based token. Two alerts landing in the
// same millisecond get a monotonic suffix.
func (e *Engine) nextAlertID(now time.Time) string {
	id := fmt.Sprintf("A-%d", now.UnixMilli())
	if id == e.lastAlertID {
		e.alertDup++
		return fmt.Sprintf("%s-%d", id, e.alertDup)
	}
	e.lastAlertID = id
	e.alertDup = 0
	return id
}

func (e *Engine) snapshotLocked() *model.Snapshot {
	snap := &model.Snapshot{
		Timestamp: e.lastUpdate,
		Tick:      e.tick,
		Sensors:   make([]model.Sensor, 0, len(e.sensors)),
		Alerts:    make([]model.Alert, len(e.alerts)),
	}
	for _, s := range e.sensors {
		snap.Sensors = append(snap.Sensors, s.Clone())
	}
	copy(snap.Alerts, e.alerts)
	snap.Asset = rollupAsset(e.assetSeed, e.sensors, e.alerts)
	return snap
}
