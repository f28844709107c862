package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/structureguard/structguard/model"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"under a minute", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"just under an hour", now.Add(-59 * time.Minute), "59m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeAgo(tt.at, now); got != tt.want {
				t.Errorf("timeAgo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResampleData(t *testing.T) {
	t.Run("shorter than width passes through", func(t *testing.T) {
		in := []float64{1, 2, 3}
		got := resampleData(in, 10)
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
	})

	t.Run("reduces to width", func(t *testing.T) {
		in := make([]float64, 24)
		for i := range in {
			in[i] = float64(i)
		}
		got := resampleData(in, 8)
		if len(got) != 8 {
			t.Fatalf("len = %d, want 8", len(got))
		}
		// Bucket means are strictly increasing for a ramp.
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Errorf("bucket %d: %g not greater than %g", i, got[i], got[i-1])
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := resampleData(nil, 8); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}

func TestSparkline(t *testing.T) {
	now := time.Now()
	data := []model.TimeSeriesPoint{
		{Timestamp: now, Value: 0},
		{Timestamp: now, Value: 50},
		{Timestamp: now, Value: 100},
	}
	got := sparkline(data, 3)
	runes := []rune(got)
	if len(runes) != 3 {
		t.Fatalf("rendered %d cells, want 3: %q", len(runes), got)
	}
	if runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("sparkline %q: expected low first cell and full last cell", got)
	}

	if sparkline(nil, 10) != "" {
		t.Error("empty data should render nothing")
	}

	// A flat series must not divide by zero.
	flat := []model.TimeSeriesPoint{{Value: 5}, {Value: 5}, {Value: 5}}
	if r := sparkline(flat, 3); len([]rune(r)) != 3 {
		t.Errorf("flat series rendered %q", r)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten.", 12, "exactly ten."},
		{"long sensor name here", 10, "long sens…"},
		{"ab", 1, "a"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestBarFill(t *testing.T) {
	tests := []struct {
		name       string
		pct        float64
		width      int
		wantFilled int
	}{
		{"empty", 0, 10, 0},
		{"half", 50, 10, 5},
		{"full", 100, 10, 10},
		{"clamped above", 150, 10, 10},
		{"clamped below", -20, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bar(tt.pct, tt.width, okStyle)
			filled := strings.Count(got, "█")
			if filled != tt.wantFilled {
				t.Errorf("bar(%g, %d) filled %d cells, want %d", tt.pct, tt.width, filled, tt.wantFilled)
			}
			if empty := strings.Count(got, "░"); filled+empty != tt.width {
				t.Errorf("bar(%g, %d) total cells %d, want %d", tt.pct, tt.width, filled+empty, tt.width)
			}
		})
	}
}

func TestRenderPagesDoNotPanic(t *testing.T) {
	now := time.Now()
	snap := &model.Snapshot{
		Timestamp: now,
		Tick:      3,
		Sensors: []model.Sensor{
			{ID: "S-001", Name: "Main Span Strain Gauge A", Type: model.TypeStrain, Status: model.StatusNormal,
				Value: 245, Unit: "μϵ", Threshold: 400, HealthScore: 92,
				Data: []model.TimeSeriesPoint{{Timestamp: now, Value: 245}}},
			{ID: "S-005", Name: "Cable Stay Tension #4", Type: model.TypeStress, Status: model.StatusCritical,
				Value: 385, Unit: "MPa", Threshold: 420, HealthScore: 34,
				Data: []model.TimeSeriesPoint{{Timestamp: now, Value: 385}}},
		},
		Alerts: []model.Alert{
			{ID: "A-001", SensorID: "S-005", Severity: model.SeverityCritical, Message: "tension approaching yield", Timestamp: now},
		},
		Asset: model.InfrastructureAsset{ID: "BR-2024-001", Name: "Riverside Highway Bridge", OverallHealth: 63, SensorCount: 2, ActiveSensors: 2, CriticalAlerts: 1},
	}
	an := &model.Analysis{
		FailureRisk: 30,
		Fatigue:     []model.FatigueEntry{{SensorID: "S-005", Pct: 96, Status: model.StatusCritical}},
	}

	pages := []struct {
		name   string
		render func() string
	}{
		{"overview", func() string { return renderOverview(snap, 120) }},
		{"sensors", func() string { return renderSensors(snap, 1, 120, 40) }},
		{"alerts", func() string { return renderAlerts(snap, 0, now) }},
		{"schematic", func() string { return renderSchematic(snap, 0) }},
		{"analytics", func() string { return renderAnalytics(snap, an) }},
	}
	for _, p := range pages {
		t.Run(p.name, func(t *testing.T) {
			if out := p.render(); out == "" {
				t.Errorf("%s page rendered empty", p.name)
			}
		})
	}
}
