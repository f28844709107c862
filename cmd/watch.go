package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/structureguard/structguard/engine"
	"github.com/structureguard/structguard/model"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	aR = "\033[0m" // reset
	aB = "\033[1m" // bold
	aD = "\033[2m" // dim

	fRed = "\033[31m"
	fGrn = "\033[32m"
	fYel = "\033[33m"
	fCyn = "\033[36m"

	clearScreen = "\033[2J\033[H"
)

func statusColor(status model.SensorStatus) string {
	switch status {
	case model.StatusCritical:
		return fRed
	case model.StatusWarning:
		return fYel
	case model.StatusOffline:
		return aD
	default:
		return fGrn
	}
}

func severityColor(sev model.AlertSeverity) string {
	switch sev {
	case model.SeverityCritical:
		return fRed
	case model.SeverityWarning:
		return fYel
	default:
		return fCyn
	}
}

// runWatch prints the chosen section on every tick until interrupted or the
// iteration count is reached.
func runWatch(eng *engine.Engine, opts Options) error {
	sched := engine.NewScheduler(eng, opts.Interval)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	iterations := 0

	sched.Start(func(snap *model.Snapshot, an *model.Analysis) {
		fmt.Print(clearScreen)
		fmt.Printf("%sstructguard%s  %s  tick %d  every %s\n\n",
			aB+fCyn, aR, snap.Timestamp.Format("15:04:05"), snap.Tick, opts.Interval)

		switch opts.Section {
		case "sensors":
			printSensors(snap)
		case "alerts":
			printAlerts(snap)
		case "analytics":
			printAnalytics(an)
		default:
			printOverview(snap)
		}

		iterations++
		if opts.WatchCount > 0 && iterations >= opts.WatchCount {
			select {
			case <-done:
			default:
				close(done)
			}
		}
	})

	select {
	case <-sig:
	case <-done:
	}
	sched.Stop()
	return nil
}

func printOverview(snap *model.Snapshot) {
	a := snap.Asset
	fmt.Printf("%s%s%s (%s)\n", aB, a.Name, aR, a.Type)
	fmt.Printf("%s%s · built %d · last inspection %s%s\n\n", aD, a.Location, a.BuiltYear, a.LastInspection, aR)

	healthCol := fGrn
	if a.OverallHealth < 40 {
		healthCol = fRed
	} else if a.OverallHealth < 70 {
		healthCol = fYel
	}
	fmt.Printf("  Overall health   %s%d/100%s\n", aB+healthCol, a.OverallHealth, aR)
	fmt.Printf("  Active sensors   %d of %d\n", a.ActiveSensors, a.SensorCount)
	critCol := fGrn
	if a.CriticalAlerts > 0 {
		critCol = fRed
	}
	fmt.Printf("  Critical alerts  %s%d unacknowledged%s\n\n", critCol, a.CriticalAlerts, aR)

	printSensors(snap)
}

func printSensors(snap *model.Snapshot) {
	fmt.Printf("  %s%-7s %-26s %-10s %14s %10s %7s%s\n", aB, "ID", "NAME", "STATUS", "VALUE", "LIMIT", "HEALTH", aR)
	for _, s := range snap.Sensors {
		fmt.Printf("  %-7s %-26s %s%-10s%s %10.2f %-3s %10.2f %6d\n",
			s.ID, clip(s.Name, 26),
			statusColor(s.Status), strings.ToUpper(s.Status.String()), aR,
			s.Value, s.Unit, s.Threshold, s.HealthScore)
	}
}

func printAlerts(snap *model.Snapshot) {
	for _, alert := range snap.Alerts {
		ack := aD + "unacked" + aR
		if alert.Acknowledged {
			ack = fGrn + "acked" + aR
		}
		fmt.Printf("  %s%-8s%s %-7s %-8s %s\n", severityColor(alert.Severity),
			strings.ToUpper(string(alert.Severity)), aR, alert.SensorID,
			ack, alert.Timestamp.Format("15:04:05"))
		fmt.Printf("    %s\n", alert.Message)
	}
	if len(snap.Alerts) == 0 {
		fmt.Printf("  %sno alerts%s\n", aD, aR)
	}
}

func printAnalytics(an *model.Analysis) {
	if an == nil {
		fmt.Printf("  %swaiting for analysis%s\n", aD, aR)
		return
	}
	riskCol := fGrn
	if an.FailureRisk > 60 {
		riskCol = fRed
	} else if an.FailureRisk > 35 {
		riskCol = fYel
	}
	fmt.Printf("  Failure risk  %s%d/100%s\n\n", aB+riskCol, an.FailureRisk, aR)

	fmt.Printf("  %sFatigue%s\n", aB, aR)
	for _, f := range an.Fatigue {
		fmt.Printf("    %-7s %s%3d%%%s\n", f.SensorID, statusColor(f.Status), f.Pct, aR)
	}

	if len(an.RemainingLife) > 0 {
		fmt.Printf("\n  %sRemaining useful life%s\n", aB, aR)
		for _, le := range an.RemainingLife {
			fmt.Printf("    %-7s %-28s ~%d days\n", le.SensorID, clip(le.Name, 28), le.RemainingDays)
		}
	}

	fmt.Printf("\n  %sRecommendations%s\n", aB, aR)
	for _, rec := range an.Recommendations {
		fmt.Printf("    %s[%s]%s %s %s(%s)%s\n", severityColor(rec.Priority),
			strings.ToUpper(string(rec.Priority)), aR, rec.Action, aD, rec.Deadline, aR)
	}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
