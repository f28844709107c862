package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/structureguard/structguard/config"
	"github.com/structureguard/structguard/engine"
	"github.com/structureguard/structguard/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Options holds CLI configuration.
type Options struct {
	Interval   time.Duration
	Seed       int64
	JSONMode   bool
	WatchMode  bool
	WatchCount int
	Section    string
	RecordPath string
	ReplayPath string
}

// validSections lists sections available for -watch and -section.
var validSections = []string{"overview", "sensors", "alerts", "analytics"}

func printUsage() {
	fmt.Fprintf(os.Stderr, `structguard v%s — Structural health monitoring console (simulated telemetry)

Usage:
  structguard [OPTIONS] [INTERVAL]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints to terminal with auto-refresh
  -json             Single JSON snapshot to stdout, then exit
  -version          Print version and exit

Options:
  -interval N       Simulation tick interval in seconds (default: 2)
  -seed N           RNG seed for a deterministic run (default: clock-derived)
  -section NAME     Section to display in -watch mode (default: overview)
                    Sections: overview, sensors, alerts, analytics
  -count N          Number of iterations for -watch mode (0 = infinite, default: 0)
  -record FILE      Run TUI while recording frames to FILE
  -replay FILE      Replay a recorded file through the TUI

Positional:
  INTERVAL          First positional arg sets interval: structguard 5 = structguard -interval 5

Examples:
  structguard                         Interactive TUI, 2s ticks
  structguard 1                       Interactive TUI, 1s ticks
  structguard -watch                  CLI mode, overview section
  structguard -watch -section alerts -count 10
  structguard -json | jq '.snapshot.asset'
  structguard -record /tmp/bridge.log
  structguard -replay /tmp/bridge.log
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var opts Options
	var intervalSec int
	var showVersion bool

	flag.IntVar(&intervalSec, "interval", cfg.IntervalSec, "Simulation tick interval in seconds")
	flag.Int64Var(&opts.Seed, "seed", cfg.Seed, "RNG seed (0 = clock-derived)")
	flag.BoolVar(&opts.JSONMode, "json", false, "Output a single JSON snapshot and exit")
	flag.BoolVar(&opts.WatchMode, "watch", false, "CLI output mode (no TUI, prints to terminal)")
	flag.IntVar(&opts.WatchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.StringVar(&opts.Section, "section", cfg.Section, "Section for -watch mode (overview,sensors,alerts,analytics)")
	flag.StringVar(&opts.RecordPath, "record", "", "Record frames to file for later replay")
	flag.StringVar(&opts.ReplayPath, "replay", "", "Replay frames from a recorded file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("structguard v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `structguard 5` = `structguard -interval 5`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalSec = n
		}
	}
	if intervalSec < 1 {
		intervalSec = 1
	}
	opts.Interval = time.Duration(intervalSec) * time.Second

	if opts.WatchMode {
		valid := false
		for _, s := range validSections {
			if opts.Section == s {
				valid = true
				break
			}
		}
		if !valid {
			fmt.Fprintf(os.Stderr, "Error: unknown section %q\n", opts.Section)
			fmt.Fprintf(os.Stderr, "Valid sections: %s\n\n", strings.Join(validSections, ", "))
			printUsage()
			os.Exit(1)
		}
	}

	// -replay mode needs no engine
	if opts.ReplayPath != "" {
		return runReplay(opts)
	}

	eng, err := engine.New(cfg.Params(), opts.Seed)
	if err != nil {
		return fmt.Errorf("seeding simulation: %w", err)
	}

	if opts.JSONMode {
		return runJSON(eng)
	}
	if opts.WatchMode {
		return runWatch(eng, opts)
	}
	if opts.RecordPath != "" {
		return runRecord(eng, opts)
	}

	m := ui.NewModel(eng, opts.Interval)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runJSON outputs a single snapshot + analysis as JSON and exits.
func runJSON(eng *engine.Engine) error {
	snap, an := eng.Tick()

	data := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
		"snapshot":  snap,
		"analysis":  an,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// runRecord runs the TUI while appending every tick to the record file.
func runRecord(eng *engine.Engine, opts Options) error {
	f, err := os.OpenFile(opts.RecordPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("opening record file: %w", err)
	}
	defer f.Close()

	rec := engine.NewRecorder(eng, f)
	m := ui.NewModel(rec, opts.Interval)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runReplay plays a recorded file through the TUI.
func runReplay(opts Options) error {
	f, err := os.Open(opts.ReplayPath)
	if err != nil {
		return fmt.Errorf("opening replay file: %w", err)
	}
	player, err := engine.NewPlayer(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("loading replay: %w", err)
	}
	if player.Len() == 0 {
		return fmt.Errorf("replay file %s contains no frames", opts.ReplayPath)
	}

	m := ui.NewModel(player, opts.Interval)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
