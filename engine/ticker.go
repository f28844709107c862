package engine

import "github.com/structureguard/structguard/model"

// Ticker abstracts a data source that can produce snapshots: the live
// engine, a recording engine, or a replay player.
type Ticker interface {
	Tick() (*model.Snapshot, *model.Analysis)
	// Base returns the underlying live engine, or nil for replay sources
	// where actions like Acknowledge have no target.
	Base() *Engine
}
