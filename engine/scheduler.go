package engine

import (
	"sync"
	"time"

	"github.com/structureguard/structguard/model"
)

// Scheduler drives a Ticker on a fixed period for headless modes (the TUI
// schedules its own ticks through bubbletea). Stop disarms the timer and
// guarantees no further tick runs, including a firing already queued when
// Stop was called.
type Scheduler struct {
	ticker   Ticker
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(t Ticker, interval time.Duration) *Scheduler {
	return &Scheduler{
		ticker:   t,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start fires fn once immediately and then once per interval in a background
// goroutine. Ticks are strictly sequential: the next one cannot begin before
// fn returns.
func (s *Scheduler) Start(fn func(*model.Snapshot, *model.Analysis)) {
	go func() {
		defer close(s.done)

		fn(s.ticker.Tick())

		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-t.C:
				// A firing may already be queued when Stop lands;
				// re-check before mutating.
				select {
				case <-s.stop:
					return
				default:
				}
				fn(s.ticker.Tick())
			}
		}
	}()
}

// Stop disarms the scheduler and blocks until the loop has exited. Safe to
// call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}
