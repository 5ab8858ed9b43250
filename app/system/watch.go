package system

import (
	"context"
	"time"

	log "github.com/go-pkgz/lgr"
)

// Prober reports the current preference, Detector does it for the OS.
type Prober interface {
	PrefersDark(ctx context.Context) bool
}

// Watcher polls a Prober and pushes changes into a Signal.
type Watcher struct {
	prober   Prober
	signal   *Signal
	interval time.Duration
}

// NewWatcher makes a watcher. Non-positive interval defaults to 5 seconds.
func NewWatcher(p Prober, sig *Signal, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Watcher{prober: p, signal: sig, interval: interval}
}

// Run polls until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) {
	log.Printf("[INFO] watching system color scheme, interval=%v", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] system color scheme watcher stopped")
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check probes once and updates the signal.
func (w *Watcher) Check(ctx context.Context) {
	dark := w.prober.PrefersDark(ctx)
	if w.signal.Update(dark) {
		log.Printf("[INFO] system color scheme changed, dark=%v", dark)
	}
}
