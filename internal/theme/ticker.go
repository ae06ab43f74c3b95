package theme

import (
	"context"
	"sync"
	"time"

	"bigclock/internal/config"
)

// ReevalInterval is the cadence of the auto-theme control loop.
const ReevalInterval = 5 * time.Minute

// LoadFunc re-reads the current configuration; each firing consults it
// fresh rather than acting on a snapshot.
type LoadFunc func() (config.Config, error)

// ApplyFunc receives each newly resolved decision.
type ApplyFunc func(Decision)

// Ticker periodically re-evaluates the theme while the mode is auto.
// Manual light/dark modes are static and never touched by the timer.
type Ticker struct {
	stop chan struct{}
	once sync.Once
}

func StartTicker(interval time.Duration, load LoadFunc, resolver *Resolver, apply ApplyFunc) *Ticker {
	t := &Ticker{stop: make(chan struct{})}
	go t.run(interval, load, resolver, apply)
	return t
}

func (t *Ticker) run(interval time.Duration, load LoadFunc, resolver *Resolver, apply ApplyFunc) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-tick.C:
			cfg, err := load()
			if err != nil {
				continue
			}
			if cfg.ThemeMode != config.ThemeAuto {
				continue
			}
			apply(resolver.Resolve(context.Background(), cfg))
		}
	}
}

// Stop halts re-evaluation. Idempotent.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
}
