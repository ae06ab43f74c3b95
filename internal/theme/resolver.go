// Package theme decides the light/dark presentation. Manual modes are
// absolute; auto mode consults geolocation and a sunrise/sunset service
// when allowed, falling back to a local-hour heuristic. Environmental
// failures never surface: every path ends in a decision.
package theme

import (
	"context"
	"time"

	"bigclock/internal/config"
)

type Decision string

const (
	Light Decision = "light"
	Dark  Decision = "dark"
)

// Position is a geographic coordinate sample.
type Position struct {
	Lat float64
	Lon float64
}

// Locator produces one position sample, or nil when none is available.
// Denial, timeout, and missing capability all look the same: nil.
type Locator interface {
	Locate(ctx context.Context) *Position
}

// NightSource reports whether it is night at a position right now.
type NightSource interface {
	Night(ctx context.Context, pos Position, now time.Time) (bool, error)
}

// locateTimeout bounds the single geolocation attempt per resolve.
const locateTimeout = 6 * time.Second

type Resolver struct {
	loc Locator
	sun NightSource
	now func() time.Time
}

func NewResolver(loc Locator, sun NightSource) *Resolver {
	return &Resolver{loc: loc, sun: sun, now: time.Now}
}

// Resolve maps configuration to a decision. Manual light/dark return
// immediately with no I/O of any kind.
func (r *Resolver) Resolve(ctx context.Context, cfg config.Config) Decision {
	switch cfg.ThemeMode {
	case config.ThemeLight:
		return Light
	case config.ThemeDark:
		return Dark
	}

	var night *bool
	if cfg.UseLocationForTheme && r.loc != nil && r.sun != nil {
		lctx, cancel := context.WithTimeout(ctx, locateTimeout)
		pos := r.loc.Locate(lctx)
		cancel()
		if pos != nil {
			if n, err := r.sun.Night(ctx, *pos, r.now()); err == nil {
				night = &n
			}
		}
	}

	if night == nil {
		n := nightByHour(r.now())
		night = &n
	}

	if *night {
		return Dark
	}
	return Light
}

// nightByHour is the no-location fallback: dark from 19:00 to 07:00.
func nightByHour(t time.Time) bool {
	h := t.Hour()
	return h >= 19 || h < 7
}
