package theme

import (
	"context"
	"errors"
	"testing"
	"time"

	"bigclock/internal/config"
)

type fakeLocator struct {
	pos   *Position
	calls int
}

func (f *fakeLocator) Locate(ctx context.Context) *Position {
	f.calls++
	return f.pos
}

type fakeSun struct {
	night bool
	err   error
	calls int
}

func (f *fakeSun) Night(ctx context.Context, pos Position, now time.Time) (bool, error) {
	f.calls++
	return f.night, f.err
}

func resolverAt(hour int, loc Locator, sun NightSource) *Resolver {
	r := NewResolver(loc, sun)
	r.now = func() time.Time {
		return time.Date(2026, time.August, 30, hour, 0, 0, 0, time.UTC)
	}
	return r
}

func TestResolveManualModesDoNoIO(t *testing.T) {
	loc := &fakeLocator{pos: &Position{Lat: 1, Lon: 2}}
	sun := &fakeSun{night: true}
	r := resolverAt(12, loc, sun)

	if got := r.Resolve(context.Background(), config.Config{ThemeMode: config.ThemeDark, UseLocationForTheme: true}); got != Dark {
		t.Fatalf("dark mode = %q", got)
	}
	if got := r.Resolve(context.Background(), config.Config{ThemeMode: config.ThemeLight, UseLocationForTheme: true}); got != Light {
		t.Fatalf("light mode = %q", got)
	}
	if loc.calls != 0 || sun.calls != 0 {
		t.Fatalf("manual modes must not touch location or sun service (loc=%d sun=%d)", loc.calls, sun.calls)
	}
}

func TestResolveAutoWithoutLocationUsesHourHeuristic(t *testing.T) {
	cases := []struct {
		hour int
		want Decision
	}{
		{20, Dark},
		{10, Light},
		{6, Dark},
		{7, Light},
		{19, Dark},
		{18, Light},
	}
	for _, c := range cases {
		r := resolverAt(c.hour, nil, nil)
		cfg := config.Config{ThemeMode: config.ThemeAuto, UseLocationForTheme: false}
		if got := r.Resolve(context.Background(), cfg); got != c.want {
			t.Errorf("hour %d: decision = %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestResolveAutoUsesSunServiceWhenPositioned(t *testing.T) {
	loc := &fakeLocator{pos: &Position{Lat: 23.0, Lon: 72.6}}
	sun := &fakeSun{night: true}
	// Midday by the heuristic, but the sun service says night.
	r := resolverAt(12, loc, sun)

	cfg := config.Config{ThemeMode: config.ThemeAuto, UseLocationForTheme: true}
	if got := r.Resolve(context.Background(), cfg); got != Dark {
		t.Fatalf("decision = %q, want Dark from sun service", got)
	}
	if loc.calls != 1 || sun.calls != 1 {
		t.Fatalf("expected one sample and one lookup, got loc=%d sun=%d", loc.calls, sun.calls)
	}
}

func TestResolveAutoNoPositionFallsBack(t *testing.T) {
	loc := &fakeLocator{pos: nil} // denial/timeout look like this
	sun := &fakeSun{night: true}
	r := resolverAt(10, loc, sun)

	cfg := config.Config{ThemeMode: config.ThemeAuto, UseLocationForTheme: true}
	if got := r.Resolve(context.Background(), cfg); got != Light {
		t.Fatalf("decision = %q, want Light from heuristic", got)
	}
	if sun.calls != 0 {
		t.Fatalf("sun service must not be queried without a position")
	}
}

func TestResolveAutoSunFailureFallsBack(t *testing.T) {
	loc := &fakeLocator{pos: &Position{Lat: 1, Lon: 2}}
	sun := &fakeSun{err: errors.New("network down")}
	r := resolverAt(22, loc, sun)

	cfg := config.Config{ThemeMode: config.ThemeAuto, UseLocationForTheme: true}
	if got := r.Resolve(context.Background(), cfg); got != Dark {
		t.Fatalf("decision = %q, want Dark from heuristic after sun failure", got)
	}
}

func TestResolveAutoLocationDisabledSkipsSampling(t *testing.T) {
	loc := &fakeLocator{pos: &Position{Lat: 1, Lon: 2}}
	sun := &fakeSun{night: false}
	r := resolverAt(23, loc, sun)

	cfg := config.Config{ThemeMode: config.ThemeAuto, UseLocationForTheme: false}
	if got := r.Resolve(context.Background(), cfg); got != Dark {
		t.Fatalf("decision = %q", got)
	}
	if loc.calls != 0 {
		t.Fatalf("location must not be sampled when disabled")
	}
}
