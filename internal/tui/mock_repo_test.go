package tui

import (
	"context"
	"testing"

	"bigclock/internal/clock"
	"bigclock/internal/config"
	"bigclock/internal/i18n"
	"bigclock/internal/theme"
)

// memRepo is an in-memory stand-in for the sqlite settings table.
type memRepo struct {
	values map[string]string
}

func newMemRepo() *memRepo {
	return &memRepo{values: map[string]string{}}
}

func (r *memRepo) GetSetting(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *memRepo) SetSetting(key, value string) error {
	r.values[key] = value
	return nil
}

func (r *memRepo) DeleteSetting(key string) error {
	delete(r.values, key)
	return nil
}

type fakeScheduler struct {
	ticks   int
	stopped bool
}

func (s *fakeScheduler) TickOnce() { s.ticks++ }
func (s *fakeScheduler) Stop()     { s.stopped = true }

type fakeResolver struct {
	decision theme.Decision
	calls    int
}

func (r *fakeResolver) Resolve(ctx context.Context, cfg config.Config) theme.Decision {
	r.calls++
	return r.decision
}

type fakeTicker struct {
	stopped bool
}

func (t *fakeTicker) Stop() { t.stopped = true }

type harness struct {
	repo     *memRepo
	handle   *config.Handle
	loc      *i18n.Localizer
	sched    *fakeScheduler
	resolver *fakeResolver
	ticker   *fakeTicker
	model    Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	repo := newMemRepo()
	handle, err := config.NewHandle(config.NewStore(repo))
	if err != nil {
		t.Fatalf("NewHandle failed: %v", err)
	}
	loc, err := i18n.New(handle.Get().Language)
	if err != nil {
		t.Fatalf("i18n.New failed: %v", err)
	}

	h := &harness{
		repo:     repo,
		handle:   handle,
		loc:      loc,
		sched:    &fakeScheduler{},
		resolver: &fakeResolver{decision: theme.Dark},
		ticker:   &fakeTicker{},
	}
	h.model = NewModel(Deps{
		Handle:    handle,
		Localizer: loc,
		Resolver:  h.resolver,
		Scheduler: h.sched,
		Ticker:    h.ticker,
		Frames:    make(chan clock.Frame),
		Decisions: make(chan theme.Decision),
		Initial:   theme.Light,
	})
	h.model.width, h.model.height = 120, 40
	return h
}

func (h *harness) setLocked(t *testing.T, locked bool) {
	t.Helper()
	cfg := h.handle.Get()
	cfg.SettingsLocked = locked
	if err := h.handle.Set(cfg); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
}
