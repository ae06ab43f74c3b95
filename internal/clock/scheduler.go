package clock

import (
	"sync"
	"time"

	"bigclock/internal/config"
)

// tickSkew pushes each pass slightly past the second boundary so the
// rendered second has definitely rolled over.
const tickSkew = 10 * time.Millisecond

// NextTickDelay is the single authoritative computation of the wait
// until the next pass: the next whole-second boundary plus the skew.
// Anchoring to the boundary keeps renders phase-locked to real clock
// seconds instead of drifting with scheduling overhead.
func NextTickDelay(now time.Time) time.Duration {
	return now.Truncate(time.Second).Add(time.Second + tickSkew).Sub(now)
}

// RenderFunc receives each formatted frame.
type RenderFunc func(Frame)

// ConfigFunc returns the live configuration; it is consulted on every
// pass rather than snapshotted.
type ConfigFunc func() config.Config

// Scheduler drives the per-second render loop.
type Scheduler struct {
	render RenderFunc
	cfg    ConfigFunc
	tr     Translator
	now    func() time.Time

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// Start renders one pass immediately, then keeps rendering at every
// second boundary until Stop.
func Start(render RenderFunc, cfg ConfigFunc, tr Translator) *Scheduler {
	s := &Scheduler{render: render, cfg: cfg, tr: tr, now: time.Now}
	s.tick()
	return s
}

func (s *Scheduler) tick() {
	now := s.now()
	s.render(BuildFrame(now, s.cfg(), s.tr))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.timer = time.AfterFunc(NextTickDelay(now), s.tick)
}

// TickOnce forces one synchronous render without touching the schedule.
// Used after settings or language changes so the display reflects new
// preferences immediately.
func (s *Scheduler) TickOnce() {
	s.render(BuildFrame(s.now(), s.cfg(), s.tr))
}

// Stop cancels the pending pass. Idempotent; safe before any pass is
// scheduled.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
	}
}
