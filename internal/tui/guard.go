package tui

import "time"

// HoldToUnlock is how long the gear must be held while settings are
// locked before the sheet opens and the lock drops.
const HoldToUnlock = 2 * time.Second

type GuardEvent int

const (
	GuardNone GuardEvent = iota
	GuardOpen
	GuardUnlockAndOpen
)

// SettingsGuard gates access to the settings sheet. Unlocked, any
// activation opens it. Locked, a tap is ignored and only a completed
// press-and-hold opens it, clearing the lock in the same motion.
//
// The guard is input-agnostic: pointer-up, pointer-cancel and
// pointer-leave all feed Release, and the caller owns the timer that
// feeds Expire.
type SettingsGuard struct {
	Hold time.Duration

	holding  bool
	deadline time.Time
}

func NewSettingsGuard() SettingsGuard {
	return SettingsGuard{Hold: HoldToUnlock}
}

// Tap handles a plain activation with no press/release lifecycle, such
// as a key press. Locked taps are silent.
func (g *SettingsGuard) Tap(locked bool) GuardEvent {
	if locked {
		return GuardNone
	}
	return GuardOpen
}

// Press handles pointer-down on the gear. Unlocked presses open
// immediately; locked presses arm the hold window.
func (g *SettingsGuard) Press(locked bool, now time.Time) GuardEvent {
	if !locked {
		g.holding = false
		return GuardOpen
	}
	g.holding = true
	g.deadline = now.Add(g.Hold)
	return GuardNone
}

// Release cancels a pending hold.
func (g *SettingsGuard) Release() {
	g.holding = false
}

// Expire reports whether a hold completed. It only fires if the press
// is still down and the full window has passed; a stale timer from a
// released press reports nothing.
func (g *SettingsGuard) Expire(now time.Time) GuardEvent {
	if !g.holding || now.Before(g.deadline) {
		return GuardNone
	}
	g.holding = false
	return GuardUnlockAndOpen
}

func (g *SettingsGuard) Holding() bool {
	return g.holding
}
