package postprocessing

import (
	"sync"
	"time"
)

// AlertGate rate-limits alert emission for one camera. Acquire and
// timestamp update are a single step under the gate's mutex, so two
// concurrent onsets for the same camera can never both pass. Gates are
// independent across cameras.
//
// The zero value of lastAlert is the epoch, so the first onset after
// start-up is never suppressed.
type AlertGate struct {
	mu        sync.Mutex
	cooldown  time.Duration
	lastAlert time.Time
}

// NewAlertGate creates a gate with the given cooldown window.
func NewAlertGate(cooldown time.Duration) *AlertGate {
	return &AlertGate{
		cooldown: cooldown,
	}
}

// TryAcquire returns true and records now as the last alert time iff
// the cooldown window has elapsed. Denial has no side effect.
func (g *AlertGate) TryAcquire(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if now.Sub(g.lastAlert) < g.cooldown {
		return false
	}

	g.lastAlert = now
	return true
}
