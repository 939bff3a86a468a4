package postprocessing

import (
	"sync"

	"secsys-worker-go/internal/models"
)

// AlertLog is the process-wide bounded record of emitted alerts, shared
// by all camera workers. Append order is authoritative: wall-clock
// timestamps only have second resolution, so ties between cameras are
// broken by who appended first. When the capacity is exceeded the
// oldest entries are dropped.
//
// The entries live in a fixed ring so eviction is a single overwrite,
// not a shift of the whole window.
type AlertLog struct {
	mu       sync.Mutex
	capacity int
	entries  []models.Alert
	start    int
	count    int
}

// NewAlertLog creates an empty log holding at most capacity entries.
func NewAlertLog(capacity int) *AlertLog {
	if capacity <= 0 {
		capacity = 50
	}
	return &AlertLog{
		capacity: capacity,
		entries:  make([]models.Alert, capacity),
	}
}

// Append records an alert, evicting the oldest entry when full.
func (l *AlertLog) Append(alert models.Alert) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count < l.capacity {
		l.entries[(l.start+l.count)%l.capacity] = alert
		l.count++
		return
	}

	// Full, overwrite the oldest slot
	l.entries[l.start] = alert
	l.start = (l.start + 1) % l.capacity
}

// Recent returns a copy of the logged alerts, oldest first.
func (l *AlertLog) Recent() []models.Alert {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Alert, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.start+i)%l.capacity]
	}
	return out
}

// Len returns the current number of logged alerts.
func (l *AlertLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
