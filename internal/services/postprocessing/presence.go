package postprocessing

// TransitionEvent is the outcome of feeding one frame signal into a
// PresenceTracker.
type TransitionEvent int

const (
	EventNone TransitionEvent = iota
	EventOnset
	EventClear
)

func (e TransitionEvent) String() string {
	switch e {
	case EventOnset:
		return "onset"
	case EventClear:
		return "clear"
	default:
		return "none"
	}
}

// PresenceTracker debounces a noisy per-frame detection signal into a
// stable present/absent state. Onset is instant on the first positive
// frame; clearing requires a run of consecutive negative frames strictly
// longer than the configured debounce, so a single missed detection does
// not flap the state. The asymmetry is deliberate: alerts should fire
// with minimum latency, while "person left" must survive momentary
// occlusion.
//
// The tracker is owned by a single camera worker and is not safe for
// concurrent use.
type PresenceTracker struct {
	clearDebounce int
	present       bool
	absentRun     int
}

// NewPresenceTracker creates a tracker starting in the absent state.
func NewPresenceTracker(clearDebounce int) *PresenceTracker {
	return &PresenceTracker{
		clearDebounce: clearDebounce,
	}
}

// Update feeds one frame signal into the state machine and returns the
// transition it caused, if any.
func (t *PresenceTracker) Update(frameIsPositive bool) TransitionEvent {
	if frameIsPositive {
		t.absentRun = 0
		if !t.present {
			t.present = true
			return EventOnset
		}
		return EventNone
	}

	if !t.present {
		return EventNone
	}

	t.absentRun++
	if t.absentRun > t.clearDebounce {
		t.present = false
		return EventClear
	}
	return EventNone
}

// Present reports the current debounced presence state.
func (t *PresenceTracker) Present() bool {
	return t.present
}
