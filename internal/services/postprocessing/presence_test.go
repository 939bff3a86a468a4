package postprocessing

import "testing"

func TestPresenceTrackerOnsetIsImmediate(t *testing.T) {
	tracker := NewPresenceTracker(5)

	if got := tracker.Update(true); got != EventOnset {
		t.Errorf("first positive frame: got %s, want %s", got, EventOnset)
	}
	if !tracker.Present() {
		t.Error("tracker should report present after onset")
	}
	if got := tracker.Update(true); got != EventNone {
		t.Errorf("repeated positive frame: got %s, want %s", got, EventNone)
	}
}

func TestPresenceTrackerDebouncedClear(t *testing.T) {
	tracker := NewPresenceTracker(5)

	signals := []bool{true, false, false, false, false, false, false, true}
	want := []TransitionEvent{
		EventOnset, // index 0
		EventNone, EventNone, EventNone, EventNone, EventNone,
		EventClear, // index 6: sixth consecutive negative
		EventOnset, // index 7: re-entry after clear
	}

	for i, signal := range signals {
		if got := tracker.Update(signal); got != want[i] {
			t.Errorf("frame %d (positive=%v): got %s, want %s", i, signal, got, want[i])
		}
	}
}

func TestPresenceTrackerGapResetsDebounce(t *testing.T) {
	tracker := NewPresenceTracker(3)

	if got := tracker.Update(true); got != EventOnset {
		t.Fatalf("got %s, want %s", got, EventOnset)
	}

	// Three negatives do not clear with debounce 3, and a positive in
	// between resets the run entirely.
	for i := 0; i < 3; i++ {
		if got := tracker.Update(false); got != EventNone {
			t.Errorf("negative %d: got %s, want %s", i, got, EventNone)
		}
	}
	if got := tracker.Update(true); got != EventNone {
		t.Errorf("positive after partial run: got %s, want %s", got, EventNone)
	}

	// The run starts over: it again takes debounce+1 negatives to clear.
	for i := 0; i < 3; i++ {
		if got := tracker.Update(false); got != EventNone {
			t.Errorf("restarted negative %d: got %s, want %s", i, got, EventNone)
		}
	}
	if got := tracker.Update(false); got != EventClear {
		t.Errorf("final negative: got %s, want %s", got, EventClear)
	}
	if tracker.Present() {
		t.Error("tracker should report absent after clear")
	}
}

func TestPresenceTrackerNegativesWhileAbsent(t *testing.T) {
	tracker := NewPresenceTracker(2)

	for i := 0; i < 10; i++ {
		if got := tracker.Update(false); got != EventNone {
			t.Errorf("negative %d while absent: got %s, want %s", i, got, EventNone)
		}
	}
	if tracker.Present() {
		t.Error("tracker should still report absent")
	}
}
