package postprocessing

import (
	"testing"
	"time"
)

func TestAlertGateCooldown(t *testing.T) {
	gate := NewAlertGate(10 * time.Second)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Events 3 seconds apart against a 10 second cooldown.
	want := []bool{true, false, false, false, true, false, false, false, true}
	for i, expected := range want {
		now := base.Add(time.Duration(i*3) * time.Second)
		if got := gate.TryAcquire(now); got != expected {
			t.Errorf("event at +%ds: got %v, want %v", i*3, got, expected)
		}
	}
}

func TestAlertGateFirstEventAlwaysPasses(t *testing.T) {
	gate := NewAlertGate(time.Hour)
	if !gate.TryAcquire(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("first acquire should pass regardless of cooldown length")
	}
}

func TestAlertGateExactBoundary(t *testing.T) {
	gate := NewAlertGate(7 * time.Second)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if !gate.TryAcquire(base) {
		t.Fatal("first acquire should pass")
	}
	if gate.TryAcquire(base.Add(7*time.Second - time.Millisecond)) {
		t.Error("acquire just inside cooldown should be denied")
	}
	if !gate.TryAcquire(base.Add(7 * time.Second)) {
		t.Error("acquire at exactly the cooldown boundary should pass")
	}
}

func TestAlertGatesAreIndependentPerCamera(t *testing.T) {
	gateA := NewAlertGate(30 * time.Second)
	gateB := NewAlertGate(30 * time.Second)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if !gateA.TryAcquire(now) {
		t.Error("camera A first acquire should pass")
	}
	if !gateB.TryAcquire(now) {
		t.Error("camera B acquire should not be affected by camera A")
	}
	if gateA.TryAcquire(now.Add(time.Second)) {
		t.Error("camera A second acquire should be suppressed")
	}
}
