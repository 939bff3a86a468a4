package postprocessing

import (
	"fmt"
	"sync"
	"testing"

	"secsys-worker-go/internal/models"
)

func TestAlertLogAppendOrder(t *testing.T) {
	log := NewAlertLog(50)

	for i := 0; i < 10; i++ {
		log.Append(models.Alert{ID: fmt.Sprintf("alert-%d", i)})
	}

	recent := log.Recent()
	if len(recent) != 10 {
		t.Fatalf("got %d alerts, want 10", len(recent))
	}
	for i, alert := range recent {
		if want := fmt.Sprintf("alert-%d", i); alert.ID != want {
			t.Errorf("index %d: got %s, want %s", i, alert.ID, want)
		}
	}
}

func TestAlertLogEvictsOldest(t *testing.T) {
	log := NewAlertLog(50)

	for i := 0; i < 60; i++ {
		log.Append(models.Alert{ID: fmt.Sprintf("alert-%d", i)})
	}

	recent := log.Recent()
	if len(recent) != 50 {
		t.Fatalf("got %d alerts, want 50", len(recent))
	}
	if recent[0].ID != "alert-10" {
		t.Errorf("oldest kept: got %s, want alert-10", recent[0].ID)
	}
	if recent[49].ID != "alert-59" {
		t.Errorf("newest kept: got %s, want alert-59", recent[49].ID)
	}
}

func TestAlertLogOrderAcrossMultipleWraps(t *testing.T) {
	log := NewAlertLog(10)

	for i := 0; i < 37; i++ {
		log.Append(models.Alert{ID: fmt.Sprintf("alert-%d", i)})

		// The visible window must stay ordered at every point, not
		// just after the final append
		recent := log.Recent()
		first := i - len(recent) + 1
		for j, alert := range recent {
			if want := fmt.Sprintf("alert-%d", first+j); alert.ID != want {
				t.Fatalf("after %d appends, index %d: got %s, want %s", i+1, j, alert.ID, want)
			}
		}
	}

	if got := log.Len(); got != 10 {
		t.Errorf("got %d alerts, want 10", got)
	}
}

func TestAlertLogDefaultCapacity(t *testing.T) {
	log := NewAlertLog(0)

	for i := 0; i < 75; i++ {
		log.Append(models.Alert{ID: fmt.Sprintf("alert-%d", i)})
	}
	if got := log.Len(); got != 50 {
		t.Errorf("got %d alerts, want default capacity of 50", got)
	}
}

func TestAlertLogConcurrentAppends(t *testing.T) {
	log := NewAlertLog(50)

	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Append(models.Alert{ID: fmt.Sprintf("alert-%d", n)})
		}(i)
	}
	wg.Wait()

	recent := log.Recent()
	if len(recent) != 50 {
		t.Fatalf("got %d alerts, want 50", len(recent))
	}
	seen := make(map[string]bool, len(recent))
	for _, alert := range recent {
		if seen[alert.ID] {
			t.Errorf("duplicate alert %s", alert.ID)
		}
		seen[alert.ID] = true
	}
}

func TestAlertLogRecentReturnsCopy(t *testing.T) {
	log := NewAlertLog(50)
	log.Append(models.Alert{ID: "original"})

	recent := log.Recent()
	recent[0].ID = "mutated"

	if got := log.Recent()[0].ID; got != "original" {
		t.Errorf("log entry was mutated through Recent slice: got %s", got)
	}
}
