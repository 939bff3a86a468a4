package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/models"
)

type fakeStore struct {
	saved      []string
	failLatest bool
	failAll    bool
}

func (f *fakeStore) Save(frame *models.RawFrame, path string) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	if f.failLatest && filepath.Dir(path) != filepath.Join("static", "snapshots") {
		return errors.New("storage unavailable")
	}
	f.saved = append(f.saved, path)
	return nil
}

func testSnapshotConfig() *config.Config {
	return &config.Config{SnapshotDir: "static"}
}

func TestSnapshotPaths(t *testing.T) {
	svc := NewService(testSnapshotConfig(), &fakeStore{})
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	if got := svc.LatestPath("cam1"); got != "static/snapshot_cam1.jpg" {
		t.Errorf("LatestPath: got %q", got)
	}
	if got := svc.HistoryPath("cam1", now); got != "static/snapshots/cam1_2025-06-01_12-30-45.jpg" {
		t.Errorf("HistoryPath: got %q", got)
	}
}

func TestSaveEvidenceWritesBothPaths(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(testSnapshotConfig(), store)
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	path := svc.SaveEvidence(&models.RawFrame{CameraID: "cam1"}, now)
	if path != "static/snapshots/cam1_2025-06-01_12-30-45.jpg" {
		t.Errorf("evidence path: got %q", path)
	}
	if len(store.saved) != 2 {
		t.Fatalf("got %d saves, want 2", len(store.saved))
	}
	if store.saved[0] != "static/snapshot_cam1.jpg" {
		t.Errorf("first save: got %q", store.saved[0])
	}
}

func TestSaveEvidenceStorageFailure(t *testing.T) {
	svc := NewService(testSnapshotConfig(), &fakeStore{failAll: true})

	path := svc.SaveEvidence(&models.RawFrame{CameraID: "cam1"}, time.Now())
	if path != "" {
		t.Errorf("evidence path on failure: got %q, want empty", path)
	}
}

func TestSaveEvidenceLatestFailureStillReturnsHistory(t *testing.T) {
	store := &fakeStore{failLatest: true}
	svc := NewService(testSnapshotConfig(), store)
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	path := svc.SaveEvidence(&models.RawFrame{CameraID: "cam1"}, now)
	if path == "" {
		t.Error("latest snapshot failure should not discard the history snapshot")
	}
}

func TestDiskStoreWritesJPEG(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(90)

	// JPEG data passes straight through without re-encoding
	frame := &models.RawFrame{
		CameraID: "cam1",
		Data:     []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02},
	}
	path := filepath.Join(dir, "snapshots", "cam1_2025-06-01_12-30-45.jpg")

	if err := store.Save(frame, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(written) != len(frame.Data) {
		t.Errorf("got %d bytes, want %d", len(written), len(frame.Data))
	}
}
