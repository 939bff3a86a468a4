package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/helpers"
	"secsys-worker-go/internal/models"
)

// DiskStore writes snapshots to the local filesystem
type DiskStore struct {
	quality int
}

func NewDiskStore(quality int) *DiskStore {
	return &DiskStore{quality: quality}
}

func (d *DiskStore) Save(frame *models.RawFrame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	jpeg, err := helpers.ConvertFrameToJPEG(frame.Data, frame.Width, frame.Height, d.quality)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, jpeg, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}

	log.Debug().
		Str("camera_id", frame.CameraID).
		Str("path", path).
		Int("bytes", len(jpeg)).
		Msg("Snapshot written to disk")

	return nil
}
