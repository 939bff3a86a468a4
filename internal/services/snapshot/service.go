package snapshot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/models"
)

// Store persists a single frame under a path and is implemented by the
// disk and S3 backends.
type Store interface {
	Save(frame *models.RawFrame, path string) error
}

// Service writes alert evidence snapshots: a fixed "latest" image per
// camera plus a timestamped copy for the alert history.
type Service struct {
	cfg   *config.Config
	store Store
}

func NewService(cfg *config.Config, store Store) *Service {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

// LatestPath returns the fixed snapshot path for a camera.
func (s *Service) LatestPath(cameraID string) string {
	return fmt.Sprintf("%s/snapshot_%s.jpg", s.cfg.SnapshotDir, cameraID)
}

// HistoryPath returns the timestamped snapshot path for a camera.
func (s *Service) HistoryPath(cameraID string, now time.Time) string {
	return fmt.Sprintf("%s/snapshots/%s_%s.jpg",
		s.cfg.SnapshotDir, cameraID, now.Format(models.SnapshotTimestampFormat))
}

// SaveEvidence persists the latest and historical snapshots for an
// alert and returns the historical path. A storage failure is logged
// and returns an empty path: the alert is still raised without evidence.
func (s *Service) SaveEvidence(frame *models.RawFrame, now time.Time) string {
	if err := s.store.Save(frame, s.LatestPath(frame.CameraID)); err != nil {
		log.Error().
			Err(err).
			Str("camera_id", frame.CameraID).
			Msg("Failed to save latest snapshot")
	}

	historyPath := s.HistoryPath(frame.CameraID, now)
	if err := s.store.Save(frame, historyPath); err != nil {
		log.Error().
			Err(err).
			Str("camera_id", frame.CameraID).
			Str("path", historyPath).
			Msg("Failed to save historical snapshot, alert will have no evidence")
		return ""
	}

	return historyPath
}
