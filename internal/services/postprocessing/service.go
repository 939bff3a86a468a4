package postprocessing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/models"
)

// SnapshotSaver persists alert evidence and returns the historical
// snapshot path, or an empty path when storage failed.
type SnapshotSaver interface {
	SaveEvidence(frame *models.RawFrame, now time.Time) string
}

// Notifier delivers alert side effects. Both calls are best-effort and
// must never block the detection path.
type Notifier interface {
	DispatchPush(cameraID string)
	PublishAlert(alert models.Alert)
}

// Service turns presence onsets into alerts: it gates them through the
// per-camera cooldown, persists evidence, appends to the shared alert
// log and fires the push notification.
type Service struct {
	cfg       *config.Config
	alertLog  *AlertLog
	snapshots SnapshotSaver
	notifier  Notifier

	gateMu sync.Mutex
	gates  map[string]*AlertGate

	// Injectable clock for deterministic tests
	now func() time.Time
}

// NewService creates a new postprocessing service.
func NewService(cfg *config.Config, snapshots SnapshotSaver, notifier Notifier) (*Service, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot saver is required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}

	s := &Service{
		cfg:       cfg,
		alertLog:  NewAlertLog(cfg.AlertLogCapacity),
		snapshots: snapshots,
		notifier:  notifier,
		gates:     make(map[string]*AlertGate),
		now:       time.Now,
	}

	log.Info().
		Dur("cooldown", cfg.AlertCooldown).
		Int("alert_log_capacity", cfg.AlertLogCapacity).
		Msg("Post-processing service initialized")

	return s, nil
}

// gate returns the cooldown gate for a camera, creating it on first use.
func (s *Service) gate(cameraID string) *AlertGate {
	s.gateMu.Lock()
	defer s.gateMu.Unlock()

	g, ok := s.gates[cameraID]
	if !ok {
		g = NewAlertGate(s.cfg.AlertCooldown)
		s.gates[cameraID] = g
	}
	return g
}

// HandleOnset processes a presence onset for a camera. It returns true
// when an alert was raised and false when the cooldown suppressed it.
func (s *Service) HandleOnset(frame *models.RawFrame) bool {
	now := s.now()

	if !s.gate(frame.CameraID).TryAcquire(now) {
		log.Debug().
			Str("camera_id", frame.CameraID).
			Msg("Alert suppressed by cooldown")
		return false
	}

	snapshotPath := s.snapshots.SaveEvidence(frame, now)

	alert := models.Alert{
		ID:           uuid.NewString(),
		CameraID:     frame.CameraID,
		Message:      fmt.Sprintf("Person detected on %s", strings.ToUpper(frame.CameraID)),
		Timestamp:    now.Format(models.AlertTimestampFormat),
		SnapshotPath: snapshotPath,
	}

	s.alertLog.Append(alert)
	s.notifier.PublishAlert(alert)
	s.notifier.DispatchPush(frame.CameraID)

	log.Info().
		Str("camera_id", frame.CameraID).
		Str("alert_id", alert.ID).
		Str("snapshot", snapshotPath).
		Msg("🚨 Alert raised")

	return true
}

// RecentAlerts returns the bounded alert history, oldest first.
func (s *Service) RecentAlerts() []models.Alert {
	return s.alertLog.Recent()
}

// Shutdown stops the service gracefully
func (s *Service) Shutdown(ctx context.Context) error {
	log.Info().Msg("Post-processing service shutdown")
	return nil
}
