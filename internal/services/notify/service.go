package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/logging"
	"secsys-worker-go/internal/models"
)

// Service publishes push notifications and alert payloads over NATS.
// Delivery is at-most-once: failures are logged and swallowed so a slow
// or unreachable backend never stalls a detection cycle.
type Service struct {
	conn   *nats.Conn
	cfg    *config.Config
	logger zerolog.Logger
}

func NewService(cfg *config.Config) (*Service, error) {
	opts := []nats.Option{
		nats.Name("secsys-worker"),
		nats.Timeout(cfg.NatsConnectTimeout),
		nats.ReconnectWait(cfg.NatsReconnectWait),
		nats.MaxReconnects(cfg.NatsMaxReconnects),
	}

	conn, err := nats.Connect(cfg.NatsURL, opts...)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", cfg.NatsURL).Msg("NATS connection established")

	return &Service{
		conn:   conn,
		cfg:    cfg,
		logger: logging.NewServiceLogger(cfg, "notify"),
	}, nil
}

// Publish marshals and publishes a payload on a subject.
func (s *Service) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return s.conn.Publish(subject, payload)
}

// DispatchPush sends a push notification for a camera in a detached
// goroutine. The outcome is never awaited by the caller.
func (s *Service) DispatchPush(cameraID string) {
	logger := logging.WithCamera(s.logger, cameraID)

	go func() {
		notification := models.PushNotification{
			Title:    fmt.Sprintf("🚨 Person Detected on %s!", strings.ToUpper(cameraID)),
			Body:     "Motion has been detected by SecSys.",
			Token:    s.cfg.PushToken,
			CameraID: cameraID,
		}

		if err := s.Publish(s.cfg.NotifySubject, notification); err != nil {
			logger.Error().
				Err(err).
				Msg("Failed to dispatch push notification")
			return
		}

		logger.Info().
			Str("subject", s.cfg.NotifySubject).
			Msg("Push notification dispatched")
	}()
}

// PublishAlert fans an alert out on the alerts subject for external
// consumers. Failure is log-only: the alert is already in the log.
func (s *Service) PublishAlert(alert models.Alert) {
	if err := s.Publish(s.cfg.AlertsSubject, alert); err != nil {
		log.Error().
			Err(err).
			Str("camera_id", alert.CameraID).
			Msg("Failed to publish alert")
	}
}

func (s *Service) IsConnected() bool {
	return s.conn != nil && s.conn.IsConnected()
}

func (s *Service) Shutdown(ctx context.Context) error {
	if s.conn != nil {
		// Try graceful drain, fallback to immediate close
		if err := s.conn.Drain(); err != nil {
			log.Warn().Err(err).Msg("Failed to drain NATS connection gracefully, closing immediately")
			s.conn.Close()
		}
	}
	return nil
}
