package detection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"secsys-worker-go/internal/models"
	pb "secsys-worker-go/proto"
)

// Service is a gRPC client for the external object-detection model server.
// It connects lazily and reconnects on failure so a temporarily missing
// model server does not prevent the worker from starting.
//
// One instance is shared by every camera worker, so the connection state
// is guarded by a mutex: only one goroutine reconnects at a time and an
// in-flight call never observes a half-replaced connection.
type Service struct {
	mu        sync.Mutex
	client    pb.DetectionServiceClient
	conn      *grpc.ClientConn
	grpcURL   string
	timeout   time.Duration
	isHealthy bool
}

func NewService(grpcURL string, timeout time.Duration) (*Service, error) {
	log.Info().Str("url", grpcURL).Msg("Initializing AI detection service")

	service := &Service{
		grpcURL: grpcURL,
		timeout: timeout,
	}

	// Try to connect, but don't fail if it's not available
	service.mu.Lock()
	err := service.connect()
	service.mu.Unlock()
	if err != nil {
		log.Warn().Err(err).Msg("AI detection service not available, will retry later")
	}

	return service, nil
}

// connect dials the model server and verifies it with a health check.
// Callers must hold s.mu.
func (s *Service) connect() error {
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
		s.client = nil
	}

	conn, err := grpc.NewClient(s.grpcURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to detection service: %w", err)
	}

	client := pb.NewDetectionServiceClient(conn)

	// Test connection with health check
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err = client.HealthCheck(ctx, &pb.Empty{}); err != nil {
		conn.Close()
		return fmt.Errorf("detection service health check failed: %w", err)
	}

	s.client = client
	s.conn = conn
	s.isHealthy = true

	log.Info().Msg("Successfully connected to AI detection service")
	return nil
}

// ensureConnection returns a usable client, reconnecting first if the
// last call marked the connection unhealthy. The returned client is a
// stable snapshot so RPCs run outside the lock.
func (s *Service) ensureConnection() (pb.DetectionServiceClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isHealthy && s.conn != nil {
		return s.client, nil
	}

	if err := s.connect(); err != nil {
		return nil, err
	}
	return s.client, nil
}

func (s *Service) markUnhealthy() {
	s.mu.Lock()
	s.isHealthy = false
	s.mu.Unlock()
}

// Infer runs the model on a single frame and returns its detections.
func (s *Service) Infer(ctx context.Context, frame *models.RawFrame) ([]models.Detection, error) {
	client, err := s.ensureConnection()
	if err != nil {
		return nil, fmt.Errorf("detection service unavailable: %w", err)
	}

	inferCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := client.InferDetection(inferCtx, &pb.FrameRequest{
		CameraId: frame.CameraID,
		Frame:    frame.Data,
		Width:    int32(frame.Width),
		Height:   int32(frame.Height),
	})
	if err != nil {
		s.markUnhealthy()
		return nil, err
	}

	if resp.GetErrorMessage() != "" {
		return nil, fmt.Errorf("detection failed: %s", resp.GetErrorMessage())
	}

	detections := make([]models.Detection, 0, len(resp.GetDetections()))
	for _, det := range resp.GetDetections() {
		d := models.Detection{
			ClassID:    det.GetClassId(),
			Label:      det.GetLabel(),
			Confidence: det.GetConfidence(),
		}
		if bbox := det.GetBbox(); bbox != nil {
			d.BBox = []float32{bbox.GetXMin(), bbox.GetYMin(), bbox.GetXMax(), bbox.GetYMax()}
		}
		detections = append(detections, d)
	}

	return detections, nil
}

func (s *Service) HealthCheck(ctx context.Context) error {
	client, err := s.ensureConnection()
	if err != nil {
		return err
	}

	if _, err := client.HealthCheck(ctx, &pb.Empty{}); err != nil {
		s.markUnhealthy()
		return err
	}
	return nil
}

func (s *Service) IsHealthy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isHealthy
}

func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		log.Info().Msg("Shutting down detection service connection")
		err := s.conn.Close()
		s.conn = nil
		s.client = nil
		s.isHealthy = false
		return err
	}
	return nil
}
