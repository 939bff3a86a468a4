package services

import (
	"context"
	"fmt"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/helpers"
	"secsys-worker-go/internal/services/camera"
	"secsys-worker-go/internal/services/detection"
	"secsys-worker-go/internal/services/notify"
	"secsys-worker-go/internal/services/postprocessing"
	"secsys-worker-go/internal/services/publisher/mjpeg"
	"secsys-worker-go/internal/services/snapshot"
	"secsys-worker-go/internal/services/streamcapture"
)

// ServiceContainer holds all services
type ServiceContainer struct {
	Config           *config.Config
	DetectionSvc     *detection.Service
	NotifySvc        *notify.Service
	SnapshotSvc      *snapshot.Service
	PostProcessing   *postprocessing.Service
	Publisher        *mjpeg.Publisher
	CameraManager    *camera.CameraManager
	streamCaptureSvc *streamcapture.Service
}

// captureSource adapts the stream capture service to the camera pipeline
type captureSource struct {
	svc *streamcapture.Service
}

func (cs *captureSource) Open(cameraID, source string) (camera.FrameReader, error) {
	return cs.svc.Open(cameraID, source)
}

// NewServiceContainer creates a new service container
func NewServiceContainer(cfg *config.Config) (*ServiceContainer, error) {
	// Initialize detection service
	detectionSvc, err := detection.NewService(cfg.AIGRPCURL, cfg.AITimeout)
	if err != nil {
		return nil, err
	}

	// Initialize notification service
	notifySvc, err := notify.NewService(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize snapshot storage
	var store snapshot.Store
	switch cfg.SnapshotBackend {
	case "s3":
		store, err = snapshot.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.OutputQuality)
		if err != nil {
			return nil, err
		}
	case "disk":
		store = snapshot.NewDiskStore(cfg.OutputQuality)
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
	snapshotSvc := snapshot.NewService(cfg, store)

	// Initialize alert post-processing
	postProcessing, err := postprocessing.NewService(cfg, snapshotSvc, notifySvc)
	if err != nil {
		return nil, err
	}

	// Initialize MJPEG publisher
	publisherSvc, err := mjpeg.NewPublisher(cfg)
	if err != nil {
		return nil, err
	}

	streamCaptureSvc := streamcapture.NewService(cfg)

	// Initialize camera manager with the full pipeline
	cameraManager, err := camera.NewCameraManager(cfg, camera.Pipeline{
		Source:    &captureSource{svc: streamCaptureSvc},
		Detector:  detectionSvc,
		Annotate:  helpers.AnnotateFrame,
		Publisher: publisherSvc,
		Alerts:    postProcessing,
	})
	if err != nil {
		return nil, err
	}

	return &ServiceContainer{
		Config:           cfg,
		DetectionSvc:     detectionSvc,
		NotifySvc:        notifySvc,
		SnapshotSvc:      snapshotSvc,
		PostProcessing:   postProcessing,
		Publisher:        publisherSvc,
		CameraManager:    cameraManager,
		streamCaptureSvc: streamCaptureSvc,
	}, nil
}

// StartConfiguredCameras starts the cameras from static configuration
func (sc *ServiceContainer) StartConfiguredCameras() {
	sc.CameraManager.StartConfigured()
}

// Shutdown gracefully shuts down all services
func (sc *ServiceContainer) Shutdown(ctx context.Context) error {
	if sc.CameraManager != nil {
		if err := sc.CameraManager.Shutdown(ctx); err != nil {
			return err
		}
	}

	if sc.Publisher != nil {
		sc.Publisher.Shutdown()
	}

	if sc.PostProcessing != nil {
		_ = sc.PostProcessing.Shutdown(ctx)
	}

	if sc.DetectionSvc != nil {
		_ = sc.DetectionSvc.Shutdown(ctx)
	}

	if sc.NotifySvc != nil {
		_ = sc.NotifySvc.Shutdown(ctx)
	}

	return nil
}
