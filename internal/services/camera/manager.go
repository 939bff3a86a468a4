package camera

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/models"
)

// CameraManager owns every camera worker and the shared pipeline
type CameraManager struct {
	cfg      *config.Config
	pipeline Pipeline

	cameras map[string]*CameraLifecycle
	mutex   sync.RWMutex

	stopChannel chan struct{}
	watchdogWg  sync.WaitGroup
}

// NewCameraManager creates a new camera manager
func NewCameraManager(cfg *config.Config, pipeline Pipeline) (*CameraManager, error) {
	if pipeline.Source == nil || pipeline.Detector == nil || pipeline.Annotate == nil ||
		pipeline.Publisher == nil || pipeline.Alerts == nil {
		return nil, fmt.Errorf("camera manager pipeline is incomplete")
	}

	cm := &CameraManager{
		cfg:         cfg,
		pipeline:    pipeline,
		cameras:     make(map[string]*CameraLifecycle),
		stopChannel: make(chan struct{}),
	}

	cm.watchdogWg.Add(1)
	go cm.runWatchdog()

	log.Info().
		Int("max_cameras", cfg.MaxCameras).
		Dur("cycle_delay", cfg.CycleDelay).
		Msg("Camera manager initialized")

	return cm, nil
}

// StartConfigured starts every camera from the static configuration.
func (cm *CameraManager) StartConfigured() {
	for cameraID, source := range cm.cfg.CameraSources {
		req := &models.CameraRequest{CameraID: cameraID, URL: source}
		if err := cm.StartCamera(req); err != nil {
			log.Error().
				Err(err).
				Str("camera_id", cameraID).
				Msg("Failed to start configured camera")
		}
	}
}

// StartCamera starts a camera worker
func (cm *CameraManager) StartCamera(req *models.CameraRequest) error {
	cm.mutex.Lock()

	if cl, exists := cm.cameras[req.CameraID]; exists {
		if cl.getState() == StateRunning {
			cm.mutex.Unlock()
			return fmt.Errorf("camera %s is already active", req.CameraID)
		}
		// Reuse the existing lifecycle, the source may have changed
		cl.camera.URL = req.URL
		cm.mutex.Unlock()
		return cl.Start()
	}

	if len(cm.cameras) >= cm.cfg.MaxCameras {
		cm.mutex.Unlock()
		return fmt.Errorf("maximum number of cameras (%d) reached", cm.cfg.MaxCameras)
	}

	cam := &models.Camera{
		ID:        req.CameraID,
		URL:       req.URL,
		CreatedAt: time.Now(),
	}
	cam.SetStatus(models.CameraStatusStop)
	cl := NewCameraLifecycle(cam, cm)
	cm.cameras[req.CameraID] = cl
	cm.mutex.Unlock()

	return cl.Start()
}

// StopCamera stops a camera worker. The camera stays registered so it
// can be started again.
func (cm *CameraManager) StopCamera(cameraID string) error {
	cm.mutex.RLock()
	cl, exists := cm.cameras[cameraID]
	cm.mutex.RUnlock()

	if !exists {
		return fmt.Errorf("camera %s not found", cameraID)
	}

	return cl.Stop()
}

// RemoveCamera stops a camera worker and forgets it
func (cm *CameraManager) RemoveCamera(cameraID string) error {
	cm.mutex.Lock()
	cl, exists := cm.cameras[cameraID]
	if !exists {
		cm.mutex.Unlock()
		return fmt.Errorf("camera %s not found", cameraID)
	}
	delete(cm.cameras, cameraID)
	cm.mutex.Unlock()

	if cl.getState() == StateRunning {
		return cl.Stop()
	}
	return nil
}

// GetCamera returns camera information
func (cm *CameraManager) GetCamera(cameraID string) (*models.CameraResponse, error) {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	cl, exists := cm.cameras[cameraID]
	if !exists {
		return nil, fmt.Errorf("camera %s not found", cameraID)
	}

	return cm.buildResponse(cl), nil
}

func (cm *CameraManager) buildResponse(cl *CameraLifecycle) *models.CameraResponse {
	cam := cl.camera
	frames, errors, alerts, lastFrame := cam.Stats()

	return &models.CameraResponse{
		CameraID:      cam.ID,
		URL:           cam.URL,
		Status:        cam.Status(),
		Active:        cam.Active(),
		CreatedAt:     cam.CreatedAt,
		LastFrameTime: lastFrame,
		FrameCount:    frames,
		ErrorCount:    errors,
		AlertCount:    alerts,
		MJPEGUrl:      cm.cfg.GetMJPEGURL(cam.ID),
		SnapshotUrl:   cm.cfg.GetSnapshotURL(cam.ID),
	}
}

// ListCameras returns all cameras
func (cm *CameraManager) ListCameras() []*models.CameraResponse {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	cameras := make([]*models.CameraResponse, 0, len(cm.cameras))
	for _, cl := range cm.cameras {
		cameras = append(cameras, cm.buildResponse(cl))
	}

	return cameras
}

// Statuses returns the per-camera presence map
func (cm *CameraManager) Statuses() map[string]models.CameraStatusResponse {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	statuses := make(map[string]models.CameraStatusResponse, len(cm.cameras))
	for id, cl := range cm.cameras {
		statuses[id] = models.CameraStatusResponse{Active: cl.camera.Active()}
	}

	return statuses
}

// CameraActive reports the presence flag for one camera
func (cm *CameraManager) CameraActive(cameraID string) (bool, error) {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	cl, exists := cm.cameras[cameraID]
	if !exists {
		return false, fmt.Errorf("camera %s not found", cameraID)
	}
	return cl.camera.Active(), nil
}

// GetStats returns active and total camera counts
func (cm *CameraManager) GetStats() (int, int) {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	active := 0
	for _, cl := range cm.cameras {
		if cl.getState() == StateRunning {
			active++
		}
	}

	return active, len(cm.cameras)
}

// runWatchdog restarts cameras whose frames have gone stale
func (cm *CameraManager) runWatchdog() {
	defer cm.watchdogWg.Done()

	ticker := time.NewTicker(cm.cfg.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cm.stopChannel:
			return
		case <-ticker.C:
			cm.checkCameraHealth()
		}
	}
}

func (cm *CameraManager) checkCameraHealth() {
	cm.mutex.RLock()
	stale := make([]*CameraLifecycle, 0)
	for _, cl := range cm.cameras {
		if cl.getState() != StateRunning {
			continue
		}
		frames, _, _, lastFrame := cl.camera.Stats()
		if frames > 0 && time.Since(lastFrame) > cm.cfg.FrameStaleThreshold {
			stale = append(stale, cl)
		}
	}
	cm.mutex.RUnlock()

	for _, cl := range stale {
		frames, _, _, lastFrame := cl.camera.Stats()
		log.Warn().
			Str("camera_id", cl.camera.ID).
			Int64("frame_count", frames).
			Time("last_frame", lastFrame).
			Msg("Camera frames stale, forcing restart")

		if err := cl.ForceRestart(); err != nil {
			log.Error().
				Err(err).
				Str("camera_id", cl.camera.ID).
				Msg("Watchdog restart failed")
		}
	}
}

// Shutdown stops the watchdog and every camera worker
func (cm *CameraManager) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down camera manager")

	close(cm.stopChannel)
	cm.watchdogWg.Wait()

	cm.mutex.Lock()
	lifecycles := make([]*CameraLifecycle, 0, len(cm.cameras))
	for _, cl := range cm.cameras {
		lifecycles = append(lifecycles, cl)
	}
	cm.mutex.Unlock()

	for _, cl := range lifecycles {
		if cl.getState() == StateRunning {
			if err := cl.Stop(); err != nil {
				log.Warn().
					Err(err).
					Str("camera_id", cl.camera.ID).
					Msg("Camera stop failed during shutdown")
			}
		}
	}

	return nil
}
