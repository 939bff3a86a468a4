package camera

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"context"

	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/models"
	"secsys-worker-go/internal/services/postprocessing"
)

// CameraState represents the atomic state of a camera
type CameraState int32

const (
	StateStopped CameraState = iota
	StateRunning
	StateStopping
)

func (s CameraState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// CameraLifecycle manages a single camera worker with isolated state
type CameraLifecycle struct {
	camera *models.Camera
	cm     *CameraManager

	// State management
	state   int32
	running int32

	// mu guards the per-run cancel func and shutdown channel so Stop and
	// a later Start never race with the worker's deferred cleanup
	mu           sync.Mutex
	cancel       context.CancelFunc
	shutdownDone chan struct{}
}

// NewCameraLifecycle creates a new camera lifecycle manager
func NewCameraLifecycle(camera *models.Camera, cm *CameraManager) *CameraLifecycle {
	cl := &CameraLifecycle{
		camera: camera,
		cm:     cm,
	}

	cl.setState(StateStopped)

	return cl
}

// setState atomically sets the camera state
func (cl *CameraLifecycle) setState(state CameraState) {
	atomic.StoreInt32(&cl.state, int32(state))
}

// getState atomically gets the camera state
func (cl *CameraLifecycle) getState() CameraState {
	return CameraState(atomic.LoadInt32(&cl.state))
}

// isRunning checks if camera is running
func (cl *CameraLifecycle) isRunning() bool {
	return atomic.LoadInt32(&cl.running) == 1
}

// Start starts the camera worker
func (cl *CameraLifecycle) Start() error {
	if !atomic.CompareAndSwapInt32(&cl.state, int32(StateStopped), int32(StateRunning)) {
		return fmt.Errorf("camera %s cannot start from state %s", cl.camera.ID, cl.getState())
	}

	log.Info().
		Str("camera_id", cl.camera.ID).
		Str("url", cl.camera.URL).
		Msg("Starting camera")

	cl.mu.Lock()
	prev := cl.shutdownDone
	cl.mu.Unlock()

	// A previous worker may still be inside its deferred cleanup; wait
	// for it before handing the lifecycle to a new goroutine
	if prev != nil {
		select {
		case <-prev:
		case <-time.After(5 * time.Second):
			log.Warn().
				Str("camera_id", cl.camera.ID).
				Msg("Previous worker still shutting down, starting anyway")
		}
	}

	// Fresh context per run
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	cl.mu.Lock()
	cl.cancel = cancel
	cl.shutdownDone = done
	cl.mu.Unlock()

	atomic.StoreInt32(&cl.running, 1)

	cl.camera.SetStatus(models.CameraStatusStart)
	cl.camera.SetActive(false)

	go cl.runCamera(ctx, done)

	log.Info().
		Str("camera_id", cl.camera.ID).
		Msg("Camera started successfully")

	return nil
}

// Stop stops the camera worker
func (cl *CameraLifecycle) Stop() error {
	if !atomic.CompareAndSwapInt32(&cl.state, int32(StateRunning), int32(StateStopping)) {
		return fmt.Errorf("camera %s cannot stop from state %s", cl.camera.ID, cl.getState())
	}

	log.Info().
		Str("camera_id", cl.camera.ID).
		Msg("Stopping camera")

	atomic.StoreInt32(&cl.running, 0)

	cl.mu.Lock()
	cancel := cl.cancel
	done := cl.shutdownDone
	cl.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	// Wait for the worker to confirm shutdown
	if done != nil {
		select {
		case <-done:
			log.Debug().Str("camera_id", cl.camera.ID).Msg("Shutdown confirmed")
		case <-time.After(5 * time.Second):
			log.Warn().Str("camera_id", cl.camera.ID).Msg("Shutdown timeout")
		}
	}

	cl.camera.SetStatus(models.CameraStatusStop)
	cl.camera.SetActive(false)
	cl.setState(StateStopped)

	log.Info().
		Str("camera_id", cl.camera.ID).
		Msg("Camera stopped successfully")

	return nil
}

// Restart restarts the camera worker
func (cl *CameraLifecycle) Restart() error {
	log.Info().
		Str("camera_id", cl.camera.ID).
		Msg("Restarting camera")

	_ = cl.Stop()
	time.Sleep(300 * time.Millisecond)
	return cl.Start()
}

// ForceRestart forces a restart
func (cl *CameraLifecycle) ForceRestart() error {
	return cl.Restart()
}

// runCamera is the worker goroutine. It owns the capture and the
// presence tracker and reconnects with backoff when the source fails.
// ctx and done belong to this run only; a restart gets fresh ones.
func (cl *CameraLifecycle) runCamera(ctx context.Context, done chan struct{}) {
	defer func() {
		// Signal shutdown
		close(done)

		if r := recover(); r != nil {
			log.Error().
				Str("camera_id", cl.camera.ID).
				Interface("panic", r).
				Msg("Camera panic recovered")
			_ = cl.Stop()
		}
	}()

	log.Debug().
		Str("camera_id", cl.camera.ID).
		Msg("Camera capture and detection started")

	// Presence state lives with the worker, never shared across cameras
	tracker := postprocessing.NewPresenceTracker(cl.cm.cfg.ClearDebounceFrames)

	reconnectErrors := 0

	for cl.isRunning() {
		select {
		case <-ctx.Done():
			log.Info().
				Str("camera_id", cl.camera.ID).
				Msg("Camera context cancelled")
			return
		default:
			err := cl.runCapture(ctx, tracker)

			if err != nil && cl.isRunning() {
				log.Error().
					Err(err).
					Str("camera_id", cl.camera.ID).
					Msg("Video capture failed, retrying")

				cl.camera.RecordError(err.Error())
				reconnectErrors++
				delay := time.Duration(reconnectErrors) * time.Second
				if delay > 10*time.Second {
					delay = 10 * time.Second
				}

				select {
				case <-ctx.Done():
					return
				case <-time.After(delay):
					continue
				}
			}
		}
	}

	log.Info().
		Str("camera_id", cl.camera.ID).
		Msg("Camera capture ended")
}

// runCapture opens the source and drives the detection loop until the
// capture fails or the worker is stopped.
func (cl *CameraLifecycle) runCapture(ctx context.Context, tracker *postprocessing.PresenceTracker) error {
	reader, err := cl.cm.pipeline.Source.Open(cl.camera.ID, cl.camera.URL)
	if err != nil {
		return err
	}
	defer reader.Close()

	return cl.runDetectionLoop(ctx, reader, tracker)
}
