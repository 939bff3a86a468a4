package camera

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/models"
)

type fakeReader struct {
	mu         sync.Mutex
	confidence []float32
	index      int
	closed     bool
}

func (r *fakeReader) Read(ctx context.Context) (*models.RawFrame, error) {
	r.mu.Lock()
	if r.index >= len(r.confidence) {
		r.mu.Unlock()
		// Script exhausted, block until the worker is stopped
		<-ctx.Done()
		return nil, ctx.Err()
	}
	id := r.index
	r.index++
	r.mu.Unlock()

	return &models.RawFrame{
		CameraID:  "cam1",
		FrameID:   int64(id),
		Data:      []byte{0xFF, 0xD8, 0xFF},
		Width:     640,
		Height:    360,
		Timestamp: time.Now(),
	}, nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

type fakeSource struct {
	reader *fakeReader
}

func (s *fakeSource) Open(cameraID, source string) (FrameReader, error) {
	return s.reader, nil
}

type fakeDetector struct {
	confidence []float32
	failAll    bool
}

func (d *fakeDetector) Infer(ctx context.Context, frame *models.RawFrame) ([]models.Detection, error) {
	if d.failAll {
		return nil, errors.New("model server unavailable")
	}
	if int(frame.FrameID) >= len(d.confidence) {
		return nil, nil
	}
	conf := d.confidence[frame.FrameID]
	if conf <= 0 {
		return nil, nil
	}
	return []models.Detection{{ClassID: 0, Label: "person", Confidence: conf}}, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	frames []*models.ProcessedFrame
}

func (p *fakePublisher) PublishFrame(frame *models.ProcessedFrame) error {
	p.mu.Lock()
	p.frames = append(p.frames, frame)
	p.mu.Unlock()
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

type fakeAlerts struct {
	mu     sync.Mutex
	onsets []int64
}

func (a *fakeAlerts) HandleOnset(frame *models.RawFrame) bool {
	a.mu.Lock()
	a.onsets = append(a.onsets, frame.FrameID)
	a.mu.Unlock()
	return true
}

func (a *fakeAlerts) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.onsets)
}

func passthroughAnnotate(frame *models.RawFrame, detections []models.Detection, personPresent bool, quality int) ([]byte, error) {
	return frame.Data, nil
}

func testManagerConfig() *config.Config {
	return &config.Config{
		PersonClassID:       0,
		ConfidenceThreshold: 0.6,
		ClearDebounceFrames: 5,
		CycleDelay:          time.Millisecond,
		MaxCameras:          4,
		OutputQuality:       90,
		HealthCheckInterval: time.Minute,
		FrameStaleThreshold: time.Hour,
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached before timeout")
}

func TestCameraWorkerRaisesOnsetsThroughPipeline(t *testing.T) {
	// Onset at frame 0, cleared after six misses, onset again at frame 7
	confidences := []float32{0.9, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.9}

	reader := &fakeReader{confidence: confidences}
	publisher := &fakePublisher{}
	alerts := &fakeAlerts{}

	cm, err := NewCameraManager(testManagerConfig(), Pipeline{
		Source:    &fakeSource{reader: reader},
		Detector:  &fakeDetector{confidence: confidences},
		Annotate:  passthroughAnnotate,
		Publisher: publisher,
		Alerts:    alerts,
	})
	if err != nil {
		t.Fatalf("NewCameraManager: %v", err)
	}
	defer cm.Shutdown(context.Background())

	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://example/stream"}); err != nil {
		t.Fatalf("StartCamera: %v", err)
	}

	waitFor(t, 2*time.Second, func() bool { return alerts.count() == 2 })

	alerts.mu.Lock()
	onsets := append([]int64(nil), alerts.onsets...)
	alerts.mu.Unlock()
	if onsets[0] != 0 || onsets[1] != 7 {
		t.Errorf("onset frames: got %v, want [0 7]", onsets)
	}

	waitFor(t, 2*time.Second, func() bool { return publisher.count() >= len(confidences) })

	resp, err := cm.GetCamera("cam1")
	if err != nil {
		t.Fatalf("GetCamera: %v", err)
	}
	if resp.AlertCount != 2 {
		t.Errorf("alert count: got %d, want 2", resp.AlertCount)
	}
	if !resp.Active {
		t.Error("camera should be active after the final positive frame")
	}
}

func TestCameraWorkerTreatsInferenceFailureAsAbsent(t *testing.T) {
	reader := &fakeReader{confidence: make([]float32, 10)}
	publisher := &fakePublisher{}
	alerts := &fakeAlerts{}

	cm, err := NewCameraManager(testManagerConfig(), Pipeline{
		Source:    &fakeSource{reader: reader},
		Detector:  &fakeDetector{failAll: true},
		Annotate:  passthroughAnnotate,
		Publisher: publisher,
		Alerts:    alerts,
	})
	if err != nil {
		t.Fatalf("NewCameraManager: %v", err)
	}
	defer cm.Shutdown(context.Background())

	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://example/stream"}); err != nil {
		t.Fatalf("StartCamera: %v", err)
	}

	waitFor(t, 2*time.Second, func() bool { return publisher.count() >= 10 })

	if alerts.count() != 0 {
		t.Errorf("got %d onsets, want 0 when every inference fails", alerts.count())
	}

	resp, err := cm.GetCamera("cam1")
	if err != nil {
		t.Fatalf("GetCamera: %v", err)
	}
	if resp.Active {
		t.Error("camera should not be active when inference never succeeds")
	}
	if resp.ErrorCount == 0 {
		t.Error("inference failures should be counted as errors")
	}
}

func TestStartCameraRejectsDuplicatesAndLimit(t *testing.T) {
	cfg := testManagerConfig()
	cfg.MaxCameras = 2

	cm, err := NewCameraManager(cfg, Pipeline{
		Source:    &fakeSource{reader: &fakeReader{}},
		Detector:  &fakeDetector{},
		Annotate:  passthroughAnnotate,
		Publisher: &fakePublisher{},
		Alerts:    &fakeAlerts{},
	})
	if err != nil {
		t.Fatalf("NewCameraManager: %v", err)
	}
	defer cm.Shutdown(context.Background())

	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://a"}); err != nil {
		t.Fatalf("first StartCamera: %v", err)
	}
	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://a"}); err == nil {
		t.Error("starting an active camera twice should fail")
	}
	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam2", URL: "rtsp://b"}); err != nil {
		t.Fatalf("second StartCamera: %v", err)
	}
	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam3", URL: "rtsp://c"}); err == nil {
		t.Error("exceeding the camera limit should fail")
	}

	active, total := cm.GetStats()
	if active != 2 || total != 2 {
		t.Errorf("stats: got active=%d total=%d, want 2/2", active, total)
	}
}

func TestStopCameraKeepsRegistration(t *testing.T) {
	cm, err := NewCameraManager(testManagerConfig(), Pipeline{
		Source:    &fakeSource{reader: &fakeReader{}},
		Detector:  &fakeDetector{},
		Annotate:  passthroughAnnotate,
		Publisher: &fakePublisher{},
		Alerts:    &fakeAlerts{},
	})
	if err != nil {
		t.Fatalf("NewCameraManager: %v", err)
	}
	defer cm.Shutdown(context.Background())

	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://a"}); err != nil {
		t.Fatalf("StartCamera: %v", err)
	}
	if err := cm.StopCamera("cam1"); err != nil {
		t.Fatalf("StopCamera: %v", err)
	}

	resp, err := cm.GetCamera("cam1")
	if err != nil {
		t.Fatalf("GetCamera after stop: %v", err)
	}
	if resp.Status != models.CameraStatusStop {
		t.Errorf("status: got %s, want %s", resp.Status, models.CameraStatusStop)
	}
	if resp.Active {
		t.Error("stopped camera must not report presence")
	}

	if err := cm.StopCamera("missing"); err == nil {
		t.Error("stopping an unknown camera should fail")
	}
}

func TestRestartWhileReadingCamera(t *testing.T) {
	// API handlers read camera state while the lifecycle cycles through
	// stop and start; run with -race
	cm, err := NewCameraManager(testManagerConfig(), Pipeline{
		Source:    &fakeSource{reader: &fakeReader{}},
		Detector:  &fakeDetector{},
		Annotate:  passthroughAnnotate,
		Publisher: &fakePublisher{},
		Alerts:    &fakeAlerts{},
	})
	if err != nil {
		t.Fatalf("NewCameraManager: %v", err)
	}
	defer cm.Shutdown(context.Background())

	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://a"}); err != nil {
		t.Fatalf("StartCamera: %v", err)
	}

	stopReads := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stopReads:
				return
			default:
			}
			if resp, err := cm.GetCamera("cam1"); err == nil {
				if resp.Status != models.CameraStatusStart && resp.Status != models.CameraStatusStop {
					t.Errorf("unexpected status %q", resp.Status)
				}
			}
			cm.Statuses()
		}
	}()

	for i := 0; i < 20; i++ {
		if err := cm.StopCamera("cam1"); err != nil {
			t.Fatalf("StopCamera cycle %d: %v", i, err)
		}
		if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://a"}); err != nil {
			t.Fatalf("StartCamera cycle %d: %v", i, err)
		}
	}

	close(stopReads)
	wg.Wait()

	resp, err := cm.GetCamera("cam1")
	if err != nil {
		t.Fatalf("GetCamera: %v", err)
	}
	if resp.Status != models.CameraStatusStart {
		t.Errorf("status after final start: got %s, want %s", resp.Status, models.CameraStatusStart)
	}
}

func TestStatuses(t *testing.T) {
	cm, err := NewCameraManager(testManagerConfig(), Pipeline{
		Source:    &fakeSource{reader: &fakeReader{}},
		Detector:  &fakeDetector{},
		Annotate:  passthroughAnnotate,
		Publisher: &fakePublisher{},
		Alerts:    &fakeAlerts{},
	})
	if err != nil {
		t.Fatalf("NewCameraManager: %v", err)
	}
	defer cm.Shutdown(context.Background())

	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://a"}); err != nil {
		t.Fatalf("StartCamera: %v", err)
	}

	statuses := cm.Statuses()
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	if _, ok := statuses["cam1"]; !ok {
		t.Error("statuses should include cam1")
	}
}
