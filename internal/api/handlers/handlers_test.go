package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/models"
	"secsys-worker-go/internal/services/camera"
	"secsys-worker-go/internal/services/postprocessing"
)

type stubReader struct{}

func (stubReader) Read(ctx context.Context) (*models.RawFrame, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stubReader) Close() error { return nil }

type stubSource struct{}

func (stubSource) Open(cameraID, source string) (camera.FrameReader, error) {
	return stubReader{}, nil
}

type stubDetector struct{}

func (stubDetector) Infer(ctx context.Context, frame *models.RawFrame) ([]models.Detection, error) {
	return nil, nil
}

type stubPublisher struct{}

func (stubPublisher) PublishFrame(frame *models.ProcessedFrame) error { return nil }

type stubSnapshots struct{}

func (stubSnapshots) SaveEvidence(frame *models.RawFrame, now time.Time) string {
	return "static/snapshots/stub.jpg"
}

type stubNotifier struct{}

func (stubNotifier) DispatchPush(cameraID string)    {}
func (stubNotifier) PublishAlert(alert models.Alert) {}

func testConfig() *config.Config {
	return &config.Config{
		PersonClassID:       0,
		ConfidenceThreshold: 0.6,
		ClearDebounceFrames: 5,
		AlertCooldown:       7 * time.Second,
		AlertLogCapacity:    50,
		CycleDelay:          time.Millisecond,
		MaxCameras:          4,
		HealthCheckInterval: time.Minute,
		FrameStaleThreshold: time.Hour,
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *camera.CameraManager, *postprocessing.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()

	postProcessing, err := postprocessing.NewService(cfg, stubSnapshots{}, stubNotifier{})
	if err != nil {
		t.Fatalf("postprocessing.NewService: %v", err)
	}

	cm, err := camera.NewCameraManager(cfg, camera.Pipeline{
		Source:   stubSource{},
		Detector: stubDetector{},
		Annotate: func(frame *models.RawFrame, detections []models.Detection, personPresent bool, quality int) ([]byte, error) {
			return frame.Data, nil
		},
		Publisher: stubPublisher{},
		Alerts:    postProcessing,
	})
	if err != nil {
		t.Fatalf("NewCameraManager: %v", err)
	}
	t.Cleanup(func() { cm.Shutdown(context.Background()) })

	cameraHandler := NewCameraHandler(cm)
	alertHandler := NewAlertHandler(postProcessing)

	router := gin.New()
	router.GET("/cameras", cameraHandler.ListCameras)
	router.POST("/cameras", cameraHandler.StartCamera)
	router.GET("/cameras/:camera_id", cameraHandler.GetCamera)
	router.DELETE("/cameras/:camera_id", cameraHandler.RemoveCamera)
	router.POST("/cameras/:camera_id/stop", cameraHandler.StopCamera)
	router.GET("/cameras/:camera_id/status", cameraHandler.GetCameraStatus)
	router.GET("/api/status", cameraHandler.GetStatus)
	router.GET("/alerts", alertHandler.ListAlerts)

	return router, cm, postProcessing
}

func TestStartAndGetCamera(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body, _ := json.Marshal(models.CameraRequest{CameraID: "cam1", URL: "rtsp://example/stream"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cameras", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("POST /cameras: got %d, body %s", w.Code, w.Body.String())
	}

	var resp models.CameraResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.CameraID != "cam1" {
		t.Errorf("camera_id: got %q", resp.CameraID)
	}
	if resp.Status != models.CameraStatusStart {
		t.Errorf("status: got %s, want %s", resp.Status, models.CameraStatusStart)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cameras/cam1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /cameras/cam1: got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cameras/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /cameras/missing: got %d, want 404", w.Code)
	}
}

func TestStartCameraValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cameras", bytes.NewReader([]byte(`{"url":"rtsp://a"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("missing camera_id: got %d, want 400", w.Code)
	}
}

func TestCameraStatusEndpoints(t *testing.T) {
	router, cm, _ := newTestRouter(t)

	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://a"}); err != nil {
		t.Fatalf("StartCamera: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cameras/cam1/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET status: got %d", w.Code)
	}
	var status models.CameraStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal status: %v", err)
	}
	if status.Active {
		t.Error("camera with no detections should not be active")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/status: got %d", w.Code)
	}
	var all map[string]models.CameraStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("unmarshal statuses: %v", err)
	}
	if _, ok := all["cam1"]; !ok {
		t.Error("statuses should include cam1")
	}
}

func TestListAlerts(t *testing.T) {
	router, _, postProcessing := newTestRouter(t)

	postProcessing.HandleOnset(&models.RawFrame{CameraID: "cam1"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alerts", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /alerts: got %d", w.Code)
	}

	var resp AlertsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal alerts: %v", err)
	}
	if resp.Count != 1 || len(resp.Alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", resp.Count)
	}
	if resp.Alerts[0].Message != "Person detected on CAM1" {
		t.Errorf("alert message: got %q", resp.Alerts[0].Message)
	}
	if resp.Alerts[0].SnapshotPath != "static/snapshots/stub.jpg" {
		t.Errorf("snapshot path: got %q", resp.Alerts[0].SnapshotPath)
	}
}

func TestStopAndRemoveCamera(t *testing.T) {
	router, cm, _ := newTestRouter(t)

	if err := cm.StartCamera(&models.CameraRequest{CameraID: "cam1", URL: "rtsp://a"}); err != nil {
		t.Fatalf("StartCamera: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cameras/cam1/stop", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("POST stop: got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cameras/cam1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("DELETE: got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cameras/cam1", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET removed camera: got %d, want 404", w.Code)
	}
}
