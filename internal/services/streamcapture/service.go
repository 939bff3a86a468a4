package streamcapture

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/models"
)

// Service opens OpenCV video captures for cameras
type Service struct {
	cfg *config.Config
}

// NewService creates a new stream capture service
func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

// Open opens a capture for the camera source. The source may be an RTSP
// URL or a numeric device index. Failure to open is fatal for the
// camera's worker and is returned to the caller.
func (s *Service) Open(cameraID, source string) (*Capture, error) {
	log.Info().
		Str("camera_id", cameraID).
		Str("source", source).
		Msg("Opening OpenCV VideoCapture")

	var cap *gocv.VideoCapture
	var err error

	if idx, convErr := strconv.Atoi(source); convErr == nil {
		cap, err = gocv.OpenVideoCapture(idx)
	} else {
		cap, err = gocv.OpenVideoCapture(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open capture %s: %w", source, err)
	}

	if !cap.IsOpened() {
		cap.Close()
		return nil, fmt.Errorf("video capture is not opened for camera %s", cameraID)
	}

	// Minimal buffer for low latency
	cap.Set(gocv.VideoCaptureBufferSize, 1)

	actualFPS := cap.Get(gocv.VideoCaptureFPS)
	actualWidth := cap.Get(gocv.VideoCaptureFrameWidth)
	actualHeight := cap.Get(gocv.VideoCaptureFrameHeight)

	log.Info().
		Str("camera_id", cameraID).
		Float64("actual_fps", actualFPS).
		Float64("actual_width", actualWidth).
		Float64("actual_height", actualHeight).
		Msg("VideoCapture opened successfully")

	return &Capture{
		cameraID: cameraID,
		cap:      cap,
		img:      gocv.NewMat(),
	}, nil
}

// Capture is an open video capture for a single camera
type Capture struct {
	cameraID string
	cap      *gocv.VideoCapture
	frameID  int64
	img      gocv.Mat
}

// Read returns the next frame as BGR bytes. Errors are transient: the
// caller skips the cycle and retries, it never tears the worker down.
func (c *Capture) Read(ctx context.Context) (*models.RawFrame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ok := c.cap.Read(&c.img); !ok {
		return nil, fmt.Errorf("frame read failed for camera %s", c.cameraID)
	}

	if c.img.Empty() {
		return nil, fmt.Errorf("empty frame from camera %s", c.cameraID)
	}

	data := c.img.ToBytes()
	frameCopy := make([]byte, len(data))
	copy(frameCopy, data)

	c.frameID++
	return &models.RawFrame{
		CameraID:  c.cameraID,
		FrameID:   c.frameID,
		Data:      frameCopy,
		Width:     c.img.Cols(),
		Height:    c.img.Rows(),
		Timestamp: time.Now(),
	}, nil
}

// Close releases the capture device
func (c *Capture) Close() error {
	c.img.Close()
	return c.cap.Close()
}
