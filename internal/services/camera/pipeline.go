package camera

import (
	"context"

	"secsys-worker-go/internal/models"
)

// FrameSource opens frame readers for camera sources.
type FrameSource interface {
	Open(cameraID, source string) (FrameReader, error)
}

// FrameReader delivers frames from an open capture.
type FrameReader interface {
	Read(ctx context.Context) (*models.RawFrame, error)
	Close() error
}

// Detector runs person detection on a raw frame.
type Detector interface {
	Infer(ctx context.Context, frame *models.RawFrame) ([]models.Detection, error)
}

// Annotator draws detections onto a frame and encodes it as JPEG.
type Annotator func(frame *models.RawFrame, detections []models.Detection, personPresent bool, quality int) ([]byte, error)

// FramePublisher receives annotated frames for live streaming.
type FramePublisher interface {
	PublishFrame(frame *models.ProcessedFrame) error
}

// AlertSink handles presence onsets. It returns true when an alert was
// actually raised.
type AlertSink interface {
	HandleOnset(frame *models.RawFrame) bool
}

// Pipeline bundles the per-frame services a camera worker drives.
type Pipeline struct {
	Source    FrameSource
	Detector  Detector
	Annotate  Annotator
	Publisher FramePublisher
	Alerts    AlertSink
}
