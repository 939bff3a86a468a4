package models

import (
	"time"
)

// Detection represents a single detection returned by the AI model server
type Detection struct {
	ClassID    int32     `json:"class_id"`
	Label      string    `json:"label"`
	Confidence float32   `json:"confidence"`
	BBox       []float32 `json:"bbox,omitempty"`
}

// RawFrame is a frame as read from the capture source (BGR bytes)
type RawFrame struct {
	CameraID  string
	FrameID   int64
	Data      []byte
	Width     int
	Height    int
	Timestamp time.Time
}

// ProcessedFrame is an annotated frame ready for publishing
type ProcessedFrame struct {
	CameraID   string
	FrameID    int64
	Data       []byte
	Width      int
	Height     int
	Timestamp  time.Time
	Detections []Detection
}

// PersonPositive reports whether any detection is a person above the
// configured confidence threshold.
func PersonPositive(detections []Detection, personClassID int32, threshold float32) bool {
	for _, det := range detections {
		if det.ClassID == personClassID && det.Confidence > threshold {
			return true
		}
	}
	return false
}
