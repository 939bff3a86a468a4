package models

import (
	"sync"
	"time"
)

// CameraStatus represents the camera operational status
type CameraStatus string

const (
	CameraStatusStart CameraStatus = "start"
	CameraStatusStop  CameraStatus = "stop"
)

// String returns the string representation of CameraStatus
func (cs CameraStatus) String() string {
	return string(cs)
}

// Camera represents a single camera with its detection pipeline state.
// It is owned by exactly one CameraLifecycle; the mutex guards the fields
// that the API layer reads while the worker loop mutates them.
type Camera struct {
	ID        string
	URL       string
	CreatedAt time.Time

	mu sync.RWMutex

	// Lifecycle status, exposed through Status()
	status CameraStatus

	// Presence state, exposed through Active()
	active bool

	// Worker statistics
	FrameCount    int64
	ErrorCount    int64
	AlertCount    int64
	LastFrameTime time.Time
	LastError     string
}

// SetStatus updates the lifecycle status. The worker lifecycle writes it
// while API handlers read it, so it lives under the mutex.
func (c *Camera) SetStatus(status CameraStatus) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

// Status returns the current lifecycle status.
func (c *Camera) Status() CameraStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// SetActive updates the externally visible presence flag.
func (c *Camera) SetActive(active bool) {
	c.mu.Lock()
	c.active = active
	c.mu.Unlock()
}

// Active reports whether a person is currently present on this camera.
func (c *Camera) Active() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// RecordFrame updates per-frame statistics.
func (c *Camera) RecordFrame(ts time.Time) {
	c.mu.Lock()
	c.FrameCount++
	c.LastFrameTime = ts
	c.mu.Unlock()
}

// RecordError updates the error counter and last error message.
func (c *Camera) RecordError(msg string) {
	c.mu.Lock()
	c.ErrorCount++
	c.LastError = msg
	c.mu.Unlock()
}

// RecordAlert bumps the per-camera alert counter.
func (c *Camera) RecordAlert() {
	c.mu.Lock()
	c.AlertCount++
	c.mu.Unlock()
}

// Stats returns a consistent copy of the mutable counters.
func (c *Camera) Stats() (frames, errors, alerts int64, lastFrame time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.FrameCount, c.ErrorCount, c.AlertCount, c.LastFrameTime
}

// CameraRequest is the payload for starting a camera
type CameraRequest struct {
	CameraID string `json:"camera_id" binding:"required"`
	URL      string `json:"url" binding:"required"`
}

// CameraResponse is the API representation of a camera
type CameraResponse struct {
	CameraID      string       `json:"camera_id"`
	URL           string       `json:"url"`
	Status        CameraStatus `json:"status"`
	Active        bool         `json:"active"`
	CreatedAt     time.Time    `json:"created_at"`
	LastFrameTime time.Time    `json:"last_frame_time"`
	FrameCount    int64        `json:"frame_count"`
	ErrorCount    int64        `json:"error_count"`
	AlertCount    int64        `json:"alert_count"`
	MJPEGUrl      string       `json:"mjpeg_url"`
	SnapshotUrl   string       `json:"snapshot_url"`
}

// CameraStatusResponse is the minimal per-camera presence view
type CameraStatusResponse struct {
	Active bool `json:"active"`
}
