package models

// Alert is an immutable record of a raised person alert.
// Timestamp is wall-clock at second resolution; ordering inside the alert
// log is append order, not timestamp order.
type Alert struct {
	ID           string `json:"id"`
	CameraID     string `json:"camera_id"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	SnapshotPath string `json:"image,omitempty"`
}

// AlertTimestampFormat is the wall-clock format used in alert records.
const AlertTimestampFormat = "2006-01-02 15:04:05"

// SnapshotTimestampFormat is the filename-safe timestamp format used for
// historical snapshot paths.
const SnapshotTimestampFormat = "2006-01-02_15-04-05"

// PushNotification is the payload dispatched to the push delivery backend.
type PushNotification struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Token    string `json:"token"`
	CameraID string `json:"camera_id"`
}
