package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Application
	Version     string
	Environment string
	WorkerID    string
	Port        int
	LogLevel    string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// AI detection model server
	AIGRPCURL string
	AITimeout time.Duration

	// NATS (push notifications and alert fan-out)
	NatsURL            string
	NatsConnectTimeout time.Duration
	NatsReconnectWait  time.Duration
	NatsMaxReconnects  int

	// Detection pipeline
	PersonClassID       int
	ConfidenceThreshold float64
	ClearDebounceFrames int
	AlertCooldown       time.Duration
	AlertLogCapacity    int
	CycleDelay          time.Duration

	// Cameras started at boot, "cam1=rtsp://...;cam2=0"
	CameraSources map[string]string
	MaxCameras    int

	// Snapshots
	SnapshotDir     string
	SnapshotBackend string // "disk" or "s3"
	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioBucket     string

	// Push notifications
	PushToken     string
	NotifySubject string
	AlertsSubject string

	// Stream output
	OutputQuality int

	// Health check
	HealthCheckInterval time.Duration
	FrameStaleThreshold time.Duration

	// Graceful shutdown
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:     getEnv("VERSION", "1.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		WorkerID:    getEnv("WORKER_ID", "secsys-1"),
		Port:        getEnvInt("PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Logdy
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", false),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8081),

		// AI detection model server
		AIGRPCURL: getEnv("AI_GRPC_URL", "localhost:50052"),
		AITimeout: getEnvDuration("AI_TIMEOUT", 5*time.Second),

		// NATS
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsConnectTimeout: getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:  getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:  getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited

		// Detection pipeline
		PersonClassID:       getEnvInt("PERSON_CLASS_ID", 0),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.6),
		ClearDebounceFrames: getEnvInt("CLEAR_DEBOUNCE_FRAMES", 5),
		AlertCooldown:       getEnvDuration("ALERT_COOLDOWN", 7*time.Second),
		AlertLogCapacity:    getEnvInt("ALERT_LOG_CAPACITY", 50),
		CycleDelay:          getEnvDuration("CYCLE_DELAY", 50*time.Millisecond),

		// Cameras
		CameraSources: parseCameraSources(getEnv("CAMERA_SOURCES", "")),
		MaxCameras:    getEnvInt("MAX_CAMERAS", 10),

		// Snapshots
		SnapshotDir:     getEnv("SNAPSHOT_DIR", "static"),
		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", "disk"),
		MinioEndpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:  getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:  getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:     getEnv("MINIO_BUCKET", "snapshots"),

		// Push notifications
		PushToken:     getEnv("PUSH_TOKEN", ""),
		NotifySubject: getEnv("NOTIFY_SUBJECT", "notifications.push"),
		AlertsSubject: getEnv("ALERTS_SUBJECT", "alerts"),

		// Stream output
		OutputQuality: getEnvInt("OUTPUT_QUALITY", 90),

		// Health check
		HealthCheckInterval: getEnvDuration("HEALTH_CHECK_INTERVAL", 30*time.Second),
		FrameStaleThreshold: getEnvDuration("FRAME_STALE_THRESHOLD", 10*time.Second),

		// Graceful shutdown
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// GetMJPEGURL returns the MJPEG stream path for a camera
func (c *Config) GetMJPEGURL(cameraID string) string {
	return fmt.Sprintf("/video/%s", cameraID)
}

// GetSnapshotURL returns the latest-snapshot path for a camera
func (c *Config) GetSnapshotURL(cameraID string) string {
	return fmt.Sprintf("/snapshot/%s", cameraID)
}

// parseCameraSources parses "cam1=rtsp://host/stream;cam2=0" into a map.
// Values may be RTSP URLs or numeric device indexes.
func parseCameraSources(raw string) map[string]string {
	sources := make(map[string]string)
	if raw == "" {
		return sources
	}

	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			log.Warn().Str("entry", entry).Msg("Ignoring malformed CAMERA_SOURCES entry")
			continue
		}
		sources[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	return sources
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
