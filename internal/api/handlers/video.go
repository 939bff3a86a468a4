package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/services/publisher/mjpeg"
	"secsys-worker-go/internal/services/snapshot"
)

type VideoHandler struct {
	publisher   *mjpeg.Publisher
	snapshotSvc *snapshot.Service
}

func NewVideoHandler(publisher *mjpeg.Publisher, snapshotSvc *snapshot.Service) *VideoHandler {
	return &VideoHandler{
		publisher:   publisher,
		snapshotSvc: snapshotSvc,
	}
}

// StreamVideo streams annotated frames as MJPEG
// @Summary Stream live video
// @Description Stream the annotated camera feed as multipart MJPEG
// @Tags video
// @Produce mpfd
// @Param camera_id path string true "Camera ID"
// @Success 200 {string} string "MJPEG stream"
// @Failure 400 {object} ErrorResponse
// @Router /video/{camera_id} [get]
func (h *VideoHandler) StreamVideo(c *gin.Context) {
	cameraID := c.Param("camera_id")
	if cameraID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "camera_id is required"})
		return
	}

	h.publisher.StreamMJPEGHTTP(c.Writer, c.Request, cameraID)
}

// GetSnapshot serves the latest frame for a camera
// @Summary Get latest snapshot
// @Description Get the most recent frame for a camera as a single JPEG
// @Tags video
// @Produce jpeg
// @Param camera_id path string true "Camera ID"
// @Success 200 {file} image/jpeg
// @Failure 404 {object} ErrorResponse
// @Router /snapshot/{camera_id} [get]
func (h *VideoHandler) GetSnapshot(c *gin.Context) {
	cameraID := c.Param("camera_id")
	if cameraID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "camera_id is required"})
		return
	}

	if jpeg, ok := h.publisher.Latest(cameraID); ok {
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "image/jpeg", jpeg)
		return
	}

	// No live frame yet, fall back to the stored snapshot
	path := h.snapshotSvc.LatestPath(cameraID)
	if _, err := os.Stat(path); err != nil {
		log.Debug().Str("camera_id", cameraID).Msg("No snapshot available")
		c.JSON(http.StatusNotFound, gin.H{"error": "No snapshot available for camera"})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.File(path)
}
