package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/models"
	"secsys-worker-go/internal/services/camera"
)

type CameraHandler struct {
	cameraManager *camera.CameraManager
}

func NewCameraHandler(cameraManager *camera.CameraManager) *CameraHandler {
	return &CameraHandler{
		cameraManager: cameraManager,
	}
}

// StartCamera starts a camera worker
// @Summary Start a camera
// @Description Start detection on a camera source
// @Tags cameras
// @Accept json
// @Produce json
// @Param request body models.CameraRequest true "Camera configuration"
// @Success 200 {object} models.CameraResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cameras [post]
func (h *CameraHandler) StartCamera(c *gin.Context) {
	var req models.CameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.cameraManager.StartCamera(&req)
	if err != nil {
		log.Error().Err(err).Str("camera_id", req.CameraID).Msg("Failed to start camera")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Get camera details
	cam, err := h.cameraManager.GetCamera(req.CameraID)
	if err != nil {
		log.Error().Err(err).Str("camera_id", req.CameraID).Msg("Failed to get camera details")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Camera started but failed to get details"})
		return
	}

	log.Info().
		Str("camera_id", req.CameraID).
		Str("url", req.URL).
		Msg("Camera started successfully")

	c.JSON(http.StatusOK, cam)
}

// StopCamera stops a camera worker
// @Summary Stop a camera
// @Description Stop detection on a camera, the camera stays registered
// @Tags cameras
// @Param camera_id path string true "Camera ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cameras/{camera_id}/stop [post]
func (h *CameraHandler) StopCamera(c *gin.Context) {
	cameraID := c.Param("camera_id")
	if cameraID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "camera_id is required"})
		return
	}

	err := h.cameraManager.StopCamera(cameraID)
	if err != nil {
		log.Error().Err(err).Str("camera_id", cameraID).Msg("Failed to stop camera")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Info().Str("camera_id", cameraID).Msg("Camera stopped successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Camera stopped successfully"})
}

// RemoveCamera stops and removes a camera
// @Summary Remove a camera
// @Description Stop detection on a camera and remove it entirely
// @Tags cameras
// @Param camera_id path string true "Camera ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /cameras/{camera_id} [delete]
func (h *CameraHandler) RemoveCamera(c *gin.Context) {
	cameraID := c.Param("camera_id")
	if cameraID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "camera_id is required"})
		return
	}

	err := h.cameraManager.RemoveCamera(cameraID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	log.Info().Str("camera_id", cameraID).Msg("Camera removed")
	c.JSON(http.StatusOK, gin.H{"message": "Camera removed successfully"})
}

// GetCamera gets camera details
// @Summary Get camera details
// @Description Get details of a specific camera
// @Tags cameras
// @Param camera_id path string true "Camera ID"
// @Success 200 {object} models.CameraResponse
// @Failure 404 {object} ErrorResponse
// @Router /cameras/{camera_id} [get]
func (h *CameraHandler) GetCamera(c *gin.Context) {
	cameraID := c.Param("camera_id")
	if cameraID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "camera_id is required"})
		return
	}

	cam, err := h.cameraManager.GetCamera(cameraID)
	if err != nil {
		log.Error().Err(err).Str("camera_id", cameraID).Msg("Camera not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Camera not found"})
		return
	}

	c.JSON(http.StatusOK, cam)
}

// GetCameraStatus returns the presence flag for a camera
// @Summary Get camera presence status
// @Description Report whether a person is currently detected on the camera
// @Tags cameras
// @Param camera_id path string true "Camera ID"
// @Success 200 {object} models.CameraStatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /cameras/{camera_id}/status [get]
func (h *CameraHandler) GetCameraStatus(c *gin.Context) {
	cameraID := c.Param("camera_id")

	active, err := h.cameraManager.CameraActive(cameraID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camera not found"})
		return
	}

	c.JSON(http.StatusOK, models.CameraStatusResponse{Active: active})
}

// ListCameras lists all cameras
// @Summary List all cameras
// @Description Get list of all cameras with their details
// @Tags cameras
// @Success 200 {array} models.CameraResponse
// @Router /cameras [get]
func (h *CameraHandler) ListCameras(c *gin.Context) {
	cameras := h.cameraManager.ListCameras()
	c.JSON(http.StatusOK, gin.H{
		"cameras": cameras,
		"count":   len(cameras),
	})
}

// GetStatus returns the per-camera presence map
// @Summary Get presence status for all cameras
// @Description Get the active flag for every registered camera
// @Tags status
// @Success 200 {object} map[string]models.CameraStatusResponse
// @Router /api/status [get]
func (h *CameraHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.cameraManager.Statuses())
}
