package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/services"
)

type HealthHandler struct {
	cfg       *config.Config
	container *services.ServiceContainer
}

func NewHealthHandler(cfg *config.Config, container *services.ServiceContainer) *HealthHandler {
	return &HealthHandler{
		cfg:       cfg,
		container: container,
	}
}

type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	WorkerID string `json:"worker_id" example:"worker-1"`
}

type WorkerInfoResponse struct {
	WorkerID     string   `json:"worker_id" example:"worker-1"`
	Status       string   `json:"status" example:"running"`
	Version      string   `json:"version" example:"1.0.0"`
	Capabilities []string `json:"capabilities"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"camera not found"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"ok"`
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the worker is healthy and responsive
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		WorkerID: h.cfg.WorkerID,
	})
}

// WorkerInfo godoc
// @Summary Worker information
// @Description Get basic worker information and capabilities
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} WorkerInfoResponse
// @Router / [get]
func (h *HealthHandler) WorkerInfo(c *gin.Context) {
	c.JSON(http.StatusOK, WorkerInfoResponse{
		WorkerID: h.cfg.WorkerID,
		Status:   "running",
		Version:  h.cfg.Version,
		Capabilities: []string{
			"person_detection",
			"mjpeg_streaming",
			"alerting",
			"push_notifications",
		},
	})
}
