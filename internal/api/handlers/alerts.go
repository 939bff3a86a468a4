package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secsys-worker-go/internal/models"
	"secsys-worker-go/internal/services/postprocessing"
)

type AlertHandler struct {
	postProcessing *postprocessing.Service
}

func NewAlertHandler(postProcessing *postprocessing.Service) *AlertHandler {
	return &AlertHandler{
		postProcessing: postProcessing,
	}
}

type AlertsResponse struct {
	Alerts []models.Alert `json:"alerts"`
	Count  int            `json:"count"`
}

// ListAlerts returns the recent alert history
// @Summary List recent alerts
// @Description Get the bounded alert history across all cameras, oldest first
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertsResponse
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	alerts := h.postProcessing.RecentAlerts()
	c.JSON(http.StatusOK, AlertsResponse{
		Alerts: alerts,
		Count:  len(alerts),
	})
}
