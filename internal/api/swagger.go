package api

import (
	"net/http"

	_ "secsys-worker-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "SecSys Worker API",
			"version":     s.config.Version,
			"description": "Person detection worker API for camera streams, alerting, and MJPEG publishing",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health":   "/health",
				"cameras":  "/cameras",
				"status":   "/api/status",
				"alerts":   "/alerts",
				"video":    "/video/{camera_id}",
				"snapshot": "/snapshot/{camera_id}",
			},
			"worker_id": s.config.WorkerID,
			"port":      s.config.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}
