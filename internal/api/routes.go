package api

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.WorkerInfo)
	s.router.GET("/health", s.healthHandler.HealthCheck)

	cameras := s.router.Group("/cameras")
	{
		cameras.GET("", s.cameraHandler.ListCameras)
		cameras.POST("", s.cameraHandler.StartCamera)
		cameras.GET("/:camera_id", s.cameraHandler.GetCamera)
		cameras.DELETE("/:camera_id", s.cameraHandler.RemoveCamera)
		cameras.POST("/:camera_id/stop", s.cameraHandler.StopCamera)
		cameras.GET("/:camera_id/status", s.cameraHandler.GetCameraStatus)
	}

	s.router.GET("/api/status", s.cameraHandler.GetStatus)
	s.router.GET("/alerts", s.alertHandler.ListAlerts)

	s.router.GET("/video/:camera_id", s.videoHandler.StreamVideo)
	s.router.GET("/snapshot/:camera_id", s.videoHandler.GetSnapshot)
}
