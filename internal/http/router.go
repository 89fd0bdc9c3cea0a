// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"

	"travelagent/internal/http/handlers"
	"travelagent/internal/http/middleware"
)

func NewRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	maxUpload := s.cfg.MaxUploadMB << 20

	r := gin.New()
	r.MaxMultipartMemory = maxUpload
	r.Use(
		middleware.RequestID(),
		middleware.Logging(s.logger),
		middleware.Recovery(s.logger),
		middleware.CORS(s.cfg.AllowedOrigins),
	)

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		suggestionHandler := handlers.NewSuggestionHandler(s.suggestion, s.aiTimeout, maxUpload)
		api.POST("/suggest-by-location", suggestionHandler.ByLocation)
		api.POST("/suggest-by-image", suggestionHandler.ByImage)

		weatherHandler := handlers.NewWeatherHandler(s.weather, s.aiTimeout)
		api.POST("/weather", weatherHandler.Get)
	}

	return r
}
