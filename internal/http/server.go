// README: API gateway; holds the module services and builds the HTTP handler.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"travelagent/internal/config"
	"travelagent/internal/modules/suggestion"
	"travelagent/internal/modules/weather"
)

type ServerDeps struct {
	Suggestion *suggestion.Service
	Weather    *weather.Service
	Logger     *slog.Logger
	HTTP       config.HTTPConfig
	AITimeout  time.Duration
}

type Server struct {
	suggestion *suggestion.Service
	weather    *weather.Service
	logger     *slog.Logger
	cfg        config.HTTPConfig
	aiTimeout  time.Duration
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		suggestion: deps.Suggestion,
		weather:    deps.Weather,
		logger:     logger.With("component", "http"),
		cfg:        deps.HTTP,
		aiTimeout:  deps.AITimeout,
	}
}

func (s *Server) Routes() http.Handler {
	return NewRouter(s)
}

// HTTPServer wraps Routes in an http.Server with the configured timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:           s.cfg.Addr,
		Handler:        s.Routes(),
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
