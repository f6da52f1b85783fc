package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsyorkd/cert-agent/internal/api/handlers"
	"github.com/dsyorkd/cert-agent/internal/api/middleware"
	"github.com/dsyorkd/cert-agent/internal/ca"
	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/services"
	"github.com/dsyorkd/cert-agent/internal/store"
)

// Server represents the admin REST API server. It exposes health probes
// and read-only certificate inventory; all mutations go through gRPC.
type Server struct {
	config *config.APIConfig
	logger logger.Interface
	router *gin.Engine
	server *http.Server
}

// New creates a new API server instance
func New(cfg *config.APIConfig, log logger.Interface, st store.Interface, keystore *ca.Keystore, lifecycle *services.Lifecycle) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		config: cfg,
		logger: log,
		router: router,
	}

	s.setupRoutes(st, keystore, lifecycle)
	return s
}

// setupRoutes configures all API routes and middleware
func (s *Server) setupRoutes(st store.Interface, keystore *ca.Keystore, lifecycle *services.Lifecycle) {
	// Global middleware
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.Recovery(s.logger))
	s.router.Use(middleware.RequestID())

	rateLimiter := middleware.NewRateLimiter(nil, s.logger)
	s.router.Use(rateLimiter.RateLimit())

	// Health check endpoints
	healthHandler := handlers.NewHealthHandler(st, keystore)
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/ready", healthHandler.Ready)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		certHandler := handlers.NewCertificatesHandler(lifecycle, s.logger)
		certs := v1.Group("/certificates")
		{
			certs.GET("", certHandler.List)
			certs.GET("/expiring", certHandler.Expiring)
			certs.GET("/:id", certHandler.Get)
		}

		v1.GET("/ca", handlers.NewCAHandler(keystore).Info)
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	readTimeout, err := time.ParseDuration(s.config.ReadTimeout)
	if err != nil {
		readTimeout = 30 * time.Second
	}

	writeTimeout, err := time.ParseDuration(s.config.WriteTimeout)
	if err != nil {
		writeTimeout = 30 * time.Second
	}

	s.server = &http.Server{
		Addr:         s.config.GetAddress(),
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.WithField("address", s.config.GetAddress()).Info("Starting API server")
	return s.server.ListenAndServe()
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}

// Router returns the underlying Gin router for testing
func (s *Server) Router() *gin.Engine {
	return s.router
}
