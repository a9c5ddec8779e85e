// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
)

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	log        *logrus.Logger
	deps       routes.Deps
	gin        *gin.Engine
	httpServer *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, log *logrus.Logger, deps routes.Deps) *Server {
	return &Server{
		config: cfg,
		log:    log,
		deps:   deps,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on environment
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin engine
	s.gin = gin.New()

	// Setup middleware
	s.setupMiddleware()

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.log.Infof("HTTP server starting on port %s", s.config.Server.Port)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.log.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	// Recovery middleware - recover from panics
	s.gin.Use(gin.Recovery())

	// Custom logger middleware
	s.gin.Use(middleware.Logger(s.log))

	// Request ID middleware
	s.gin.Use(middleware.RequestID())

	// CORS middleware
	s.gin.Use(middleware.CORS(s.config))

	// Security headers middleware
	s.gin.Use(middleware.SecurityHeaders())
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.gin.GET("/health", s.healthCheck)

	// API v1 routes
	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, s.deps)

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products": "/api/v1/products",
					"cart":     "/api/v1/cart",
					"checkout": "/api/v1/checkout",
					"orders":   "/api/v1/orders/last",
				},
			})
		})
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
		"catalog":     s.config.Catalog.Provider,
		"storage":     s.config.Storage.Backend,
	})
}
