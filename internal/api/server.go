// Package api provides the HTTP API server for Portside. It uses the
// Echo framework to serve the voice-agent tool endpoints and a
// WebSocket stream that mirrors every tool action to connected
// dashboards in real time.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"portside/internal/config"
	"portside/internal/ops"
)

// Server represents the Portside API server.
type Server struct {
	echo   *echo.Echo
	config *config.Config
	ops    *ops.Service
	wsHub  *Hub // WebSocket hub for real-time updates
}

// debugLog logs a message only if debug mode is enabled in config
func (s *Server) debugLog(format string, args ...interface{}) {
	if s.config.Server.Debug {
		log.Printf(format, args...)
	}
}

// New creates a new API server over the given stores. The WebSocket
// hub is started in the background and wired into the tool operations
// layer as its broadcaster.
func New(cfg *config.Config, stores ops.Stores) *Server {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug

	e.HTTPErrorHandler = HTTPErrorHandler
	e.Validator = NewRequestValidator()

	hub := NewHub()
	go hub.Run()

	server := &Server{
		echo:   e,
		config: cfg,
		ops:    ops.NewService(stores, hub),
		wsHub:  hub,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	// Logger middleware
	s.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${time_rfc3339}] ${status} ${method} ${uri} (${latency_human})\n",
	}))

	// Recover middleware
	s.echo.Use(middleware.Recover())

	// Security headers middleware
	s.echo.Use(SecurityHeaders)

	// CORS middleware
	if len(s.config.Security.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.config.Security.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Rate limiting
	if s.config.Security.RateLimit > 0 {
		s.echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(
			rate.Limit(s.config.Security.RateLimit),
		)))
	}

	// Content negotiation middleware
	s.echo.Use(ValidateContentType)
	s.echo.Use(ValidateAcceptHeader)
}

// setupRoutes configures the tool endpoints and the event stream.
func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", s.healthCheck)

	// WebSocket event stream for dashboards
	s.echo.GET("/ws", s.handleWebSocket)

	api := s.echo.Group("/api")
	api.GET("/health", s.healthCheck)
	api.GET("/dashboard", s.dashboard)
	api.GET("/ws/stats", s.websocketStats)

	// Voice-agent tool endpoints
	api.POST("/containers/status", s.containerStatus)
	api.POST("/containers/update", s.updateContainer)
	api.POST("/gatepass/generate", s.generateGatepass)
	api.POST("/vessels/schedule", s.vesselSchedule)
	api.POST("/ssr/submit", s.submitSSR)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	fmt.Printf("🚀 Starting Portside API Server\n")
	fmt.Printf("   Address: http://%s\n", addr)
	fmt.Printf("   Storage: %s\n", s.config.Storage.Backend)
	fmt.Printf("   Debug: %v\n", s.config.Server.Debug)
	fmt.Println()

	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	if s.config.Server.TLSEnabled {
		return s.echo.StartTLS(addr, s.config.Server.TLSCert, s.config.Server.TLSKey)
	}

	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	fmt.Println("\n🛑 Shutting down Portside API Server...")

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	fmt.Println("✓ Server shutdown complete")
	return nil
}

// ServeHTTP allows Server to implement http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
