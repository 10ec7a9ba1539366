// Package server assembles the gin engine for the render service.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/observability/logging"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/handlers"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/routes"
)

// Server wraps the configured gin engine.
type Server struct {
	engine *gin.Engine
	logger *logging.ChanneledLogger
}

// New builds the server with recovery, request logging, and the render
// API routes attached.
func New(renderHandlers *handlers.RenderHandlers, cfg routes.Config, logger *logging.ChanneledLogger) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	routes.Register(engine, renderHandlers, cfg)

	return &Server{engine: engine, logger: logger}
}

// Engine exposes the underlying engine, primarily for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts listening on addr and blocks.
func (s *Server) Run(addr string) error {
	s.logger.Startup().Info("HTTP server listening", "addr", addr)
	return s.engine.Run(addr)
}
