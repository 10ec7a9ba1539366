// Package routes wires the render API endpoints onto the gin engine.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/handlers"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/middleware"
	"github.com/oakfieldmedia/richtext-go/static"
)

// Config carries the route-level configuration.
type Config struct {
	AllowedOrigins []string
	JWTSecret      string
	// MaxDocumentBytes caps render request bodies; zero leaves them
	// unbounded.
	MaxDocumentBytes int64
}

// Register attaches middleware, API routes, and the static behavior
// module to the engine.
func Register(r *gin.Engine, renderHandlers *handlers.RenderHandlers, cfg Config) {
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	api := r.Group("/api/v1")
	api.GET("/health", handlers.GetHealth)

	protected := api.Group("")
	protected.Use(middleware.BearerAuth(cfg.JWTSecret))
	protected.Use(bodyLimit(cfg.MaxDocumentBytes))
	protected.POST("/render", renderHandlers.PostRender)

	// Shared gallery behavior module referenced by rendered image grids.
	staticServer := http.StripPrefix("/static/", http.FileServer(http.FS(static.Assets)))
	r.GET("/static/*filepath", gin.WrapH(staticServer))
}

// bodyLimit wraps request bodies in a MaxBytesReader so an oversized
// document fails the JSON bind instead of being read to completion.
func bodyLimit(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if max > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		}
		c.Next()
	}
}
