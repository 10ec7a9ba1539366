// Package handlers provides HTTP handlers for the render API.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oakfieldmedia/richtext-go/internal/application/services"
	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/observability/logging"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/middleware"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/templates"
)

// RenderHandlers handles HTTP requests for document rendering. A thin
// wrapper around RenderService.
type RenderHandlers struct {
	renderService *services.RenderService
	logger        *logging.ChanneledLogger
}

// NewRenderHandlers creates a new render handlers instance.
func NewRenderHandlers(renderService *services.RenderService, logger *logging.ChanneledLogger) *RenderHandlers {
	return &RenderHandlers{
		renderService: renderService,
		logger:        logger,
	}
}

// RenderRequest is the request body for POST /api/v1/render.
type RenderRequest struct {
	Document *document.Node `json:"document" binding:"required"`
	Variant  string         `json:"variant"`
}

// PostRender handles POST /api/v1/render: body carries the parsed
// rich-text document; the response is an HTML fragment.
func (h *RenderHandlers) PostRender(c *gin.Context) {
	start := time.Now()
	requestID := middleware.GetRequestID(c)

	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	variant, ok := parseVariant(req.Variant)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown variant: " + req.Variant})
		return
	}

	html, err := h.renderService.RenderDocument(c.Request.Context(), req.Document, variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Render().Info("Render request completed",
		"requestId", requestID,
		"variant", string(variant),
		"bytes", len(html),
		"duration", time.Since(start),
	)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func parseVariant(raw string) (templates.Variant, bool) {
	switch templates.Variant(raw) {
	case templates.VariantPositional, "":
		return templates.VariantPositional, true
	case templates.VariantCompact:
		return templates.VariantCompact, true
	case templates.VariantCard:
		return templates.VariantCard, true
	default:
		return "", false
	}
}
