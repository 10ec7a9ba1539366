package services

import (
	"context"
	"errors"
	"time"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/rendering"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/observability/logging"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/templates"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/templates/elements/widgets"
)

// ErrNilDocument is returned when a render is requested without a document.
var ErrNilDocument = errors.New("document is nil")

// RenderService orchestrates one document render: scanner passes,
// spreadsheet materialization, then the traversal over a fresh render
// context. State is per-call; the service itself is safe for concurrent
// use.
type RenderService struct {
	logger       *logging.ChanneledLogger
	materializer *SpreadsheetMaterializer
	businessID   string
}

// NewRenderService creates a render service. businessID is the
// payment-recipient identifier forwarded into commerce forms.
func NewRenderService(logger *logging.ChanneledLogger, materializer *SpreadsheetMaterializer, businessID string) *RenderService {
	return &RenderService{
		logger:       logger,
		materializer: materializer,
		businessID:   businessID,
	}
}

// RenderDocument renders a document with the requested variant and
// returns the HTML fragment. The compact and card variants skip the scan
// and materialization phases entirely; they carry no positional state.
func (s *RenderService) RenderDocument(ctx context.Context, doc *document.Node, variant templates.Variant) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}

	switch variant {
	case templates.VariantCompact:
		return templates.NewCompactRenderer().Render(doc), nil
	case templates.VariantCard:
		return templates.NewCardRenderer().Render(doc), nil
	}

	start := time.Now()

	assets := CollectAssetBlocks(doc)
	slides := CollectInlineEntries(doc, document.ContentTypeImageSlideshow)
	sheets := CollectInlineEntries(doc, document.ContentTypeSpreadsheetList)

	fragments := s.materializer.Materialize(ctx, sheets)

	rc := rendering.NewRenderContext(len(assets), fragments)
	rc.SlideshowHTML = widgets.BuildSlideshowGrid(slides)

	renderer := templates.NewDocumentRenderer(rc, templates.Options{
		PaymentBusinessID: s.businessID,
	})
	html := renderer.Render(doc)

	s.logger.Perf().Debug("Document render completed",
		"assets", len(assets),
		"slideshowEntries", len(slides),
		"spreadsheetEntries", len(sheets),
		"duration", time.Since(start),
	)
	return html, nil
}
