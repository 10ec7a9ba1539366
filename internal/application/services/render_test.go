package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/tabular"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/templates"
)

func newRenderService() *RenderService {
	logger := quietLogger()
	materializer := NewSpreadsheetMaterializer(nil, tabular.NewCSVParser(), logger)
	return NewRenderService(logger, materializer, "payments@example.net")
}

func textPara(value string) *document.Node {
	return &document.Node{
		NodeType: document.NodeParagraph,
		Content:  []*document.Node{{NodeType: document.NodeText, Value: value}},
	}
}

func TestRenderDocumentNil(t *testing.T) {
	t.Parallel()

	_, err := newRenderService().RenderDocument(context.Background(), nil, templates.VariantPositional)
	assert.ErrorIs(t, err, ErrNilDocument)
}

func TestRenderDocumentAssetPositions(t *testing.T) {
	t.Parallel()

	wide := func(id string) *document.Node {
		return &document.Node{
			NodeType: document.NodeEmbeddedAssetBlock,
			Data: &document.NodeData{Target: &document.Target{Asset: &document.Asset{
				ID: id, URL: "//images.example.net/" + id + ".jpg", Width: 800, Height: 400,
			}}},
		}
	}
	doc := &document.Node{
		NodeType: document.NodeDocument,
		Content:  []*document.Node{wide("a1"), wide("a2"), wide("a3")},
	}

	html, err := newRenderService().RenderDocument(context.Background(), doc, templates.VariantPositional)
	require.NoError(t, err)

	// first and last center, the middle one floats right
	assert.Equal(t, 2, strings.Count(html, "text-align: center"))
	assert.Equal(t, 1, strings.Count(html, "float: right"))
}

func TestRenderDocumentSlideshowRendersOnce(t *testing.T) {
	t.Parallel()

	slide := func(id, title string) *document.Node {
		return &document.Node{
			NodeType: document.NodeEmbeddedEntryInline,
			Data: &document.NodeData{Target: &document.Target{Entry: &document.Entry{
				ID:          id,
				ContentType: document.ContentTypeImageSlideshow,
				Fields:      map[string]any{"title": title, "link": "/s/" + id},
			}}},
		}
	}
	doc := &document.Node{
		NodeType: document.NodeDocument,
		Content: []*document.Node{
			{NodeType: document.NodeParagraph, Content: []*document.Node{slide("s1", "One")}},
			{NodeType: document.NodeParagraph, Content: []*document.Node{slide("s2", "Two")}},
		},
	}

	html, err := newRenderService().RenderDocument(context.Background(), doc, templates.VariantPositional)
	require.NoError(t, err)

	// one grid holding both cards, at the first insertion point
	assert.Equal(t, 1, strings.Count(html, `class="slideshow-grid"`))
	assert.Contains(t, html, "<h4>One</h4>")
	assert.Contains(t, html, "<h4>Two</h4>")
}

func TestRenderDocumentHeadingCounterSpansGridTitles(t *testing.T) {
	t.Parallel()

	grid := &document.Node{
		NodeType: document.NodeEmbeddedEntryInline,
		Data: &document.NodeData{Target: &document.Target{Entry: &document.Entry{
			ID:          "g1",
			ContentType: document.ContentTypeImageGrid,
			Fields: map[string]any{
				"title":  "Gallery",
				"images": []*document.Asset{{ID: "i1", URL: "//images.example.net/i1.jpg", Width: 800, Height: 600}},
			},
		}}},
	}
	doc := &document.Node{
		NodeType: document.NodeDocument,
		Content: []*document.Node{
			{NodeType: document.NodeParagraph, Content: []*document.Node{grid}},
			{NodeType: document.NodeHeading2, Content: []*document.Node{{NodeType: document.NodeText, Value: "After"}}},
		},
	}

	html, err := newRenderService().RenderDocument(context.Background(), doc, templates.VariantPositional)
	require.NoError(t, err)

	// the grid title consumed the first-heading slot
	assert.Contains(t, html, "<h3>Gallery</h3>")
	assert.Contains(t, html, `<h2 style="margin-top: 2rem;">After</h2>`)
}

func TestRenderDocumentCommerceFormUsesConfiguredBusiness(t *testing.T) {
	t.Parallel()

	shop := &document.Node{
		NodeType: document.NodeEmbeddedEntryBlock,
		Data: &document.NodeData{Target: &document.Target{Entry: &document.Entry{
			ID:          "shop-1",
			ContentType: document.ContentTypeECommerce,
			Fields:      map[string]any{"title": "Print", "slug": "print", "price": 12.0},
		}}},
	}
	doc := &document.Node{NodeType: document.NodeDocument, Content: []*document.Node{shop}}

	html, err := newRenderService().RenderDocument(context.Background(), doc, templates.VariantPositional)
	require.NoError(t, err)
	assert.Contains(t, html, `name="business" value="payments@example.net"`)
}

func TestRenderDocumentVariantsSkipScanPhases(t *testing.T) {
	t.Parallel()

	doc := &document.Node{
		NodeType: document.NodeDocument,
		Content: []*document.Node{
			textPara("hello"),
			{NodeType: document.NodeEmbeddedEntryInline, Data: &document.NodeData{Target: &document.Target{Entry: &document.Entry{
				ID: "s1", ContentType: document.ContentTypeImageSlideshow, Fields: map[string]any{"title": "One"},
			}}}},
		},
	}

	svc := newRenderService()
	for _, variant := range []templates.Variant{templates.VariantCompact, templates.VariantCard} {
		html, err := svc.RenderDocument(context.Background(), doc, variant)
		require.NoError(t, err)
		assert.Contains(t, html, "<p>hello</p>")
		assert.NotContains(t, html, "slideshow-grid")
	}
}
