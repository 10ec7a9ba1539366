package templates

import (
	"strings"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/rendering"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/templates/elements"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/templates/elements/widgets"
)

// Variant selects one of the renderer configurations.
type Variant string

const (
	// VariantPositional is the full renderer: first/last asset layout,
	// heading counting, one-time slideshow and lightbox emission.
	VariantPositional Variant = "positional"
	// VariantCompact always floats embedded assets right; no positional
	// state, no embedded-entry handling.
	VariantCompact Variant = "compact"
	// VariantCard centers embedded assets at a smaller cap for documents
	// shown inside constrained card layouts.
	VariantCard Variant = "card"
)

// Options configures a document renderer.
type Options struct {
	Variant Variant
	// PaymentBusinessID is the payment-recipient identifier interpolated
	// verbatim into commerce forms. Supplied by configuration; not
	// validated here.
	PaymentBusinessID string
}

// DocumentRenderer walks a rich-text tree depth-first and accumulates
// markup bottom-up. Build one per document; the positional variant
// mutates its RenderContext during the single traversal.
type DocumentRenderer struct {
	rc   *rendering.RenderContext
	opts Options
}

// NewDocumentRenderer returns the positional renderer over a fresh
// per-document RenderContext (asset bookkeeping, heading counter,
// one-time flags, precomputed fragments).
func NewDocumentRenderer(rc *rendering.RenderContext, opts Options) *DocumentRenderer {
	if rc == nil {
		rc = rendering.NewRenderContext(0, nil)
	}
	opts.Variant = VariantPositional
	return &DocumentRenderer{rc: rc, opts: opts}
}

// NewCompactRenderer returns the stateless variant that floats every
// embedded asset right regardless of position.
func NewCompactRenderer() *DocumentRenderer {
	return &DocumentRenderer{
		rc:   rendering.NewRenderContext(0, nil),
		opts: Options{Variant: VariantCompact},
	}
}

// NewCardRenderer returns the stateless variant with a centered,
// non-floating layout and a smaller size cap, for card-embedded documents.
func NewCardRenderer() *DocumentRenderer {
	return &DocumentRenderer{
		rc:   rendering.NewRenderContext(0, nil),
		opts: Options{Variant: VariantCard},
	}
}

var headingLevels = map[document.NodeType]int{
	document.NodeHeading1: 1,
	document.NodeHeading2: 2,
	document.NodeHeading3: 3,
	document.NodeHeading4: 4,
	document.NodeHeading5: 5,
	document.NodeHeading6: 6,
}

// Render renders one node (and its subtree) to markup. Unknown node
// types and malformed reference chains render as empty strings; one bad
// embed never blanks the document.
func (r *DocumentRenderer) Render(node *document.Node) string {
	if node == nil {
		return ""
	}

	switch node.NodeType {
	case document.NodeDocument:
		return r.renderChildren(node)
	case document.NodeParagraph:
		return elements.RenderParagraph(r.renderChildren(node), hasInlineEmbed(node))
	case document.NodeBlockquote:
		return elements.RenderBlockquote(r.renderChildren(node))
	case document.NodeOrderedList:
		return elements.RenderList(r.renderChildren(node), true)
	case document.NodeUnorderedList:
		return elements.RenderList(r.renderChildren(node), false)
	case document.NodeListItem:
		return elements.RenderListItem(r.renderChildren(node))
	case document.NodeHR:
		return elements.RenderHR()
	case document.NodeEmbeddedAssetBlock:
		return r.renderAssetBlock(node)
	case document.NodeEmbeddedAssetInline:
		return r.renderAssetInline(node)
	case document.NodeEmbeddedEntryBlock:
		return r.renderEntry(node.TargetEntry(), false)
	case document.NodeEmbeddedEntryInline:
		return r.renderEntry(node.TargetEntry(), true)
	case document.NodeHyperlink:
		uri := ""
		if node.Data != nil {
			uri = node.Data.URI
		}
		return elements.RenderHyperlink(uri, r.renderChildren(node))
	case document.NodeEntryHyperlink:
		return elements.RenderEntryHyperlink(node.TargetEntry(), r.renderChildren(node))
	case document.NodeAssetHyperlink:
		return elements.RenderAssetHyperlink(node.TargetAsset(), r.renderChildren(node))
	case document.NodeText:
		return r.renderTextNode(node)
	default:
		if node.IsHeading() {
			return r.renderHeading(node)
		}
		return ""
	}
}

func (r *DocumentRenderer) renderChildren(node *document.Node) string {
	var sb strings.Builder
	for _, child := range node.Children() {
		sb.WriteString(r.Render(child))
	}
	return sb.String()
}

func (r *DocumentRenderer) renderHeading(node *document.Node) string {
	content := r.renderChildren(node)
	level := headingLevels[node.NodeType]

	// Variants have no heading counter; every heading renders flat.
	if r.opts.Variant != VariantPositional {
		return elements.RenderHeading(level, content, false)
	}

	first := r.rc.CountHeading()
	return elements.RenderHeading(level, content, !first)
}

func (r *DocumentRenderer) renderTextNode(node *document.Node) string {
	content := elements.RenderText(node.Value)
	for _, mark := range node.Marks {
		content = elements.ApplyMark(mark.Type, content)
	}
	return content
}

// renderAssetBlock applies the position-dependent layout policy. Rules in
// precedence order: first asset and landscape centers at 600; first and
// portrait floats right at 400; last asset (when the document has more
// than one) centers at 600; everything else floats right at 400. The
// compact and card variants replace the whole policy with their fixed
// layout.
func (r *DocumentRenderer) renderAssetBlock(node *document.Node) string {
	asset := node.TargetAsset()
	if asset == nil || asset.URL == "" {
		return ""
	}

	width, height := asset.Width, asset.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultMaxDimension, DefaultMaxDimension
	}
	landscape := width > height

	var layout elements.AssetLayout
	switch r.opts.Variant {
	case VariantCompact:
		layout = elements.AssetFloatRight
	case VariantCard:
		layout = elements.AssetCard
	default:
		_, first, last := r.rc.NextAssetPosition()
		switch {
		case first && landscape:
			layout = elements.AssetCentered
		case first:
			layout = elements.AssetFloatRight
		case last:
			layout = elements.AssetCentered
		default:
			layout = elements.AssetFloatRight
		}
	}

	scaledW, scaledH := ScaledDimensions(width, height, layout.MaxDimension())
	return elements.RenderAssetFigure(layout, "https:"+asset.URL, assetAlt(asset), scaledW, scaledH)
}

func (r *DocumentRenderer) renderAssetInline(node *document.Node) string {
	asset := node.TargetAsset()
	if asset == nil || asset.URL == "" {
		return ""
	}
	width, height := asset.Width, asset.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultMaxDimension, DefaultMaxDimension
	}
	scaledW, scaledH := ScaledDimensions(width, height, elements.AssetInline.MaxDimension())
	return elements.RenderAssetFigure(elements.AssetInline, "https:"+asset.URL, assetAlt(asset), scaledW, scaledH)
}

// renderEntry dispatches on the entry's content-type discriminant. The
// inline path handles a superset of the block path. Unrecognized content
// types render nothing.
func (r *DocumentRenderer) renderEntry(entry *document.Entry, inline bool) string {
	if entry == nil || r.opts.Variant != VariantPositional {
		return ""
	}

	switch entry.ContentType {
	case document.ContentTypeImageGrid:
		return widgets.RenderImageGrid(entry, r.rc)
	case document.ContentTypeECommerce:
		return widgets.RenderCommerceForm(entry, r.opts.PaymentBusinessID)
	case document.ContentTypeSpreadsheetList:
		if !inline {
			return ""
		}
		return r.rc.Fragments[entry.ID]
	case document.ContentTypeEmbeddedVideos:
		if !inline {
			return ""
		}
		return widgets.RenderVideoEmbed(entry)
	case document.ContentTypeImageSlideshow:
		if !inline || r.rc.SlideshowRendered {
			return ""
		}
		r.rc.SlideshowRendered = true
		return r.rc.SlideshowHTML
	default:
		return ""
	}
}

// hasInlineEmbed reports whether any direct child is an inline embedded
// asset or entry; such paragraphs emit children verbatim because the
// widgets manage their own layout.
func hasInlineEmbed(node *document.Node) bool {
	for _, child := range node.Children() {
		if child == nil {
			continue
		}
		if child.NodeType == document.NodeEmbeddedAssetInline || child.NodeType == document.NodeEmbeddedEntryInline {
			return true
		}
	}
	return false
}

func assetAlt(asset *document.Asset) string {
	if asset.Title != "" {
		return asset.Title
	}
	return asset.Description
}
