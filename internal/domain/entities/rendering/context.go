// Package rendering provides the per-render mutable state threaded
// through HTML rendering operations.
package rendering

// RenderContext holds positional and one-time state for a single document
// render. A fresh context must be built per document; it is mutated only
// by the one traversal that consumes it and never reused or shared across
// concurrent renders.
type RenderContext struct {
	// AssetIndex counts embedded-asset-block nodes already rendered, in
	// document order. Advanced exactly once per successful asset render.
	AssetIndex int
	// AssetTotal is the number of embedded-asset-block nodes in the
	// document, computed up front by the tree scanner.
	AssetTotal int
	// HeadingCount counts headings rendered so far, across every code
	// path that emits a heading (including image-grid titles).
	HeadingCount int
	// SlideshowRendered is set once the slideshow grid has been emitted;
	// later slideshow entries render nothing.
	SlideshowRendered bool
	// LightboxEmitted tracks grid identities whose lightbox payload has
	// already been written, so repeated grids stay idempotent.
	LightboxEmitted map[string]bool
	// BehaviorModuleEmitted guards the single reference to the shared
	// client-side gallery behavior module.
	BehaviorModuleEmitted bool

	// Fragments maps spreadsheet-entry identity to its precomputed HTML
	// fragment. Populated before traversal, read-only during it.
	Fragments map[string]string

	// SlideshowHTML is the grid of slideshow cards, built once before
	// traversal from the scanner's slideshow-entry collection.
	SlideshowHTML string
}

// NewRenderContext creates the render state for one document traversal.
func NewRenderContext(assetTotal int, fragments map[string]string) *RenderContext {
	if fragments == nil {
		fragments = make(map[string]string)
	}
	return &RenderContext{
		AssetTotal:      assetTotal,
		Fragments:       fragments,
		LightboxEmitted: make(map[string]bool),
	}
}

// NextAssetPosition returns the current asset position and whether it is
// the first or the effective last in the document, then advances the
// index. The last-position rule only applies when the document holds more
// than one asset.
func (rc *RenderContext) NextAssetPosition() (index int, first, last bool) {
	index = rc.AssetIndex
	first = index == 0
	last = rc.AssetTotal > 1 && index == rc.AssetTotal-1
	rc.AssetIndex++
	return index, first, last
}

// CountHeading advances the heading counter and reports whether the
// heading being rendered is the document's first.
func (rc *RenderContext) CountHeading() (first bool) {
	first = rc.HeadingCount == 0
	rc.HeadingCount++
	return first
}
