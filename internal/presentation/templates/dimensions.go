// Package templates provides the document-to-markup renderer: node-type
// dispatch, mark wrappers, and the layout variants.
package templates

import "math"

// DefaultMaxDimension is the size cap applied when no explicit bound is
// given, and the fallback for assets without image metadata.
const DefaultMaxDimension = 400

// ScaledDimensions scales (width, height) to fit within max while
// preserving aspect ratio. Dimensions already within the bound are
// returned unchanged; otherwise the longer side becomes max and the
// shorter side is rounded to the nearest integer.
func ScaledDimensions(width, height, max int) (int, int) {
	if max <= 0 {
		max = DefaultMaxDimension
	}
	if width <= max && height <= max {
		return width, height
	}
	if width >= height {
		scaled := float64(height) * float64(max) / float64(width)
		return max, int(math.Round(scaled))
	}
	scaled := float64(width) * float64(max) / float64(height)
	return int(math.Round(scaled)), max
}
