// Package static embeds the client-side assets served alongside rendered
// fragments.
package static

import "embed"

// Assets holds the versioned gallery behavior module referenced by image
// grids.
//
//go:embed lightbox.v1.js
var Assets embed.FS
