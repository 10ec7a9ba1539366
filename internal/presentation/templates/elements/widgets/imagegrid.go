package widgets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"log"
	"math"
	"strings"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/rendering"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/templates/elements"
)

// BehaviorModulePath is the versioned client-side gallery behavior module
// served by the HTTP layer. Emitted once per document; the module itself
// guards its document-level listeners so a stale double include stays
// harmless.
const BehaviorModulePath = "/static/lightbox.v1.js"

// thumbnailMax is the size hint appended to grid thumbnail URLs.
const thumbnailMax = 400

var gridThumbTmpl = template.Must(template.New("gridThumb").Parse(
	`<img src="{{.Src}}" alt="{{.Alt}}" data-lightbox="{{.Gallery}}" data-lightbox-index="{{.Index}}" loading="lazy" style="width: 100%; height: auto; cursor: pointer;"/>`,
))

type gridThumbData struct {
	Src     string
	Alt     string
	Gallery string
	Index   int
}

type lightboxPayload struct {
	Gallery string   `json:"gallery"`
	Images  []string `json:"images"`
}

// RenderImageGrid renders an imageGrid entry: optional title heading, a
// responsive auto-fill grid of thumbnails wired to a shared lightbox, the
// grid's JSON payload (once per grid identity), and the reference to the
// behavior module (once per document).
func RenderImageGrid(entry *document.Entry, rc *rendering.RenderContext) string {
	if entry == nil {
		return ""
	}
	images := entry.FieldAssets("images")
	if len(images) == 0 {
		return ""
	}

	gid := SafeIdentifier(entry.ID)
	var sb strings.Builder

	if title := entry.FieldString("title"); title != "" {
		first := rc.CountHeading()
		sb.WriteString(elements.RenderHeading(3, html.EscapeString(title), !first))
	}

	sb.WriteString(fmt.Sprintf(
		`<div class="image-grid image-grid-%s" style="display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 1rem;">`,
		gid,
	))

	fullURLs := make([]string, 0, len(images))
	for i, img := range images {
		if img == nil || img.URL == "" {
			continue
		}
		fullURLs = append(fullURLs, absoluteURL(img.URL))

		w, h := thumbnailHint(img.Width, img.Height)
		var buf bytes.Buffer
		err := gridThumbTmpl.Execute(&buf, gridThumbData{
			Src:     fmt.Sprintf("%s?w=%d&h=%d", absoluteURL(img.URL), w, h),
			Alt:     img.Title,
			Gallery: gid,
			Index:   i,
		})
		if err != nil {
			log.Printf("ERROR: Failed to execute grid thumbnail template: %v", err)
			continue
		}
		sb.Write(buf.Bytes())
	}
	sb.WriteString(`</div>`)

	if !rc.LightboxEmitted[gid] {
		rc.LightboxEmitted[gid] = true
		payload, err := json.Marshal(lightboxPayload{Gallery: gid, Images: fullURLs})
		if err != nil {
			log.Printf("ERROR: Failed to marshal lightbox payload for grid %s: %v", gid, err)
		} else {
			sb.WriteString(fmt.Sprintf(
				`<script type="application/json" id="lightbox-data-%s">%s</script>`,
				gid, payload,
			))
		}
	}

	if !rc.BehaviorModuleEmitted {
		rc.BehaviorModuleEmitted = true
		sb.WriteString(`<script src="` + BehaviorModulePath + `" defer></script>`)
	}

	return sb.String()
}

// thumbnailHint scales unknown or oversized dimensions down to the
// thumbnail cap, preserving aspect ratio for the CDN hint.
func thumbnailHint(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return thumbnailMax, thumbnailMax
	}
	if width <= thumbnailMax && height <= thumbnailMax {
		return width, height
	}
	if width >= height {
		return thumbnailMax, int(math.Round(float64(height) * float64(thumbnailMax) / float64(width)))
	}
	return int(math.Round(float64(width) * float64(thumbnailMax) / float64(height))), thumbnailMax
}
