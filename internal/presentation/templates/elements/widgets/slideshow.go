package widgets

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
)

var slideshowCardTmpl = template.Must(template.New("slideshowCard").Parse(
	`<a href="{{.Link}}" style="display: block; text-decoration: none; color: inherit;">` +
		`{{if .ImageSrc}}<img src="{{.ImageSrc}}" alt="{{.Title}}" loading="lazy" style="width: 100%; height: auto;"/>{{end}}` +
		`<h4>{{.Title}}</h4>` +
		`{{if .Description}}<p>{{.Description}}</p>{{end}}` +
		`</a>`,
))

type slideshowCardData struct {
	Link        string
	ImageSrc    string
	Title       string
	Description string
}

// BuildSlideshowGrid builds the one-time grid of slideshow-entry cards
// (title, brief description, hero image, link) from the scanner's
// collection. The renderer emits the result at most once per document.
func BuildSlideshowGrid(entries []*document.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div class="slideshow-grid" style="display: grid; grid-template-columns: repeat(auto-fill, minmax(250px, 1fr)); gap: 1.5rem;">`)

	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry == nil || seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true

		data := slideshowCardData{
			Link:        entry.FieldString("link"),
			Title:       entry.FieldString("title"),
			Description: entry.FieldString("description"),
		}
		if data.Link == "" {
			data.Link = "#"
		}
		if hero := entry.FieldAsset("image"); hero != nil && hero.URL != "" {
			data.ImageSrc = fmt.Sprintf("%s?w=%d", absoluteURL(hero.URL), 600)
		}

		var buf bytes.Buffer
		if err := slideshowCardTmpl.Execute(&buf, data); err != nil {
			log.Printf("ERROR: Failed to execute slideshow card template: %v", err)
			continue
		}
		sb.Write(buf.Bytes())
	}
	sb.WriteString(`</div>`)
	return sb.String()
}
