package widgets

import (
	"bytes"
	"html/template"
	"log"
	"net/url"
	"strings"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
)

var videoEmbedTmpl = template.Must(template.New("videoEmbed").Parse(
	`<div style="position: relative; padding-bottom: 56.25%; height: 0; overflow: hidden;">` +
		`<iframe src="https://www.youtube.com/embed/{{.VideoID}}" title="{{.Title}}" ` +
		`style="position: absolute; top: 0; left: 0; width: 100%; height: 100%;" ` +
		`frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe>` +
		`</div>`,
))

type videoEmbedData struct {
	VideoID string
	Title   string
}

// RenderVideoEmbed renders an embeddedVideos entry as a responsive 16:9
// iframe. Unrecognized URL shapes render nothing.
func RenderVideoEmbed(entry *document.Entry) string {
	if entry == nil {
		return ""
	}
	videoID := ExtractVideoID(entry.FieldString("url"))
	if videoID == "" {
		return ""
	}

	var buf bytes.Buffer
	err := videoEmbedTmpl.Execute(&buf, videoEmbedData{
		VideoID: videoID,
		Title:   entry.FieldString("title"),
	})
	if err != nil {
		log.Printf("ERROR: Failed to execute video embed template: %v", err)
		return `<!-- template error -->`
	}
	return buf.String()
}

// ExtractVideoID pulls a video identifier out of the three URL shapes the
// CMS sees: watch?v=, the youtu.be short link, and the /embed/ path.
// Returns "" for anything else.
func ExtractVideoID(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	if strings.Contains(parsed.Path, "/watch") {
		return parsed.Query().Get("v")
	}
	if strings.HasSuffix(parsed.Host, "youtu.be") {
		return strings.Trim(parsed.Path, "/")
	}
	if idx := strings.Index(parsed.Path, "/embed/"); idx >= 0 {
		rest := parsed.Path[idx+len("/embed/"):]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			rest = rest[:slash]
		}
		return rest
	}
	return ""
}
