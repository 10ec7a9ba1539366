package elements

import (
	"html"
	"strings"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
)

// RenderHyperlink renders a plain-URI hyperlink around pre-rendered
// content. External links (http/https) open in a new tab with safe-link
// attributes; everything else is a plain anchor. A missing URI falls back
// to "#".
func RenderHyperlink(uri, content string) string {
	if uri == "" {
		uri = "#"
	}
	href := html.EscapeString(uri)
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + content + `</a>`
	}
	return `<a href="` + href + `">` + content + `</a>`
}

// RenderEntryHyperlink links to /blog/<slug> when the target entry is a
// blog post with a slug; any other target degrades to "#".
func RenderEntryHyperlink(entry *document.Entry, content string) string {
	href := "#"
	if entry != nil && entry.ContentType == document.ContentTypeBlog {
		if slug := entry.FieldString("slug"); slug != "" {
			href = "/blog/" + slug
		}
	}
	return `<a href="` + html.EscapeString(href) + `">` + content + `</a>`
}

// RenderAssetHyperlink links to the asset's absolute file URL. Assets
// whose description carries the PDF marker open in a new tab.
func RenderAssetHyperlink(asset *document.Asset, content string) string {
	if asset == nil || asset.URL == "" {
		return `<a href="#">` + content + `</a>`
	}
	href := html.EscapeString("https:" + asset.URL)
	if asset.Description == document.PDFDescriptionMarker {
		return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + content + `</a>`
	}
	return `<a href="` + href + `">` + content + `</a>`
}
