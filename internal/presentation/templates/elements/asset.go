package elements

import (
	"bytes"
	"html/template"
	"log"
)

// AssetLayout selects the markup shape for an embedded image.
type AssetLayout int

const (
	// AssetFloatRight floats the image right with text wrap, capped at 400.
	AssetFloatRight AssetLayout = iota
	// AssetCentered wraps the image in a centered paragraph, capped at 600.
	AssetCentered
	// AssetCard centers the image without floating, capped at 300, for
	// constrained card layouts.
	AssetCard
	// AssetInline renders the image in-flow for inline embeds, capped at 400.
	AssetInline
)

// MaxDimension returns the size cap the layout applies.
func (l AssetLayout) MaxDimension() int {
	switch l {
	case AssetCentered:
		return 600
	case AssetCard:
		return 300
	default:
		return 400
	}
}

// assetTmpl renders the <img> variants through html/template so URL and
// alt text are attribute-escaped.
var assetTmpl = template.Must(template.New("assetFigure").Parse(
	`{{define "floatRight"}}<img src="{{.Src}}" alt="{{.Alt}}" width="{{.Width}}" height="{{.Height}}" style="float: right; margin: 0 0 1rem 1.5rem;"/>{{end}}` +
		`{{define "centered"}}<p style="text-align: center;"><img src="{{.Src}}" alt="{{.Alt}}" width="{{.Width}}" height="{{.Height}}" style="display: inline-block;"/></p>{{end}}` +
		`{{define "card"}}<img src="{{.Src}}" alt="{{.Alt}}" width="{{.Width}}" height="{{.Height}}" style="display: block; margin: 0 auto 1rem;"/>{{end}}` +
		`{{define "inline"}}<img src="{{.Src}}" alt="{{.Alt}}" width="{{.Width}}" height="{{.Height}}" style="display: inline-block; vertical-align: middle;"/>{{end}}`,
))

type assetFigureData struct {
	Src    string
	Alt    string
	Width  int
	Height int
}

// RenderAssetFigure renders an embedded image with the given layout and
// pre-scaled dimensions. Src must already be an absolute URL.
func RenderAssetFigure(layout AssetLayout, src, alt string, width, height int) string {
	name := "floatRight"
	switch layout {
	case AssetCentered:
		name = "centered"
	case AssetCard:
		name = "card"
	case AssetInline:
		name = "inline"
	}

	var buf bytes.Buffer
	err := assetTmpl.ExecuteTemplate(&buf, name, assetFigureData{
		Src:    src,
		Alt:    alt,
		Width:  width,
		Height: height,
	})
	if err != nil {
		log.Printf("ERROR: Failed to execute asset figure template '%s': %v", name, err)
		return `<!-- template error -->`
	}
	return buf.String()
}
