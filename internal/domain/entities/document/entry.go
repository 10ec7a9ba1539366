package document

// Content-type discriminants with specialized rendering. Anything outside
// this set renders as empty output.
const (
	ContentTypeImageGrid       = "imageGrid"
	ContentTypeECommerce       = "eCommerce"
	ContentTypeSpreadsheetList = "spreadSheetToList"
	ContentTypeEmbeddedVideos  = "embeddedVideos"
	ContentTypeImageSlideshow  = "imageSlideshow"
	ContentTypeBlog            = "blog"
)

// PDFDescriptionMarker is the asset description sentinel marking a file
// as a PDF; asset hyperlinks to such assets open in a new tab.
const PDFDescriptionMarker = "pdf"

// Asset is a CMS-managed file resource, typically an image. URL is stored
// protocol-relative ("//images.cdn.example/...") the way the CMS delivers
// it; Width/Height are zero when the file has no image metadata.
type Asset struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Entry is a CMS-managed structured record. ContentType is the
// discriminant used for specialized rendering; Fields maps field name to
// a scalar, Asset, Entry, or list thereof.
type Entry struct {
	ID          string         `json:"id"`
	ContentType string         `json:"contentType"`
	Fields      map[string]any `json:"fields,omitempty"`
}

// FieldString returns the named field as a string, or "" when absent or
// of another type.
func (e *Entry) FieldString(name string) string {
	if e == nil || e.Fields == nil {
		return ""
	}
	if s, ok := e.Fields[name].(string); ok {
		return s
	}
	return ""
}

// FieldFloat returns the named field as a float64, tolerating integer
// values. Returns 0 when absent.
func (e *Entry) FieldFloat(name string) float64 {
	if e == nil || e.Fields == nil {
		return 0
	}
	switch v := e.Fields[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// FieldAsset returns the named field as an asset reference, or nil.
func (e *Entry) FieldAsset(name string) *Asset {
	if e == nil || e.Fields == nil {
		return nil
	}
	if a, ok := e.Fields[name].(*Asset); ok {
		return a
	}
	return nil
}

// FieldAssets returns the named field as a list of asset references,
// skipping anything that is not an asset.
func (e *Entry) FieldAssets(name string) []*Asset {
	if e == nil || e.Fields == nil {
		return nil
	}
	list, ok := e.Fields[name].([]any)
	if !ok {
		if typed, ok := e.Fields[name].([]*Asset); ok {
			return typed
		}
		return nil
	}
	var assets []*Asset
	for _, item := range list {
		if a, ok := item.(*Asset); ok {
			assets = append(assets, a)
		}
	}
	return assets
}
