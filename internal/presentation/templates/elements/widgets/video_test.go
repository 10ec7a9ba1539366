package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
)

func TestExtractVideoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=abc123&t=42s", "abc123"},
		{"short link", "https://youtu.be/abc123", "abc123"},
		{"embed path", "https://www.youtube.com/embed/abc123", "abc123"},
		{"embed path with trailing segment", "https://www.youtube.com/embed/abc123/extra", "abc123"},
		{"unrecognized shape", "https://vimeo.com/12345", ""},
		{"empty", "", ""},
		{"garbage", "::::", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractVideoID(tt.url))
		})
	}
}

func TestRenderVideoEmbedUnrecognizedURLIsEmpty(t *testing.T) {
	t.Parallel()

	entry := &document.Entry{
		ID:          "v1",
		ContentType: document.ContentTypeEmbeddedVideos,
		Fields:      map[string]any{"url": "https://vimeo.com/12345"},
	}
	assert.Empty(t, RenderVideoEmbed(entry))
}

func TestRenderVideoEmbedEscapesTitle(t *testing.T) {
	t.Parallel()

	entry := &document.Entry{
		ID:          "v1",
		ContentType: document.ContentTypeEmbeddedVideos,
		Fields:      map[string]any{"url": "https://youtu.be/abc123", "title": `a "quoted" <title>`},
	}
	html := RenderVideoEmbed(entry)
	assert.Contains(t, html, "https://www.youtube.com/embed/abc123")
	assert.NotContains(t, html, `"quoted"`)
	assert.NotContains(t, html, "<title>")
}
