package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPeopleList(t *testing.T) {
	t.Parallel()

	people := []Person{
		{FirstName: "Amy", LastName: "Abel", URL: "http://x.example.net"},
		{FirstName: "Bob", LastName: "Zed"},
	}
	html := RenderPeopleList("Sheet 1", people)

	// scoped responsive grid
	assert.Contains(t, html, ".people-list-sheet-1 ul{display:grid")
	assert.Contains(t, html, "@media (min-width:768px)")
	assert.Contains(t, html, "@media (min-width:1024px)")
	// linked and plain entries
	assert.Contains(t, html, `<li><a href="http://x.example.net" target="_blank" rel="noopener noreferrer">Amy Abel</a></li>`)
	assert.Contains(t, html, "<li>Bob Zed</li>")
}

func TestRenderPeopleListEscapes(t *testing.T) {
	t.Parallel()

	people := []Person{{FirstName: "<script>", LastName: "Mallory"}}
	html := RenderPeopleList("s1", people)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt; Mallory")
}

func TestPersonFullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Amy Abel", Person{FirstName: "Amy", LastName: "Abel"}.FullName())
	assert.Equal(t, "Amy", Person{FirstName: "Amy"}.FullName())
	assert.Equal(t, "Abel", Person{LastName: "Abel"}.FullName())
	assert.Empty(t, Person{}.FullName())
}

func TestRenderPeopleListEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderPeopleList("s1", nil))
}
