package widgets

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"
)

// Person is one row of a spreadsheet-backed people list, already filtered
// and sorted by the materializer.
type Person struct {
	FirstName string
	LastName  string
	URL       string
}

// FullName joins first and last name with a single space, trimmed.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

var peopleItemTmpl = template.Must(template.New("peopleItem").Parse(
	`{{if .URL}}<li><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Name}}</a></li>{{else}}<li>{{.Name}}</li>{{end}}`,
))

type peopleItemData struct {
	Name string
	URL  string
}

// peopleListCSS is the responsive column layout, scoped by the per-entry
// class so two lists on one page cannot collide: one column by default,
// two from 768px, three from 1024px.
const peopleListCSS = `<style>` +
	`.people-list-%[1]s ul{display:grid;grid-template-columns:1fr;gap:0.5rem;list-style:none;padding:0;margin:0}` +
	`@media (min-width:768px){.people-list-%[1]s ul{grid-template-columns:repeat(2,1fr)}}` +
	`@media (min-width:1024px){.people-list-%[1]s ul{grid-template-columns:repeat(3,1fr)}}` +
	`</style>`

// RenderPeopleList renders a sorted people list as an unordered list
// inside the entry-scoped responsive grid. People with a URL become links
// opening in a new tab; the rest render as plain text. All interpolated
// text goes through html/template escaping.
func RenderPeopleList(entryID string, people []Person) string {
	if len(people) == 0 {
		return ""
	}

	gid := SafeIdentifier(entryID)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(peopleListCSS, gid))
	sb.WriteString(fmt.Sprintf(`<div class="people-list-%s"><ul>`, gid))

	for _, p := range people {
		var buf bytes.Buffer
		err := peopleItemTmpl.Execute(&buf, peopleItemData{Name: p.FullName(), URL: p.URL})
		if err != nil {
			log.Printf("ERROR: Failed to execute people list item template: %v", err)
			continue
		}
		sb.Write(buf.Bytes())
	}

	sb.WriteString(`</ul></div>`)
	return sb.String()
}
