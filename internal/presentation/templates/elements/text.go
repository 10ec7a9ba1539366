package elements

import (
	"html"
	"strings"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
)

// RenderText escapes a text run and converts literal newlines to line
// breaks. Escaping happens first so the inserted break tags survive.
func RenderText(value string) string {
	escaped := html.EscapeString(value)
	return strings.ReplaceAll(escaped, "\n", "<br/>")
}

// ApplyMark wraps already-rendered content in the markup for a single
// text decoration. Marks compose: a run with several marks is wrapped
// once per mark. Unknown mark types pass content through unchanged.
func ApplyMark(mark document.MarkType, content string) string {
	switch mark {
	case document.MarkBold:
		return "<strong>" + content + "</strong>"
	case document.MarkItalic:
		return "<em>" + content + "</em>"
	case document.MarkUnderline:
		return "<u>" + content + "</u>"
	case document.MarkCode:
		return `<code style="font-family: monospace; background-color: #f4f4f4; padding: 0.1rem 0.3rem; border-radius: 3px;">` +
			content + `</code>`
	default:
		return content
	}
}
