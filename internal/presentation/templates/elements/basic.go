// Package elements provides per-node-type markup rendering for rich-text
// documents.
package elements

import (
	"fmt"
	"strings"
)

// headingTopMarginStyle separates consecutive sections; the document's
// first heading renders without it.
const headingTopMarginStyle = "margin-top: 2rem;"

// RenderHeading wraps pre-rendered inline content in a heading tag.
// Levels outside 1..6 clamp to 6.
func RenderHeading(level int, content string, topMargin bool) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	if topMargin {
		return fmt.Sprintf(`<h%d style="%s">%s</h%d>`, level, headingTopMarginStyle, content, level)
	}
	return fmt.Sprintf(`<h%d>%s</h%d>`, level, content, level)
}

// RenderParagraph wraps pre-rendered content in a paragraph. When raw is
// false, literal newlines remaining in the content are converted to line
// breaks; embedded widgets pass raw=true because they manage their own
// layout.
func RenderParagraph(content string, raw bool) string {
	if !raw {
		content = strings.ReplaceAll(content, "\n", "<br/>")
	}
	return "<p>" + content + "</p>"
}

// RenderBlockquote wraps content in a styled block quote.
func RenderBlockquote(content string) string {
	return `<blockquote style="border-left: 4px solid #ccc; margin: 1rem 0; padding: 0.5rem 1rem; font-style: italic;">` +
		content + `</blockquote>`
}

// RenderList wraps rendered list items in an ordered or unordered list.
func RenderList(content string, ordered bool) string {
	if ordered {
		return "<ol>" + content + "</ol>"
	}
	return "<ul>" + content + "</ul>"
}

// RenderListItem wraps rendered content in a list item.
func RenderListItem(content string) string {
	return "<li>" + content + "</li>"
}

// RenderHR emits a horizontal rule.
func RenderHR() string {
	return "<hr/>"
}
