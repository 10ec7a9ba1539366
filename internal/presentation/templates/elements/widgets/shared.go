// Package widgets provides markup rendering for embedded-entry content
// types: image grids, commerce forms, video embeds, slideshows, and
// spreadsheet-backed people lists.
package widgets

import "strings"

// SafeIdentifier derives a CSS/DOM-safe identifier from an entry ID so
// per-entry class names and element IDs never collide or break selectors.
func SafeIdentifier(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "entry"
	}
	return b.String()
}

// absoluteURL prefixes the protocol-relative URLs stored by the CMS.
func absoluteURL(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}
