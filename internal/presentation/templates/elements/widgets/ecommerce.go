package widgets

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"log"
	"strings"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
)

// paymentEndpoint is the classic PayPal form target.
const paymentEndpoint = "https://www.paypal.com/cgi-bin/webscr"

var commerceFormTmpl = template.Must(template.New("commerceForm").Parse(
	`<form action="{{.Endpoint}}" method="post" target="_top">` +
		`<input type="hidden" name="cmd" value="_xclick"/>` +
		`<input type="hidden" name="business" value="{{.Business}}"/>` +
		`<input type="hidden" name="item_name" value="{{.ItemName}}"/>` +
		`<input type="hidden" name="item_number" value="{{.ItemNumber}}"/>` +
		`<input type="hidden" name="amount" value="{{.Amount}}"/>` +
		`<input type="hidden" name="tax" value="{{.Tax}}"/>` +
		`<input type="hidden" name="handling" value="{{.Handling}}"/>` +
		`<input type="hidden" name="quantity" value="1"/>` +
		`<input type="hidden" name="currency_code" value="USD"/>` +
		`<input type="submit" value="Buy Now"/>` +
		`</form>`,
))

type commerceFormData struct {
	Endpoint   string
	Business   string
	ItemName   string
	ItemNumber string
	Amount     string
	Tax        string
	Handling   string
}

// RenderCommerceForm renders an eCommerce entry as a payment form posting
// to the fixed external endpoint. businessID is the environment-provided
// payment-recipient identifier, interpolated verbatim. Numeric fields are
// formatted to exactly two decimal places.
func RenderCommerceForm(entry *document.Entry, businessID string) string {
	if entry == nil {
		return ""
	}
	name := entry.FieldString("title")
	slug := entry.FieldString("slug")
	if name == "" || slug == "" {
		return ""
	}

	var sb strings.Builder
	if desc := entry.FieldString("description"); desc != "" {
		sb.WriteString("<p>" + normalizeNewlines(desc) + "</p>")
	}

	var buf bytes.Buffer
	err := commerceFormTmpl.Execute(&buf, commerceFormData{
		Endpoint:   paymentEndpoint,
		Business:   businessID,
		ItemName:   name,
		ItemNumber: slug,
		Amount:     fmt.Sprintf("%.2f", entry.FieldFloat("price")),
		Tax:        fmt.Sprintf("%.2f", entry.FieldFloat("tax")),
		Handling:   fmt.Sprintf("%.2f", entry.FieldFloat("handling")),
	})
	if err != nil {
		log.Printf("ERROR: Failed to execute commerce form template: %v", err)
		return `<!-- template error -->`
	}
	sb.Write(buf.Bytes())
	return sb.String()
}

// normalizeNewlines escapes description text and converts the three
// newline spellings that show up in CMS copy (CRLF, bare LF, and the
// two-character backslash-n escape) to line breaks.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	escaped := html.EscapeString(text)
	return strings.ReplaceAll(escaped, "\n", "<br/>")
}
