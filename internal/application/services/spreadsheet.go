package services

import (
	"context"
	"io"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/observability/logging"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/tabular"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/templates/elements/widgets"
)

// Accepted header spellings per field, compared after normalization
// (lower-cased, spaces/underscores/hyphens stripped).
var (
	firstNameHeaders = []string{"firstname", "first"}
	lastNameHeaders  = []string{"lastname", "last", "surname"}
	urlHeaders       = []string{"url", "link", "website"}
)

// SpreadsheetMaterializer fetches and formats spreadsheet-backed list
// entries ahead of a document render. Every failure mode degrades to an
// empty fragment for that entry; nothing propagates to the caller.
type SpreadsheetMaterializer struct {
	client *http.Client
	parser tabular.Parser
	logger *logging.ChanneledLogger
}

// NewSpreadsheetMaterializer creates a materializer. A nil client uses
// http.DefaultClient.
func NewSpreadsheetMaterializer(client *http.Client, parser tabular.Parser, logger *logging.ChanneledLogger) *SpreadsheetMaterializer {
	if client == nil {
		client = http.DefaultClient
	}
	return &SpreadsheetMaterializer{client: client, parser: parser, logger: logger}
}

// Materialize builds the fragment cache for the given entries: one fetch
// and one fragment per distinct entry identity, first occurrence wins.
// The returned map is complete before any traversal reads it.
func (m *SpreadsheetMaterializer) Materialize(ctx context.Context, entries []*document.Entry) map[string]string {
	fragments := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry == nil || entry.ID == "" {
			continue
		}
		if _, done := fragments[entry.ID]; done {
			continue
		}
		fragments[entry.ID] = m.materializeEntry(ctx, entry)
	}
	return fragments
}

func (m *SpreadsheetMaterializer) materializeEntry(ctx context.Context, entry *document.Entry) string {
	if entry.FieldString("type") != document.ContentTypeSpreadsheetList {
		m.logger.Fetch().Debug("Skipping entry with unexpected list type", "entryId", entry.ID)
		return ""
	}

	file := entry.FieldAsset("file")
	if file == nil || file.URL == "" {
		m.logger.Fetch().Debug("Spreadsheet entry has no file resource", "entryId", entry.ID)
		return ""
	}

	data, ok := m.fetch(ctx, "https:"+file.URL)
	if !ok {
		return ""
	}

	rows, err := m.parser.Parse(data, 0)
	if err != nil {
		m.logger.Fetch().Warn("Failed to parse spreadsheet", "entryId", entry.ID, "error", err)
		return ""
	}
	if len(rows) == 0 {
		return ""
	}

	people := extractPeople(rows)
	if len(people) == 0 {
		return ""
	}
	sortByLastName(people)

	return widgets.RenderPeopleList(entry.ID, people)
}

func (m *SpreadsheetMaterializer) fetch(ctx context.Context, url string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		m.logger.Fetch().Warn("Failed to build spreadsheet request", "url", url, "error", err)
		return nil, false
	}

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Fetch().Warn("Spreadsheet fetch failed", "url", url, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		m.logger.Fetch().Warn("Spreadsheet fetch returned non-success status", "url", url, "status", resp.StatusCode)
		return nil, false
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		m.logger.Fetch().Warn("Failed to read spreadsheet body", "url", url, "error", err)
		return nil, false
	}
	return data, true
}

// extractPeople maps rows to people via header matching, dropping rows
// whose full name comes out empty.
func extractPeople(rows []tabular.Row) []widgets.Person {
	var people []widgets.Person
	for _, row := range rows {
		p := widgets.Person{
			FirstName: strings.TrimSpace(cellByHeaders(row, firstNameHeaders)),
			LastName:  strings.TrimSpace(cellByHeaders(row, lastNameHeaders)),
			URL:       strings.TrimSpace(cellByHeaders(row, urlHeaders)),
		}
		if p.FullName() == "" {
			continue
		}
		people = append(people, p)
	}
	return people
}

// cellByHeaders finds a cell by normalized header matching against the
// accepted spellings for a field.
func cellByHeaders(row tabular.Row, accepted []string) string {
	for header, value := range row {
		normalized := normalizeHeader(header)
		for _, want := range accepted {
			if normalized == want {
				return value
			}
		}
	}
	return ""
}

// normalizeHeader lower-cases and strips spaces, underscores, and hyphens
// so "First Name", "first_name", and "FIRST-NAME" all match.
func normalizeHeader(header string) string {
	replacer := strings.NewReplacer(" ", "", "_", "", "-", "")
	return replacer.Replace(strings.ToLower(header))
}

// sortByLastName sorts locale-aware with base sensitivity: diacritics and
// case are ignored, so "ábel" sorts with "Abel".
func sortByLastName(people []widgets.Person) {
	collator := collate.New(language.Und, collate.Loose)
	sort.SliceStable(people, func(i, j int) bool {
		return collator.CompareString(people[i].LastName, people[j].LastName) < 0
	})
}
