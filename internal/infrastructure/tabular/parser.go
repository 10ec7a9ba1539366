// Package tabular defines the sheet-parsing contract the spreadsheet
// materializer depends on, plus a CSV implementation. The parser is an
// injected collaborator: callers with xlsx or ods sources supply their
// own implementation.
package tabular

// Row maps a column header to the cell value for one data row.
type Row map[string]string

// Parser turns a raw file into rows of header-keyed cells. sheet selects
// which sheet/table to read (0-based); formats without multiple sheets
// ignore it. An empty file yields zero rows, not an error.
type Parser interface {
	Parse(data []byte, sheet int) ([]Row, error)
}
