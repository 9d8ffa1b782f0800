/*
csv.go - Tokenizer for published spreadsheet exports

PURPOSE:
  Converts raw CSV text into a Table. The exports we consume are produced
  by a spreadsheet "publish to web" feature and are close to RFC 4180, but
  we tokenize by hand instead of using encoding/csv because:
  - Rows may have fewer cells than the header (encoding/csv rejects this
    unless FieldsPerRecord is disabled, and then reports no structure)
  - A bare quote in an unquoted cell must toggle quoting, not fail
  - Cells must be trimmed as they are closed, including a leading BOM

STATE MACHINE:
  normal  --"-->  quoted
  quoted  --"-->  normal
  quoted  --""--> quoted (emits one literal ")

  Outside quotes:
    ,        closes the cell
    \n       closes the cell and the row
    \r\n     same as \n (one terminator)

  A terminated row whose cells are all empty (a blank line, or ",,")
  is dropped.

  Everything else, including , and newlines inside quotes, is content.

END OF INPUT:
  A partially built row or cell is flushed as a final row, so a missing
  trailing newline is harmless. Trailing blank lines add no rows.

SEE ALSO:
  - table.go: Table and Row
*/
package sheets

import (
	"strings"
	"unicode"
)

// Parse tokenizes text into a Table.
func Parse(text string) Table {
	var (
		rows     []Row
		row      Row
		cell     strings.Builder
		inQuotes bool
	)

	closeCell := func() {
		row = append(row, trimCell(cell.String()))
		cell.Reset()
	}
	closeRow := func() {
		closeCell()
		rows = append(rows, row)
		row = nil
	}
	endLine := func() {
		closeCell()
		if !row.blank() {
			rows = append(rows, row)
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		var next byte
		if i+1 < len(text) {
			next = text[i+1]
		}

		switch {
		case c == '"':
			if inQuotes && next == '"' {
				cell.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			closeCell()
		case c == '\n' && !inQuotes:
			endLine()
		case c == '\r' && next == '\n' && !inQuotes:
			i++
			endLine()
		default:
			cell.WriteByte(c)
		}
	}

	if len(row) > 0 || cell.Len() > 0 {
		closeRow()
	}

	return Table{Rows: rows}
}

// trimCell strips surrounding whitespace, including the byte order mark
// some exporters put in front of the first header cell.
func trimCell(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
