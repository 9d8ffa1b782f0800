/*
Package sheets provides the domain-agnostic spreadsheet layer.

PURPOSE:
  Published spreadsheet exports arrive as CSV text whose column layout is
  not stable: headers can be Arabic or English, appear in any order, and
  carry extra columns. This package turns the raw text into a Table and
  locates semantic columns by keyword matching against header text.

KEY CONCEPTS IN THIS FILE (table.go):
  - Table: Ordered rows, row 0 is the header
  - Row: Ordered, trimmed cells (may be shorter than the header)
  - ColumnIndex: Position within one header, or NotFound

DESIGN PRINCIPLES:
  1. Pure functions: No global state, no caching across sheets
  2. Lenient reads: Missing trailing cells read as ""
  3. No schema: Only keyword matching decides which column is which

USAGE:
  table := sheets.Parse(text)
  idCol := sheets.FindAnyOf(table.Header(), "الرقم الوظيفي", "ID")
  for _, row := range table.Data() {
      if row.Cell(idCol) == "123" { ... }
  }

SEE ALSO:
  - csv.go: Tokenizer
  - columns.go: Column resolution strategies
  - amount.go: Numeric cell normalization
*/
package sheets

// =============================================================================
// TABLE - Parsed sheet
// =============================================================================

// Row is one line of a sheet. Cells are already trimmed.
type Row []string

// Cell returns the cell at i, or "" when the row is shorter than i or i
// is NotFound.
func (r Row) Cell(i ColumnIndex) string {
	if i < 0 || int(i) >= len(r) {
		return ""
	}
	return r[i]
}

// blank reports whether every cell is empty.
func (r Row) blank() bool {
	for _, c := range r {
		if c != "" {
			return false
		}
	}
	return true
}

// Table is a parsed sheet. Rows[0] is the header row.
type Table struct {
	Rows []Row
}

// Header returns the header row, or nil for an empty table.
func (t Table) Header() Row {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Data returns every row after the header.
func (t Table) Data() []Row {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// HasData reports whether the table has at least one row beyond the header.
func (t Table) HasData() bool {
	return len(t.Rows) >= 2
}
