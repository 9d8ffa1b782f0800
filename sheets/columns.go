/*
columns.go - Heuristic column resolution

PURPOSE:
  Finds the column that holds a semantic field ("employee id", "amount",
  "date") by substring matching against header text. Two strategies exist
  and they are NOT interchangeable:

  FindAnyOf (any-of / leftmost):
    The leftmost header containing ANY keyword wins. Keyword order is
    irrelevant; only column position matters.

      header:   ["Date", "Employee ID", "ID Card"]
      keywords: ["ID Card", "Employee ID"]
      result:   1  ("Employee ID" is further left)

  FindByPriority (priority list / first keyword, then leftmost):
    Keywords are tried in order; the first keyword that matches ANY
    header wins, even if a later keyword matches further left.

      header:   ["Total", "Amount"]
      keywords: ["Amount", "Total"]
      result:   1  ("Amount" has priority)

MATCHING:
  Plain byte-wise substring match: case sensitive, diacritic sensitive,
  no normalization. "ID" matches "Employee ID" and "IDENTITY" but not
  "id".

SEE ALSO:
  - employee/keywords.go: The keyword lists used per sheet
*/
package sheets

import "strings"

// ColumnIndex is a position within one header row.
type ColumnIndex int

// NotFound is returned when no header matches.
const NotFound ColumnIndex = -1

// Found reports whether the index refers to a column.
func (c ColumnIndex) Found() bool {
	return c >= 0
}

// Or returns c when found, otherwise fallback.
func (c ColumnIndex) Or(fallback ColumnIndex) ColumnIndex {
	if c.Found() {
		return c
	}
	return fallback
}

// FindAnyOf returns the leftmost header cell containing any of keywords.
func FindAnyOf(header Row, keywords ...string) ColumnIndex {
	for i, h := range header {
		if containsAny(h, keywords) {
			return ColumnIndex(i)
		}
	}
	return NotFound
}

// FindByPriority tries keywords in order and returns the leftmost header
// cell matching the first keyword that matches anywhere.
func FindByPriority(header Row, keywords ...string) ColumnIndex {
	for _, kw := range keywords {
		for i, h := range header {
			if strings.Contains(h, kw) {
				return ColumnIndex(i)
			}
		}
	}
	return NotFound
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
