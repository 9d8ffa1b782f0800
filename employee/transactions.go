/*
transactions.go - Bonus, dispatch and extra-hours extraction

PURPOSE:
  The three transaction sheets share one layout heuristic and one
  algorithm. For each row of the employee:

    name   <- name/title/reason/notes column, else the amount header,
              else "Record"
    amount <- amount column (priority list), digits . and - only,
              leading number, 0 when unreadable
    date   <- date column, cut at the first space (drops time of day);
              absent (HasDate false) without a date cell

  Rows with amount <= 0 are dropped.

AMOUNT COLUMN:
  Resolved by priority (FindByPriority), NOT leftmost: "مبلغ" beats
  "قيمة" even when the value column is further left. This matters for
  sheets that carry both a reference value and the paid amount.

LENIENCY:
  A sheet without an identity column yields no records.
*/
package employee

import (
	"strings"

	"github.com/warp/employee-portal/sheets"
)

// defaultRecordName labels records when neither a name column nor an
// amount header exists.
const defaultRecordName = "Record"

// ExtractTransactions returns the positive-amount records of employee
// id, in sheet order.
func ExtractTransactions(table sheets.Table, id string) []Transaction {
	if !table.HasData() {
		return nil
	}

	header := table.Header()
	idCol := sheets.FindAnyOf(header, sheetIDKeywords...)
	if !idCol.Found() {
		return nil
	}
	amountCol := sheets.FindByPriority(header, amountPriority...)
	nameCol := sheets.FindAnyOf(header, transactionNameKeywords...)
	dateCol := sheets.FindAnyOf(header, transactionDateKeywords...)

	var records []Transaction
	for _, row := range table.Data() {
		if row.Cell(idCol) != id {
			continue
		}

		amount := sheets.ParseAmountFloat(row.Cell(amountCol))
		if amount <= 0 {
			continue
		}

		var name string
		switch {
		case nameCol.Found():
			name = row.Cell(nameCol)
		case header.Cell(amountCol) != "":
			name = header.Cell(amountCol)
		default:
			name = defaultRecordName
		}

		date := row.Cell(dateCol)
		if i := strings.IndexByte(date, ' '); i >= 0 {
			date = date[:i]
		}
		hasDate := dateCol.Found() && int(dateCol) < len(row)

		records = append(records, Transaction{Name: name, Amount: amount, Date: date, HasDate: hasDate})
	}
	return records
}
