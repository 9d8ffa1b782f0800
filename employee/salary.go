/*
salary.go - Salary period extraction

PURPOSE:
  Reads every salary row of one employee from a salary sheet (current or
  archive). Each row becomes a SalaryPeriod with a localized month, a
  year, the net salary and every other non-trivial column as a detail.

DETAILS:
  Every column except identity and date, in header order, whose header
  is not blank and whose cell is neither empty nor the literal "0". The
  net salary column is included as well.

DATES:
  The first "YYYY/M" or "YYYY-MM" found anywhere in the date cell sets
  the year and month. Without one, the period is labelled CurrentPeriod
  in the current calendar year. The unparsed cell is kept in RawDate.

LENIENCY:
  A sheet without an identity column yields no periods rather than an
  error.
*/
package employee

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/warp/employee-portal/sheets"
)

var yearMonthPattern = regexp.MustCompile(`(\d{4})[/-](\d{1,2})`)

// Options carries the collaborators extraction depends on.
type Options struct {
	// Now supplies the current year for undated salary rows.
	Now func() time.Time
	// Months names parsed salary months.
	Months MonthFormatter
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Months == nil {
		o.Months = IraqiMonths{}
	}
	return o
}

// ExtractSalaryPeriods returns the salary rows of employee id, in sheet
// order.
func ExtractSalaryPeriods(table sheets.Table, id string, opts Options) []SalaryPeriod {
	if !table.HasData() {
		return nil
	}
	opts = opts.withDefaults()

	header := table.Header()
	idCol := sheets.FindAnyOf(header, sheetIDKeywords...)
	if !idCol.Found() {
		return nil
	}
	netCol := sheets.FindAnyOf(header, netSalaryKeywords...)
	dateCol := sheets.FindAnyOf(header, salaryDateKeywords...)

	var periods []SalaryPeriod
	for _, row := range table.Data() {
		if row.Cell(idCol) != id {
			continue
		}

		var details []Detail
		for i, label := range header {
			col := sheets.ColumnIndex(i)
			if col == idCol || col == dateCol || label == "" {
				continue
			}
			if v := row.Cell(col); v != "" && v != "0" {
				details = append(details, Detail{Label: label, Value: v})
			}
		}

		rawDate := row.Cell(dateCol)
		month, year := periodOf(rawDate, opts)

		net := "0"
		if netCol.Found() {
			net = row.Cell(netCol)
		}

		periods = append(periods, SalaryPeriod{
			Month:     month,
			Year:      year,
			NetSalary: net,
			Details:   details,
			RawDate:   rawDate,
		})
	}
	return periods
}

// periodOf returns the month label and year for a raw date cell.
func periodOf(raw string, opts Options) (month, year string) {
	y, mon, ok := yearMonth(raw)
	if !ok {
		return CurrentPeriod, strconv.Itoa(opts.Now().Year())
	}
	// The pattern captures exactly four digits, so this is the year as
	// written, leading zeros included.
	return opts.Months.MonthName(y, mon-1), fmt.Sprintf("%04d", y)
}

// yearMonth returns the first year/month pair in s as numbers. month is
// as written (1-based, unvalidated).
func yearMonth(s string) (year, month int, ok bool) {
	m := yearMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	return year, month, true
}
