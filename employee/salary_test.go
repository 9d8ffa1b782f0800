package employee_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/employee-portal/employee"
	"github.com/warp/employee-portal/sheets"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func fixedOptions() employee.Options {
	return employee.Options{
		Now:    func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) },
		Months: employee.IraqiMonths{},
	}
}

// =============================================================================
// SALARY EXTRACTION
// =============================================================================

func TestExtractSalaryPeriods_DetailsAndDates(t *testing.T) {
	// GIVEN: A salary sheet with two rows for employee 123 and one for 456
	table := sheets.Parse(
		"الرقم الوظيفي,التاريخ,الراتب الاسمي,المخصصات,الاستقطاعات,,صافي الراتب\n" +
			"123,2023/5-anything,900000,150000,0,x,1050000\n" +
			"456,2023-05,1,1,1,1,1\n" +
			"123,,900000,,0,,900000\n")

	// WHEN
	periods := employee.ExtractSalaryPeriods(table, "123", fixedOptions())

	// THEN: Both rows of 123, in sheet order
	require.Len(t, periods, 2)

	first := periods[0]
	assert.Equal(t, "أيار", first.Month, "month 5 is May")
	assert.Equal(t, "2023", first.Year)
	assert.Equal(t, "1050000", first.NetSalary)
	assert.Equal(t, "2023/5-anything", first.RawDate)
	assert.Equal(t, []employee.Detail{
		{Label: "الراتب الاسمي", Value: "900000"},
		{Label: "المخصصات", Value: "150000"},
		{Label: "صافي الراتب", Value: "1050000"},
	}, first.Details, "identity, date, zero cells and blank headers are skipped")

	second := periods[1]
	assert.Equal(t, employee.CurrentPeriod, second.Month)
	assert.Equal(t, "2026", second.Year, "undated rows use the current year")
	assert.Equal(t, "", second.RawDate)
}

func TestExtractSalaryPeriods_UnparseableDate(t *testing.T) {
	table := sheets.Parse("ID,Date,Net Salary\n1,March 2023,500\n")

	periods := employee.ExtractSalaryPeriods(table, "1", fixedOptions())

	require.Len(t, periods, 1)
	assert.Equal(t, employee.CurrentPeriod, periods[0].Month)
	assert.Equal(t, "2026", periods[0].Year)
	assert.Equal(t, "March 2023", periods[0].RawDate)
}

func TestExtractSalaryPeriods_NetSalaryDefaultsToZero(t *testing.T) {
	table := sheets.Parse("ID,Date,Basic\n1,2024-01,500\n")

	periods := employee.ExtractSalaryPeriods(table, "1", fixedOptions())

	require.Len(t, periods, 1)
	assert.Equal(t, "0", periods[0].NetSalary)
	assert.Equal(t, "كانون الثاني", periods[0].Month)
}

func TestExtractSalaryPeriods_MissingIdentityColumn(t *testing.T) {
	table := sheets.Parse("Code,Date,Net Salary\n1,2024-01,500\n")

	assert.Empty(t, employee.ExtractSalaryPeriods(table, "1", fixedOptions()))
	assert.Empty(t, employee.ExtractSalaryPeriods(sheets.Parse(""), "1", fixedOptions()))
}

// =============================================================================
// MONTH NAMES
// =============================================================================

func TestIraqiMonths(t *testing.T) {
	m := employee.IraqiMonths{}

	assert.Equal(t, "كانون الثاني", m.MonthName(2023, 0))
	assert.Equal(t, "أيار", m.MonthName(2023, 4))
	assert.Equal(t, "كانون الأول", m.MonthName(2023, 11))

	// Out-of-range months wrap like a calendar
	assert.Equal(t, "كانون الأول", m.MonthName(2023, -1))
	assert.Equal(t, "كانون الثاني", m.MonthName(2023, 12))
}

type recordingMonths struct {
	year, month int
}

func (r *recordingMonths) MonthName(year, month int) string {
	r.year, r.month = year, month
	return "M"
}

func TestExtractSalaryPeriods_PassesZeroBasedMonth(t *testing.T) {
	rec := &recordingMonths{}
	opts := fixedOptions()
	opts.Months = rec

	table := sheets.Parse("ID,Date\n1,2023/5-anything\n")
	periods := employee.ExtractSalaryPeriods(table, "1", opts)

	require.Len(t, periods, 1)
	assert.Equal(t, "M", periods[0].Month)
	assert.Equal(t, 2023, rec.year)
	assert.Equal(t, 4, rec.month)
}

func TestExtractSalaryPeriods_YearKeptAsWritten(t *testing.T) {
	table := sheets.Parse("ID,Date\n1,0999-03\n1,ref 12024/7\n")

	periods := employee.ExtractSalaryPeriods(table, "1", fixedOptions())

	require.Len(t, periods, 2)
	assert.Equal(t, "0999", periods[0].Year)
	assert.Equal(t, "آذار", periods[0].Month)
	assert.Equal(t, "2024", periods[1].Year)
}
