package employee

import "time"

// MonthFormatter names a month. month is zero-based and may be out of
// range; it is normalized against year the way a calendar would (-1 is
// December of the previous year, 12 is January of the next).
type MonthFormatter interface {
	MonthName(year, month int) string
}

// IraqiMonths formats long month names as used in Iraq (ar-IQ), the
// Syriac-derived names rather than the transliterated Gregorian ones.
type IraqiMonths struct{}

var iraqiMonthNames = [12]string{
	"كانون الثاني",
	"شباط",
	"آذار",
	"نيسان",
	"أيار",
	"حزيران",
	"تموز",
	"آب",
	"أيلول",
	"تشرين الأول",
	"تشرين الثاني",
	"كانون الأول",
}

// MonthName implements MonthFormatter.
func (IraqiMonths) MonthName(year, month int) string {
	m := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Month()
	return iraqiMonthNames[m-1]
}
