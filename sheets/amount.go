/*
amount.go - Numeric cell normalization

PURPOSE:
  Amount cells are free text: "1,234.50 IQD", "50 د.ع", "-", "". We keep
  only ASCII digits, '.' and '-', then read the longest leading number
  from what remains. Anything unreadable is zero.

  "1,234.50 IQD" -> "1234.50"  -> 1234.5
  "50 IQD"       -> "50"       -> 50
  "1.2.3"        -> "1.2.3"    -> 1.2   (leading number only)
  "-"            -> "-"        -> 0
  ""             -> ""         -> 0

PRECISION:
  Values are parsed into decimal.Decimal so that sums over many records
  (see employee.Totals) don't drift. Callers that need a float convert
  at the edge.
*/
package sheets

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	leadingNumber = regexp.MustCompile(`^-?(?:[0-9]+\.?[0-9]*|\.[0-9]+)`)
)

// ParseAmount normalizes a free-form amount cell.
func ParseAmount(s string) decimal.Decimal {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	m := leadingNumber.FindString(cleaned)
	if m == "" {
		return decimal.Zero
	}

	switch {
	case strings.HasPrefix(m, "-."):
		m = "-0" + m[1:]
	case strings.HasPrefix(m, "."):
		m = "0" + m
	}
	m = strings.TrimSuffix(m, ".")

	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmountFloat is ParseAmount converted to float64.
func ParseAmountFloat(s string) float64 {
	return ParseAmount(s).InexactFloat64()
}
