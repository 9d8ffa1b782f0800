package sheets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warp/employee-portal/sheets"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1,234.50 IQD", 1234.5},
		{"50 IQD", 50},
		{"50 د.ع", 50},
		{"0", 0},
		{"-", 0},
		{"", 0},
		{"IQD", 0},
		{"-25", -25},
		{"1.2.3", 1.2},
		{"12.", 12},
		{".5", 0.5},
		{"-.5", -0.5},
		{"10-5", 10},
		{"--5", 0},
		{"٥٠", 0}, // Arabic-Indic digits are not recognized
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sheets.ParseAmountFloat(tt.in))
		})
	}
}

func TestParseAmount_KeepsDecimalPrecision(t *testing.T) {
	a := sheets.ParseAmount("0.1")
	b := sheets.ParseAmount("0.2")
	assert.Equal(t, "0.3", a.Add(b).String())
}
