/*
aggregate.go - Merging sheet extractions into one Aggregate

PURPOSE:
  Build is the pure half of a lookup: given the six sheet texts, it runs
  every extractor and merges the results. It performs no I/O and can be
  tested without a network.

ORDER OF WORK:
  1. Administrative profile (errors abort)
  2. Current + archive salary periods, concatenated then sorted
  3. Bonuses, dispatches, extra hours
  4. Totals

SALARY ORDERING:
  Newest first. Published sheets mostly use "YYYY-MM" or "YYYY/M" dates,
  where plain string comparison breaks as soon as a month is written
  without its leading zero ("2023-6" > "2023-10"). So:

    rank 0: dates with a year/month  -> by calendar month, newest first;
            same month by raw text, descending
    rank 1: other non-empty dates    -> by raw text, descending
    rank 2: empty dates              -> trailing, input order kept

  For zero-padded dates this is the same as descending string order.
*/
package employee

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/warp/employee-portal/sheets"
)

// SheetTexts holds the raw CSV text of each source.
type SheetTexts struct {
	Admin         string
	CurrentSalary string
	ArchiveSalary string
	Bonuses       string
	Dispatches    string
	ExtraHours    string
}

// Build assembles the Aggregate of employee id from raw sheet texts.
func Build(texts SheetTexts, id string, opts Options) (*Aggregate, error) {
	return build(texts, id, opts, nil)
}

// build is Build with a hook called for each secondary sheet that has
// rows but no identity column, and so contributes nothing.
func build(texts SheetTexts, id string, opts Options, degraded func(Sheet)) (*Aggregate, error) {
	profile, err := ExtractProfile(sheets.Parse(texts.Admin), id)
	if err != nil {
		return nil, err
	}

	parse := func(sheet Sheet, text string) sheets.Table {
		table := sheets.Parse(text)
		if degraded != nil && table.HasData() && !sheets.FindAnyOf(table.Header(), sheetIDKeywords...).Found() {
			degraded(sheet)
		}
		return table
	}

	current := ExtractSalaryPeriods(parse(SheetCurrentSalary, texts.CurrentSalary), id, opts)
	archive := ExtractSalaryPeriods(parse(SheetArchiveSalary, texts.ArchiveSalary), id, opts)
	history := make([]SalaryPeriod, 0, len(current)+len(archive))
	history = append(history, current...)
	history = append(history, archive...)
	SortSalaryHistory(history)

	agg := &Aggregate{
		Profile:       profile,
		SalaryHistory: history,
		Bonuses:       ExtractTransactions(parse(SheetBonuses, texts.Bonuses), id),
		Dispatches:    ExtractTransactions(parse(SheetDispatches, texts.Dispatches), id),
		ExtraHours:    ExtractTransactions(parse(SheetExtraHours, texts.ExtraHours), id),
	}
	agg.Totals = Totals{
		Bonuses:    sumAmounts(agg.Bonuses),
		Dispatches: sumAmounts(agg.Dispatches),
		ExtraHours: sumAmounts(agg.ExtraHours),
	}
	return agg, nil
}

// SortSalaryHistory orders periods newest first, in place.
func SortSalaryHistory(periods []SalaryPeriod) {
	slices.SortStableFunc(periods, compareSalaryDates)
}

// compareSalaryDates returns a negative number when a sorts before b.
func compareSalaryDates(a, b SalaryPeriod) int {
	ra, oa := dateRank(a.RawDate)
	rb, ob := dateRank(b.RawDate)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case 0:
		if c := cmp.Compare(ob, oa); c != 0 {
			return c
		}
		return cmp.Compare(b.RawDate, a.RawDate)
	case 1:
		return cmp.Compare(b.RawDate, a.RawDate)
	default:
		return 0
	}
}

// dateRank classifies a raw date. For rank 0, ordinal counts months
// since year zero, normalizing out-of-range months.
func dateRank(raw string) (rank, ordinal int) {
	if raw == "" {
		return 2, 0
	}
	if y, m, ok := yearMonth(raw); ok {
		return 0, y*12 + m - 1
	}
	return 1, 0
}

func sumAmounts(txs []Transaction) float64 {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(decimal.NewFromFloat(tx.Amount))
	}
	return total.InexactFloat64()
}
