/*
Package employee assembles one employee's consolidated record from the
published HR sheets.

PURPOSE:
  Six sheets describe an employee: an administrative profile, two salary
  histories (current and archive) and three transaction sheets (bonuses,
  dispatches, extra hours). Each sheet is routed to an extractor that
  locates its columns by keyword and filters rows by exact employee ID.
  The results are merged into one Aggregate.

KEY CONCEPTS IN THIS FILE (types.go):
  - Profile: Administrative attributes, all free text
  - SalaryPeriod: One month of pay with its detail lines
  - Transaction: One bonus / dispatch / extra-hours entry (amount > 0)
  - Aggregate: Profile plus the four sequences

IDENTITY:
  Rows belong to an employee when their identity cell equals the
  requested ID exactly. No trimming or case folding beyond the cell trim
  the parser already applies.

SEE ALSO:
  - profile.go, salary.go, transactions.go: Extractors
  - aggregate.go: Merge and ordering
  - service.go: Fetching the sheets
*/
package employee

// =============================================================================
// PROFILE
// =============================================================================

// Profile is the administrative record. Every field is free text copied
// from the sheet; AvatarURL is derived from Name.
type Profile struct {
	ID              string
	Name            string
	Education       string
	Job             string
	Grade           string
	Stage           string
	Salary          string
	PromotionDate   string
	LastBonus       string
	DuePrevious     string
	Thanks          string
	DueNext         string
	JoinDate        string
	PromotionStatus string
	Rollover        string
	AnnualLeave     string
	SickLeave       string
	AvatarURL       string
	JobTitle        string
}

// =============================================================================
// SALARY
// =============================================================================

// CurrentPeriod is the month label used when a salary row has no
// readable date.
const CurrentPeriod = "الحالي"

// Detail is one labelled value from a salary row.
type Detail struct {
	Label string
	Value string
}

// SalaryPeriod is one salary row.
type SalaryPeriod struct {
	Month     string
	Year      string
	NetSalary string
	Details   []Detail

	// RawDate is the unparsed date cell, kept for ordering.
	RawDate string
}

// =============================================================================
// TRANSACTIONS
// =============================================================================

// Transaction is one bonus, dispatch or extra-hours entry.
type Transaction struct {
	Name   string
	Amount float64
	Date   string
	// HasDate is false when the sheet has no date column or the row ends
	// before it. An empty date cell still counts as a date.
	HasDate bool
}

// =============================================================================
// AGGREGATE
// =============================================================================

// Totals sums the transaction sequences.
type Totals struct {
	Bonuses    float64
	Dispatches float64
	ExtraHours float64
}

// Aggregate is the consolidated employee record.
type Aggregate struct {
	Profile
	SalaryHistory []SalaryPeriod
	Bonuses       []Transaction
	Dispatches    []Transaction
	ExtraHours    []Transaction
	Totals        Totals
}
