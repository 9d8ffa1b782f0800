/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON structures returned to the portal frontend. The field
  names (p_id, p_name, salary_history, ...) are the contract the
  frontend was built against; the domain types in package employee stay
  free of JSON concerns.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - ErrorResponse: Every non-2xx body

ARRAYS:
  Sequences are always encoded as arrays, never null, so the frontend
  can iterate without checks.

SEE ALSO:
  - handlers.go: Uses these types
  - employee/types.go: Domain types
*/
package api

import "github.com/warp/employee-portal/employee"

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// EmployeeDTO is the consolidated employee record.
type EmployeeDTO struct {
	ID              string `json:"p_id"`
	Name            string `json:"p_name"`
	Education       string `json:"p_education"`
	Job             string `json:"p_job"`
	Grade           string `json:"p_grade"`
	Stage           string `json:"p_stage"`
	Salary          string `json:"p_salary"`
	PromotionDate   string `json:"p_promo_date"`
	LastBonus       string `json:"p_last_bonus"`
	DuePrevious     string `json:"p_due_pre"`
	Thanks          string `json:"p_thanks"`
	DueNext         string `json:"p_due_post"`
	JoinDate        string `json:"p_join_date"`
	PromotionStatus string `json:"p_promo_status"`
	Rollover        string `json:"p_rollover"`
	AnnualLeave     string `json:"p_annual_leave"`
	SickLeave       string `json:"p_sick_leave"`
	Image           string `json:"p_img"`
	JobTitle        string `json:"p_job_title"`

	SalaryHistory []SalaryPeriodDTO `json:"salary_history"`
	Bonuses       []TransactionDTO  `json:"bonuses"`
	Dispatches    []TransactionDTO  `json:"dispatches"`
	ExtraHours    []TransactionDTO  `json:"extra_hours"`
	Totals        TotalsDTO         `json:"totals"`
}

// SalaryPeriodDTO is one month of salary.
type SalaryPeriodDTO struct {
	Month     string      `json:"month"`
	Year      string      `json:"year"`
	NetSalary string      `json:"net_salary"`
	Details   []DetailDTO `json:"details"`
	RawDate   string      `json:"raw_date"`
}

// DetailDTO is one labelled salary line.
type DetailDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TransactionDTO is one bonus, dispatch or extra-hours entry. Date is
// omitted when the row has no date cell, and "" when the cell is empty.
type TransactionDTO struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Date   *string `json:"date,omitempty"`
}

// TotalsDTO sums each transaction sequence.
type TotalsDTO struct {
	Bonuses    float64 `json:"bonuses"`
	Dispatches float64 `json:"dispatches"`
	ExtraHours float64 `json:"extra_hours"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// ToEmployeeDTO converts an Aggregate for the wire.
func ToEmployeeDTO(a *employee.Aggregate) EmployeeDTO {
	p := a.Profile
	return EmployeeDTO{
		ID:              p.ID,
		Name:            p.Name,
		Education:       p.Education,
		Job:             p.Job,
		Grade:           p.Grade,
		Stage:           p.Stage,
		Salary:          p.Salary,
		PromotionDate:   p.PromotionDate,
		LastBonus:       p.LastBonus,
		DuePrevious:     p.DuePrevious,
		Thanks:          p.Thanks,
		DueNext:         p.DueNext,
		JoinDate:        p.JoinDate,
		PromotionStatus: p.PromotionStatus,
		Rollover:        p.Rollover,
		AnnualLeave:     p.AnnualLeave,
		SickLeave:       p.SickLeave,
		Image:           p.AvatarURL,
		JobTitle:        p.JobTitle,

		SalaryHistory: toSalaryPeriodDTOs(a.SalaryHistory),
		Bonuses:       toTransactionDTOs(a.Bonuses),
		Dispatches:    toTransactionDTOs(a.Dispatches),
		ExtraHours:    toTransactionDTOs(a.ExtraHours),
		Totals: TotalsDTO{
			Bonuses:    a.Totals.Bonuses,
			Dispatches: a.Totals.Dispatches,
			ExtraHours: a.Totals.ExtraHours,
		},
	}
}

func toSalaryPeriodDTOs(periods []employee.SalaryPeriod) []SalaryPeriodDTO {
	dtos := make([]SalaryPeriodDTO, len(periods))
	for i, p := range periods {
		details := make([]DetailDTO, len(p.Details))
		for j, d := range p.Details {
			details[j] = DetailDTO{Label: d.Label, Value: d.Value}
		}
		dtos[i] = SalaryPeriodDTO{
			Month:     p.Month,
			Year:      p.Year,
			NetSalary: p.NetSalary,
			Details:   details,
			RawDate:   p.RawDate,
		}
	}
	return dtos
}

func toTransactionDTOs(txs []employee.Transaction) []TransactionDTO {
	dtos := make([]TransactionDTO, len(txs))
	for i, tx := range txs {
		dtos[i] = TransactionDTO{Name: tx.Name, Amount: tx.Amount}
		if tx.HasDate {
			date := tx.Date
			dtos[i].Date = &date
		}
	}
	return dtos
}
