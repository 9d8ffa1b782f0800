/*
errors.go - Error types for employee lookups

PURPOSE:
  All lookup failures in one place. Every failure aborts the whole
  lookup; nothing is retried internally.

ERROR CATEGORIES:
  1. Upstream errors - A source could not be fetched (ConnectivityError)
     or the administrative sheet has no data rows (ErrEmptyData)
  2. Not found - No administrative row matches the requested ID

NOT ERRORS:
  Secondary sheets (salary, bonuses, dispatches, extra hours) never fail
  a lookup. A missing identity column or unreadable cell yields an empty
  list or a default value instead. Only the administrative sheet is
  validated strictly.

LOCALIZATION:
  Error() strings are for logs. User-facing text is chosen at the API
  boundary from the error kind (see api/messages.go).

SEE ALSO:
  - service.go: Produces ConnectivityError
  - profile.go: Produces ErrEmptyData and NotFoundError
*/
package employee

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrConnectivity is returned when a source could not be retrieved.
	ErrConnectivity = errors.New("source unavailable")

	// ErrEmptyData is returned when the administrative sheet has no rows
	// beyond its header.
	ErrEmptyData = errors.New("administrative sheet is empty")

	// ErrEmployeeNotFound is returned when no administrative row matches.
	ErrEmployeeNotFound = errors.New("employee not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConnectivityError reports the first failing source, in source order.
// Status is 0 when the request failed before any response arrived.
type ConnectivityError struct {
	Source string
	Status int
	Err    error
}

func (e *ConnectivityError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("source %s unavailable: status %d", e.Source, e.Status)
}

func (e *ConnectivityError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConnectivity}
	}
	return []error{ErrConnectivity, e.Err}
}

// NotFoundError carries the requested ID.
type NotFoundError struct {
	ID string
}

// IDMissing reports whether the lookup was made with an empty ID.
func (e *NotFoundError) IDMissing() bool {
	return e.ID == ""
}

func (e *NotFoundError) Error() string {
	if e.IDMissing() {
		return "employee id is required"
	}
	return fmt.Sprintf("employee %q not found in administrative sheet", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrEmployeeNotFound
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error means the employee does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}

// IsUpstream returns true if the error is caused by the sources rather
// than by the request.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrConnectivity) || errors.Is(err, ErrEmptyData)
}
