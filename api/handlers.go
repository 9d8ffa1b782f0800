/*
handlers.go - HTTP API handlers for the employee portal

PURPOSE:
  Exposes employee lookup via REST. Handles HTTP request/response and
  JSON serialization, and delegates to the employee service.

ENDPOINTS:
  GET /api/employees/{id}   Consolidated record for one employee
  GET /api/lookup?id=...    Same, for IDs typed into a form (may be empty)
  GET /healthz              Liveness

ID HANDLING:
  The ID is passed through exactly as received. No trimming: the admin
  sheet is matched on its literal cell text.

ERROR HANDLING:
  Errors are returned as JSON with a localized message:
  - 400: Missing employee ID
  - 404: Employee not in the admin sheet
  - 429: Rate limit exceeded
  - 502: A source failed or the admin sheet is empty
  - 500: Anything else

SEE ALSO:
  - dto.go: Response data structures
  - messages.go: Error localization
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/employee-portal/employee"
	"go.uber.org/zap"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Looker finds one employee's consolidated record.
type Looker interface {
	Lookup(ctx context.Context, id string) (*employee.Aggregate, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	Employees Looker
	logger    *zap.Logger
	metrics   *Metrics
}

// NewHandler creates a handler. logger and metrics may be nil.
func NewHandler(employees Looker, logger *zap.Logger, metrics *Metrics) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Employees: employees,
		logger:    logger.Named("api"),
		metrics:   metrics,
	}
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

// GetEmployee returns the record for the ID in the path.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	// chi matches against RawPath when it is set, leaving the segment
	// escaped; otherwise the segment is already decoded.
	id := chi.URLParam(r, "id")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(id); err == nil {
			id = unescaped
		}
	}
	h.lookup(w, r, id)
}

// LookupEmployee returns the record for the "id" query parameter.
func (h *Handler) LookupEmployee(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, r.URL.Query().Get("id"))
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request, id string) {
	start := time.Now()

	agg, err := h.Employees.Lookup(r.Context(), id)
	if err != nil {
		status, code, message := lookupFailure(err)
		h.metrics.observe(code, time.Since(start))
		if status >= http.StatusInternalServerError {
			h.logger.Error("lookup failed", zap.String("id", id), zap.Error(err))
		} else {
			h.logger.Debug("lookup rejected", zap.String("id", id), zap.Error(err))
		}
		writeJSON(w, status, ErrorResponse{Error: message, Code: code, Details: err.Error()})
		return
	}

	h.metrics.observe("ok", time.Since(start))
	writeJSON(w, http.StatusOK, ToEmployeeDTO(agg))
}

// Health reports liveness. It does not touch the sources.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
