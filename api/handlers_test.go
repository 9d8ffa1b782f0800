/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Employee lookup by path and by query
- Error localization and status mapping
- DTO shape (field names, arrays never null)
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/employee-portal/employee"
)

// stubLooker returns a fixed result and records the ID it was asked for.
type stubLooker struct {
	agg    *employee.Aggregate
	err    error
	gotID  string
	called bool
}

func (s *stubLooker) Lookup(ctx context.Context, id string) (*employee.Aggregate, error) {
	s.called = true
	s.gotID = id
	return s.agg, s.err
}

func sampleAggregate() *employee.Aggregate {
	return &employee.Aggregate{
		Profile: employee.Profile{
			ID:          "123",
			Name:        "Ali",
			Job:         "Engineer",
			JobTitle:    "Engineer",
			AnnualLeave: "0",
			SickLeave:   "0",
			AvatarURL:   employee.AvatarURL("Ali"),
		},
		SalaryHistory: []employee.SalaryPeriod{{
			Month:     "حزيران",
			Year:      "2023",
			NetSalary: "200",
			Details:   []employee.Detail{{Label: "صافي الراتب", Value: "200"}},
			RawDate:   "2023-06",
		}},
		Bonuses: []employee.Transaction{
			{Name: "Project", Amount: 50, Date: "2024-01-01", HasDate: true},
			{Name: "Eid", Amount: 20, HasDate: true},
			{Name: "Audit", Amount: 5},
		},
		Totals:  employee.Totals{Bonuses: 75},
	}
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewRouter(h, RouterConfig{}).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// =============================================================================
// SUCCESS
// =============================================================================

func TestGetEmployee_Success(t *testing.T) {
	looker := &stubLooker{agg: sampleAggregate()}
	h := NewHandler(looker, nil, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/employees/123", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "123", looker.gotID)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var dto EmployeeDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "Ali", dto.Name)
	assert.Equal(t, "Engineer", dto.JobTitle)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Ali&background=random", dto.Image)
	require.Len(t, dto.SalaryHistory, 1)
	assert.Equal(t, "حزيران", dto.SalaryHistory[0].Month)
	assert.Equal(t, 75.0, dto.Totals.Bonuses)
}

func TestGetEmployee_WireFieldNames(t *testing.T) {
	h := NewHandler(&stubLooker{agg: sampleAggregate()}, nil, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/employees/123", nil))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{
		"p_id", "p_name", "p_education", "p_job", "p_grade", "p_stage", "p_salary",
		"p_promo_date", "p_last_bonus", "p_due_pre", "p_thanks", "p_due_post",
		"p_join_date", "p_promo_status", "p_rollover", "p_annual_leave",
		"p_sick_leave", "p_img", "p_job_title",
		"salary_history", "bonuses", "dispatches", "extra_hours", "totals",
	} {
		assert.Contains(t, raw, key)
	}

	// Empty sequences are arrays, not null
	assert.JSONEq(t, "[]", string(raw["dispatches"]))
	assert.JSONEq(t, "[]", string(raw["extra_hours"]))

	// Dates: raw_date always present; date present whenever the row had a date cell
	assert.JSONEq(t, `[{"month":"حزيران","year":"2023","net_salary":"200",
		"details":[{"label":"صافي الراتب","value":"200"}],"raw_date":"2023-06"}]`,
		string(raw["salary_history"]))
	assert.JSONEq(t, `[
		{"name":"Project","amount":50,"date":"2024-01-01"},
		{"name":"Eid","amount":20,"date":""},
		{"name":"Audit","amount":5}
	]`, string(raw["bonuses"]))
}

func TestToEmployeeDTO_EmptyRawDateKept(t *testing.T) {
	agg := sampleAggregate()
	agg.SalaryHistory[0].RawDate = ""

	b, err := json.Marshal(ToEmployeeDTO(agg))
	require.NoError(t, err)

	assert.Contains(t, string(b), `"raw_date":""`)
}

func TestGetEmployee_EscapedID(t *testing.T) {
	looker := &stubLooker{agg: sampleAggregate()}
	h := NewHandler(looker, nil, nil)

	serve(h, httptest.NewRequest(http.MethodGet, "/api/employees/A%2012", nil))

	assert.Equal(t, "A 12", looker.gotID)
}

func TestGetEmployee_IDDecodedOnce(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/employees/%2541", "%41"},
		{"/api/employees/50%25", "50%"},
		{"/api/employees/a%20b", "a b"},
		{"/api/employees/a%2Fb", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			looker := &stubLooker{agg: sampleAggregate()}
			h := NewHandler(looker, nil, nil)

			rec := serve(h, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, looker.gotID)
		})
	}
}

func TestLookupEmployee_QueryIDNotTrimmed(t *testing.T) {
	looker := &stubLooker{agg: sampleAggregate()}
	h := NewHandler(looker, nil, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/lookup?id=%20123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, " 123", looker.gotID)
}

// =============================================================================
// ERRORS
// =============================================================================

func TestLookup_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "source returned non-2xx",
			err:     &employee.ConnectivityError{Source: "bonuses", Status: 404},
			status:  http.StatusBadGateway,
			code:    "upstream_unavailable",
			message: "فشل الاتصال بالخادم: 404",
		},
		{
			name:    "transport failure",
			err:     &employee.ConnectivityError{Source: "admin", Err: errors.New("dial tcp: refused")},
			status:  http.StatusBadGateway,
			code:    "upstream_unavailable",
			message: "فشل الاتصال بالخادم: 0",
		},
		{
			name:    "empty admin sheet",
			err:     employee.ErrEmptyData,
			status:  http.StatusBadGateway,
			code:    "empty_admin_sheet",
			message: "بيانات الإدارة فارغة",
		},
		{
			name:    "missing ID",
			err:     &employee.NotFoundError{},
			status:  http.StatusBadRequest,
			code:    "id_required",
			message: "الرقم الوظيفي غير موجود",
		},
		{
			name:    "unknown employee",
			err:     &employee.NotFoundError{ID: "999"},
			status:  http.StatusNotFound,
			code:    "employee_not_found",
			message: "لم يتم العثور على البيانات الإدارية لهذا الموظف",
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("lookup: %w", &employee.NotFoundError{ID: "999"}),
			status:  http.StatusNotFound,
			code:    "employee_not_found",
			message: "لم يتم العثور على البيانات الإدارية لهذا الموظف",
		},
		{
			name:    "unexpected",
			err:     context.DeadlineExceeded,
			status:  http.StatusInternalServerError,
			code:    "internal",
			message: "حدث خطأ غير متوقع",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubLooker{err: tt.err}, nil, nil)

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/employees/999", nil))

			assert.Equal(t, tt.status, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, tt.err.Error(), resp.Details)
		})
	}
}

func TestLookupEmployee_EmptyID(t *testing.T) {
	looker := &stubLooker{err: &employee.NotFoundError{}}
	h := NewHandler(looker, nil, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/lookup", nil))

	assert.True(t, looker.called)
	assert.Equal(t, "", looker.gotID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	looker := &stubLooker{}
	h := NewHandler(looker, nil, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.False(t, looker.called)
}
