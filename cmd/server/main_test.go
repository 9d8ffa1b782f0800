package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/employee-portal/api"
	"github.com/warp/employee-portal/employee"
)

// pointSourcesAt serves a minimal workbook and points every source at it
// through the environment.
func pointSourcesAt(t *testing.T) {
	t.Helper()

	bodies := map[string]string{
		"admin":          "الرقم الوظيفي,الاسم\n77,Sara\n",
		"current_salary": "الرقم الوظيفي,التاريخ,صافي الراتب\n77,2024-05,700\n",
		"archive_salary": "الرقم الوظيفي,التاريخ,صافي الراتب\n",
		"bonuses":        "الرقم الوظيفي,مبلغ\n77,10\n",
		"dispatches":     "ID,إيفاد\n",
		"extra_hours":    "ID,الإضافي\n",
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bodies[strings.TrimPrefix(r.URL.Path, "/")]))
	}))
	t.Cleanup(srv.Close)

	for name := range bodies {
		t.Setenv("PORTAL_SOURCES_"+strings.ToUpper(name), srv.URL+"/"+name)
	}
	t.Setenv("PORTAL_LOGGING_LEVEL", "error")
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	pointSourcesAt(t)

	out, err := runCmd(t, "lookup", "77")

	require.NoError(t, err)
	var dto api.EmployeeDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	assert.Equal(t, "Sara", dto.Name)
	require.Len(t, dto.SalaryHistory, 1)
	assert.Equal(t, "أيار", dto.SalaryHistory[0].Month)
	assert.Equal(t, 10.0, dto.Totals.Bonuses)
}

func TestLookupCommand_UnknownEmployee(t *testing.T) {
	pointSourcesAt(t)

	_, err := runCmd(t, "lookup", "1")

	require.Error(t, err)
	assert.True(t, employee.IsNotFound(err))
}

func TestLookupCommand_RequiresID(t *testing.T) {
	_, err := runCmd(t, "lookup")

	assert.Error(t, err)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Setenv("PORTAL_SERVER_PORT", "0")

	_, err := runCmd(t, "lookup", "77")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}
