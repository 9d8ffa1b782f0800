package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/warp/employee-portal/employee"
)

// User-facing messages. The portal is used in Arabic; error kinds are
// localized here and nowhere else.
const (
	msgConnectivity = "فشل الاتصال بالخادم: %d"
	msgEmptyData    = "بيانات الإدارة فارغة"
	msgIDMissing    = "الرقم الوظيفي غير موجود"
	msgNotFound     = "لم يتم العثور على البيانات الإدارية لهذا الموظف"
	msgInternal     = "حدث خطأ غير متوقع"
	msgRateLimited  = "عدد الطلبات كبير، يرجى المحاولة لاحقاً"
)

// lookupFailure maps a lookup error to its HTTP status, error code and
// localized message.
func lookupFailure(err error) (status int, code, message string) {
	var (
		ce *employee.ConnectivityError
		nf *employee.NotFoundError
	)
	switch {
	case errors.As(err, &ce):
		return http.StatusBadGateway, "upstream_unavailable", fmt.Sprintf(msgConnectivity, ce.Status)
	case errors.Is(err, employee.ErrEmptyData):
		return http.StatusBadGateway, "empty_admin_sheet", msgEmptyData
	case errors.As(err, &nf) && nf.IDMissing():
		return http.StatusBadRequest, "id_required", msgIDMissing
	case employee.IsNotFound(err):
		return http.StatusNotFound, "employee_not_found", msgNotFound
	default:
		return http.StatusInternalServerError, "internal", msgInternal
	}
}
