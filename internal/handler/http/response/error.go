package response

import (
	"errors"
	"net/http"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/company"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/holiday"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/leave"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/payroll"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/shift"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Shift, holiday, leave domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrInvalidLeaveRange):
		BadRequest(w, "Leave end date must not be before start date", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrConfigNotFound):
		NotFound(w, "Attendance configuration not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, attendance.ErrNoEmployeesMatched):
		NotFound(w, "No employees matched the request")
	case errors.Is(err, attendance.ErrResultNotFound):
		NotFound(w, "Attendance result not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrTemplateNotFound):
		NotFound(w, "Payroll template not found")
	case errors.Is(err, payroll.ErrCycleNotFound):
		NotFound(w, "Payroll cycle not found")
	case errors.Is(err, payroll.ErrCycleExists):
		Conflict(w, "Payroll cycle already exists for this period")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Payroll record already paid, cannot modify")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNoBaseSalary):
		BadRequest(w, "Employee has no basic salary configured", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
