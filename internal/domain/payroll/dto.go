package payroll

import (
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

type GenerateRequest struct {
	CompanyID          string   `json:"company_id"`
	CycleName          string   `json:"cycle_name"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	TemplateID         *string  `json:"template_id"`
	EmployeeIDs        []string `json:"employee_ids"`
	RegenerateExisting bool     `json:"regenerate_existing"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if validator.IsEmpty(r.CycleName) {
		errs = append(errs, validator.ValidationError{
			Field:   "cycle_name",
			Message: "cycle_name is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerationSummary struct {
	CycleID string   `json:"cycle_id"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

type RecordResponse struct {
	ID           string `json:"id"`
	CycleID      string `json:"cycle_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`

	TotalDays            int     `json:"total_days"`
	WorkingDays          int     `json:"working_days"`
	PresentDays          float64 `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	LeaveDays            int     `json:"leave_days"`
	HalfDays             int     `json:"half_days"`
	LateCount            int     `json:"late_count"`
	TotalWorkHours       float64 `json:"total_work_hours"`
	TotalOvertimeHours   float64 `json:"total_overtime_hours"`
	AttendancePercentage float64 `json:"attendance_percentage"`

	BasicSalary     string `json:"basic_salary"`
	HouseRent       string `json:"house_rent"`
	Medical         string `json:"medical"`
	Conveyance      string `json:"conveyance"`
	Food            string `json:"food"`
	AttendanceBonus string `json:"attendance_bonus"`
	FestivalBonus   string `json:"festival_bonus"`
	TotalAllowances string `json:"total_allowances"`

	OvertimeRate   string `json:"overtime_rate"`
	OvertimeAmount string `json:"overtime_amount"`
	HourlyWage     string `json:"hourly_wage"`

	ProvidentFund    string `json:"provident_fund"`
	TaxDeduction     string `json:"tax_deduction"`
	LoanDeduction    string `json:"loan_deduction"`
	AbsenceDeduction string `json:"absence_deduction"`
	LatePenalty      string `json:"late_penalty"`
	TotalDeductions  string `json:"total_deductions"`

	GrossSalary string `json:"gross_salary"`
	NetSalary   string `json:"net_salary"`

	PaymentStatus string  `json:"payment_status"`
	PaidAt        *string `json:"paid_at"`
}

type RecordFilter struct {
	CompanyID     string
	CycleID       string
	EmployeeID    string
	PaymentStatus string
	Page          int
	Limit         int
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}

type MarkPaidRequest struct {
	CompanyID string   `json:"company_id"`
	RecordIDs []string `json:"record_ids"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "record_ids",
			Message: "at least one record id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
