package attendance

import (
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

// ========================================
// GENERATION DTOs
// ========================================

type GenerateRequest struct {
	CompanyID   string   `json:"company_id"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
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

// DateRange parses the validated request dates.
func (r *GenerateRequest) DateRange() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return start, end
}

// GenerationSummary is the structured outcome of a batch run. Batch
// operations never reduce to a single pass/fail: operators need the
// per-record error list to triage partial failures.
type GenerationSummary struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

type DailyResultResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeCode    string  `json:"employee_code,omitempty"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	Reason          string  `json:"reason"`
	FirstPunch      *string `json:"first_punch"`
	LastPunch       *string `json:"last_punch"`
	WorkHours       float64 `json:"work_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	IsLate          bool    `json:"is_late"`
	LateMinutes     int     `json:"late_minutes"`
	IsEarlyOut      bool    `json:"is_early_out"`
	EarlyOutMinutes int     `json:"early_out_minutes"`
}

type PeriodSummaryResponse struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeCode         string  `json:"employee_code"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	PresentDays          float64 `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	LeaveDays            int     `json:"leave_days"`
	WeekendDays          int     `json:"weekend_days"`
	HolidayDays          int     `json:"holiday_days"`
	HalfDays             int     `json:"half_days"`
	TotalWorkHours       float64 `json:"total_work_hours"`
	TotalOvertimeHours   float64 `json:"total_overtime_hours"`
	LateCount            int     `json:"late_count"`
	EarlyCount           int     `json:"early_count"`
	TotalDays            int     `json:"total_days"`
	WorkingDays          int     `json:"working_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// ========================================
// PUNCH IMPORT DTOs
// ========================================

type PunchRow struct {
	EmployeeCode string `json:"employee_code"`
	Timestamp    string `json:"timestamp"`
	DeviceID     string `json:"device_id,omitempty"`
	PunchType    string `json:"punch_type,omitempty"`
}

type ImportPunchesRequest struct {
	CompanyID string     `json:"company_id"`
	Punches   []PunchRow `json:"punches"`
}

func (r *ImportPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if len(r.Punches) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "punches",
			Message: "at least one punch row is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportSummary mirrors GenerationSummary for device-log bulk imports.
type ImportSummary struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ========================================
// CONFIG DTOs
// ========================================

type UpdateConfigRequest struct {
	CompanyID                     string   `json:"company_id"`
	GraceMinutes                  *int     `json:"grace_minutes"`
	EarlyOutThresholdMinutes      *int     `json:"early_out_threshold_minutes"`
	OvertimeStartAfterMinutes     *int     `json:"overtime_start_after_minutes"`
	MinimumOvertimeMinutes        *int     `json:"minimum_overtime_minutes"`
	WeekendDays                   []int    `json:"weekend_days"`
	DefaultBreakMinutes           *int     `json:"default_break_minutes"`
	MinimumWorkingHoursForPresent *float64 `json:"minimum_working_hours_for_present"`
	EnableMinimumWorkingHoursRule *bool    `json:"enable_minimum_working_hours_rule"`
	HalfDayMinimumHours           *float64 `json:"half_day_minimum_hours"`
	HalfDayMaximumHours           *float64 `json:"half_day_maximum_hours"`
	EnableHalfDayRule             *bool    `json:"enable_half_day_rule"`
	RequireBothInAndOut           *bool    `json:"require_both_in_and_out"`
	WeekendOvertimeFullDay        *bool    `json:"weekend_overtime_full_day"`
	HolidayOvertimeFullDay        *bool    `json:"holiday_overtime_full_day"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	for _, d := range r.WeekendDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekend_days",
				Message: "weekend day indices must be between 0 (Monday) and 6 (Sunday)",
			})
			break
		}
	}

	if r.HalfDayMinimumHours != nil && r.HalfDayMaximumHours != nil &&
		*r.HalfDayMaximumHours < *r.HalfDayMinimumHours {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_maximum_hours",
			Message: "half_day_maximum_hours must not be less than half_day_minimum_hours",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigResponse struct {
	ID                            string  `json:"id"`
	CompanyID                     string  `json:"company_id"`
	Name                          string  `json:"name"`
	IsActive                      bool    `json:"is_active"`
	GraceMinutes                  int     `json:"grace_minutes"`
	EarlyOutThresholdMinutes      int     `json:"early_out_threshold_minutes"`
	OvertimeStartAfterMinutes     int     `json:"overtime_start_after_minutes"`
	MinimumOvertimeMinutes        int     `json:"minimum_overtime_minutes"`
	WeekendDays                   []int   `json:"weekend_days"`
	DefaultBreakMinutes           int     `json:"default_break_minutes"`
	MinimumWorkingHoursForPresent float64 `json:"minimum_working_hours_for_present"`
	EnableMinimumWorkingHoursRule bool    `json:"enable_minimum_working_hours_rule"`
	HalfDayMinimumHours           float64 `json:"half_day_minimum_hours"`
	HalfDayMaximumHours           float64 `json:"half_day_maximum_hours"`
	EnableHalfDayRule             bool    `json:"enable_half_day_rule"`
	RequireBothInAndOut           bool    `json:"require_both_in_and_out"`
	WeekendOvertimeFullDay        bool    `json:"weekend_overtime_full_day"`
	HolidayOvertimeFullDay        bool    `json:"holiday_overtime_full_day"`
}

// ========================================
// LIST DTOs
// ========================================

type ResultFilter struct {
	CompanyID  string
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     string
	Page       int
	Limit      int
}

type ListResultsResponse struct {
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	Results    []DailyResultResponse `json:"results"`
}
