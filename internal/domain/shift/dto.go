package shift

import (
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

type CreateShiftRequest struct {
	CompanyID    string `json:"company_id"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_minutes"`
	GraceMinutes int    `json:"grace_minutes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}
	if r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToShift builds the entity from a validated request.
func (r *CreateShiftRequest) ToShift() Shift {
	start, _ := validator.IsValidClockTime(r.StartTime)
	end, _ := validator.IsValidClockTime(r.EndTime)
	return Shift{
		CompanyID:    r.CompanyID,
		Name:         r.Name,
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: r.BreakMinutes,
		GraceMinutes: r.GraceMinutes,
	}
}

type ShiftResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_minutes"`
	GraceMinutes int    `json:"grace_minutes"`
	IsOvernight  bool   `json:"is_overnight"`
}

func (s Shift) ToResponse() ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		Name:         s.Name,
		StartTime:    s.StartTime.Format("15:04"),
		EndTime:      s.EndTime.Format("15:04"),
		BreakMinutes: s.BreakMinutes,
		GraceMinutes: s.GraceMinutes,
		IsOvernight:  s.IsOvernight(),
	}
}
