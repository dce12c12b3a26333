package leave

import (
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	CompanyID     string  `json:"company_id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        *string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name is required",
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

// ToApplication builds a pending application from a validated request.
func (r *CreateLeaveRequest) ToApplication() LeaveApplication {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return LeaveApplication{
		EmployeeID:    r.EmployeeID,
		CompanyID:     r.CompanyID,
		LeaveTypeName: r.LeaveTypeName,
		StartDate:     start,
		EndDate:       end,
		Status:        LeaveStatusPending,
		Reason:        r.Reason,
	}
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	CompanyID     string  `json:"company_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	Reason        *string `json:"reason,omitempty"`
}

func (l LeaveApplication) ToResponse() LeaveResponse {
	return LeaveResponse{
		ID:            l.ID,
		EmployeeID:    l.EmployeeID,
		CompanyID:     l.CompanyID,
		LeaveTypeName: l.LeaveTypeName,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		Status:        string(l.Status),
		Reason:        l.Reason,
	}
}
