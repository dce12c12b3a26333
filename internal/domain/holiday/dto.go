package holiday

import (
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

func (r *CreateHolidayRequest) Validate() error {
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
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToHoliday builds the entity from a validated request.
func (r *CreateHolidayRequest) ToHoliday() Holiday {
	date, _ := validator.IsValidDate(r.Date)
	return Holiday{
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Date:        date,
		Description: r.Description,
	}
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

func (h Holiday) ToResponse() HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		CompanyID:   h.CompanyID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Description: h.Description,
	}
}
