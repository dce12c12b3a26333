package holiday

import "time"

// Holiday is a company-wide non-working date. Unique per (company, date).
type Holiday struct {
	ID          string
	CompanyID   string
	Name        string
	Date        time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
