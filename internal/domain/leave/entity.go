package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveApplication covers an inclusive date range. Only approved
// applications count toward attendance.
type LeaveApplication struct {
	ID            string
	EmployeeID    string
	CompanyID     string
	LeaveTypeName string
	StartDate     time.Time
	EndDate       time.Time
	Status        LeaveStatus
	Reason        *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Covers reports whether date falls inside the application's range.
func (l LeaveApplication) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(l.StartDate.Truncate(24*time.Hour)) && !d.After(l.EndDate.Truncate(24*time.Hour))
}
