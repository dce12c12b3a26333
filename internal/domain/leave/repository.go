package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l LeaveApplication) (LeaveApplication, error)
	// GetApprovedOverlapping returns approved applications whose range
	// overlaps [start, end] for any employee of the company.
	GetApprovedOverlapping(ctx context.Context, companyID string, start, end time.Time) ([]LeaveApplication, error)
	UpdateStatus(ctx context.Context, id string, companyID string, status LeaveStatus) error
}
