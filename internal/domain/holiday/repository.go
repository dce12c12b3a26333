package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByDateRange(ctx context.Context, companyID string, start, end time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error
}
