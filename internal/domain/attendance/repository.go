package attendance

import (
	"context"
	"time"
)

// ConfigRepository resolves the per-company attendance rule-set.
type ConfigRepository interface {
	// GetActive returns the configuration flagged active for the company,
	// or ErrConfigNotFound when none exists.
	GetActive(ctx context.Context, companyID string) (Config, error)
	Upsert(ctx context.Context, cfg Config) (Config, error)
}

// PunchRepository provides read access to raw device punches and bulk
// insertion from device sync. Punches are never updated.
type PunchRepository interface {
	// GetByCompanyAndRange returns all punches for the company whose
	// timestamps fall within [start, end), ordered by employee then
	// timestamp.
	GetByCompanyAndRange(ctx context.Context, companyID string, start, end time.Time) ([]Punch, error)
	BulkCreate(ctx context.Context, punches []Punch) (int, error)
	// Exists reports whether a punch with the same employee and timestamp
	// is already stored.
	Exists(ctx context.Context, employeeID string, ts time.Time) (bool, error)
}

// ResultRepository persists derived daily attendance results.
type ResultRepository interface {
	// BulkUpsert writes results keyed by (employee, date), overwriting
	// rows regenerated for the same day. Returns created and updated
	// counts.
	BulkUpsert(ctx context.Context, results []DailyResult) (created, updated int, err error)
	List(ctx context.Context, filter ResultFilter) ([]DailyResult, int64, error)
}
