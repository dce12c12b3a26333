package attendance

import "context"

// AttendanceService drives the attendance derivation engine.
type AttendanceService interface {
	// Generate derives and persists daily results for every employee and
	// date in the request range. The whole run is transactional: on
	// persistence failure nothing is written.
	Generate(ctx context.Context, req GenerateRequest) (GenerationSummary, error)

	// Preview derives daily results without persisting them.
	Preview(ctx context.Context, req GenerateRequest) ([]DailyResultResponse, error)

	// Summarize aggregates the range into one PeriodSummary per employee,
	// sorted by employee code.
	Summarize(ctx context.Context, req GenerateRequest) ([]PeriodSummaryResponse, error)

	// SummarizePeriod is the domain-typed form of Summarize, consumed by
	// the payroll engine.
	SummarizePeriod(ctx context.Context, req GenerateRequest) ([]PeriodSummary, error)

	// ImportPunches bulk-loads device punch rows with per-row error
	// collection.
	ImportPunches(ctx context.Context, req ImportPunchesRequest) (ImportSummary, error)

	// ListResults returns persisted daily results.
	ListResults(ctx context.Context, filter ResultFilter) (ListResultsResponse, error)

	// GetConfig returns the active configuration, falling back to the
	// documented defaults.
	GetConfig(ctx context.Context, companyID string) (ConfigResponse, error)
	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
}
