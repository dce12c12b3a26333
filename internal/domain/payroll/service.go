package payroll

import "context"

// PayrollService drives payroll computation over aggregated attendance.
type PayrollService interface {
	// Generate computes payroll for every employee in the cycle period and
	// persists the records atomically. Recomputing with
	// RegenerateExisting=true overwrites draft records in place.
	Generate(ctx context.Context, req GenerateRequest) (GenerationSummary, error)

	// Preview computes records without persisting them.
	Preview(ctx context.Context, req GenerateRequest) ([]RecordResponse, error)

	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) error
}
