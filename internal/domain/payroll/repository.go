package payroll

import "context"

// PayrollRepository defines data access methods for payroll cycles,
// templates, and records. All methods include companyID to prevent
// cross-company data access.
type PayrollRepository interface {
	// Templates
	GetTemplateByID(ctx context.Context, id string, companyID string) (Template, error)

	// Cycles
	CreateCycle(ctx context.Context, cycle Cycle) (Cycle, error)
	GetCycleByPeriod(ctx context.Context, companyID, name string) (Cycle, error)
	UpdateCycleStatus(ctx context.Context, id string, companyID string, status CycleStatus) error

	// Records
	// UpsertRecord writes a record keyed by (cycle, employee). Paid records
	// are never overwritten. Reports whether a new row was created.
	UpsertRecord(ctx context.Context, record Record) (created bool, err error)
	GetRecordByCycleEmployee(ctx context.Context, cycleID, employeeID, companyID string) (Record, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
	MarkRecordsPaid(ctx context.Context, ids []string, companyID string) error

	// AcquireCycleLock serializes concurrent generation runs for the same
	// company+cycle inside the surrounding transaction.
	AcquireCycleLock(ctx context.Context, companyID, cycleName string) error
}
