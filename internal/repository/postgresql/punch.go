package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// GetByCompanyAndRange implements attendance.PunchRepository.
func (r *punchRepositoryImpl) GetByCompanyAndRange(ctx context.Context, companyID string, start, end time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, device_id, timestamp, punch_type, created_at
		FROM attendance_punches
		WHERE company_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY employee_id, timestamp`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.CompanyID, &p.DeviceID, &p.Timestamp, &p.PunchType, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch row: %w", err)
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

// BulkCreate implements attendance.PunchRepository. Duplicate punches
// (same employee and timestamp) are skipped, matching device re-syncs
// that replay already-delivered events.
func (r *punchRepositoryImpl) BulkCreate(ctx context.Context, punches []attendance.Punch) (int, error) {
	if len(punches) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, r.db)

	created := 0
	for _, p := range punches {
		tag, err := q.Exec(ctx, `
			INSERT INTO attendance_punches (id, employee_id, company_id, device_id, timestamp, punch_type)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (employee_id, timestamp) DO NOTHING`,
			p.ID, p.EmployeeID, p.CompanyID, p.DeviceID, p.Timestamp, p.PunchType,
		)
		if err != nil {
			return created, fmt.Errorf("failed to insert punch for employee %s: %w", p.EmployeeID, err)
		}
		created += int(tag.RowsAffected())
	}
	return created, nil
}

// Exists implements attendance.PunchRepository.
func (r *punchRepositoryImpl) Exists(ctx context.Context, employeeID string, ts time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance_punches WHERE employee_id = $1 AND timestamp = $2)`,
		employeeID, ts,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check punch existence: %w", err)
	}
	return exists, nil
}
