package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
)

type attendanceResultRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceResultRepository(db *database.DB) attendance.ResultRepository {
	return &attendanceResultRepositoryImpl{db: db}
}

// BulkUpsert implements attendance.ResultRepository. Rows are keyed by
// (employee_id, date); regenerating a period overwrites derived values
// in place. The returned counts distinguish first-time inserts from
// overwrites via the row's insertion xmax.
func (r *attendanceResultRepositoryImpl) BulkUpsert(ctx context.Context, results []attendance.DailyResult) (int, int, error) {
	if len(results) == 0 {
		return 0, 0, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_results (
			employee_id, company_id, date, status, reason,
			first_punch, last_punch, work_hours, overtime_hours,
			is_late, late_minutes, is_early_out, early_out_minutes, shift_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			reason = EXCLUDED.reason,
			first_punch = EXCLUDED.first_punch,
			last_punch = EXCLUDED.last_punch,
			work_hours = EXCLUDED.work_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			is_late = EXCLUDED.is_late,
			late_minutes = EXCLUDED.late_minutes,
			is_early_out = EXCLUDED.is_early_out,
			early_out_minutes = EXCLUDED.early_out_minutes,
			shift_id = EXCLUDED.shift_id,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted`

	created, updated := 0, 0
	for _, res := range results {
		var inserted bool
		err := q.QueryRow(ctx, query,
			res.EmployeeID, res.CompanyID, res.Date, res.Status, res.Reason,
			res.FirstPunch, res.LastPunch, res.WorkHours, res.OvertimeHours,
			res.IsLate, res.LateMinutes, res.IsEarlyOut, res.EarlyOutMinutes, res.ShiftID,
		).Scan(&inserted)
		if err != nil {
			return created, updated, fmt.Errorf("failed to upsert attendance result for employee %s on %s: %w",
				res.EmployeeID, res.Date.Format("2006-01-02"), err)
		}
		if inserted {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

// List implements attendance.ResultRepository.
func (r *attendanceResultRepositoryImpl) List(ctx context.Context, filter attendance.ResultFilter) ([]attendance.DailyResult, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"r.company_id = $1"}
	args := []interface{}{filter.CompanyID}
	i := 2

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", i))
		args = append(args, filter.EmployeeID)
		i++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.date >= $%d", i))
		args = append(args, *filter.StartDate)
		i++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.date <= $%d", i))
		args = append(args, *filter.EndDate)
		i++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", i))
		args = append(args, filter.Status)
		i++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_results r " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance results: %w", err)
	}

	query := `
		SELECT r.id, r.employee_id, r.company_id, r.date, r.status, r.reason,
		       r.first_punch, r.last_punch, r.work_hours, r.overtime_hours,
		       r.is_late, r.late_minutes, r.is_early_out, r.early_out_minutes,
		       r.shift_id, r.created_at, r.updated_at,
		       e.employee_code, e.name
		FROM attendance_results r
		JOIN employees e ON e.id = r.employee_id
		` + where + `
		ORDER BY r.date DESC, e.employee_code
		` + fmt.Sprintf("LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance results: %w", err)
	}
	defer rows.Close()

	var results []attendance.DailyResult
	for rows.Next() {
		var res attendance.DailyResult
		if err := rows.Scan(
			&res.ID, &res.EmployeeID, &res.CompanyID, &res.Date, &res.Status, &res.Reason,
			&res.FirstPunch, &res.LastPunch, &res.WorkHours, &res.OvertimeHours,
			&res.IsLate, &res.LateMinutes, &res.IsEarlyOut, &res.EarlyOutMinutes,
			&res.ShiftID, &res.CreatedAt, &res.UpdatedAt,
			&res.EmployeeCode, &res.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance result row: %w", err)
		}
		results = append(results, res)
	}
	return results, total, rows.Err()
}
