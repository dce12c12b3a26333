package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/leave"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (employee_id, company_id, leave_type_name, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.CompanyID, l.LeaveTypeName, l.StartDate, l.EndDate, l.Status, l.Reason,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}
	return l, nil
}

// GetApprovedOverlapping implements leave.LeaveRepository. An application
// overlaps the period when its start is not after the period end and its
// end is not before the period start.
func (r *leaveRepositoryImpl) GetApprovedOverlapping(ctx context.Context, companyID string, start, end time.Time) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, leave_type_name, start_date, end_date, status, reason, created_at, updated_at
		FROM leave_applications
		WHERE company_id = $1
		  AND status = $2
		  AND start_date <= $3
		  AND end_date >= $4
		ORDER BY employee_id, start_date`

	rows, err := q.Query(ctx, query, companyID, leave.LeaveStatusApproved, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.LeaveApplication
	for rows.Next() {
		var l leave.LeaveApplication
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.CompanyID, &l.LeaveTypeName,
			&l.StartDate, &l.EndDate, &l.Status, &l.Reason, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave application row: %w", err)
		}
		applications = append(applications, l)
	}
	return applications, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, companyID string, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3`

	tag, err := q.Exec(ctx, query, status, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update leave application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
