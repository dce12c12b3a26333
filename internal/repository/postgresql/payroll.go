package postgresql

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/payroll"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// GetTemplateByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetTemplateByID(ctx context.Context, id string, companyID string) (payroll.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name,
		       auto_calculate_bonuses, perfect_attendance_bonus, minimum_attendance_for_bonus,
		       auto_calculate_deductions, per_day_absence_deduction_rate, late_arrival_penalty,
		       created_at, updated_at
		FROM payroll_templates
		WHERE id = $1 AND company_id = $2`

	var t payroll.Template
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&t.ID, &t.CompanyID, &t.Name,
		&t.AutoCalculateBonuses, &t.PerfectAttendanceBonus, &t.MinimumAttendanceForBonus,
		&t.AutoCalculateDeductions, &t.PerDayAbsenceDeductionRate, &t.LateArrivalPenalty,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Template{}, payroll.ErrTemplateNotFound
		}
		return payroll.Template{}, fmt.Errorf("failed to get payroll template with id %s: %w", id, err)
	}
	return t, nil
}

// CreateCycle implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateCycle(ctx context.Context, cycle payroll.Cycle) (payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_cycles (company_id, name, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		cycle.CompanyID, cycle.Name, cycle.StartDate, cycle.EndDate, cycle.Status,
	).Scan(&cycle.ID, &cycle.CreatedAt, &cycle.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Cycle{}, payroll.ErrCycleExists
		}
		return payroll.Cycle{}, fmt.Errorf("failed to create payroll cycle: %w", err)
	}
	return cycle, nil
}

// GetCycleByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetCycleByPeriod(ctx context.Context, companyID, name string) (payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, start_date, end_date, status, created_at, updated_at
		FROM payroll_cycles
		WHERE company_id = $1 AND name = $2`

	var cycle payroll.Cycle
	err := q.QueryRow(ctx, query, companyID, name).Scan(
		&cycle.ID, &cycle.CompanyID, &cycle.Name, &cycle.StartDate, &cycle.EndDate,
		&cycle.Status, &cycle.CreatedAt, &cycle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Cycle{}, payroll.ErrCycleNotFound
		}
		return payroll.Cycle{}, fmt.Errorf("failed to get payroll cycle %q: %w", name, err)
	}
	return cycle, nil
}

// UpdateCycleStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateCycleStatus(ctx context.Context, id string, companyID string, status payroll.CycleStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payroll_cycles SET status = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3`,
		status, id, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll cycle status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrCycleNotFound
	}
	return nil
}

const recordColumns = `
	id, cycle_id, employee_id, company_id,
	total_days, working_days, present_days, absent_days, leave_days, half_days, late_count,
	total_work_hours, total_overtime_hours, attendance_percentage,
	basic_salary, house_rent, medical, conveyance, food,
	attendance_bonus, festival_bonus, total_allowances,
	overtime_rate, overtime_amount, hourly_wage,
	provident_fund, tax_deduction, loan_deduction, absence_deduction, late_penalty, total_deductions,
	gross_salary, net_salary,
	payment_status, paid_at, created_at, updated_at`

const recordColumnsPrefixed = `
	p.id, p.cycle_id, p.employee_id, p.company_id,
	p.total_days, p.working_days, p.present_days, p.absent_days, p.leave_days, p.half_days, p.late_count,
	p.total_work_hours, p.total_overtime_hours, p.attendance_percentage,
	p.basic_salary, p.house_rent, p.medical, p.conveyance, p.food,
	p.attendance_bonus, p.festival_bonus, p.total_allowances,
	p.overtime_rate, p.overtime_amount, p.hourly_wage,
	p.provident_fund, p.tax_deduction, p.loan_deduction, p.absence_deduction, p.late_penalty, p.total_deductions,
	p.gross_salary, p.net_salary,
	p.payment_status, p.paid_at, p.created_at, p.updated_at`

func scanRecord(row pgx.Row, withJoins bool) (payroll.Record, error) {
	var rec payroll.Record
	dest := []interface{}{
		&rec.ID, &rec.CycleID, &rec.EmployeeID, &rec.CompanyID,
		&rec.TotalDays, &rec.WorkingDays, &rec.PresentDays, &rec.AbsentDays, &rec.LeaveDays, &rec.HalfDays, &rec.LateCount,
		&rec.TotalWorkHours, &rec.TotalOvertimeHours, &rec.AttendancePercentage,
		&rec.BasicSalary, &rec.HouseRent, &rec.Medical, &rec.Conveyance, &rec.Food,
		&rec.AttendanceBonus, &rec.FestivalBonus, &rec.TotalAllowances,
		&rec.OvertimeRate, &rec.OvertimeAmount, &rec.HourlyWage,
		&rec.ProvidentFund, &rec.TaxDeduction, &rec.LoanDeduction, &rec.AbsenceDeduction, &rec.LatePenalty, &rec.TotalDeductions,
		&rec.GrossSalary, &rec.NetSalary,
		&rec.PaymentStatus, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &rec.EmployeeCode, &rec.EmployeeName)
	}
	return rec, row.Scan(dest...)
}

// UpsertRecord implements payroll.PayrollRepository. The WHERE clause on
// the conflict action keeps paid records immutable: the statement
// affects zero rows for a paid record and the caller sees created=false.
func (r *payrollRepositoryImpl) UpsertRecord(ctx context.Context, record payroll.Record) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			cycle_id, employee_id, company_id,
			total_days, working_days, present_days, absent_days, leave_days, half_days, late_count,
			total_work_hours, total_overtime_hours, attendance_percentage,
			basic_salary, house_rent, medical, conveyance, food,
			attendance_bonus, festival_bonus, total_allowances,
			overtime_rate, overtime_amount, hourly_wage,
			provident_fund, tax_deduction, loan_deduction, absence_deduction, late_penalty, total_deductions,
			gross_salary, net_salary, payment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33
		)
		ON CONFLICT (cycle_id, employee_id) DO UPDATE SET
			total_days = EXCLUDED.total_days,
			working_days = EXCLUDED.working_days,
			present_days = EXCLUDED.present_days,
			absent_days = EXCLUDED.absent_days,
			leave_days = EXCLUDED.leave_days,
			half_days = EXCLUDED.half_days,
			late_count = EXCLUDED.late_count,
			total_work_hours = EXCLUDED.total_work_hours,
			total_overtime_hours = EXCLUDED.total_overtime_hours,
			attendance_percentage = EXCLUDED.attendance_percentage,
			basic_salary = EXCLUDED.basic_salary,
			house_rent = EXCLUDED.house_rent,
			medical = EXCLUDED.medical,
			conveyance = EXCLUDED.conveyance,
			food = EXCLUDED.food,
			attendance_bonus = EXCLUDED.attendance_bonus,
			festival_bonus = EXCLUDED.festival_bonus,
			total_allowances = EXCLUDED.total_allowances,
			overtime_rate = EXCLUDED.overtime_rate,
			overtime_amount = EXCLUDED.overtime_amount,
			hourly_wage = EXCLUDED.hourly_wage,
			provident_fund = EXCLUDED.provident_fund,
			tax_deduction = EXCLUDED.tax_deduction,
			loan_deduction = EXCLUDED.loan_deduction,
			absence_deduction = EXCLUDED.absence_deduction,
			late_penalty = EXCLUDED.late_penalty,
			total_deductions = EXCLUDED.total_deductions,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		WHERE payroll_records.payment_status <> 'paid'
		RETURNING (xmax = 0) AS inserted`

	var inserted bool
	err := q.QueryRow(ctx, query,
		record.CycleID, record.EmployeeID, record.CompanyID,
		record.TotalDays, record.WorkingDays, record.PresentDays, record.AbsentDays,
		record.LeaveDays, record.HalfDays, record.LateCount,
		record.TotalWorkHours, record.TotalOvertimeHours, record.AttendancePercentage,
		record.BasicSalary, record.HouseRent, record.Medical, record.Conveyance, record.Food,
		record.AttendanceBonus, record.FestivalBonus, record.TotalAllowances,
		record.OvertimeRate, record.OvertimeAmount, record.HourlyWage,
		record.ProvidentFund, record.TaxDeduction, record.LoanDeduction,
		record.AbsenceDeduction, record.LatePenalty, record.TotalDeductions,
		record.GrossSalary, record.NetSalary, record.PaymentStatus,
	).Scan(&inserted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict action skipped: the existing record is paid.
			return false, payroll.ErrRecordAlreadyPaid
		}
		return false, fmt.Errorf("failed to upsert payroll record for employee %s: %w", record.EmployeeID, err)
	}
	return inserted, nil
}

// GetRecordByCycleEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRecordByCycleEmployee(ctx context.Context, cycleID, employeeID, companyID string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + `
		FROM payroll_records
		WHERE cycle_id = $1 AND employee_id = $2 AND company_id = $3`

	rec, err := scanRecord(q.QueryRow(ctx, query, cycleID, employeeID, companyID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

// ListRecords implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.company_id = $1"}
	args := []interface{}{filter.CompanyID}
	i := 2

	if filter.CycleID != "" {
		conditions = append(conditions, fmt.Sprintf("p.cycle_id = $%d", i))
		args = append(args, filter.CycleID)
		i++
	}
	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", i))
		args = append(args, filter.EmployeeID)
		i++
	}
	if filter.PaymentStatus != "" {
		conditions = append(conditions, fmt.Sprintf("p.payment_status = $%d", i))
		args = append(args, filter.PaymentStatus)
		i++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM payroll_records p "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := `SELECT ` + recordColumnsPrefixed + `, e.employee_code, e.name
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		` + where + `
		ORDER BY e.employee_code
		` + fmt.Sprintf("LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record row: %w", err)
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// MarkRecordsPaid implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) MarkRecordsPaid(ctx context.Context, ids []string, companyID string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_records
		SET payment_status = 'paid', paid_at = NOW(), updated_at = NOW()
		WHERE id = ANY($1) AND company_id = $2 AND payment_status <> 'paid'`,
		ids, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark payroll records paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}

// AcquireCycleLock implements payroll.PayrollRepository. Uses a
// transaction-scoped advisory lock so concurrent generate calls for the
// same company+cycle serialize; the lock releases on commit or rollback.
func (r *payrollRepositoryImpl) AcquireCycleLock(ctx context.Context, companyID, cycleName string) error {
	q := GetQuerier(ctx, r.db)

	h := fnv.New64a()
	h.Write([]byte(companyID))
	h.Write([]byte{0})
	h.Write([]byte(cycleName))

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(h.Sum64())); err != nil {
		return fmt.Errorf("failed to acquire payroll cycle lock: %w", err)
	}
	return nil
}
