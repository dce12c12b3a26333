package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, company_id, employee_code, name, department_name, default_shift_id,
	payment_type, expected_working_hours,
	basic_salary, house_rent_allowance, medical_allowance, conveyance_allowance,
	food_allowance, attendance_bonus, festival_bonus,
	provident_fund, tax_deduction, loan_deduction,
	overtime_rate, per_hour_rate,
	is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeCode, &e.Name, &e.DepartmentName, &e.DefaultShiftID,
		&e.PaymentType, &e.ExpectedWorkingHours,
		&e.BasicSalary, &e.HouseRentAllowance, &e.MedicalAllowance, &e.ConveyanceAllowance,
		&e.FoodAllowance, &e.AttendanceBonus, &e.FestivalBonus,
		&e.ProvidentFund, &e.TaxDeduction, &e.LoanDeduction,
		&e.OvertimeRate, &e.PerHourRate,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			company_id, employee_code, name, department_name, default_shift_id,
			payment_type, expected_working_hours,
			basic_salary, house_rent_allowance, medical_allowance, conveyance_allowance,
			food_allowance, attendance_bonus, festival_bonus,
			provident_fund, tax_deduction, loan_deduction,
			overtime_rate, per_hour_rate, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		RETURNING id, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		emp.CompanyID, emp.EmployeeCode, emp.Name, emp.DepartmentName, emp.DefaultShiftID,
		emp.PaymentType, emp.ExpectedWorkingHours,
		emp.BasicSalary, emp.HouseRentAllowance, emp.MedicalAllowance, emp.ConveyanceAllowance,
		emp.FoodAllowance, emp.AttendanceBonus, emp.FestivalBonus,
		emp.ProvidentFund, emp.TaxDeduction, emp.LoanDeduction,
		emp.OvertimeRate, emp.PerHourRate, emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND company_id = $2`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return emp, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND is_active = true
		ORDER BY employee_code`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// GetByIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByIDs(ctx context.Context, ids []string, companyID string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = ANY($1) AND company_id = $2
		ORDER BY employee_code`

	rows, err := q.Query(ctx, query, ids, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees by ids: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			name = $1, department_name = $2, default_shift_id = $3,
			payment_type = $4, expected_working_hours = $5,
			basic_salary = $6, house_rent_allowance = $7, medical_allowance = $8,
			conveyance_allowance = $9, food_allowance = $10,
			attendance_bonus = $11, festival_bonus = $12,
			provident_fund = $13, tax_deduction = $14, loan_deduction = $15,
			overtime_rate = $16, per_hour_rate = $17, is_active = $18,
			updated_at = NOW()
		WHERE id = $19 AND company_id = $20`

	tag, err := q.Exec(ctx, query,
		emp.Name, emp.DepartmentName, emp.DefaultShiftID,
		emp.PaymentType, emp.ExpectedWorkingHours,
		emp.BasicSalary, emp.HouseRentAllowance, emp.MedicalAllowance,
		emp.ConveyanceAllowance, emp.FoodAllowance,
		emp.AttendanceBonus, emp.FestivalBonus,
		emp.ProvidentFund, emp.TaxDeduction, emp.LoanDeduction,
		emp.OvertimeRate, emp.PerHourRate, emp.IsActive,
		emp.ID, emp.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
