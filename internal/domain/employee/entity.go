package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType selects the compensation model for an employee. Salaried
// employees are paid from basic salary; hourly employees additionally earn
// a wage from actual worked hours.
type PaymentType string

const (
	PaymentTypeSalaried PaymentType = "salaried"
	PaymentTypeHourly   PaymentType = "hourly"
)

type Employee struct {
	ID             string
	CompanyID      string
	EmployeeCode   string
	Name           string
	DepartmentName *string
	DefaultShiftID *string
	PaymentType    PaymentType

	// Daily working-hour target used for overtime derivation.
	ExpectedWorkingHours float64

	// Earnings
	BasicSalary         decimal.Decimal
	HouseRentAllowance  decimal.Decimal
	MedicalAllowance    decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	FoodAllowance       decimal.Decimal
	AttendanceBonus     decimal.Decimal
	FestivalBonus       decimal.Decimal

	// Deductions
	ProvidentFund decimal.Decimal
	TaxDeduction  decimal.Decimal
	LoanDeduction decimal.Decimal

	// Rates. OvertimeRate zero means "derive from hourly rate".
	OvertimeRate decimal.Decimal
	PerHourRate  decimal.Decimal

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HourlyRate derives an hourly rate from basic salary assuming a 22 working
// day month. Returns zero when salary or expected hours are not configured.
func (e Employee) HourlyRate() decimal.Decimal {
	if e.BasicSalary.IsZero() || e.ExpectedWorkingHours <= 0 {
		return decimal.Zero
	}
	monthlyHours := decimal.NewFromFloat(22 * e.ExpectedWorkingHours)
	return e.BasicSalary.Div(monthlyHours)
}

// EffectiveOvertimeRate returns the explicit overtime rate when set,
// otherwise 1.5x the derived hourly rate.
func (e Employee) EffectiveOvertimeRate() decimal.Decimal {
	if !e.OvertimeRate.IsZero() {
		return e.OvertimeRate
	}
	return e.HourlyRate().Mul(decimal.NewFromFloat(1.5))
}
