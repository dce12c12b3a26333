package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Template is an optional company payroll policy. When supplied, bonuses
// and absence deductions are derived from attendance instead of the
// employee's static fields.
type Template struct {
	ID        string
	CompanyID string
	Name      string

	AutoCalculateBonuses       bool
	PerfectAttendanceBonus     decimal.Decimal
	MinimumAttendanceForBonus  decimal.Decimal

	AutoCalculateDeductions    bool
	// Percentage of a prorated day's salary deducted per absent day.
	PerDayAbsenceDeductionRate decimal.Decimal
	LateArrivalPenalty         decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CycleStatus string

const (
	CycleStatusDraft     CycleStatus = "draft"
	CycleStatusGenerated CycleStatus = "generated"
	CycleStatusCompleted CycleStatus = "completed"
)

// Cycle is the date period one payroll run covers.
type Cycle struct {
	ID        string
	CompanyID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    CycleStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentStatus string

const (
	PaymentStatusDraft PaymentStatus = "draft"
	PaymentStatusPaid  PaymentStatus = "paid"
)

// Record is the computed payroll result for one employee in one cycle.
// Created once per (cycle, employee); recomputed in place on regeneration
// until marked paid, after which it is immutable.
type Record struct {
	ID         string
	CycleID    string
	EmployeeID string
	CompanyID  string

	// Attendance inputs
	TotalDays   int
	WorkingDays int
	PresentDays float64
	AbsentDays  int
	LeaveDays   int
	HalfDays    int
	LateCount   int

	TotalWorkHours       float64
	TotalOvertimeHours   float64
	AttendancePercentage float64

	// Earnings
	BasicSalary     decimal.Decimal
	HouseRent       decimal.Decimal
	Medical         decimal.Decimal
	Conveyance      decimal.Decimal
	Food            decimal.Decimal
	AttendanceBonus decimal.Decimal
	FestivalBonus   decimal.Decimal
	TotalAllowances decimal.Decimal

	OvertimeRate   decimal.Decimal
	OvertimeAmount decimal.Decimal
	HourlyWage     decimal.Decimal

	// Deductions
	ProvidentFund    decimal.Decimal
	TaxDeduction     decimal.Decimal
	LoanDeduction    decimal.Decimal
	AbsenceDeduction decimal.Decimal
	LatePenalty      decimal.Decimal
	TotalDeductions  decimal.Decimal

	GrossSalary decimal.Decimal
	NetSalary   decimal.Decimal

	PaymentStatus PaymentStatus
	PaidAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}
