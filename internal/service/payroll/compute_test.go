package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/payroll"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func salariedEmployee() employee.Employee {
	return employee.Employee{
		ID:                   "emp-1",
		CompanyID:            "company-1",
		EmployeeCode:         "EMP001",
		Name:                 "Test Employee",
		PaymentType:          employee.PaymentTypeSalaried,
		ExpectedWorkingHours: 8,
		BasicSalary:          dec("30000"),
		HouseRentAllowance:   dec("12000"),
		MedicalAllowance:     dec("1500"),
		ConveyanceAllowance:  dec("1000"),
		FoodAllowance:        dec("1250"),
		AttendanceBonus:      dec("500"),
		FestivalBonus:        dec("0"),
		ProvidentFund:        dec("1800"),
		TaxDeduction:         dec("500"),
		LoanDeduction:        dec("0"),
		IsActive:             true,
	}
}

func fullAttendance() attendance.PeriodSummary {
	return attendance.PeriodSummary{
		EmployeeID:           "emp-1",
		EmployeeCode:         "EMP001",
		TotalDays:            30,
		WorkingDays:          26,
		PresentDays:          26,
		TotalWorkHours:       208,
		AttendancePercentage: 100,
	}
}

func TestComputeBasicBreakdown(t *testing.T) {
	rec := Compute(salariedEmployee(), fullAttendance(), nil)

	assert.Equal(t, "30000.00", rec.BasicSalary.StringFixed(2))
	// 12000 + 1500 + 1000 + 1250 + 500 + 0
	assert.Equal(t, "16250.00", rec.TotalAllowances.StringFixed(2))
	assert.Equal(t, "2300.00", rec.TotalDeductions.StringFixed(2))
	assert.Equal(t, "46250.00", rec.GrossSalary.StringFixed(2))
	assert.Equal(t, "43950.00", rec.NetSalary.StringFixed(2))
	assert.Equal(t, payroll.PaymentStatusDraft, rec.PaymentStatus)
}

func TestComputeAbsenceDeduction(t *testing.T) {
	summary := fullAttendance()
	summary.PresentDays = 24
	summary.AbsentDays = 2
	summary.AttendancePercentage = 92.31

	rec := Compute(salariedEmployee(), summary, nil)

	// 30000 / 26 working days * 2 absent days
	assert.Equal(t, "2307.69", rec.AbsenceDeduction.StringFixed(2))
	assert.Equal(t, "4607.69", rec.TotalDeductions.StringFixed(2))
}

func TestComputeAbsenceDeductionGuards(t *testing.T) {
	t.Run("no working days", func(t *testing.T) {
		summary := fullAttendance()
		summary.WorkingDays = 0
		summary.AbsentDays = 2

		rec := Compute(salariedEmployee(), summary, nil)
		assert.True(t, rec.AbsenceDeduction.IsZero())
	})

	t.Run("no basic salary", func(t *testing.T) {
		emp := salariedEmployee()
		emp.BasicSalary = decimal.Zero
		summary := fullAttendance()
		summary.AbsentDays = 2

		rec := Compute(emp, summary, nil)
		assert.True(t, rec.AbsenceDeduction.IsZero())
	})
}

func TestComputeOvertime(t *testing.T) {
	t.Run("derived rate is 1.5x hourly", func(t *testing.T) {
		summary := fullAttendance()
		summary.TotalOvertimeHours = 10

		rec := Compute(salariedEmployee(), summary, nil)

		// hourly = 30000 / (22*8) = 170.4545..., rate = 255.68
		assert.Equal(t, "255.68", rec.OvertimeRate.StringFixed(2))
		assert.Equal(t, "2556.80", rec.OvertimeAmount.StringFixed(2))
	})

	t.Run("explicit rate wins", func(t *testing.T) {
		emp := salariedEmployee()
		emp.OvertimeRate = dec("300")
		summary := fullAttendance()
		summary.TotalOvertimeHours = 10

		rec := Compute(emp, summary, nil)

		assert.Equal(t, "300.00", rec.OvertimeRate.StringFixed(2))
		assert.Equal(t, "3000.00", rec.OvertimeAmount.StringFixed(2))
	})
}

func TestComputeHourlyWage(t *testing.T) {
	t.Run("hourly employee earns wage from worked hours", func(t *testing.T) {
		emp := salariedEmployee()
		emp.PaymentType = employee.PaymentTypeHourly
		emp.PerHourRate = dec("150")
		summary := fullAttendance()
		summary.TotalWorkHours = 160

		rec := Compute(emp, summary, nil)
		assert.Equal(t, "24000.00", rec.HourlyWage.StringFixed(2))
	})

	t.Run("salaried employee earns no hourly wage", func(t *testing.T) {
		emp := salariedEmployee()
		emp.PerHourRate = dec("150")

		rec := Compute(emp, fullAttendance(), nil)
		assert.True(t, rec.HourlyWage.IsZero())
	})
}

func TestComputeTemplatePolicies(t *testing.T) {
	tmpl := &payroll.Template{
		AutoCalculateBonuses:       true,
		PerfectAttendanceBonus:     dec("1000"),
		MinimumAttendanceForBonus:  dec("95"),
		AutoCalculateDeductions:    true,
		PerDayAbsenceDeductionRate: dec("50"),
		LateArrivalPenalty:         dec("100"),
	}

	t.Run("bonus awarded at full attendance", func(t *testing.T) {
		rec := Compute(salariedEmployee(), fullAttendance(), tmpl)
		assert.Equal(t, "1000.00", rec.AttendanceBonus.StringFixed(2))
	})

	t.Run("bonus withheld below threshold", func(t *testing.T) {
		summary := fullAttendance()
		summary.AttendancePercentage = 92.31

		rec := Compute(salariedEmployee(), summary, tmpl)
		assert.True(t, rec.AttendanceBonus.IsZero())
	})

	t.Run("deduction rate halves the prorated day", func(t *testing.T) {
		summary := fullAttendance()
		summary.AbsentDays = 2

		rec := Compute(salariedEmployee(), summary, tmpl)

		// (30000/26) * 50% * 2
		assert.Equal(t, "1153.85", rec.AbsenceDeduction.StringFixed(2))
	})

	t.Run("late penalty per occurrence", func(t *testing.T) {
		summary := fullAttendance()
		summary.LateCount = 3

		rec := Compute(salariedEmployee(), summary, tmpl)
		assert.Equal(t, "300.00", rec.LatePenalty.StringFixed(2))
	})

	t.Run("no template means no late penalty", func(t *testing.T) {
		summary := fullAttendance()
		summary.LateCount = 3

		rec := Compute(salariedEmployee(), summary, nil)
		assert.True(t, rec.LatePenalty.IsZero())
	})
}

func TestComputeIdempotent(t *testing.T) {
	emp := salariedEmployee()
	summary := fullAttendance()
	summary.AbsentDays = 1
	summary.TotalOvertimeHours = 5.5
	summary.LateCount = 2

	first := Compute(emp, summary, nil)
	second := Compute(emp, summary, nil)

	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.True(t, first.GrossSalary.Equal(second.GrossSalary))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
}
