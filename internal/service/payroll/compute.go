package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/payroll"
)

var (
	oneHundred = decimal.NewFromInt(100)
)

// Compute derives a payroll record from an employee's static compensation
// and their attendance summary for the cycle period. The function is pure:
// the same inputs always produce the same record, so regenerating a cycle
// is idempotent.
//
// tmpl is optional. When present and its auto flags are set, attendance
// bonus and absence deduction come from the template policy instead of the
// employee's static fields.
func Compute(emp employee.Employee, summary attendance.PeriodSummary, tmpl *payroll.Template) payroll.Record {
	rec := payroll.Record{
		EmployeeID: emp.ID,
		CompanyID:  emp.CompanyID,

		TotalDays:   summary.TotalDays,
		WorkingDays: summary.WorkingDays,
		PresentDays: summary.PresentDays,
		AbsentDays:  summary.AbsentDays,
		LeaveDays:   summary.LeaveDays,
		HalfDays:    summary.HalfDays,
		LateCount:   summary.LateCount,

		TotalWorkHours:       summary.TotalWorkHours,
		TotalOvertimeHours:   summary.TotalOvertimeHours,
		AttendancePercentage: summary.AttendancePercentage,

		BasicSalary: emp.BasicSalary.Round(2),
		HouseRent:   emp.HouseRentAllowance.Round(2),
		Medical:     emp.MedicalAllowance.Round(2),
		Conveyance:  emp.ConveyanceAllowance.Round(2),
		Food:        emp.FoodAllowance.Round(2),

		FestivalBonus: emp.FestivalBonus.Round(2),

		ProvidentFund: emp.ProvidentFund.Round(2),
		TaxDeduction:  emp.TaxDeduction.Round(2),
		LoanDeduction: emp.LoanDeduction.Round(2),

		PaymentStatus: payroll.PaymentStatusDraft,
	}

	rec.AttendanceBonus = attendanceBonus(emp, summary, tmpl)

	// Overtime pays at the explicit rate when one is configured, otherwise
	// at 1.5x the derived hourly rate.
	rec.OvertimeRate = emp.EffectiveOvertimeRate().Round(2)
	rec.OvertimeAmount = rec.OvertimeRate.
		Mul(decimal.NewFromFloat(summary.TotalOvertimeHours)).Round(2)

	// Hourly employees additionally earn a wage from actual worked hours.
	if emp.PaymentType == employee.PaymentTypeHourly && !emp.PerHourRate.IsZero() {
		rec.HourlyWage = emp.PerHourRate.
			Mul(decimal.NewFromFloat(summary.TotalWorkHours)).Round(2)
	}

	rec.AbsenceDeduction = absenceDeduction(emp, summary, tmpl)
	rec.LatePenalty = latePenalty(summary, tmpl)

	rec.TotalAllowances = rec.HouseRent.
		Add(rec.Medical).
		Add(rec.Conveyance).
		Add(rec.Food).
		Add(rec.AttendanceBonus).
		Add(rec.FestivalBonus).Round(2)

	rec.TotalDeductions = rec.ProvidentFund.
		Add(rec.TaxDeduction).
		Add(rec.LoanDeduction).
		Add(rec.AbsenceDeduction).
		Add(rec.LatePenalty).Round(2)

	rec.GrossSalary = rec.BasicSalary.
		Add(rec.TotalAllowances).
		Add(rec.OvertimeAmount).
		Add(rec.HourlyWage).Round(2)

	rec.NetSalary = rec.GrossSalary.Sub(rec.TotalDeductions).Round(2)

	return rec
}

// attendanceBonus resolves the attendance bonus. Template policy, when
// enabled, awards the perfect-attendance bonus only at or above the
// configured attendance percentage; otherwise the employee's static bonus
// applies.
func attendanceBonus(emp employee.Employee, summary attendance.PeriodSummary, tmpl *payroll.Template) decimal.Decimal {
	if tmpl != nil && tmpl.AutoCalculateBonuses {
		pct := decimal.NewFromFloat(summary.AttendancePercentage)
		if pct.GreaterThanOrEqual(tmpl.MinimumAttendanceForBonus) {
			return tmpl.PerfectAttendanceBonus.Round(2)
		}
		return decimal.Zero
	}
	return emp.AttendanceBonus.Round(2)
}

// absenceDeduction prorates basic salary over the period's working days
// and deducts one prorated day per absent day. A template with auto
// deductions enabled scales the per-day amount by its percentage rate.
// Returns zero when there are no working days or no absences.
func absenceDeduction(emp employee.Employee, summary attendance.PeriodSummary, tmpl *payroll.Template) decimal.Decimal {
	if summary.AbsentDays <= 0 || summary.WorkingDays <= 0 || emp.BasicSalary.IsZero() {
		return decimal.Zero
	}

	perDay := emp.BasicSalary.Div(decimal.NewFromInt(int64(summary.WorkingDays)))

	if tmpl != nil && tmpl.AutoCalculateDeductions && !tmpl.PerDayAbsenceDeductionRate.IsZero() {
		perDay = perDay.Mul(tmpl.PerDayAbsenceDeductionRate).Div(oneHundred)
	}

	return perDay.Mul(decimal.NewFromInt(int64(summary.AbsentDays))).Round(2)
}

// latePenalty charges the template's flat penalty per late arrival. No
// template or disabled deductions means no penalty.
func latePenalty(summary attendance.PeriodSummary, tmpl *payroll.Template) decimal.Decimal {
	if tmpl == nil || !tmpl.AutoCalculateDeductions || summary.LateCount <= 0 {
		return decimal.Zero
	}
	return tmpl.LateArrivalPenalty.
		Mul(decimal.NewFromInt(int64(summary.LateCount))).Round(2)
}
