package payroll

import (
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/payroll"
)

const timestampLayout = "2006-01-02 15:04:05"

func mapRecord(rec payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:         rec.ID,
		CycleID:    rec.CycleID,
		EmployeeID: rec.EmployeeID,

		TotalDays:            rec.TotalDays,
		WorkingDays:          rec.WorkingDays,
		PresentDays:          rec.PresentDays,
		AbsentDays:           rec.AbsentDays,
		LeaveDays:            rec.LeaveDays,
		HalfDays:             rec.HalfDays,
		LateCount:            rec.LateCount,
		TotalWorkHours:       rec.TotalWorkHours,
		TotalOvertimeHours:   rec.TotalOvertimeHours,
		AttendancePercentage: rec.AttendancePercentage,

		BasicSalary:     rec.BasicSalary.StringFixed(2),
		HouseRent:       rec.HouseRent.StringFixed(2),
		Medical:         rec.Medical.StringFixed(2),
		Conveyance:      rec.Conveyance.StringFixed(2),
		Food:            rec.Food.StringFixed(2),
		AttendanceBonus: rec.AttendanceBonus.StringFixed(2),
		FestivalBonus:   rec.FestivalBonus.StringFixed(2),
		TotalAllowances: rec.TotalAllowances.StringFixed(2),

		OvertimeRate:   rec.OvertimeRate.StringFixed(2),
		OvertimeAmount: rec.OvertimeAmount.StringFixed(2),
		HourlyWage:     rec.HourlyWage.StringFixed(2),

		ProvidentFund:    rec.ProvidentFund.StringFixed(2),
		TaxDeduction:     rec.TaxDeduction.StringFixed(2),
		LoanDeduction:    rec.LoanDeduction.StringFixed(2),
		AbsenceDeduction: rec.AbsenceDeduction.StringFixed(2),
		LatePenalty:      rec.LatePenalty.StringFixed(2),
		TotalDeductions:  rec.TotalDeductions.StringFixed(2),

		GrossSalary: rec.GrossSalary.StringFixed(2),
		NetSalary:   rec.NetSalary.StringFixed(2),

		PaymentStatus: string(rec.PaymentStatus),
	}

	if rec.EmployeeCode != nil {
		resp.EmployeeCode = *rec.EmployeeCode
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.PaidAt != nil {
		paidAt := rec.PaidAt.Format(timestampLayout)
		resp.PaidAt = &paidAt
	}
	return resp
}
