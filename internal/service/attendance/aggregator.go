package attendance

import (
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
)

// Aggregate folds a date range of daily results into one PeriodSummary.
// Half days contribute 0.5 present days. Weekend and holiday overtime
// counts toward total overtime even though those days are not Present.
func Aggregate(employeeID, employeeCode string, start, end time.Time, days []attendance.DailyResult) attendance.PeriodSummary {
	summary := attendance.PeriodSummary{
		EmployeeID:   employeeID,
		EmployeeCode: employeeCode,
		StartDate:    start,
		EndDate:      end,
		TotalDays:    int(end.Sub(start).Hours()/24) + 1,
	}

	for _, day := range days {
		switch day.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
			summary.TotalWorkHours += day.WorkHours
		case attendance.StatusHalfDay:
			summary.PresentDays += 0.5
			summary.HalfDays++
			summary.TotalWorkHours += day.WorkHours
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLeave:
			summary.LeaveDays++
		case attendance.StatusWeekend:
			summary.WeekendDays++
			summary.TotalWorkHours += day.WorkHours
		case attendance.StatusHoliday:
			summary.HolidayDays++
			summary.TotalWorkHours += day.WorkHours
		}

		summary.TotalOvertimeHours += day.OvertimeHours

		if day.IsLate {
			summary.LateCount++
		}
		if day.IsEarlyOut {
			summary.EarlyCount++
		}
	}

	summary.WorkingDays = summary.TotalDays - summary.WeekendDays - summary.HolidayDays
	summary.TotalWorkHours = round2(summary.TotalWorkHours)
	summary.TotalOvertimeHours = round2(summary.TotalOvertimeHours)

	// All-weekend periods have zero working days; report 0% instead of
	// dividing by zero.
	if summary.WorkingDays > 0 {
		summary.AttendancePercentage = round2(summary.PresentDays / float64(summary.WorkingDays) * 100)
	}

	return summary
}
