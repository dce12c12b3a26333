package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
)

func TestAggregate(t *testing.T) {
	start := date(t, "2026-01-01")
	end := date(t, "2026-01-10")

	t.Run("half days count as half presence", func(t *testing.T) {
		days := []attendance.DailyResult{
			{Status: attendance.StatusPresent, WorkHours: 8},
			{Status: attendance.StatusPresent, WorkHours: 8},
			{Status: attendance.StatusPresent, WorkHours: 8},
			{Status: attendance.StatusPresent, WorkHours: 8},
			{Status: attendance.StatusHalfDay, WorkHours: 4},
			{Status: attendance.StatusHalfDay, WorkHours: 4},
			{Status: attendance.StatusAbsent},
			{Status: attendance.StatusLeave},
			{Status: attendance.StatusWeekend},
			{Status: attendance.StatusWeekend},
		}

		summary := Aggregate("emp-1", "EMP001", start, end, days)

		assert.Equal(t, 5.0, summary.PresentDays)
		assert.Equal(t, 2, summary.HalfDays)
		assert.Equal(t, 1, summary.AbsentDays)
		assert.Equal(t, 1, summary.LeaveDays)
		assert.Equal(t, 2, summary.WeekendDays)
		assert.Equal(t, 10, summary.TotalDays)
		assert.Equal(t, 8, summary.WorkingDays)
		assert.Equal(t, 40.0, summary.TotalWorkHours)
		assert.Equal(t, 62.5, summary.AttendancePercentage)
	})

	t.Run("weekend and holiday overtime included in total", func(t *testing.T) {
		days := []attendance.DailyResult{
			{Status: attendance.StatusPresent, WorkHours: 9, OvertimeHours: 1},
			{Status: attendance.StatusWeekend, WorkHours: 5, OvertimeHours: 5},
			{Status: attendance.StatusHoliday, WorkHours: 4, OvertimeHours: 4},
		}

		summary := Aggregate("emp-1", "EMP001", date(t, "2026-01-01"), date(t, "2026-01-03"), days)

		assert.Equal(t, 10.0, summary.TotalOvertimeHours)
		assert.Equal(t, 18.0, summary.TotalWorkHours)
	})

	t.Run("late and early counters", func(t *testing.T) {
		days := []attendance.DailyResult{
			{Status: attendance.StatusPresent, IsLate: true, IsEarlyOut: true},
			{Status: attendance.StatusPresent, IsLate: true},
			{Status: attendance.StatusPresent},
		}

		summary := Aggregate("emp-1", "EMP001", date(t, "2026-01-01"), date(t, "2026-01-03"), days)

		assert.Equal(t, 2, summary.LateCount)
		assert.Equal(t, 1, summary.EarlyCount)
	})

	t.Run("all weekend period reports zero percent", func(t *testing.T) {
		days := []attendance.DailyResult{
			{Status: attendance.StatusWeekend},
			{Status: attendance.StatusWeekend},
		}

		summary := Aggregate("emp-1", "EMP001", date(t, "2026-01-09"), date(t, "2026-01-10"), days)

		assert.Zero(t, summary.WorkingDays)
		assert.Zero(t, summary.AttendancePercentage)
	})

	t.Run("empty period", func(t *testing.T) {
		summary := Aggregate("emp-1", "EMP001", date(t, "2026-01-01"), date(t, "2026-01-01"), nil)

		assert.Equal(t, 1, summary.TotalDays)
		assert.Equal(t, 1, summary.WorkingDays)
		assert.Zero(t, summary.PresentDays)
		assert.Zero(t, summary.AttendancePercentage)
	})
}
