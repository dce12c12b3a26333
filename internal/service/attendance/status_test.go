package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/holiday"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/leave"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return parsed
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:                   "emp-1",
		CompanyID:            "company-1",
		EmployeeCode:         "EMP001",
		Name:                 "Test Employee",
		ExpectedWorkingHours: 8,
		IsActive:             true,
	}
}

func punchesAt(t *testing.T, values ...string) []attendance.Punch {
	t.Helper()
	punches := make([]attendance.Punch, 0, len(values))
	for _, v := range values {
		punches = append(punches, attendance.Punch{
			EmployeeID: "emp-1",
			CompanyID:  "company-1",
			Timestamp:  ts(t, v),
		})
	}
	return punches
}

func TestProcessDayPriorityChain(t *testing.T) {
	cfg := testConfig()
	calc := NewCalculator(cfg)
	emp := testEmployee()

	// 2026-01-09 is a Friday, a configured weekend day.
	weekend := date(t, "2026-01-09")
	workday := date(t, "2026-01-05")

	holidays := []holiday.Holiday{
		{CompanyID: "company-1", Name: "New Year", Date: date(t, "2026-01-01")},
	}
	leaves := []leave.LeaveApplication{
		{
			EmployeeID:    "emp-1",
			CompanyID:     "company-1",
			LeaveTypeName: "Annual Leave",
			StartDate:     date(t, "2026-01-08"),
			EndDate:       date(t, "2026-01-10"),
			Status:        leave.LeaveStatusApproved,
		},
	}
	cal := NewCalendar(cfg, holidays, leaves)

	t.Run("leave beats weekend", func(t *testing.T) {
		// Jan 9 is both a weekend day and inside the approved leave range.
		result := calc.ProcessDay(DayInput{Date: weekend, Employee: emp}, cal)
		assert.Equal(t, attendance.StatusLeave, result.Status)
		assert.Equal(t, "On Leave: Annual Leave", result.Reason)
	})

	t.Run("leave beats punches", func(t *testing.T) {
		result := calc.ProcessDay(DayInput{
			Date:     date(t, "2026-01-08"),
			Employee: emp,
			Punches:  punchesAt(t, "2026-01-08 09:00", "2026-01-08 18:00"),
		}, cal)
		assert.Equal(t, attendance.StatusLeave, result.Status)
		assert.Zero(t, result.WorkHours)
	})

	t.Run("weekend without punches", func(t *testing.T) {
		otherEmp := emp
		otherEmp.ID = "emp-2"
		result := calc.ProcessDay(DayInput{Date: weekend, Employee: otherEmp}, cal)
		assert.Equal(t, attendance.StatusWeekend, result.Status)
		assert.Equal(t, "Weekend", result.Reason)
	})

	t.Run("weekend work counts fully as overtime", func(t *testing.T) {
		otherEmp := emp
		otherEmp.ID = "emp-2"
		result := calc.ProcessDay(DayInput{
			Date:     weekend,
			Employee: otherEmp,
			Punches:  punchesAt(t, "2026-01-09 10:00", "2026-01-09 15:00"),
		}, cal)
		assert.Equal(t, attendance.StatusWeekend, result.Status)
		assert.Equal(t, "Weekend (worked on weekend)", result.Reason)
		assert.Equal(t, 5.0, result.WorkHours)
		assert.Equal(t, 5.0, result.OvertimeHours)
	})

	t.Run("holiday", func(t *testing.T) {
		result := calc.ProcessDay(DayInput{Date: date(t, "2026-01-01"), Employee: emp}, cal)
		assert.Equal(t, attendance.StatusHoliday, result.Status)
		assert.Equal(t, "Holiday: New Year", result.Reason)
	})

	t.Run("holiday work annotated and credited as overtime", func(t *testing.T) {
		result := calc.ProcessDay(DayInput{
			Date:     date(t, "2026-01-01"),
			Employee: emp,
			Punches:  punchesAt(t, "2026-01-01 09:00", "2026-01-01 13:00"),
		}, cal)
		assert.Equal(t, attendance.StatusHoliday, result.Status)
		assert.Equal(t, "Holiday: New Year (worked on holiday)", result.Reason)
		assert.Equal(t, 4.0, result.OvertimeHours)
	})

	t.Run("absent on working day without punches", func(t *testing.T) {
		result := calc.ProcessDay(DayInput{Date: workday, Employee: emp}, cal)
		assert.Equal(t, attendance.StatusAbsent, result.Status)
		assert.Equal(t, "Absent", result.Reason)
	})

	t.Run("present on working day with punches", func(t *testing.T) {
		result := calc.ProcessDay(DayInput{
			Date:     workday,
			Employee: emp,
			Punches:  punchesAt(t, "2026-01-05 09:00", "2026-01-05 18:00"),
		}, cal)
		assert.Equal(t, attendance.StatusPresent, result.Status)
		assert.Equal(t, 9.0, result.WorkHours)
	})
}

func TestProcessDayWorkingDayRules(t *testing.T) {
	emp := testEmployee()
	workday := "2026-01-05"
	cal := func(cfg attendance.Config) Calendar {
		return NewCalendar(cfg, nil, nil)
	}

	t.Run("single punch with both-in-and-out required", func(t *testing.T) {
		cfg := testConfig()
		cfg.RequireBothInAndOut = true
		calc := NewCalculator(cfg)

		result := calc.ProcessDay(DayInput{
			Date:     date(t, workday),
			Employee: emp,
			Punches:  punchesAt(t, "2026-01-05 09:00"),
		}, cal(cfg))
		assert.Equal(t, attendance.StatusAbsent, result.Status)
		assert.Equal(t, "Missing Punch", result.Reason)
	})

	t.Run("single punch tolerated when rule off", func(t *testing.T) {
		cfg := testConfig()
		calc := NewCalculator(cfg)

		result := calc.ProcessDay(DayInput{
			Date:     date(t, workday),
			Employee: emp,
			Punches:  punchesAt(t, "2026-01-05 09:00"),
		}, cal(cfg))
		assert.Equal(t, attendance.StatusPresent, result.Status)
		assert.Zero(t, result.WorkHours)
	})

	t.Run("below minimum working hours", func(t *testing.T) {
		cfg := testConfig()
		cfg.EnableMinimumWorkingHoursRule = true
		cfg.MinimumWorkingHoursForPresent = 4
		calc := NewCalculator(cfg)

		result := calc.ProcessDay(DayInput{
			Date:     date(t, workday),
			Employee: emp,
			Punches:  punchesAt(t, "2026-01-05 09:00", "2026-01-05 11:00"),
		}, cal(cfg))
		assert.Equal(t, attendance.StatusAbsent, result.Status)
		assert.Contains(t, result.Reason, "below minimum")
	})

	t.Run("half day band", func(t *testing.T) {
		cfg := testConfig()
		cfg.EnableHalfDayRule = true
		cfg.HalfDayMinimumHours = 3
		cfg.HalfDayMaximumHours = 5
		calc := NewCalculator(cfg)

		result := calc.ProcessDay(DayInput{
			Date:     date(t, workday),
			Employee: emp,
			Punches:  punchesAt(t, "2026-01-05 09:00", "2026-01-05 13:00"),
		}, cal(cfg))
		assert.Equal(t, attendance.StatusHalfDay, result.Status)
	})

	t.Run("late and early flags set with shift", func(t *testing.T) {
		cfg := testConfig()
		calc := NewCalculator(cfg)
		sh := dayShift()

		result := calc.ProcessDay(DayInput{
			Date:     date(t, workday),
			Employee: emp,
			Shift:    sh,
			Punches:  punchesAt(t, "2026-01-05 09:30", "2026-01-05 17:00"),
		}, cal(cfg))
		assert.Equal(t, attendance.StatusPresent, result.Status)
		assert.True(t, result.IsLate)
		assert.Equal(t, 30, result.LateMinutes)
		assert.True(t, result.IsEarlyOut)
		assert.Equal(t, 60, result.EarlyOutMinutes)
	})

	t.Run("grace absorbs small delay", func(t *testing.T) {
		cfg := testConfig()
		calc := NewCalculator(cfg)
		sh := dayShift()

		result := calc.ProcessDay(DayInput{
			Date:     date(t, workday),
			Employee: emp,
			Shift:    sh,
			Punches:  punchesAt(t, "2026-01-05 09:10", "2026-01-05 18:20"),
		}, cal(cfg))
		assert.Equal(t, attendance.StatusPresent, result.Status)
		assert.False(t, result.IsLate)
		assert.False(t, result.IsEarlyOut)
		assert.Equal(t, 9.17, result.WorkHours)
	})
}

func TestCalendarLeaveExpansion(t *testing.T) {
	cfg := testConfig()

	t.Run("pending applications are ignored", func(t *testing.T) {
		cal := NewCalendar(cfg, nil, []leave.LeaveApplication{{
			EmployeeID: "emp-1",
			StartDate:  date(t, "2026-01-05"),
			EndDate:    date(t, "2026-01-06"),
			Status:     leave.LeaveStatusPending,
		}})
		assert.False(t, cal.OnLeave("emp-1", date(t, "2026-01-05")))
	})

	t.Run("first loaded application wins overlaps", func(t *testing.T) {
		cal := NewCalendar(cfg, nil, []leave.LeaveApplication{
			{
				EmployeeID:    "emp-1",
				LeaveTypeName: "Annual Leave",
				StartDate:     date(t, "2026-01-05"),
				EndDate:       date(t, "2026-01-07"),
				Status:        leave.LeaveStatusApproved,
			},
			{
				EmployeeID:    "emp-1",
				LeaveTypeName: "Sick Leave",
				StartDate:     date(t, "2026-01-06"),
				EndDate:       date(t, "2026-01-08"),
				Status:        leave.LeaveStatusApproved,
			},
		})
		assert.Equal(t, "Annual Leave", cal.LeaveTypeName("emp-1", date(t, "2026-01-06")))
		assert.Equal(t, "Sick Leave", cal.LeaveTypeName("emp-1", date(t, "2026-01-08")))
	})

	t.Run("leave scoped per employee", func(t *testing.T) {
		cal := NewCalendar(cfg, nil, []leave.LeaveApplication{{
			EmployeeID: "emp-1",
			StartDate:  date(t, "2026-01-05"),
			EndDate:    date(t, "2026-01-05"),
			Status:     leave.LeaveStatusApproved,
		}})
		assert.True(t, cal.OnLeave("emp-1", date(t, "2026-01-05")))
		assert.False(t, cal.OnLeave("emp-2", date(t, "2026-01-05")))
	})
}
