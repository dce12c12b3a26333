package attendance

import (
	"fmt"
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/holiday"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/leave"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/shift"
)

const dateKeyLayout = "2006-01-02"

// Calendar bundles the read-side lookups a generation run needs: holidays
// by date, approved leave days per employee, and the weekend rule from the
// company configuration. Built once per run from bulk-fetched rows.
type Calendar struct {
	cfg      attendance.Config
	holidays map[string]string
	leaves   map[string]map[string]string
}

func NewCalendar(cfg attendance.Config, holidays []holiday.Holiday, leaves []leave.LeaveApplication) Calendar {
	cal := Calendar{
		cfg:      cfg,
		holidays: make(map[string]string, len(holidays)),
		leaves:   make(map[string]map[string]string),
	}

	for _, h := range holidays {
		cal.holidays[h.Date.Format(dateKeyLayout)] = h.Name
	}

	for _, l := range leaves {
		if l.Status != leave.LeaveStatusApproved {
			continue
		}
		days, ok := cal.leaves[l.EmployeeID]
		if !ok {
			days = make(map[string]string)
			cal.leaves[l.EmployeeID] = days
		}
		for d := l.StartDate; !d.After(l.EndDate); d = d.AddDate(0, 0, 1) {
			key := d.Format(dateKeyLayout)
			// Overlapping approved leaves are a data anomaly; the first
			// loaded application wins.
			if _, exists := days[key]; !exists {
				days[key] = l.LeaveTypeName
			}
		}
	}

	return cal
}

func (c Calendar) IsWeekend(date time.Time) bool {
	return c.cfg.IsWeekend(date)
}

func (c Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[date.Format(dateKeyLayout)]
	return ok
}

func (c Calendar) HolidayName(date time.Time) string {
	return c.holidays[date.Format(dateKeyLayout)]
}

func (c Calendar) OnLeave(employeeID string, date time.Time) bool {
	_, ok := c.leaves[employeeID][date.Format(dateKeyLayout)]
	return ok
}

func (c Calendar) LeaveTypeName(employeeID string, date time.Time) string {
	return c.leaves[employeeID][date.Format(dateKeyLayout)]
}

// DayInput is everything needed to derive one employee's attendance for
// one date. Punches must be sorted by timestamp.
type DayInput struct {
	Date     time.Time
	Employee employee.Employee
	Shift    *shift.Shift
	Punches  []attendance.Punch
}

func firstLastPunch(punches []attendance.Punch) (first, last *time.Time) {
	if len(punches) == 0 {
		return nil, nil
	}
	f := punches[0].Timestamp
	first = &f
	if len(punches) > 1 {
		l := punches[len(punches)-1].Timestamp
		last = &l
	}
	return first, last
}

// ProcessDay derives the full daily result for one employee-date cell.
// The status rule chain is priority ordered; only the first matching rule
// applies:
//
//  1. approved leave
//  2. weekend
//  3. holiday
//  4. no punches on a working day -> absent
//  5. punches on a working day: missing-punch rule, minimum-hours rule,
//     half-day band, then present
func (c Calculator) ProcessDay(in DayInput, cal Calendar) attendance.DailyResult {
	result := attendance.DailyResult{
		EmployeeID: in.Employee.ID,
		CompanyID:  in.Employee.CompanyID,
		Date:       in.Date,
	}
	if in.Shift != nil {
		result.ShiftID = &in.Shift.ID
	}

	first, last := firstLastPunch(in.Punches)
	result.FirstPunch = first
	result.LastPunch = last

	// Rule 1: approved leave wins over everything, including weekends and
	// holidays that fall inside the leave range.
	if cal.OnLeave(in.Employee.ID, in.Date) {
		result.Status = attendance.StatusLeave
		result.Reason = fmt.Sprintf("On Leave: %s", cal.LeaveTypeName(in.Employee.ID, in.Date))
		return result
	}

	// Rule 2: weekend. Work on a weekend stays Weekend status; the hours
	// feed overtime, not presence.
	if cal.IsWeekend(in.Date) {
		result.Status = attendance.StatusWeekend
		result.Reason = "Weekend"
		if len(in.Punches) > 0 {
			result.Reason = "Weekend (worked on weekend)"
			result.WorkHours = c.WorkHours(first, last)
			result.OvertimeHours = c.Overtime(result.WorkHours, in.Employee.ExpectedWorkingHours, true, false)
		}
		return result
	}

	// Rule 3: holiday, same annotation rule as weekends.
	if cal.IsHoliday(in.Date) {
		name := cal.HolidayName(in.Date)
		result.Status = attendance.StatusHoliday
		result.Reason = fmt.Sprintf("Holiday: %s", name)
		if len(in.Punches) > 0 {
			result.Reason = fmt.Sprintf("Holiday: %s (worked on holiday)", name)
			result.WorkHours = c.WorkHours(first, last)
			result.OvertimeHours = c.Overtime(result.WorkHours, in.Employee.ExpectedWorkingHours, false, true)
		}
		return result
	}

	// Rule 4: working day without any punch.
	if len(in.Punches) == 0 {
		result.Status = attendance.StatusAbsent
		result.Reason = "Absent"
		return result
	}

	// Rule 5: working day with punches.
	workHours := c.WorkHours(first, last)
	result.WorkHours = workHours

	switch {
	case c.cfg.RequireBothInAndOut && len(in.Punches) == 1:
		result.Status = attendance.StatusAbsent
		result.Reason = "Missing Punch"
		return result

	case c.cfg.EnableMinimumWorkingHoursRule && workHours < c.cfg.MinimumWorkingHoursForPresent:
		result.Status = attendance.StatusAbsent
		result.Reason = fmt.Sprintf("Worked %.2fh, below minimum %.2fh",
			workHours, c.cfg.MinimumWorkingHoursForPresent)

	case c.cfg.EnableHalfDayRule &&
		workHours >= c.cfg.HalfDayMinimumHours && workHours <= c.cfg.HalfDayMaximumHours:
		result.Status = attendance.StatusHalfDay
		result.Reason = fmt.Sprintf("Half Day (%.2fh)", workHours)

	default:
		result.Status = attendance.StatusPresent
		result.Reason = "Present"
	}

	result.OvertimeHours = c.Overtime(workHours, in.Employee.ExpectedWorkingHours, false, false)
	result.IsLate, result.LateMinutes = c.CheckLate(first, in.Shift, in.Date)
	result.IsEarlyOut, result.EarlyOutMinutes = c.CheckEarlyOut(last, in.Shift, in.Date)

	return result
}
