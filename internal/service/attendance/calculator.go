package attendance

import (
	"math"
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/shift"
)

// Calculator applies a resolved company rule-set to raw punch times. All
// methods are pure; missing inputs degrade to zero values instead of
// erroring.
type Calculator struct {
	cfg attendance.Config
}

func NewCalculator(cfg attendance.Config) Calculator {
	return Calculator{cfg: cfg}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WorkHours computes worked hours between the first and last punch minus
// the configured break. Never negative: a break longer than the punch
// window floors at zero.
func (c Calculator) WorkHours(first, last *time.Time) float64 {
	if first == nil || last == nil || !last.After(*first) {
		return 0
	}
	hours := last.Sub(*first).Hours() - float64(c.cfg.DefaultBreakMinutes)/60
	if hours < 0 {
		return 0
	}
	return round2(hours)
}

// Overtime derives overtime hours from worked hours. Weekend and holiday
// work counts fully as overtime when the corresponding full-day policy is
// on. On regular days overtime below the minimum threshold is discarded
// entirely, not partially credited.
func (c Calculator) Overtime(workHours, expectedHours float64, isWeekend, isHoliday bool) float64 {
	if workHours <= 0 {
		return 0
	}
	if isWeekend && c.cfg.WeekendOvertimeFullDay {
		return workHours
	}
	if isHoliday && c.cfg.HolidayOvertimeFullDay {
		return workHours
	}
	if expectedHours <= 0 || workHours <= expectedHours {
		return 0
	}
	overtime := workHours - expectedHours
	if overtime*60 < float64(c.cfg.MinimumOvertimeMinutes) {
		return 0
	}
	return round2(overtime)
}

// graceFor prefers the shift-level grace override when set.
func (c Calculator) graceFor(sh *shift.Shift) int {
	if sh != nil && sh.GraceMinutes > 0 {
		return sh.GraceMinutes
	}
	return c.cfg.GraceMinutes
}

// CheckLate compares the first punch against the shift start plus grace.
// Late minutes count from the shift start, not from the grace limit.
func (c Calculator) CheckLate(checkIn *time.Time, sh *shift.Shift, date time.Time) (bool, int) {
	if checkIn == nil || sh == nil {
		return false, 0
	}
	shiftStart := sh.StartOn(date, checkIn.Location())
	graceLimit := shiftStart.Add(time.Duration(c.graceFor(sh)) * time.Minute)
	if !checkIn.After(graceLimit) {
		return false, 0
	}
	lateMinutes := int(math.Round(checkIn.Sub(shiftStart).Minutes()))
	return true, lateMinutes
}

// CheckEarlyOut compares the last punch against the shift end minus the
// early-out threshold. Overnight shifts roll the end to the next day.
func (c Calculator) CheckEarlyOut(checkOut *time.Time, sh *shift.Shift, date time.Time) (bool, int) {
	if checkOut == nil || sh == nil {
		return false, 0
	}
	shiftEnd := sh.EndOn(date, checkOut.Location())
	threshold := shiftEnd.Add(-time.Duration(c.cfg.EarlyOutThresholdMinutes) * time.Minute)
	if !checkOut.Before(threshold) {
		return false, 0
	}
	earlyMinutes := int(math.Round(shiftEnd.Sub(*checkOut).Minutes()))
	return true, earlyMinutes
}
