package shift

import "time"

// Shift is a time-of-day work window. StartTime and EndTime carry only the
// clock component; an end before the start means the shift wraps past
// midnight.
type Shift struct {
	ID           string
	CompanyID    string
	Name         string
	StartTime    time.Time
	EndTime      time.Time
	BreakMinutes int
	GraceMinutes int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOvernight reports whether the shift ends on the following day.
func (s Shift) IsOvernight() bool {
	end := s.EndTime.Hour()*60 + s.EndTime.Minute()
	start := s.StartTime.Hour()*60 + s.StartTime.Minute()
	return end < start
}

// StartOn anchors the shift start to a calendar date in loc.
func (s Shift) StartOn(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, loc)
}

// EndOn anchors the shift end to a calendar date in loc, rolling to the next
// day for overnight shifts.
func (s Shift) EndOn(date time.Time, loc *time.Location) time.Time {
	end := time.Date(date.Year(), date.Month(), date.Day(),
		s.EndTime.Hour(), s.EndTime.Minute(), 0, 0, loc)
	if s.IsOvernight() {
		end = end.Add(24 * time.Hour)
	}
	return end
}
