package attendance

import "time"

// Config is the per-company attendance rule-set. At most one configuration
// is active per company at any time; every calculation run resolves exactly
// one Config (falling back to DefaultConfig) before it starts.
type Config struct {
	ID        string
	CompanyID string
	Name      string
	IsActive  bool

	GraceMinutes             int
	EarlyOutThresholdMinutes int
	OvertimeStartAfterMinutes int
	MinimumOvertimeMinutes   int

	// Weekday indices, 0=Monday .. 6=Sunday.
	WeekendDays []int

	DefaultBreakMinutes int

	MinimumWorkingHoursForPresent float64
	EnableMinimumWorkingHoursRule bool

	HalfDayMinimumHours    float64
	HalfDayMaximumHours    float64
	EnableHalfDayRule      bool

	RequireBothInAndOut bool

	WeekendOvertimeFullDay bool
	HolidayOvertimeFullDay bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultConfig is used when a company has no active configuration.
// Weekend defaults to Friday and Saturday, grace 15 minutes, early-out
// threshold 30 minutes, no break deduction.
func DefaultConfig(companyID string) Config {
	return Config{
		CompanyID:                 companyID,
		Name:                      "Default Configuration",
		GraceMinutes:              15,
		EarlyOutThresholdMinutes:  30,
		OvertimeStartAfterMinutes: 15,
		MinimumOvertimeMinutes:    60,
		WeekendDays:               []int{4, 5},
		DefaultBreakMinutes:       0,
		WeekendOvertimeFullDay:    true,
		HolidayOvertimeFullDay:    true,
	}
}

// IsWeekend reports whether date falls on a configured weekend day.
// time.Weekday counts Sunday as 0; config weekday indices count Monday as 0.
func (c Config) IsWeekend(date time.Time) bool {
	weekday := (int(date.Weekday()) + 6) % 7
	for _, d := range c.WeekendDays {
		if d == weekday {
			return true
		}
	}
	return false
}
