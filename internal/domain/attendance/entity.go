package attendance

import "time"

// Punch is a single clock event from a biometric device or manual entry.
// Punches are immutable; device sync only inserts or bulk-deletes them.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string
	DeviceID   *string
	Timestamp  time.Time
	PunchType  *string
	CreatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusWeekend Status = "weekend"
	StatusHoliday Status = "holiday"
	StatusLeave   Status = "leave"
	StatusHalfDay Status = "half_day"
)

// DailyResult is the derived attendance outcome for one employee on one
// date. Persisted for reporting; regenerating a period overwrites rows
// in place.
type DailyResult struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time

	Status Status
	Reason string

	FirstPunch *time.Time
	LastPunch  *time.Time

	WorkHours     float64
	OvertimeHours float64

	IsLate      bool
	LateMinutes int

	IsEarlyOut      bool
	EarlyOutMinutes int

	ShiftID   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}

// PeriodSummary accumulates daily results over an inclusive date range.
// PresentDays is fractional: a half day contributes 0.5.
type PeriodSummary struct {
	EmployeeID   string
	EmployeeCode string
	StartDate    time.Time
	EndDate      time.Time

	PresentDays float64
	AbsentDays  int
	LeaveDays   int
	WeekendDays int
	HolidayDays int
	HalfDays    int

	TotalWorkHours     float64
	TotalOvertimeHours float64

	LateCount  int
	EarlyCount int

	// WorkingDays = calendar days - weekend days - holiday days.
	TotalDays   int
	WorkingDays int

	AttendancePercentage float64
}
