package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/shift"
)

func testConfig() attendance.Config {
	cfg := attendance.DefaultConfig("company-1")
	cfg.MinimumOvertimeMinutes = 30
	return cfg
}

func clock(h, m int) time.Time {
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
}

func dayShift() *shift.Shift {
	return &shift.Shift{
		ID:        "shift-1",
		CompanyID: "company-1",
		Name:      "Day",
		StartTime: clock(9, 0),
		EndTime:   clock(18, 0),
	}
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	assert.NoError(t, err)
	return parsed
}

func TestWorkHours(t *testing.T) {
	calc := NewCalculator(testConfig())

	t.Run("nil punches yield zero", func(t *testing.T) {
		assert.Zero(t, calc.WorkHours(nil, nil))

		first := ts(t, "2026-01-05 09:00")
		assert.Zero(t, calc.WorkHours(&first, nil))
	})

	t.Run("simple span", func(t *testing.T) {
		first := ts(t, "2026-01-05 09:00")
		last := ts(t, "2026-01-05 17:30")
		assert.Equal(t, 8.5, calc.WorkHours(&first, &last))
	})

	t.Run("break deducted", func(t *testing.T) {
		cfg := testConfig()
		cfg.DefaultBreakMinutes = 60
		calc := NewCalculator(cfg)

		first := ts(t, "2026-01-05 09:00")
		last := ts(t, "2026-01-05 18:00")
		assert.Equal(t, 8.0, calc.WorkHours(&first, &last))
	})

	t.Run("never negative", func(t *testing.T) {
		cfg := testConfig()
		cfg.DefaultBreakMinutes = 120
		calc := NewCalculator(cfg)

		first := ts(t, "2026-01-05 09:00")
		last := ts(t, "2026-01-05 10:00")
		assert.Zero(t, calc.WorkHours(&first, &last))
	})

	t.Run("last before first yields zero", func(t *testing.T) {
		first := ts(t, "2026-01-05 18:00")
		last := ts(t, "2026-01-05 09:00")
		assert.Zero(t, calc.WorkHours(&first, &last))
	})
}

func TestOvertime(t *testing.T) {
	calc := NewCalculator(testConfig())

	t.Run("below minimum threshold discarded entirely", func(t *testing.T) {
		// 0.4h = 24 minutes, under the 30 minute minimum.
		assert.Zero(t, calc.Overtime(8.4, 8, false, false))
	})

	t.Run("above minimum threshold credited in full", func(t *testing.T) {
		assert.Equal(t, 0.6, calc.Overtime(8.6, 8, false, false))
	})

	t.Run("no expected hours means no regular overtime", func(t *testing.T) {
		assert.Zero(t, calc.Overtime(10, 0, false, false))
	})

	t.Run("weekend counts fully when policy enabled", func(t *testing.T) {
		assert.Equal(t, 5.0, calc.Overtime(5, 8, true, false))
	})

	t.Run("holiday counts fully when policy enabled", func(t *testing.T) {
		assert.Equal(t, 3.5, calc.Overtime(3.5, 8, false, true))
	})

	t.Run("weekend falls back to regular rule when policy disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.WeekendOvertimeFullDay = false
		calc := NewCalculator(cfg)

		assert.Zero(t, calc.Overtime(5, 8, true, false))
		assert.Equal(t, 1.0, calc.Overtime(9, 8, true, false))
	})

	t.Run("zero work hours", func(t *testing.T) {
		assert.Zero(t, calc.Overtime(0, 8, true, true))
	})
}

func TestCheckLate(t *testing.T) {
	calc := NewCalculator(testConfig())
	sh := dayShift()
	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	t.Run("within grace is on time", func(t *testing.T) {
		checkIn := ts(t, "2026-01-05 09:10")
		isLate, minutes := calc.CheckLate(&checkIn, sh, date)
		assert.False(t, isLate)
		assert.Zero(t, minutes)
	})

	t.Run("exactly at grace limit is on time", func(t *testing.T) {
		checkIn := ts(t, "2026-01-05 09:15")
		isLate, _ := calc.CheckLate(&checkIn, sh, date)
		assert.False(t, isLate)
	})

	t.Run("late minutes count from shift start", func(t *testing.T) {
		checkIn := ts(t, "2026-01-05 09:20")
		isLate, minutes := calc.CheckLate(&checkIn, sh, date)
		assert.True(t, isLate)
		assert.Equal(t, 20, minutes)
	})

	t.Run("shift grace overrides config grace", func(t *testing.T) {
		strict := *sh
		strict.GraceMinutes = 5
		checkIn := ts(t, "2026-01-05 09:10")
		isLate, minutes := calc.CheckLate(&checkIn, &strict, date)
		assert.True(t, isLate)
		assert.Equal(t, 10, minutes)
	})

	t.Run("no shift means never late", func(t *testing.T) {
		checkIn := ts(t, "2026-01-05 12:00")
		isLate, _ := calc.CheckLate(&checkIn, nil, date)
		assert.False(t, isLate)
	})
}

func TestCheckEarlyOut(t *testing.T) {
	calc := NewCalculator(testConfig())
	sh := dayShift()
	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	t.Run("within threshold is not early", func(t *testing.T) {
		checkOut := ts(t, "2026-01-05 17:40")
		isEarly, _ := calc.CheckEarlyOut(&checkOut, sh, date)
		assert.False(t, isEarly)
	})

	t.Run("early minutes count from shift end", func(t *testing.T) {
		checkOut := ts(t, "2026-01-05 17:20")
		isEarly, minutes := calc.CheckEarlyOut(&checkOut, sh, date)
		assert.True(t, isEarly)
		assert.Equal(t, 40, minutes)
	})

	t.Run("overnight shift end rolls to next day", func(t *testing.T) {
		night := &shift.Shift{
			ID:        "shift-night",
			StartTime: clock(22, 0),
			EndTime:   clock(6, 0),
		}
		// Leaving at 04:00 the next morning, 2h before the 06:00 end.
		checkOut := ts(t, "2026-01-06 04:00")
		isEarly, minutes := calc.CheckEarlyOut(&checkOut, night, date)
		assert.True(t, isEarly)
		assert.Equal(t, 120, minutes)
	})
}
