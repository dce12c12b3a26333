package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigIsWeekend(t *testing.T) {
	cfg := DefaultConfig("company-1")

	// Default weekend is Friday and Saturday (indices 4 and 5, Monday=0).
	friday := time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)

	assert.True(t, cfg.IsWeekend(friday))
	assert.True(t, cfg.IsWeekend(saturday))
	assert.False(t, cfg.IsWeekend(sunday))
	assert.False(t, cfg.IsWeekend(monday))
}

func TestConfigIsWeekendCustomDays(t *testing.T) {
	cfg := DefaultConfig("company-1")
	cfg.WeekendDays = []int{5, 6} // Saturday, Sunday

	saturday := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC)

	assert.True(t, cfg.IsWeekend(saturday))
	assert.True(t, cfg.IsWeekend(sunday))
	assert.False(t, cfg.IsWeekend(friday))
}

func TestGenerateRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := GenerateRequest{
			CompanyID: "company-1",
			StartDate: "2026-01-01",
			EndDate:   "2026-01-31",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("end before start", func(t *testing.T) {
		req := GenerateRequest{
			CompanyID: "company-1",
			StartDate: "2026-01-31",
			EndDate:   "2026-01-01",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("missing company", func(t *testing.T) {
		req := GenerateRequest{
			StartDate: "2026-01-01",
			EndDate:   "2026-01-31",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("bad date format", func(t *testing.T) {
		req := GenerateRequest{
			CompanyID: "company-1",
			StartDate: "01/01/2026",
			EndDate:   "2026-01-31",
		}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateConfigRequestValidate(t *testing.T) {
	t.Run("weekend index out of range", func(t *testing.T) {
		req := UpdateConfigRequest{
			CompanyID:   "company-1",
			WeekendDays: []int{7},
		}
		assert.Error(t, req.Validate())
	})

	t.Run("half day band inverted", func(t *testing.T) {
		minHours := 5.0
		maxHours := 3.0
		req := UpdateConfigRequest{
			CompanyID:           "company-1",
			HalfDayMinimumHours: &minHours,
			HalfDayMaximumHours: &maxHours,
		}
		assert.Error(t, req.Validate())
	})
}
