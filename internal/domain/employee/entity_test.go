package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHourlyRate(t *testing.T) {
	t.Run("derived from basic salary", func(t *testing.T) {
		emp := Employee{
			BasicSalary:          decimal.RequireFromString("30000"),
			ExpectedWorkingHours: 8,
		}
		// 30000 / (22 * 8)
		assert.Equal(t, "170.45", emp.HourlyRate().Round(2).StringFixed(2))
	})

	t.Run("zero without salary", func(t *testing.T) {
		emp := Employee{ExpectedWorkingHours: 8}
		assert.True(t, emp.HourlyRate().IsZero())
	})

	t.Run("zero without expected hours", func(t *testing.T) {
		emp := Employee{BasicSalary: decimal.RequireFromString("30000")}
		assert.True(t, emp.HourlyRate().IsZero())
	})
}

func TestEffectiveOvertimeRate(t *testing.T) {
	t.Run("explicit rate wins", func(t *testing.T) {
		emp := Employee{
			BasicSalary:          decimal.RequireFromString("30000"),
			ExpectedWorkingHours: 8,
			OvertimeRate:         decimal.RequireFromString("300"),
		}
		assert.Equal(t, "300.00", emp.EffectiveOvertimeRate().StringFixed(2))
	})

	t.Run("falls back to 1.5x hourly", func(t *testing.T) {
		emp := Employee{
			BasicSalary:          decimal.RequireFromString("30000"),
			ExpectedWorkingHours: 8,
		}
		assert.Equal(t, "255.68", emp.EffectiveOvertimeRate().Round(2).StringFixed(2))
	})
}
