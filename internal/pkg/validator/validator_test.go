package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-01-05")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("05-01-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2026-01-05T09:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2026-01-05T09:30:00+06:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2026-01-05 09:30:00")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	clock, ok := IsValidClockTime("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9, clock.Hour())
	assert.Equal(t, 30, clock.Minute())

	clock, ok = IsValidClockTime("22:00:30")
	assert.True(t, ok)
	assert.Equal(t, 22, clock.Hour())

	_, ok = IsValidClockTime("25:00")
	assert.False(t, ok)

	_, ok = IsValidClockTime("9am")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP001"))
	assert.True(t, IsValidEmployeeCode("emp-001_a"))
	assert.False(t, IsValidEmployeeCode(""))
	assert.False(t, IsValidEmployeeCode("EMP 001"))
	assert.False(t, IsValidEmployeeCode("EMP#1"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	assert.Contains(t, errs.Error(), "name: name is required")
	assert.Contains(t, errs.Error(), "date: date must be in YYYY-MM-DD format")

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "name is required", m["name"])
}
