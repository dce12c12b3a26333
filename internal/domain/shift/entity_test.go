package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(h, m int) time.Time {
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
}

func TestIsOvernight(t *testing.T) {
	day := Shift{StartTime: clock(9, 0), EndTime: clock(18, 0)}
	night := Shift{StartTime: clock(22, 0), EndTime: clock(6, 0)}

	assert.False(t, day.IsOvernight())
	assert.True(t, night.IsOvernight())
}

func TestStartOnEndOn(t *testing.T) {
	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	t.Run("day shift ends same day", func(t *testing.T) {
		s := Shift{StartTime: clock(9, 0), EndTime: clock(18, 0)}

		start := s.StartOn(date, time.UTC)
		end := s.EndOn(date, time.UTC)

		assert.Equal(t, 5, start.Day())
		assert.Equal(t, 9, start.Hour())
		assert.Equal(t, 5, end.Day())
		assert.Equal(t, 18, end.Hour())
	})

	t.Run("overnight shift ends next day", func(t *testing.T) {
		s := Shift{StartTime: clock(22, 0), EndTime: clock(6, 0)}

		end := s.EndOn(date, time.UTC)

		assert.Equal(t, 6, end.Day())
		assert.Equal(t, 6, end.Hour())
	})
}
