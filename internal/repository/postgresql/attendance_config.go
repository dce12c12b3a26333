package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
)

type attendanceConfigRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceConfigRepository(db *database.DB) attendance.ConfigRepository {
	return &attendanceConfigRepositoryImpl{db: db}
}

const configColumns = `
	id, company_id, name, is_active,
	grace_minutes, early_out_threshold_minutes, overtime_start_after_minutes, minimum_overtime_minutes,
	weekend_days, default_break_minutes,
	minimum_working_hours_for_present, enable_minimum_working_hours_rule,
	half_day_minimum_hours, half_day_maximum_hours, enable_half_day_rule,
	require_both_in_and_out, weekend_overtime_full_day, holiday_overtime_full_day,
	created_at, updated_at`

func scanConfig(row pgx.Row) (attendance.Config, error) {
	var cfg attendance.Config
	err := row.Scan(
		&cfg.ID, &cfg.CompanyID, &cfg.Name, &cfg.IsActive,
		&cfg.GraceMinutes, &cfg.EarlyOutThresholdMinutes, &cfg.OvertimeStartAfterMinutes, &cfg.MinimumOvertimeMinutes,
		&cfg.WeekendDays, &cfg.DefaultBreakMinutes,
		&cfg.MinimumWorkingHoursForPresent, &cfg.EnableMinimumWorkingHoursRule,
		&cfg.HalfDayMinimumHours, &cfg.HalfDayMaximumHours, &cfg.EnableHalfDayRule,
		&cfg.RequireBothInAndOut, &cfg.WeekendOvertimeFullDay, &cfg.HolidayOvertimeFullDay,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	return cfg, err
}

// GetActive implements attendance.ConfigRepository.
func (r *attendanceConfigRepositoryImpl) GetActive(ctx context.Context, companyID string) (attendance.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + configColumns + `
		FROM attendance_configs
		WHERE company_id = $1 AND is_active = true
		ORDER BY updated_at DESC
		LIMIT 1`

	cfg, err := scanConfig(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Config{}, attendance.ErrConfigNotFound
		}
		return attendance.Config{}, fmt.Errorf("failed to get attendance configuration: %w", err)
	}
	return cfg, nil
}

// Upsert implements attendance.ConfigRepository. Keyed by company: a
// company carries at most one active configuration at a time.
func (r *attendanceConfigRepositoryImpl) Upsert(ctx context.Context, cfg attendance.Config) (attendance.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_configs (
			company_id, name, is_active,
			grace_minutes, early_out_threshold_minutes, overtime_start_after_minutes, minimum_overtime_minutes,
			weekend_days, default_break_minutes,
			minimum_working_hours_for_present, enable_minimum_working_hours_rule,
			half_day_minimum_hours, half_day_maximum_hours, enable_half_day_rule,
			require_both_in_and_out, weekend_overtime_full_day, holiday_overtime_full_day
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (company_id) DO UPDATE SET
			name = EXCLUDED.name,
			is_active = EXCLUDED.is_active,
			grace_minutes = EXCLUDED.grace_minutes,
			early_out_threshold_minutes = EXCLUDED.early_out_threshold_minutes,
			overtime_start_after_minutes = EXCLUDED.overtime_start_after_minutes,
			minimum_overtime_minutes = EXCLUDED.minimum_overtime_minutes,
			weekend_days = EXCLUDED.weekend_days,
			default_break_minutes = EXCLUDED.default_break_minutes,
			minimum_working_hours_for_present = EXCLUDED.minimum_working_hours_for_present,
			enable_minimum_working_hours_rule = EXCLUDED.enable_minimum_working_hours_rule,
			half_day_minimum_hours = EXCLUDED.half_day_minimum_hours,
			half_day_maximum_hours = EXCLUDED.half_day_maximum_hours,
			enable_half_day_rule = EXCLUDED.enable_half_day_rule,
			require_both_in_and_out = EXCLUDED.require_both_in_and_out,
			weekend_overtime_full_day = EXCLUDED.weekend_overtime_full_day,
			holiday_overtime_full_day = EXCLUDED.holiday_overtime_full_day,
			updated_at = NOW()
		RETURNING ` + configColumns

	updated, err := scanConfig(q.QueryRow(ctx, query,
		cfg.CompanyID, cfg.Name, cfg.IsActive,
		cfg.GraceMinutes, cfg.EarlyOutThresholdMinutes, cfg.OvertimeStartAfterMinutes, cfg.MinimumOvertimeMinutes,
		cfg.WeekendDays, cfg.DefaultBreakMinutes,
		cfg.MinimumWorkingHoursForPresent, cfg.EnableMinimumWorkingHoursRule,
		cfg.HalfDayMinimumHours, cfg.HalfDayMaximumHours, cfg.EnableHalfDayRule,
		cfg.RequireBothInAndOut, cfg.WeekendOvertimeFullDay, cfg.HolidayOvertimeFullDay,
	))
	if err != nil {
		return attendance.Config{}, fmt.Errorf("failed to upsert attendance configuration: %w", err)
	}
	return updated, nil
}
