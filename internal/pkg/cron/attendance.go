package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/company"
)

// AttendanceJobs derives yesterday's attendance for every company so
// punches land in results without an operator triggering generation.
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	companyRepo       company.CompanyRepository
	loc               *time.Location
}

func NewAttendanceJobs(
	attendanceService attendance.AttendanceService,
	companyRepo company.CompanyRepository,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		companyRepo:       companyRepo,
		loc:               loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("generate_daily_attendance", 1*time.Hour, j.GenerateDailyAttendance)
}

// GenerateDailyAttendance runs once per night, in the first hour after
// midnight, and derives the previous day's results for every company.
func (j *AttendanceJobs) GenerateDailyAttendance(ctx context.Context) error {
	if time.Now().In(j.loc).Hour() != 0 {
		return nil
	}

	yesterday := time.Now().In(j.loc).AddDate(0, 0, -1).Format("2006-01-02")

	companies, err := j.companyRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	for _, co := range companies {
		summary, err := j.attendanceService.Generate(ctx, attendance.GenerateRequest{
			CompanyID: co.ID,
			StartDate: yesterday,
			EndDate:   yesterday,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrNoEmployeesMatched) {
				continue
			}
			slog.Error("Cron: daily attendance generation failed",
				"company_id", co.ID, "date", yesterday, "error", err)
			continue
		}
		slog.Info("Cron: daily attendance generated",
			"company_id", co.ID, "date", yesterday,
			"created", summary.Created, "updated", summary.Updated)
	}

	return nil
}
