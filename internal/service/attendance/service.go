package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/holiday"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/leave"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/shift"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/repository/postgresql"
)

// maxReportedErrors caps the error list returned in batch summaries so a
// large failed run stays triageable.
const maxReportedErrors = 10

type AttendanceServiceImpl struct {
	db           *database.DB
	configRepo   attendance.ConfigRepository
	punchRepo    attendance.PunchRepository
	resultRepo   attendance.ResultRepository
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	holidayRepo  holiday.HolidayRepository
	leaveRepo    leave.LeaveRepository
}

func NewAttendanceService(
	db *database.DB,
	configRepo attendance.ConfigRepository,
	punchRepo attendance.PunchRepository,
	resultRepo attendance.ResultRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:           db,
		configRepo:   configRepo,
		punchRepo:    punchRepo,
		resultRepo:   resultRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		holidayRepo:  holidayRepo,
		leaveRepo:    leaveRepo,
	}
}

// ResolveConfig returns the company's active configuration or the
// documented defaults. Absence of a configuration is a warning, never an
// error: many call sites run before any configuration has been created.
func (s *AttendanceServiceImpl) ResolveConfig(ctx context.Context, companyID string) attendance.Config {
	cfg, err := s.configRepo.GetActive(ctx, companyID)
	if err != nil {
		if !errors.Is(err, attendance.ErrConfigNotFound) {
			slog.Error("failed to load attendance configuration, using defaults",
				"company_id", companyID, "error", err)
		} else {
			slog.Warn("no active attendance configuration, using defaults",
				"company_id", companyID)
		}
		return attendance.DefaultConfig(companyID)
	}
	return cfg
}

// employeeRun is the derived output of one employee's date walk.
type employeeRun struct {
	employee employee.Employee
	days     []attendance.DailyResult
	summary  attendance.PeriodSummary
	errs     []string
}

// derive runs the engine for every requested employee over the range and
// returns runs sorted by employee code. Each employee is independent, so
// the walk fans out over a worker pool; output order never depends on
// completion order.
func (s *AttendanceServiceImpl) derive(ctx context.Context, req attendance.GenerateRequest) ([]employeeRun, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, end := req.DateRange()

	cfg := s.ResolveConfig(ctx, req.CompanyID)

	var employees []employee.Employee
	var err error
	if len(req.EmployeeIDs) > 0 {
		employees, err = s.employeeRepo.GetByIDs(ctx, req.EmployeeIDs, req.CompanyID)
	} else {
		employees, err = s.employeeRepo.GetActiveByCompanyID(ctx, req.CompanyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, attendance.ErrNoEmployeesMatched
	}

	holidays, err := s.holidayRepo.GetByDateRange(ctx, req.CompanyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays: %w", err)
	}

	leaves, err := s.leaveRepo.GetApprovedOverlapping(ctx, req.CompanyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave applications: %w", err)
	}

	shifts, err := s.shiftRepo.GetByCompanyID(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	shiftByID := make(map[string]shift.Shift, len(shifts))
	for _, sh := range shifts {
		shiftByID[sh.ID] = sh
	}

	// Punch fetch covers [start, end+1d) so a day's last punch at 23:59
	// is included.
	punches, err := s.punchRepo.GetByCompanyAndRange(ctx, req.CompanyID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to get punches: %w", err)
	}
	punchesByDay := make(map[string][]attendance.Punch)
	for _, p := range punches {
		key := p.EmployeeID + "|" + p.Timestamp.Format(dateKeyLayout)
		punchesByDay[key] = append(punchesByDay[key], p)
	}

	cal := NewCalendar(cfg, holidays, leaves)
	calc := NewCalculator(cfg)

	runs := make([]employeeRun, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			run := employeeRun{employee: emp}

			var empShift *shift.Shift
			if emp.DefaultShiftID != nil {
				if sh, ok := shiftByID[*emp.DefaultShiftID]; ok {
					v := sh
					empShift = &v
				} else {
					run.errs = append(run.errs,
						fmt.Sprintf("employee %s: default shift %s not found", emp.EmployeeCode, *emp.DefaultShiftID))
				}
			}

			for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
				if err := gctx.Err(); err != nil {
					return err
				}
				dayPunches := punchesByDay[emp.ID+"|"+d.Format(dateKeyLayout)]
				run.days = append(run.days, calc.ProcessDay(DayInput{
					Date:     d,
					Employee: emp,
					Shift:    empShift,
					Punches:  dayPunches,
				}, cal))
			}

			run.summary = Aggregate(emp.ID, emp.EmployeeCode, start, end, run.days)
			runs[i] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].employee.EmployeeCode < runs[j].employee.EmployeeCode
	})

	return runs, nil
}

// Generate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Generate(ctx context.Context, req attendance.GenerateRequest) (attendance.GenerationSummary, error) {
	runs, err := s.derive(ctx, req)
	if err != nil {
		return attendance.GenerationSummary{}, err
	}

	var results []attendance.DailyResult
	var summary attendance.GenerationSummary
	for _, run := range runs {
		results = append(results, run.days...)
		summary.Errors = appendCapped(summary.Errors, run.errs)
	}

	// Persist the entire run atomically: either all daily results land or
	// none do.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, updated, err := s.resultRepo.BulkUpsert(txCtx, results)
		if err != nil {
			return err
		}
		summary.Created = created
		summary.Updated = updated
		return nil
	})
	if err != nil {
		return attendance.GenerationSummary{}, fmt.Errorf("failed to persist attendance results (%d records rolled back): %w", len(results), err)
	}

	slog.Info("attendance generation completed",
		"company_id", req.CompanyID,
		"employees", len(runs),
		"created", summary.Created,
		"updated", summary.Updated,
		"errors", len(summary.Errors))

	return summary, nil
}

// Preview implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Preview(ctx context.Context, req attendance.GenerateRequest) ([]attendance.DailyResultResponse, error) {
	runs, err := s.derive(ctx, req)
	if err != nil {
		return nil, err
	}

	var responses []attendance.DailyResultResponse
	for _, run := range runs {
		for _, day := range run.days {
			responses = append(responses, mapDailyResult(day, run.employee))
		}
	}
	return responses, nil
}

// SummarizePeriod implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SummarizePeriod(ctx context.Context, req attendance.GenerateRequest) ([]attendance.PeriodSummary, error) {
	runs, err := s.derive(ctx, req)
	if err != nil {
		return nil, err
	}

	summaries := make([]attendance.PeriodSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, run.summary)
	}
	return summaries, nil
}

// Summarize implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summarize(ctx context.Context, req attendance.GenerateRequest) ([]attendance.PeriodSummaryResponse, error) {
	summaries, err := s.SummarizePeriod(ctx, req)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.PeriodSummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		responses = append(responses, attendance.PeriodSummaryResponse{
			EmployeeID:           sum.EmployeeID,
			EmployeeCode:         sum.EmployeeCode,
			StartDate:            sum.StartDate.Format(dateKeyLayout),
			EndDate:              sum.EndDate.Format(dateKeyLayout),
			PresentDays:          sum.PresentDays,
			AbsentDays:           sum.AbsentDays,
			LeaveDays:            sum.LeaveDays,
			WeekendDays:          sum.WeekendDays,
			HolidayDays:          sum.HolidayDays,
			HalfDays:             sum.HalfDays,
			TotalWorkHours:       sum.TotalWorkHours,
			TotalOvertimeHours:   sum.TotalOvertimeHours,
			LateCount:            sum.LateCount,
			EarlyCount:           sum.EarlyCount,
			TotalDays:            sum.TotalDays,
			WorkingDays:          sum.WorkingDays,
			AttendancePercentage: sum.AttendancePercentage,
		})
	}
	return responses, nil
}

// ImportPunches implements attendance.AttendanceService. Invalid rows are
// collected into the summary; the batch continues past them.
func (s *AttendanceServiceImpl) ImportPunches(ctx context.Context, req attendance.ImportPunchesRequest) (attendance.ImportSummary, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportSummary{}, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, req.CompanyID)
	if err != nil {
		return attendance.ImportSummary{}, fmt.Errorf("failed to get employees: %w", err)
	}
	byCode := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byCode[emp.EmployeeCode] = emp
	}

	var summary attendance.ImportSummary
	var valid []attendance.Punch

	for i, row := range req.Punches {
		emp, ok := byCode[row.EmployeeCode]
		if !ok {
			summary.Errors = appendCapped(summary.Errors,
				[]string{fmt.Sprintf("row %d: unknown employee code %q", i+1, row.EmployeeCode)})
			continue
		}

		ts, ok := parsePunchTimestamp(row.Timestamp)
		if !ok {
			summary.Errors = appendCapped(summary.Errors,
				[]string{fmt.Sprintf("row %d: invalid timestamp %q", i+1, row.Timestamp)})
			continue
		}

		punch := attendance.Punch{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			CompanyID:  req.CompanyID,
			Timestamp:  ts,
		}
		if row.DeviceID != "" {
			punch.DeviceID = &row.DeviceID
		}
		if row.PunchType != "" {
			punch.PunchType = &row.PunchType
		}
		valid = append(valid, punch)
	}

	if len(valid) > 0 {
		created, err := s.punchRepo.BulkCreate(ctx, valid)
		if err != nil {
			return attendance.ImportSummary{}, fmt.Errorf("failed to store punches: %w", err)
		}
		summary.Created = created
		summary.Skipped = len(valid) - created
	}

	slog.Info("punch import completed",
		"company_id", req.CompanyID,
		"created", summary.Created,
		"skipped", summary.Skipped,
		"errors", len(summary.Errors))

	return summary, nil
}

// ListResults implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListResults(ctx context.Context, filter attendance.ResultFilter) (attendance.ListResultsResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	results, total, err := s.resultRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResultsResponse{}, fmt.Errorf("failed to list attendance results: %w", err)
	}

	responses := make([]attendance.DailyResultResponse, 0, len(results))
	for _, r := range results {
		resp := attendance.DailyResultResponse{
			ID:              r.ID,
			EmployeeID:      r.EmployeeID,
			Date:            r.Date.Format(dateKeyLayout),
			Status:          string(r.Status),
			Reason:          r.Reason,
			FirstPunch:      timePtrToString(r.FirstPunch),
			LastPunch:       timePtrToString(r.LastPunch),
			WorkHours:       r.WorkHours,
			OvertimeHours:   r.OvertimeHours,
			IsLate:          r.IsLate,
			LateMinutes:     r.LateMinutes,
			IsEarlyOut:      r.IsEarlyOut,
			EarlyOutMinutes: r.EarlyOutMinutes,
		}
		if r.EmployeeCode != nil {
			resp.EmployeeCode = *r.EmployeeCode
		}
		if r.EmployeeName != nil {
			resp.EmployeeName = *r.EmployeeName
		}
		responses = append(responses, resp)
	}

	return attendance.ListResultsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Results:    responses,
	}, nil
}

// GetConfig implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetConfig(ctx context.Context, companyID string) (attendance.ConfigResponse, error) {
	if validator.IsEmpty(companyID) {
		return attendance.ConfigResponse{}, validator.ValidationErrors{{
			Field: "company_id", Message: "company_id is required",
		}}
	}
	return mapConfig(s.ResolveConfig(ctx, companyID)), nil
}

// UpdateConfig implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateConfig(ctx context.Context, req attendance.UpdateConfigRequest) (attendance.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ConfigResponse{}, err
	}

	cfg := s.ResolveConfig(ctx, req.CompanyID)
	cfg.IsActive = true

	if req.GraceMinutes != nil {
		cfg.GraceMinutes = *req.GraceMinutes
	}
	if req.EarlyOutThresholdMinutes != nil {
		cfg.EarlyOutThresholdMinutes = *req.EarlyOutThresholdMinutes
	}
	if req.OvertimeStartAfterMinutes != nil {
		cfg.OvertimeStartAfterMinutes = *req.OvertimeStartAfterMinutes
	}
	if req.MinimumOvertimeMinutes != nil {
		cfg.MinimumOvertimeMinutes = *req.MinimumOvertimeMinutes
	}
	if req.WeekendDays != nil {
		cfg.WeekendDays = req.WeekendDays
	}
	if req.DefaultBreakMinutes != nil {
		cfg.DefaultBreakMinutes = *req.DefaultBreakMinutes
	}
	if req.MinimumWorkingHoursForPresent != nil {
		cfg.MinimumWorkingHoursForPresent = *req.MinimumWorkingHoursForPresent
	}
	if req.EnableMinimumWorkingHoursRule != nil {
		cfg.EnableMinimumWorkingHoursRule = *req.EnableMinimumWorkingHoursRule
	}
	if req.HalfDayMinimumHours != nil {
		cfg.HalfDayMinimumHours = *req.HalfDayMinimumHours
	}
	if req.HalfDayMaximumHours != nil {
		cfg.HalfDayMaximumHours = *req.HalfDayMaximumHours
	}
	if req.EnableHalfDayRule != nil {
		cfg.EnableHalfDayRule = *req.EnableHalfDayRule
	}
	if req.RequireBothInAndOut != nil {
		cfg.RequireBothInAndOut = *req.RequireBothInAndOut
	}
	if req.WeekendOvertimeFullDay != nil {
		cfg.WeekendOvertimeFullDay = *req.WeekendOvertimeFullDay
	}
	if req.HolidayOvertimeFullDay != nil {
		cfg.HolidayOvertimeFullDay = *req.HolidayOvertimeFullDay
	}

	updated, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		return attendance.ConfigResponse{}, fmt.Errorf("failed to update attendance configuration: %w", err)
	}
	return mapConfig(updated), nil
}

// ========== HELPERS ==========

func appendCapped(dst []string, src []string) []string {
	for _, s := range src {
		if len(dst) >= maxReportedErrors {
			return dst
		}
		dst = append(dst, s)
	}
	return dst
}

func parsePunchTimestamp(raw string) (time.Time, bool) {
	if ts, ok := validator.IsValidDateTime(raw); ok {
		return ts, true
	}
	ts, err := time.Parse("2006-01-02 15:04:05", raw)
	return ts, err == nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func mapDailyResult(day attendance.DailyResult, emp employee.Employee) attendance.DailyResultResponse {
	return attendance.DailyResultResponse{
		EmployeeID:      day.EmployeeID,
		EmployeeCode:    emp.EmployeeCode,
		EmployeeName:    emp.Name,
		Date:            day.Date.Format(dateKeyLayout),
		Status:          string(day.Status),
		Reason:          day.Reason,
		FirstPunch:      timePtrToString(day.FirstPunch),
		LastPunch:       timePtrToString(day.LastPunch),
		WorkHours:       day.WorkHours,
		OvertimeHours:   day.OvertimeHours,
		IsLate:          day.IsLate,
		LateMinutes:     day.LateMinutes,
		IsEarlyOut:      day.IsEarlyOut,
		EarlyOutMinutes: day.EarlyOutMinutes,
	}
}

func mapConfig(cfg attendance.Config) attendance.ConfigResponse {
	return attendance.ConfigResponse{
		ID:                            cfg.ID,
		CompanyID:                     cfg.CompanyID,
		Name:                          cfg.Name,
		IsActive:                      cfg.IsActive,
		GraceMinutes:                  cfg.GraceMinutes,
		EarlyOutThresholdMinutes:      cfg.EarlyOutThresholdMinutes,
		OvertimeStartAfterMinutes:     cfg.OvertimeStartAfterMinutes,
		MinimumOvertimeMinutes:        cfg.MinimumOvertimeMinutes,
		WeekendDays:                   cfg.WeekendDays,
		DefaultBreakMinutes:           cfg.DefaultBreakMinutes,
		MinimumWorkingHoursForPresent: cfg.MinimumWorkingHoursForPresent,
		EnableMinimumWorkingHoursRule: cfg.EnableMinimumWorkingHoursRule,
		HalfDayMinimumHours:           cfg.HalfDayMinimumHours,
		HalfDayMaximumHours:           cfg.HalfDayMaximumHours,
		EnableHalfDayRule:             cfg.EnableHalfDayRule,
		RequireBothInAndOut:           cfg.RequireBothInAndOut,
		WeekendOvertimeFullDay:        cfg.WeekendOvertimeFullDay,
		HolidayOvertimeFullDay:        cfg.HolidayOvertimeFullDay,
	}
}
