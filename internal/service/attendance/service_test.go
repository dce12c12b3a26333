package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/holiday"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/leave"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/shift"
)

// In-memory fakes. Only the methods the derivation path touches are
// meaningfully implemented.

type fakeConfigRepo struct {
	cfg *attendance.Config
}

func (f *fakeConfigRepo) GetActive(ctx context.Context, companyID string) (attendance.Config, error) {
	if f.cfg == nil {
		return attendance.Config{}, attendance.ErrConfigNotFound
	}
	return *f.cfg, nil
}

func (f *fakeConfigRepo) Upsert(ctx context.Context, cfg attendance.Config) (attendance.Config, error) {
	f.cfg = &cfg
	return cfg, nil
}

type fakePunchRepo struct {
	punches []attendance.Punch
}

func (f *fakePunchRepo) GetByCompanyAndRange(ctx context.Context, companyID string, start, end time.Time) ([]attendance.Punch, error) {
	var out []attendance.Punch
	for _, p := range f.punches {
		if p.CompanyID == companyID && !p.Timestamp.Before(start) && p.Timestamp.Before(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) BulkCreate(ctx context.Context, punches []attendance.Punch) (int, error) {
	f.punches = append(f.punches, punches...)
	return len(punches), nil
}

func (f *fakePunchRepo) Exists(ctx context.Context, employeeID string, ts time.Time) (bool, error) {
	return false, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id && emp.CompanyID == companyID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID == companyID && emp.IsActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		for _, id := range ids {
			if emp.ID == id && emp.CompanyID == companyID {
				out = append(out, emp)
			}
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

type fakeShiftRepo struct {
	shifts []shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	f.shifts = append(f.shifts, s)
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string, companyID string) (shift.Shift, error) {
	for _, s := range f.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) GetByCompanyID(ctx context.Context, companyID string) ([]shift.Shift, error) {
	return f.shifts, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error { return nil }

func (f *fakeShiftRepo) Delete(ctx context.Context, id string, companyID string) error { return nil }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) GetByDateRange(ctx context.Context, companyID string, start, end time.Time) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string, companyID string) error { return nil }

type fakeLeaveRepo struct {
	leaves []leave.LeaveApplication
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.LeaveApplication) (leave.LeaveApplication, error) {
	f.leaves = append(f.leaves, l)
	return l, nil
}

func (f *fakeLeaveRepo) GetApprovedOverlapping(ctx context.Context, companyID string, start, end time.Time) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	for _, l := range f.leaves {
		if l.Status == leave.LeaveStatusApproved {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, companyID string, status leave.LeaveStatus) error {
	return nil
}

func newTestService(
	cfgRepo *fakeConfigRepo,
	punchRepo *fakePunchRepo,
	empRepo *fakeEmployeeRepo,
	shiftRepo *fakeShiftRepo,
	holidayRepo *fakeHolidayRepo,
	leaveRepo *fakeLeaveRepo,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		configRepo:   cfgRepo,
		punchRepo:    punchRepo,
		employeeRepo: empRepo,
		shiftRepo:    shiftRepo,
		holidayRepo:  holidayRepo,
		leaveRepo:    leaveRepo,
	}
}

func TestResolveConfigFallsBackToDefaults(t *testing.T) {
	svc := newTestService(
		&fakeConfigRepo{}, &fakePunchRepo{}, &fakeEmployeeRepo{},
		&fakeShiftRepo{}, &fakeHolidayRepo{}, &fakeLeaveRepo{},
	)

	cfg := svc.ResolveConfig(context.Background(), "company-1")

	assert.Equal(t, "company-1", cfg.CompanyID)
	assert.Equal(t, 15, cfg.GraceMinutes)
	assert.Equal(t, []int{4, 5}, cfg.WeekendDays)
}

func TestPreviewEndToEnd(t *testing.T) {
	cfg := testConfig()
	sh := dayShift()

	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID: "emp-2", CompanyID: "company-1", EmployeeCode: "EMP002",
			Name: "Second", DefaultShiftID: &sh.ID,
			ExpectedWorkingHours: 8, IsActive: true,
		},
		{
			ID: "emp-1", CompanyID: "company-1", EmployeeCode: "EMP001",
			Name: "First", DefaultShiftID: &sh.ID,
			ExpectedWorkingHours: 8, IsActive: true,
		},
	}}

	punchRepo := &fakePunchRepo{punches: []attendance.Punch{
		{EmployeeID: "emp-1", CompanyID: "company-1", Timestamp: ts(t, "2026-01-05 09:10")},
		{EmployeeID: "emp-1", CompanyID: "company-1", Timestamp: ts(t, "2026-01-05 18:20")},
	}}

	svc := newTestService(
		&fakeConfigRepo{cfg: &cfg}, punchRepo, empRepo,
		&fakeShiftRepo{shifts: []shift.Shift{*sh}},
		&fakeHolidayRepo{}, &fakeLeaveRepo{},
	)

	results, err := svc.Preview(context.Background(), attendance.GenerateRequest{
		CompanyID: "company-1",
		StartDate: "2026-01-05",
		EndDate:   "2026-01-05",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Output ordered by employee code regardless of fetch order.
	assert.Equal(t, "EMP001", results[0].EmployeeCode)
	assert.Equal(t, "EMP002", results[1].EmployeeCode)

	first := results[0]
	assert.Equal(t, string(attendance.StatusPresent), first.Status)
	assert.False(t, first.IsLate)
	assert.False(t, first.IsEarlyOut)
	assert.Equal(t, 9.17, first.WorkHours)

	second := results[1]
	assert.Equal(t, string(attendance.StatusAbsent), second.Status)
}

func TestSummarizePeriod(t *testing.T) {
	cfg := testConfig()
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID: "emp-1", CompanyID: "company-1", EmployeeCode: "EMP001",
			ExpectedWorkingHours: 8, IsActive: true,
		},
	}}

	// Mon 2026-01-05 through Sun 2026-01-11: Fri and Sat are weekend.
	punchRepo := &fakePunchRepo{punches: []attendance.Punch{
		{EmployeeID: "emp-1", CompanyID: "company-1", Timestamp: ts(t, "2026-01-05 09:00")},
		{EmployeeID: "emp-1", CompanyID: "company-1", Timestamp: ts(t, "2026-01-05 17:00")},
		{EmployeeID: "emp-1", CompanyID: "company-1", Timestamp: ts(t, "2026-01-06 09:00")},
		{EmployeeID: "emp-1", CompanyID: "company-1", Timestamp: ts(t, "2026-01-06 17:00")},
	}}

	svc := newTestService(
		&fakeConfigRepo{cfg: &cfg}, punchRepo, empRepo,
		&fakeShiftRepo{}, &fakeHolidayRepo{}, &fakeLeaveRepo{},
	)

	summaries, err := svc.SummarizePeriod(context.Background(), attendance.GenerateRequest{
		CompanyID: "company-1",
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	sum := summaries[0]
	assert.Equal(t, 7, sum.TotalDays)
	assert.Equal(t, 2, sum.WeekendDays)
	assert.Equal(t, 5, sum.WorkingDays)
	assert.Equal(t, 2.0, sum.PresentDays)
	assert.Equal(t, 3, sum.AbsentDays)
	assert.Equal(t, 16.0, sum.TotalWorkHours)
	assert.Equal(t, 40.0, sum.AttendancePercentage)
}

func TestDeriveRejectsEmptyCompany(t *testing.T) {
	svc := newTestService(
		&fakeConfigRepo{}, &fakePunchRepo{}, &fakeEmployeeRepo{},
		&fakeShiftRepo{}, &fakeHolidayRepo{}, &fakeLeaveRepo{},
	)

	_, err := svc.Preview(context.Background(), attendance.GenerateRequest{
		CompanyID: "company-1",
		StartDate: "2026-01-05",
		EndDate:   "2026-01-05",
	})
	assert.ErrorIs(t, err, attendance.ErrNoEmployeesMatched)
}

func TestImportPunchesSkipsUnknownAndInvalid(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: "company-1", EmployeeCode: "EMP001", IsActive: true},
	}}
	punchRepo := &fakePunchRepo{}

	svc := newTestService(
		&fakeConfigRepo{}, punchRepo, empRepo,
		&fakeShiftRepo{}, &fakeHolidayRepo{}, &fakeLeaveRepo{},
	)

	summary, err := svc.ImportPunches(context.Background(), attendance.ImportPunchesRequest{
		CompanyID: "company-1",
		Punches: []attendance.PunchRow{
			{EmployeeCode: "EMP001", Timestamp: "2026-01-05T09:00:00Z"},
			{EmployeeCode: "EMP001", Timestamp: "2026-01-05 18:00:00"},
			{EmployeeCode: "GHOST", Timestamp: "2026-01-05T09:00:00Z"},
			{EmployeeCode: "EMP001", Timestamp: "not-a-time"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Created)
	assert.Len(t, summary.Errors, 2)
	assert.Len(t, punchRepo.punches, 2)
}
