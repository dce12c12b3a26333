package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/payroll"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/repository/postgresql"
)

const maxReportedErrors = 10

type PayrollServiceImpl struct {
	db                *database.DB
	payrollRepo       payroll.PayrollRepository
	employeeRepo      employee.EmployeeRepository
	attendanceService attendance.AttendanceService
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                db,
		payrollRepo:       payrollRepo,
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
	}
}

// compute derives records for every employee in the period without
// touching payroll storage.
func (s *PayrollServiceImpl) compute(ctx context.Context, req payroll.GenerateRequest) ([]payroll.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var tmpl *payroll.Template
	if req.TemplateID != nil {
		t, err := s.payrollRepo.GetTemplateByID(ctx, *req.TemplateID, req.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to get payroll template: %w", err)
		}
		tmpl = &t
	}

	summaries, err := s.attendanceService.SummarizePeriod(ctx, attendance.GenerateRequest{
		CompanyID:   req.CompanyID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		EmployeeIDs: req.EmployeeIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attendance for payroll: %w", err)
	}

	ids := make([]string, 0, len(summaries))
	for _, sum := range summaries {
		ids = append(ids, sum.EmployeeID)
	}
	employees, err := s.employeeRepo.GetByIDs(ctx, ids, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	records := make([]payroll.Record, 0, len(summaries))
	for _, sum := range summaries {
		emp, ok := byID[sum.EmployeeID]
		if !ok {
			continue
		}
		rec := Compute(emp, sum, tmpl)
		rec.EmployeeCode = &emp.EmployeeCode
		name := emp.Name
		rec.EmployeeName = &name
		records = append(records, rec)
	}
	return records, nil
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerationSummary, error) {
	records, err := s.compute(ctx, req)
	if err != nil {
		return payroll.GenerationSummary{}, err
	}

	var summary payroll.GenerationSummary

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// Serialize concurrent runs for the same company and cycle. The
		// lock is held until commit.
		if err := s.payrollRepo.AcquireCycleLock(txCtx, req.CompanyID, req.CycleName); err != nil {
			return err
		}

		cycle, err := s.resolveCycle(txCtx, req)
		if err != nil {
			return err
		}
		summary.CycleID = cycle.ID

		for _, rec := range records {
			rec.CycleID = cycle.ID

			if !req.RegenerateExisting {
				_, err := s.payrollRepo.GetRecordByCycleEmployee(txCtx, cycle.ID, rec.EmployeeID, req.CompanyID)
				if err == nil {
					summary.Skipped++
					continue
				}
				if !errors.Is(err, payroll.ErrRecordNotFound) {
					return err
				}
			}

			created, err := s.payrollRepo.UpsertRecord(txCtx, rec)
			if err != nil {
				if errors.Is(err, payroll.ErrRecordAlreadyPaid) {
					summary.Skipped++
					if len(summary.Errors) < maxReportedErrors {
						summary.Errors = append(summary.Errors,
							fmt.Sprintf("employee %s: record already paid, left unchanged", rec.EmployeeID))
					}
					continue
				}
				return err
			}
			if created {
				summary.Created++
			} else {
				summary.Updated++
			}
		}

		return s.payrollRepo.UpdateCycleStatus(txCtx, cycle.ID, req.CompanyID, payroll.CycleStatusGenerated)
	})
	if err != nil {
		return payroll.GenerationSummary{}, fmt.Errorf("failed to generate payroll for cycle %q: %w", req.CycleName, err)
	}

	slog.Info("payroll generation completed",
		"company_id", req.CompanyID,
		"cycle", req.CycleName,
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped)

	return summary, nil
}

// resolveCycle finds the cycle named in the request or creates it.
func (s *PayrollServiceImpl) resolveCycle(ctx context.Context, req payroll.GenerateRequest) (payroll.Cycle, error) {
	cycle, err := s.payrollRepo.GetCycleByPeriod(ctx, req.CompanyID, req.CycleName)
	if err == nil {
		return cycle, nil
	}
	if !errors.Is(err, payroll.ErrCycleNotFound) {
		return payroll.Cycle{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	return s.payrollRepo.CreateCycle(ctx, payroll.Cycle{
		CompanyID: req.CompanyID,
		Name:      req.CycleName,
		StartDate: start,
		EndDate:   end,
		Status:    payroll.CycleStatusDraft,
	})
}

// Preview implements payroll.PayrollService.
func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.GenerateRequest) ([]payroll.RecordResponse, error) {
	records, err := s.compute(ctx, req)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecord(rec))
	}
	return responses, nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordsResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, total, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return payroll.ListRecordsResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecord(rec))
	}
	return payroll.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.payrollRepo.MarkRecordsPaid(ctx, req.RecordIDs, req.CompanyID); err != nil {
		return fmt.Errorf("failed to mark payroll records paid: %w", err)
	}
	slog.Info("payroll records marked paid",
		"company_id", req.CompanyID, "count", len(req.RecordIDs))
	return nil
}
