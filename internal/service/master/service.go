package master

import (
	"context"
	"fmt"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/company"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/employee"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/holiday"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/leave"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/domain/shift"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

// MasterService manages the reference data the attendance and payroll
// engines consume: companies, employees, shifts, holidays, and leave
// applications.
type MasterService interface {
	// Companies
	CreateCompany(ctx context.Context, co company.Company) (company.Company, error)
	GetCompany(ctx context.Context, id string) (company.Company, error)
	ListCompanies(ctx context.Context) ([]company.Company, error)

	// Employees
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id, companyID string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)

	// Shifts
	CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	ListShifts(ctx context.Context, companyID string) ([]shift.ShiftResponse, error)
	DeleteShift(ctx context.Context, id, companyID string) error

	// Holidays
	CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id, companyID string) error

	// Leave applications
	CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	SetLeaveStatus(ctx context.Context, id, companyID string, status leave.LeaveStatus) error
}

type masterServiceImpl struct {
	companyRepo  company.CompanyRepository
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	holidayRepo  holiday.HolidayRepository
	leaveRepo    leave.LeaveRepository
}

func NewMasterService(
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
) MasterService {
	return &masterServiceImpl{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		holidayRepo:  holidayRepo,
		leaveRepo:    leaveRepo,
	}
}

// ==================== COMPANIES ====================

func (s *masterServiceImpl) CreateCompany(ctx context.Context, co company.Company) (company.Company, error) {
	if validator.IsEmpty(co.Name) {
		return company.Company{}, validator.ValidationErrors{{
			Field: "name", Message: "name is required",
		}}
	}
	return s.companyRepo.Create(ctx, co)
}

func (s *masterServiceImpl) GetCompany(ctx context.Context, id string) (company.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *masterServiceImpl) ListCompanies(ctx context.Context) ([]company.Company, error) {
	return s.companyRepo.List(ctx)
}

// ==================== EMPLOYEES ====================

func (s *masterServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DefaultShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.DefaultShiftID, req.CompanyID); err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve default shift: %w", err)
		}
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEmployee())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return created.ToResponse(), nil
}

func (s *masterServiceImpl) GetEmployee(ctx context.Context, id, companyID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

func (s *masterServiceImpl) ListEmployees(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, emp.ToResponse())
	}
	return responses, nil
}

// ==================== SHIFTS ====================

func (s *masterServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	created, err := s.shiftRepo.Create(ctx, req.ToShift())
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return created.ToResponse(), nil
}

func (s *masterServiceImpl) ListShifts(ctx context.Context, companyID string) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, sh.ToResponse())
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteShift(ctx context.Context, id, companyID string) error {
	return s.shiftRepo.Delete(ctx, id, companyID)
}

// ==================== HOLIDAYS ====================

func (s *masterServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	created, err := s.holidayRepo.Create(ctx, req.ToHoliday())
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return created.ToResponse(), nil
}

func (s *masterServiceImpl) DeleteHoliday(ctx context.Context, id, companyID string) error {
	return s.holidayRepo.Delete(ctx, id, companyID)
}

// ==================== LEAVE APPLICATIONS ====================

func (s *masterServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID); err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, req.ToApplication())
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return created.ToResponse(), nil
}

func (s *masterServiceImpl) SetLeaveStatus(ctx context.Context, id, companyID string, status leave.LeaveStatus) error {
	return s.leaveRepo.UpdateStatus(ctx, id, companyID, status)
}
