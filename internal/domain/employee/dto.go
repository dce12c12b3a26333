package employee

import (
	"github.com/shopspring/decimal"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	CompanyID      string  `json:"company_id"`
	EmployeeCode   string  `json:"employee_code"`
	Name           string  `json:"name"`
	DepartmentName *string `json:"department_name"`
	DefaultShiftID *string `json:"default_shift_id"`
	PaymentType    string  `json:"payment_type"`

	ExpectedWorkingHours float64 `json:"expected_working_hours"`

	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HouseRentAllowance  decimal.Decimal `json:"house_rent_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	FoodAllowance       decimal.Decimal `json:"food_allowance"`
	AttendanceBonus     decimal.Decimal `json:"attendance_bonus"`
	FestivalBonus       decimal.Decimal `json:"festival_bonus"`

	ProvidentFund decimal.Decimal `json:"provident_fund"`
	TaxDeduction  decimal.Decimal `json:"tax_deduction"`
	LoanDeduction decimal.Decimal `json:"loan_deduction"`

	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	PerHourRate  decimal.Decimal `json:"per_hour_rate"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 1-50 alphanumeric characters",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsInSlice(r.PaymentType, []string{string(PaymentTypeSalaried), string(PaymentTypeHourly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_type",
			Message: "payment_type must be salaried or hourly",
		})
	}
	if r.ExpectedWorkingHours < 0 || r.ExpectedWorkingHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_working_hours",
			Message: "expected_working_hours must be between 0 and 24",
		})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEmployee builds an active employee from a validated request.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	return Employee{
		CompanyID:            r.CompanyID,
		EmployeeCode:         r.EmployeeCode,
		Name:                 r.Name,
		DepartmentName:       r.DepartmentName,
		DefaultShiftID:       r.DefaultShiftID,
		PaymentType:          PaymentType(r.PaymentType),
		ExpectedWorkingHours: r.ExpectedWorkingHours,
		BasicSalary:          r.BasicSalary,
		HouseRentAllowance:   r.HouseRentAllowance,
		MedicalAllowance:     r.MedicalAllowance,
		ConveyanceAllowance:  r.ConveyanceAllowance,
		FoodAllowance:        r.FoodAllowance,
		AttendanceBonus:      r.AttendanceBonus,
		FestivalBonus:        r.FestivalBonus,
		ProvidentFund:        r.ProvidentFund,
		TaxDeduction:         r.TaxDeduction,
		LoanDeduction:        r.LoanDeduction,
		OvertimeRate:         r.OvertimeRate,
		PerHourRate:          r.PerHourRate,
		IsActive:             true,
	}
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	EmployeeCode   string  `json:"employee_code"`
	Name           string  `json:"name"`
	DepartmentName *string `json:"department_name,omitempty"`
	DefaultShiftID *string `json:"default_shift_id,omitempty"`
	PaymentType    string  `json:"payment_type"`

	ExpectedWorkingHours float64 `json:"expected_working_hours"`

	BasicSalary         string `json:"basic_salary"`
	HouseRentAllowance  string `json:"house_rent_allowance"`
	MedicalAllowance    string `json:"medical_allowance"`
	ConveyanceAllowance string `json:"conveyance_allowance"`
	FoodAllowance       string `json:"food_allowance"`
	AttendanceBonus     string `json:"attendance_bonus"`
	FestivalBonus       string `json:"festival_bonus"`

	ProvidentFund string `json:"provident_fund"`
	TaxDeduction  string `json:"tax_deduction"`
	LoanDeduction string `json:"loan_deduction"`

	OvertimeRate string `json:"overtime_rate"`
	PerHourRate  string `json:"per_hour_rate"`

	IsActive bool `json:"is_active"`
}

func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:                   e.ID,
		CompanyID:            e.CompanyID,
		EmployeeCode:         e.EmployeeCode,
		Name:                 e.Name,
		DepartmentName:       e.DepartmentName,
		DefaultShiftID:       e.DefaultShiftID,
		PaymentType:          string(e.PaymentType),
		ExpectedWorkingHours: e.ExpectedWorkingHours,
		BasicSalary:          e.BasicSalary.StringFixed(2),
		HouseRentAllowance:   e.HouseRentAllowance.StringFixed(2),
		MedicalAllowance:     e.MedicalAllowance.StringFixed(2),
		ConveyanceAllowance:  e.ConveyanceAllowance.StringFixed(2),
		FoodAllowance:        e.FoodAllowance.StringFixed(2),
		AttendanceBonus:      e.AttendanceBonus.StringFixed(2),
		FestivalBonus:        e.FestivalBonus.StringFixed(2),
		ProvidentFund:        e.ProvidentFund.StringFixed(2),
		TaxDeduction:         e.TaxDeduction.StringFixed(2),
		LoanDeduction:        e.LoanDeduction.StringFixed(2),
		OvertimeRate:         e.OvertimeRate.StringFixed(2),
		PerHourRate:          e.PerHourRate.StringFixed(2),
		IsActive:             e.IsActive,
	}
}
