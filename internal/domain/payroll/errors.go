package payroll

import "errors"

var (
	ErrTemplateNotFound     = errors.New("payroll template not found")
	ErrCycleNotFound        = errors.New("payroll cycle not found")
	ErrCycleExists          = errors.New("payroll cycle already exists for this period")
	ErrRecordNotFound       = errors.New("payroll record not found")
	ErrRecordAlreadyPaid    = errors.New("payroll record already paid, cannot modify")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
	ErrNoBaseSalary         = errors.New("employee has no basic salary configured")
)
