package attendance

import "errors"

var (
	ErrConfigNotFound     = errors.New("attendance configuration not found")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrNoEmployeesMatched = errors.New("no employees matched the request")
	ErrResultNotFound     = errors.New("attendance result not found")
)
