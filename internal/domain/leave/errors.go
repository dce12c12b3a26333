package leave

import "errors"

var (
	ErrLeaveNotFound     = errors.New("leave application not found")
	ErrInvalidLeaveRange = errors.New("leave end date must not be before start date")
)
