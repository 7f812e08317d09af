package request

import "errors"

var (
	ErrRequestNotFound         = errors.New("request not found")
	ErrRequestAlreadyProcessed = errors.New("request has already been approved or rejected")
	ErrInvalidTransition       = errors.New("request can only be approved or rejected")
	ErrInvalidType             = errors.New("type must be vacation, break or exception")
	ErrInvalidDate             = errors.New("date must be YYYY-MM-DD")
	ErrEndBeforeStart          = errors.New("end date must not be before start date")
)
