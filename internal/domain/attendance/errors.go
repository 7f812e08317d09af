package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")

	// Check-out errors
	ErrNotCheckedIn          = errors.New("you must check in first")
	ErrAlreadyCheckedOut     = errors.New("you have already checked out today")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time is earlier than check-in time")

	// General errors
	ErrInvalidClock = errors.New("invalid clock value, expected HH:MM")
)
