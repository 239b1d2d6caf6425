package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("student has already checked in today")
	ErrNotCheckedIn      = errors.New("student has not checked in today")
	ErrAlreadyCheckedOut = errors.New("student has already checked out today")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
