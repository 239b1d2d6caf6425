package student

import "errors"

// Student domain errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student id is already registered")
)
