package attendance

import (
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	StudentID string `json:"student_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	StudentID string `json:"student_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID            string `json:"id"`
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	Strand        string `json:"strand"`
	Date          string `json:"date"`
	TimeIn        string `json:"time_in,omitempty"`
	TimeOut       string `json:"time_out,omitempty"`
	Status        string `json:"status"`
	Tone          string `json:"tone"`
	HasCheckedIn  bool   `json:"has_checked_in"`
	HasCheckedOut bool   `json:"has_checked_out"`
	IsLate        bool   `json:"is_late"`
}

// Time filter targets: which scan a "time at or after" filter applies
// to.
const (
	TimeFilterNone    = ""
	TimeFilterTimeIn  = "time_in"
	TimeFilterTimeOut = "time_out"
)

type ListFilter struct {
	Date           string  `json:"date"` // YYYY-MM-DD, required
	Strand         *string `json:"strand,omitempty"`
	Search         *string `json:"search,omitempty"`     // matches student id or name
	TimeField      string  `json:"time_field,omitempty"` // time_in | time_out
	TimeAtOrAfter  *string `json:"time_at_or_after,omitempty"`
	MissingTimeOut bool    `json:"missing_time_out,omitempty"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(f.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if f.TimeField != TimeFilterNone && f.TimeField != TimeFilterTimeIn && f.TimeField != TimeFilterTimeOut {
		errs = append(errs, validator.ValidationError{
			Field:   "time_field",
			Message: "time_field must be one of: time_in, time_out",
		})
	}

	if f.TimeAtOrAfter != nil && clock.Normalize(clock.Label(*f.TimeAtOrAfter)).IsNone() {
		errs = append(errs, validator.ValidationError{
			Field:   "time_at_or_after",
			Message: "time_at_or_after must be a valid time such as 08:00 AM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	Date        string               `json:"date"`
	Total       int                  `json:"total"`
	Attendances []AttendanceResponse `json:"attendances"`
}
