package schedule

import (
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/validator"
)

type ScheduleResponse struct {
	Strand       string `json:"strand"`
	Start        string `json:"start"`
	End          string `json:"end"`
	GraceMinutes int    `json:"grace_minutes"`
	IsOverride   bool   `json:"is_override"`
}

type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// UpdateScheduleRequest is a partial update: nil fields keep the
// strand's current effective value.
type UpdateScheduleRequest struct {
	Strand       string  `json:"-"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
	GraceMinutes *int    `json:"grace_minutes,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Strand) {
		errs = append(errs, validator.ValidationError{
			Field:   "strand",
			Message: "strand is required",
		})
	}

	if r.Start != nil && clock.Normalize(clock.Label(*r.Start)).IsNone() {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be a valid time such as 08:00 AM or 08:00",
		})
	}

	if r.End != nil && clock.Normalize(clock.Label(*r.End)).IsNone() {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be a valid time such as 04:00 PM or 16:00",
		})
	}

	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
