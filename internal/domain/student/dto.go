package student

import (
	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/validator"
)

type RegisterStudentRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Strand    string `json:"strand"`
}

func (r *RegisterStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	} else if !validator.IsValidStudentID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must follow the school format, e.g. 2025-0001",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.Strand) {
		errs = append(errs, validator.ValidationError{
			Field:   "strand",
			Message: "strand is required",
		})
	} else if !validator.IsInSlice(r.Strand, schedule.Strands()) {
		errs = append(errs, validator.ValidationError{
			Field:   "strand",
			Message: "strand must be one of: STEM, ICT, HUMSS, ABM, GAS",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StudentResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Strand    string `json:"strand"`
	CreatedAt string `json:"created_at"`
}

type StudentFilter struct {
	Strand *string `json:"strand,omitempty"`
	Search *string `json:"search,omitempty"` // matches id or name
}

type ListStudentsResponse struct {
	Total    int               `json:"total"`
	Students []StudentResponse `json:"students"`
}
