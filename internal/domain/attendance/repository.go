package attendance

import "context"

type AttendanceRepository interface {
	// GetByStudentAndDate returns the record for one student on one
	// day, or ErrRecordNotFound.
	GetByStudentAndDate(ctx context.Context, studentID, date string) (Record, error)

	// Create inserts a new record. TimeIn/TimeOut may be empty when a
	// student is registered without a scan.
	Create(ctx context.Context, rec Record) (Record, error)

	// Update rewrites the record's time fields.
	Update(ctx context.Context, rec Record) error

	// ListByDate returns every record for a day joined with student
	// details, ordered by student name.
	ListByDate(ctx context.Context, date string) ([]Record, error)
}
