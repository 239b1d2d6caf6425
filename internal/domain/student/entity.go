package student

import "time"

// Student is one enrolled student in the roster.
type Student struct {
	ID        string // school-issued id, e.g. "2025-0001"
	FirstName string
	LastName  string
	Strand    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
