package attendance

import "context"

// AttendanceService defines the kiosk scan operations and the
// dashboard listing.
type AttendanceService interface {
	// CheckIn records the first time-in scan of the day for a student.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut records the first time-out scan of the day.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// List returns classified records for a day with the dashboard
	// filters applied.
	List(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)
}
