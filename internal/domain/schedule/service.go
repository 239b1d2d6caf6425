package schedule

import "context"

// ScheduleService manages the effective arrival windows shown in the
// schedule manager.
type ScheduleService interface {
	// List returns the effective schedule for every known strand plus
	// any strand that only exists as an override.
	List(ctx context.Context) (ListSchedulesResponse, error)

	// Update merges a partial update over the strand's current
	// effective schedule and stores the merged result.
	Update(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)

	// Reset discards the strand's override and restores the built-in
	// default.
	Reset(ctx context.Context, strand string) (ScheduleResponse, error)
}
