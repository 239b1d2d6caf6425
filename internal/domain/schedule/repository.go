package schedule

import "context"

type ScheduleRepository interface {
	// GetOverrides returns every stored override keyed by strand.
	GetOverrides(ctx context.Context) (Map, error)

	// Upsert stores the complete merged schedule for a strand.
	Upsert(ctx context.Context, strand string, s Schedule) error

	// Delete removes a strand's override so the built-in default
	// applies again. Deleting a missing override is not an error.
	Delete(ctx context.Context, strand string) error
}
