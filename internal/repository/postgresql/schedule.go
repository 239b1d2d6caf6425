package postgresql

import (
	"context"
	"fmt"

	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// GetOverrides implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetOverrides(ctx context.Context) (schedule.Map, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT strand, start_label, end_label, grace_minutes
		FROM schedule_overrides
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(schedule.Map)
	for rows.Next() {
		var strand string
		var startLabel, endLabel *string
		var grace int
		if err := rows.Scan(&strand, &startLabel, &endLabel, &grace); err != nil {
			return nil, fmt.Errorf("failed to scan schedule override: %w", err)
		}
		overrides[strand] = schedule.Schedule{
			Start:        labelToTimeValue(startLabel),
			End:          labelToTimeValue(endLabel),
			GraceMinutes: grace,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule overrides: %w", err)
	}

	return overrides, nil
}

// Upsert implements schedule.ScheduleRepository.
func (r *scheduleRepository) Upsert(ctx context.Context, strand string, s schedule.Schedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_overrides (strand, start_label, end_label, grace_minutes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (strand) DO UPDATE
		SET start_label = EXCLUDED.start_label,
		    end_label = EXCLUDED.end_label,
		    grace_minutes = EXCLUDED.grace_minutes,
		    updated_at = NOW()
	`

	startLabel := clock.FormatMinutes(clock.Normalize(s.Start))
	endLabel := clock.FormatMinutes(clock.Normalize(s.End))
	_, err := q.Exec(ctx, query, strand, startLabel, endLabel, s.GraceMinutes)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule override: %w", err)
	}

	return nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepository) Delete(ctx context.Context, strand string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM schedule_overrides WHERE strand = $1`, strand); err != nil {
		return fmt.Errorf("failed to delete schedule override: %w", err)
	}

	return nil
}
