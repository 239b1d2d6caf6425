package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
}

func NewScheduleService(repo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{ScheduleRepository: repo}
}

func toResponse(strand string, s schedule.Schedule, isOverride bool) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		Strand:       strand,
		Start:        clock.FormatMinutes(clock.Normalize(s.Start)),
		End:          clock.FormatMinutes(clock.Normalize(s.End)),
		GraceMinutes: s.GraceMinutes,
		IsOverride:   isOverride,
	}
}

// List implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) List(ctx context.Context) (schedule.ListSchedulesResponse, error) {
	overrides, err := s.ScheduleRepository.GetOverrides(ctx)
	if err != nil {
		return schedule.ListSchedulesResponse{}, fmt.Errorf("failed to load schedule overrides: %w", err)
	}

	var resp schedule.ListSchedulesResponse
	for _, strand := range schedule.Strands() {
		_, isOverride := overrides[strand]
		resp.Schedules = append(resp.Schedules, toResponse(strand, schedule.Resolve(overrides, strand), isOverride))
	}

	// Overrides for strands outside the built-in list still show up,
	// after the known strands, in a stable order.
	var extra []string
	for strand := range overrides {
		if !schedule.IsKnownStrand(strand) {
			extra = append(extra, strand)
		}
	}
	sort.Strings(extra)
	for _, strand := range extra {
		resp.Schedules = append(resp.Schedules, toResponse(strand, overrides[strand], true))
	}

	return resp, nil
}

// Update implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	overrides, err := s.ScheduleRepository.GetOverrides(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to load schedule overrides: %w", err)
	}

	// Partial updates merge over the current effective schedule, so a
	// grace-only change keeps the strand's start and end.
	merged := schedule.Resolve(overrides, req.Strand)
	if req.Start != nil {
		merged.Start = clock.Label(*req.Start)
	}
	if req.End != nil {
		merged.End = clock.Label(*req.End)
	}
	if req.GraceMinutes != nil {
		merged.GraceMinutes = *req.GraceMinutes
	}

	if err := s.ScheduleRepository.Upsert(ctx, req.Strand, merged); err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to store schedule override: %w", err)
	}

	return toResponse(req.Strand, merged, true), nil
}

// Reset implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Reset(ctx context.Context, strand string) (schedule.ScheduleResponse, error) {
	if err := s.ScheduleRepository.Delete(ctx, strand); err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to delete schedule override: %w", err)
	}
	return toResponse(strand, schedule.Default(strand), false), nil
}
