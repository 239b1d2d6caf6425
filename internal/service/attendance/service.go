package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/strandtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/domain/student"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	student.StudentRepository
	schedule.ScheduleRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	studentRepo student.StudentRepository,
	scheduleRepo schedule.ScheduleRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		StudentRepository:    studentRepo,
		ScheduleRepository:   scheduleRepo,
	}
}

func formatScan(v clock.TimeValue) string {
	if v.IsEmpty() {
		return ""
	}
	return clock.FormatMinutes(clock.Normalize(v))
}

func toResponse(rec attendance.Record, result attendance.Classification) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            rec.ID,
		StudentID:     rec.StudentID,
		StudentName:   rec.FirstName + " " + rec.LastName,
		Strand:        rec.Strand,
		Date:          rec.Date,
		TimeIn:        formatScan(rec.TimeIn),
		TimeOut:       formatScan(rec.TimeOut),
		Status:        result.StatusLabel,
		Tone:          string(result.Tone),
		HasCheckedIn:  result.HasCheckedIn,
		HasCheckedOut: result.HasCheckedOut,
		IsLate:        result.IsLate,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s, err := a.StudentRepository.GetByID(ctx, req.StudentID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	date := now.Format("2006-01-02")

	rec, err := a.AttendanceRepository.GetByStudentAndDate(ctx, s.ID, date)
	switch {
	case errors.Is(err, attendance.ErrRecordNotFound):
		rec = attendance.Record{
			ID:        uuid.NewString(),
			StudentID: s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Strand:    s.Strand,
			Date:      date,
			TimeIn:    clock.Instant(now),
			TimeOut:   clock.Empty(),
		}
		if rec, err = a.AttendanceRepository.Create(ctx, rec); err != nil {
			return attendance.AttendanceResponse{}, err
		}
	case err != nil:
		return attendance.AttendanceResponse{}, err
	default:
		// The first scan of the day wins; repeats are rejected.
		if !rec.TimeIn.IsEmpty() {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		rec.TimeIn = clock.Instant(now)
		if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	return a.classified(ctx, rec)
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.StudentRepository.GetByID(ctx, req.StudentID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	date := now.Format("2006-01-02")

	rec, err := a.AttendanceRepository.GetByStudentAndDate(ctx, req.StudentID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if rec.TimeIn.IsEmpty() {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if !rec.TimeOut.IsEmpty() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	rec.TimeOut = clock.Instant(now)
	if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.classified(ctx, rec)
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.AttendanceRepository.ListByDate(ctx, filter.Date)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	overrides, err := a.ScheduleRepository.GetOverrides(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to load schedule overrides: %w", err)
	}

	var threshold clock.Minutes = clock.NoTime
	if filter.TimeAtOrAfter != nil {
		threshold = clock.Normalize(clock.Label(*filter.TimeAtOrAfter))
	}

	resp := attendance.ListAttendanceResponse{Date: filter.Date}
	for _, rec := range records {
		if filter.Strand != nil && rec.Strand != *filter.Strand {
			continue
		}
		if filter.Search != nil && !matchesSearch(rec, *filter.Search) {
			continue
		}

		result := attendance.Classify(rec, overrides)

		if filter.MissingTimeOut && (!result.HasCheckedIn || result.HasCheckedOut) {
			continue
		}
		if !threshold.IsNone() && filter.TimeField != attendance.TimeFilterNone {
			scan := rec.TimeIn
			if filter.TimeField == attendance.TimeFilterTimeOut {
				scan = rec.TimeOut
			}
			at := clock.Normalize(scan)
			if at.IsNone() || at < threshold {
				continue
			}
		}

		resp.Attendances = append(resp.Attendances, toResponse(rec, result))
	}
	resp.Total = len(resp.Attendances)

	return resp, nil
}

func matchesSearch(rec attendance.Record, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	name := strings.ToLower(rec.FirstName + " " + rec.LastName)
	return strings.Contains(strings.ToLower(rec.StudentID), needle) || strings.Contains(name, needle)
}

func (a *AttendanceServiceImpl) classified(ctx context.Context, rec attendance.Record) (attendance.AttendanceResponse, error) {
	overrides, err := a.ScheduleRepository.GetOverrides(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load schedule overrides: %w", err)
	}
	return toResponse(rec, attendance.Classify(rec, overrides)), nil
}
