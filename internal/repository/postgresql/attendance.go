package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/strandtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Scan labels are nullable text; NULL means the scan has not happened.
func labelToTimeValue(label *string) clock.TimeValue {
	if label == nil {
		return clock.Empty()
	}
	return clock.Label(*label)
}

func timeValueToLabel(v clock.TimeValue) *string {
	if v.IsEmpty() {
		return nil
	}
	m := clock.Normalize(v)
	if m.IsNone() {
		return nil
	}
	label := clock.FormatMinutes(m)
	return &label
}

// GetByStudentAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByStudentAndDate(ctx context.Context, studentID, date string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.student_id, s.first_name, s.last_name, s.strand,
		       a.date, a.time_in, a.time_out, a.created_at, a.updated_at
		FROM attendance_records a
		JOIN students s ON s.id = a.student_id
		WHERE a.student_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var rec attendance.Record
	var timeIn, timeOut *string
	err := q.QueryRow(ctx, query, studentID, date).Scan(
		&rec.ID, &rec.StudentID, &rec.FirstName, &rec.LastName, &rec.Strand,
		&rec.Date, &timeIn, &timeOut, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	rec.TimeIn = labelToTimeValue(timeIn)
	rec.TimeOut = labelToTimeValue(timeOut)
	return rec, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, student_id, date, time_in, time_out)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.StudentID,
		rec.Date,
		timeValueToLabel(rec.TimeIn),
		timeValueToLabel(rec.TimeOut),
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET time_in = $2, time_out = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, rec.ID, timeValueToLabel(rec.TimeIn), timeValueToLabel(rec.TimeOut))
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.student_id, s.first_name, s.last_name, s.strand,
		       a.date, a.time_in, a.time_out, a.created_at, a.updated_at
		FROM attendance_records a
		JOIN students s ON s.id = a.student_id
		WHERE a.date = $1
		ORDER BY s.last_name, s.first_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var timeIn, timeOut *string
		if err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.FirstName, &rec.LastName, &rec.Strand,
			&rec.Date, &timeIn, &timeOut, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.TimeIn = labelToTimeValue(timeIn)
		rec.TimeOut = labelToTimeValue(timeOut)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
