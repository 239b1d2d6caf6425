package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/strandtrack/attendance-backend-go/internal/domain/student"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/database"
)

type studentRepository struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepository{db: db}
}

// Create implements student.StudentRepository.
func (r *studentRepository) Create(ctx context.Context, s student.Student) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO students (id, first_name, last_name, strand)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.FirstName, s.LastName, s.Strand).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return student.Student{}, student.ErrStudentExists
		}
		return student.Student{}, fmt.Errorf("failed to create student: %w", err)
	}

	return s, nil
}

// GetByID implements student.StudentRepository.
func (r *studentRepository) GetByID(ctx context.Context, id string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, strand, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var s student.Student
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Strand, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student: %w", err)
	}

	return s, nil
}

// List implements student.StudentRepository.
func (r *studentRepository) List(ctx context.Context, filter student.StudentFilter) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, strand, created_at, updated_at
		FROM students
		WHERE ($1::text IS NULL OR strand = $1)
		  AND ($2::text IS NULL OR id ILIKE '%' || $2 || '%'
		       OR first_name || ' ' || last_name ILIKE '%' || $2 || '%')
		ORDER BY last_name, first_name
	`

	rows, err := q.Query(ctx, query, filter.Strand, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		var s student.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Strand, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}

	return students, nil
}

// Delete implements student.StudentRepository. The student's
// attendance records go with them.
func (r *studentRepository) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM attendance_records WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete student attendance records: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete student: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return student.ErrStudentNotFound
		}

		return nil
	})
}
