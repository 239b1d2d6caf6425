package student

import (
	"context"

	"github.com/strandtrack/attendance-backend-go/internal/domain/student"
)

type StudentServiceImpl struct {
	student.StudentRepository
}

func NewStudentService(repo student.StudentRepository) student.StudentService {
	return &StudentServiceImpl{StudentRepository: repo}
}

func toResponse(s student.Student) student.StudentResponse {
	return student.StudentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Strand:    s.Strand,
		CreatedAt: s.CreatedAt.Format("2006-01-02"),
	}
}

// Register implements student.StudentService.
func (s *StudentServiceImpl) Register(ctx context.Context, req student.RegisterStudentRequest) (student.StudentResponse, error) {
	if err := req.Validate(); err != nil {
		return student.StudentResponse{}, err
	}

	created, err := s.StudentRepository.Create(ctx, student.Student{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Strand:    req.Strand,
	})
	if err != nil {
		return student.StudentResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements student.StudentService.
func (s *StudentServiceImpl) Get(ctx context.Context, id string) (student.StudentResponse, error) {
	found, err := s.StudentRepository.GetByID(ctx, id)
	if err != nil {
		return student.StudentResponse{}, err
	}
	return toResponse(found), nil
}

// List implements student.StudentService.
func (s *StudentServiceImpl) List(ctx context.Context, filter student.StudentFilter) (student.ListStudentsResponse, error) {
	students, err := s.StudentRepository.List(ctx, filter)
	if err != nil {
		return student.ListStudentsResponse{}, err
	}

	resp := student.ListStudentsResponse{Total: len(students)}
	for _, item := range students {
		resp.Students = append(resp.Students, toResponse(item))
	}

	return resp, nil
}

// Delete implements student.StudentService.
func (s *StudentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.StudentRepository.Delete(ctx, id)
}
