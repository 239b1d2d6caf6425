package student

import "context"

type StudentService interface {
	Register(ctx context.Context, req RegisterStudentRequest) (StudentResponse, error)
	Get(ctx context.Context, id string) (StudentResponse, error)
	List(ctx context.Context, filter StudentFilter) (ListStudentsResponse, error)
	Delete(ctx context.Context, id string) error
}
