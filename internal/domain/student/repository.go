package student

import "context"

type StudentRepository interface {
	Create(ctx context.Context, s Student) (Student, error)
	GetByID(ctx context.Context, id string) (Student, error)
	List(ctx context.Context, filter StudentFilter) ([]Student, error)
	Delete(ctx context.Context, id string) error
}
